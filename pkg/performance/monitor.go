package performance

import (
	"sync"
	"time"
)

// RollingAverage maintains a rolling average of durations over a fixed window
type RollingAverage struct {
	samples    []time.Duration
	maxSamples int
	sum        time.Duration
	index      int
	filled     bool
	mu         sync.RWMutex
}

// NewRollingAverage creates a rolling average tracker with specified window size
func NewRollingAverage(windowSize int) *RollingAverage {
	return &RollingAverage{
		samples:    make([]time.Duration, windowSize),
		maxSamples: windowSize,
	}
}

// Add records a new sample and updates the rolling average
func (r *RollingAverage) Add(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Subtract old value if we're overwriting
	if r.filled {
		r.sum -= r.samples[r.index]
	}

	// Add new value
	r.samples[r.index] = d
	r.sum += d

	// Advance index
	r.index++
	if r.index >= r.maxSamples {
		r.index = 0
		r.filled = true
	}
}

// Average returns the current rolling average
func (r *RollingAverage) Average() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.filled && r.index == 0 {
		return 0 // No samples yet
	}

	count := r.index
	if r.filled {
		count = r.maxSamples
	}

	if count == 0 {
		return 0
	}

	return r.sum / time.Duration(count)
}

// Count returns the number of samples currently tracked
func (r *RollingAverage) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.filled {
		return r.maxSamples
	}
	return r.index
}

// Reset clears all samples
func (r *RollingAverage) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sum = 0
	r.index = 0
	r.filled = false
	r.samples = make([]time.Duration, r.maxSamples)
}

// FrameMonitor tracks how long the editor spends per frame.
type FrameMonitor struct {
	updateTimes *RollingAverage
	drawTimes   *RollingAverage
	frameTimes  *RollingAverage
	budget      time.Duration
	slowFrames  int
	totalFrames int
	startTime   time.Time
	lastReport  time.Time
	mu          sync.RWMutex
}

// FrameReport contains aggregated frame metrics
type FrameReport struct {
	AvgUpdateMs   float64 // Average input + state update time in milliseconds
	AvgDrawMs     float64 // Average draw time in milliseconds
	AvgFrameMs    float64 // Average update + draw time in milliseconds
	SlowRate      float64 // Percentage of frames over budget
	TotalFrames   int
	SlowFrames    int
	IsHealthy     bool
	UptimeSeconds int64
	Memory        GoMemoryStats
}

// NewFrameMonitor creates a monitor for a loop targeting the given frame
// budget. windowSize determines how many frames to average (120 = 2 seconds
// at 60fps).
func NewFrameMonitor(windowSize int, budget time.Duration) *FrameMonitor {
	now := time.Now()
	return &FrameMonitor{
		updateTimes: NewRollingAverage(windowSize),
		drawTimes:   NewRollingAverage(windowSize),
		frameTimes:  NewRollingAverage(windowSize),
		budget:      budget,
		startTime:   now,
		lastReport:  now,
	}
}

func (m *FrameMonitor) RecordUpdate(d time.Duration) {
	m.updateTimes.Add(d)
}

func (m *FrameMonitor) RecordDraw(d time.Duration) {
	m.drawTimes.Add(d)
}

// RecordFrame records the total work time of one frame and counts it as slow
// when it exceeds the budget.
func (m *FrameMonitor) RecordFrame(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.frameTimes.Add(d)
	m.totalFrames++
	if d > m.budget {
		m.slowFrames++
	}
}

func (m *FrameMonitor) GetReport() FrameReport {
	m.mu.RLock()
	defer m.mu.RUnlock()

	avgFrame := m.frameTimes.Average()
	slowRate := 0.0
	if m.totalFrames > 0 {
		slowRate = float64(m.slowFrames) / float64(m.totalFrames) * 100.0
	}

	return FrameReport{
		AvgUpdateMs:   float64(m.updateTimes.Average().Microseconds()) / 1000.0,
		AvgDrawMs:     float64(m.drawTimes.Average().Microseconds()) / 1000.0,
		AvgFrameMs:    float64(avgFrame.Microseconds()) / 1000.0,
		SlowRate:      slowRate,
		TotalFrames:   m.totalFrames,
		SlowFrames:    m.slowFrames,
		IsHealthy:     slowRate < 1.0 && avgFrame <= m.budget,
		UptimeSeconds: int64(time.Since(m.startTime).Seconds()),
		Memory:        GetGoMemory(),
	}
}

// ReportDue returns true at most once per interval.
func (m *FrameMonitor) ReportDue(now time.Time, interval time.Duration) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastReport) < interval {
		return false
	}
	m.lastReport = now
	return true
}

// Reset clears all frame metrics
func (m *FrameMonitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.updateTimes.Reset()
	m.drawTimes.Reset()
	m.frameTimes.Reset()
	m.slowFrames = 0
	m.totalFrames = 0
	m.startTime = time.Now()
}
