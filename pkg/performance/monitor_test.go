package performance

import (
	"testing"
	"time"
)

func TestRollingAverageWindow(t *testing.T) {
	r := NewRollingAverage(3)
	if r.Average() != 0 || r.Count() != 0 {
		t.Fatalf("empty average = %v, count = %d", r.Average(), r.Count())
	}

	r.Add(10 * time.Millisecond)
	r.Add(20 * time.Millisecond)
	if got := r.Average(); got != 15*time.Millisecond {
		t.Errorf("Average = %v, want 15ms", got)
	}

	r.Add(30 * time.Millisecond)
	r.Add(60 * time.Millisecond) // evicts 10ms
	if got := r.Average(); got != 110*time.Millisecond/3 {
		t.Errorf("Average = %v, want %v", got, 110*time.Millisecond/3)
	}
	if r.Count() != 3 {
		t.Errorf("Count = %d, want 3", r.Count())
	}

	r.Reset()
	if r.Average() != 0 || r.Count() != 0 {
		t.Error("Reset left samples behind")
	}
}

func TestFrameMonitorReport(t *testing.T) {
	m := NewFrameMonitor(10, 16*time.Millisecond)
	for i := 0; i < 9; i++ {
		m.RecordUpdate(2 * time.Millisecond)
		m.RecordDraw(6 * time.Millisecond)
		m.RecordFrame(8 * time.Millisecond)
	}
	m.RecordFrame(40 * time.Millisecond)

	r := m.GetReport()
	if r.TotalFrames != 10 || r.SlowFrames != 1 {
		t.Errorf("frames = %d slow = %d, want 10 and 1", r.TotalFrames, r.SlowFrames)
	}
	if r.SlowRate != 10 {
		t.Errorf("SlowRate = %v, want 10", r.SlowRate)
	}
	if r.AvgUpdateMs != 2 || r.AvgDrawMs != 6 {
		t.Errorf("update = %v draw = %v", r.AvgUpdateMs, r.AvgDrawMs)
	}
	if r.AvgFrameMs != 11.2 {
		t.Errorf("AvgFrameMs = %v, want 11.2", r.AvgFrameMs)
	}
	if r.IsHealthy {
		t.Error("10% slow frames reported healthy")
	}

	m.Reset()
	if r := m.GetReport(); r.TotalFrames != 0 || !r.IsHealthy {
		t.Errorf("after reset: %+v", r)
	}
}

func TestFrameMonitorReportDue(t *testing.T) {
	m := NewFrameMonitor(1, time.Millisecond)
	now := time.Now()
	if m.ReportDue(now, time.Minute) {
		t.Error("report due immediately after start")
	}
	if !m.ReportDue(now.Add(2*time.Minute), time.Minute) {
		t.Error("report not due after interval")
	}
	if m.ReportDue(now.Add(2*time.Minute+time.Second), time.Minute) {
		t.Error("report due twice within interval")
	}
}
