package performance

import (
	"log"
	"runtime"
)

// GoMemoryStats holds Go runtime memory statistics
type GoMemoryStats struct {
	AllocMB      uint64 // Currently allocated heap memory
	TotalAllocMB uint64 // Cumulative allocated memory
	SysMB        uint64 // Memory obtained from system
	NumGC        uint32 // Number of GC runs
}

// GetGoMemory retrieves Go runtime memory statistics
func GetGoMemory() GoMemoryStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return GoMemoryStats{
		AllocMB:      m.Alloc / (1024 * 1024),
		TotalAllocMB: m.TotalAlloc / (1024 * 1024),
		SysMB:        m.Sys / (1024 * 1024),
		NumGC:        m.NumGC,
	}
}

// LogReport logs a one-line summary of r.
func LogReport(r FrameReport) {
	status := "healthy"
	if !r.IsHealthy {
		status = "degraded"
	}
	log.Printf("Frames: update=%.2fms draw=%.2fms total=%.2fms slow=%d/%d (%.1f%%) %s | Go[Alloc=%dMB, Sys=%dMB, GC=%d] uptime=%ds",
		r.AvgUpdateMs, r.AvgDrawMs, r.AvgFrameMs,
		r.SlowFrames, r.TotalFrames, r.SlowRate, status,
		r.Memory.AllocMB, r.Memory.SysMB, r.Memory.NumGC,
		r.UptimeSeconds)
}
