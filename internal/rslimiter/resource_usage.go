package rslimiter

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/mem"
)

// ResourceUsage represents current process and system resource usage.
type ResourceUsage struct {
	AllocMB              int64   // memory currently allocated by the application
	SysMB                int64   // memory obtained from the OS by the Go runtime
	Goroutines           int     // number of goroutines
	GCCount              int64   // completed GC cycles
	SystemMemUsedPercent float64 // system-wide memory usage
}

// GetResourceUsage returns a point-in-time resource usage snapshot.
func GetResourceUsage() ResourceUsage {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	usage := ResourceUsage{
		AllocMB:    int64(m.Alloc / 1024 / 1024),
		SysMB:      int64(m.Sys / 1024 / 1024),
		Goroutines: runtime.NumGoroutine(),
		GCCount:    int64(m.NumGC),
	}

	if vmStat, err := mem.VirtualMemory(); err == nil {
		usage.SystemMemUsedPercent = vmStat.UsedPercent
	}

	return usage
}
