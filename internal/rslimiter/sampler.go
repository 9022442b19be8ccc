package rslimiter

import "github.com/rs/zerolog"

// UsageSampler logs a resource usage snapshot, typically once per polling
// round, and warns when allocated memory crosses the threshold.
type UsageSampler struct {
	logger      zerolog.Logger
	memWarnMB   int64
	lastGCCount int64
}

// NewUsageSampler creates a sampler. memWarnMB <= 0 disables the warning.
func NewUsageSampler(logger zerolog.Logger, memWarnMB int64) *UsageSampler {
	return &UsageSampler{
		logger:    logger.With().Str("component", "UsageSampler").Logger(),
		memWarnMB: memWarnMB,
	}
}

// Sample logs current usage at debug level and a warning when past the
// memory threshold.
func (us *UsageSampler) Sample() ResourceUsage {
	usage := GetResourceUsage()

	us.logger.Debug().
		Int64("alloc_mb", usage.AllocMB).
		Int64("sys_mb", usage.SysMB).
		Int("goroutines", usage.Goroutines).
		Int64("gc_cycles", usage.GCCount-us.lastGCCount).
		Float64("system_mem_used_percent", usage.SystemMemUsedPercent).
		Msg("Resource usage")
	us.lastGCCount = usage.GCCount

	if us.memWarnMB > 0 && usage.AllocMB > us.memWarnMB {
		us.logger.Warn().Int64("alloc_mb", usage.AllocMB).Int64("threshold_mb", us.memWarnMB).Msg("Memory usage above threshold")
	}
	return usage
}
