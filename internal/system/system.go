// Package system reports host statistics for the health endpoint.
package system

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

var startedAt = time.Now()

// Stats is a small snapshot of host and process state.
type Stats struct {
	Hostname       string  `json:"hostname"`
	HostUptimeSecs uint64  `json:"host_uptime_seconds"`
	UptimeSecs     int64   `json:"uptime_seconds"`
	MemoryPercent  float64 `json:"memory_percent"`
	LoadAvg1       float64 `json:"load_avg_1"`
}

// GetStats collects host statistics. Individual probes that fail are
// logged and left at their zero value.
func GetStats() Stats {
	stats := Stats{
		UptimeSecs: int64(time.Since(startedAt).Seconds()),
	}

	if info, err := host.Info(); err == nil {
		stats.Hostname = info.Hostname
		stats.HostUptimeSecs = info.Uptime
	} else {
		log.Debug().Err(err).Msg("Failed to read host info")
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = vm.UsedPercent
	} else {
		log.Debug().Err(err).Msg("Failed to read memory stats")
	}

	if avg, err := load.Avg(); err == nil {
		stats.LoadAvg1 = avg.Load1
	} else {
		log.Debug().Err(err).Msg("Failed to read load average")
	}

	return stats
}
