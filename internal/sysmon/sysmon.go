// Package sysmon provides system-wide resource sampling for the dashboard
// header.
package sysmon

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	Goroutines int
}

// Sample collects a single system-wide CPU and memory snapshot along with the
// current goroutine count. CPU uses interval=0 (delta since last call).
// Returns zero values on error.
func Sample() Stats {
	s := Stats{Goroutines: runtime.NumGoroutine()}
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}
