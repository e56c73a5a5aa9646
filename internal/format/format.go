// Package format renders durations and byte counts for the summary and
// memory-stat displays.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders d at a precision matched to its magnitude:
// whole microseconds under a millisecond, whole milliseconds under a second,
// and the standard Duration form beyond that.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatBytes renders a byte count in binary units, e.g. "1.5 KiB".
// Values below 1 KiB stay in plain bytes.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
