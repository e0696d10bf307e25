// ABOUTME: Duration formatting for screen telemetry and content running times
// ABOUTME: Renders uptimes as "24h 15m" and content durations as MM:SS or HH:MM:SS

package duration

import (
	"fmt"
	"time"
)

// FormatUptime renders d as whole hours and minutes, the way screens report uptime
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// FormatSeconds converts seconds to HH:MM:SS or MM:SS format
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
