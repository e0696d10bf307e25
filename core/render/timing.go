// ABOUTME: Rotation and ticker timing math shared by the renderer and the playback engine
// ABOUTME: Rotation index is derived from elapsed time so restarts never drift

package render

import (
	"strings"
	"time"
	"unicode/utf8"

	"signage-app-api/core/layout"
)

// TickerSeparator joins headlines in the ticker strip
const TickerSeparator = " • "

// RotationIndex returns floor(elapsed/transition) mod count, or false when count is zero (idle)
func RotationIndex(elapsed time.Duration, transitionSeconds, count int) (int, bool) {
	if count <= 0 {
		return 0, false
	}
	if elapsed < 0 {
		elapsed = 0
	}
	interval := TransitionInterval(transitionSeconds)
	return int(elapsed/interval) % count, true
}

// TransitionInterval is the clamped rotation period of a region
func TransitionInterval(transitionSeconds int) time.Duration {
	return time.Duration(layout.ClampTransitionTime(transitionSeconds)) * time.Second
}

// TickerText joins headlines with the ticker separator
func TickerText(headlines []string) string {
	return strings.Join(headlines, TickerSeparator)
}

// TickerDuration is the time one scroll cycle takes: text length divided by speed in chars per second
func TickerDuration(text string, scrollSpeed int) time.Duration {
	if scrollSpeed <= 0 {
		return 0
	}
	n := utf8.RuneCountInString(text)
	return time.Duration(n) * time.Second / time.Duration(scrollSpeed)
}
