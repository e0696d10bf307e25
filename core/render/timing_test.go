package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRotationIndex(t *testing.T) {
	tests := []struct {
		name       string
		elapsed    time.Duration
		transition int
		count      int
		want       int
		wantActive bool
	}{
		{"three items after 12s at 5s", 12 * time.Second, 5, 3, 2, true},
		{"start", 0, 5, 3, 0, true},
		{"wraps", 16 * time.Second, 5, 3, 0, true},
		{"default transition", 25 * time.Second, 0, 4, 2, true},
		{"transition clamped up", 12 * time.Second, 1, 10, 2, true},
		{"idle without items", 12 * time.Second, 5, 0, 0, false},
		{"negative elapsed", -time.Second, 5, 3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, active := RotationIndex(tt.elapsed, tt.transition, tt.count)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantActive, active)
		})
	}
}

func TestTickerDuration(t *testing.T) {
	text := strings.Repeat("x", 200)
	assert.Equal(t, 4*time.Second, TickerDuration(text, 50))
	assert.Equal(t, 20*time.Second, TickerDuration(text, 10))
	assert.Equal(t, time.Duration(0), TickerDuration(text, 0))

	// counted in characters, not bytes
	assert.Equal(t, time.Second, TickerDuration(strings.Repeat("•", 10), 10))
}

func TestTickerText(t *testing.T) {
	assert.Equal(t, "A • B • C", TickerText([]string{"A", "B", "C"}))
	assert.Equal(t, "", TickerText(nil))
}
