package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedState(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	state := SeedState(now)

	require.Len(t, state.Screens, 3)
	require.Len(t, state.Content, 3)
	require.Len(t, state.Schedules, 1)
	assert.Equal(t, "Main Lobby Display", state.Screens[0].Name)
	assert.Equal(t, StatusOffline, state.Screens[1].Status)
	assert.Equal(t, "2024-03-01T11:55:00Z", state.Screens[1].LastSeen)
	assert.Equal(t, "dark", state.Settings.Theme)
	assert.Nil(t, state.Screens[0].Layout)
}

func TestAppState_CloneDoesNotAlias(t *testing.T) {
	state := SeedState(time.Now())
	l := Layout{LeftColumn: LeftColumn{Width: 70, Region: Region{Images: []string{"a.jpg"}}}}
	state.Screens[0].Layout = &l

	cp := state.Clone()
	cp.Screens[0].Name = "changed"
	cp.Screens[0].Layout.LeftColumn.Images[0] = "b.jpg"
	cp.Content[0].Tags[0] = "changed"
	cp.Schedules[0].TimeSlots[0].Days[0] = "sunday"
	cp.Settings.AllowedFormats[0] = "bmp"

	assert.Equal(t, "Main Lobby Display", state.Screens[0].Name)
	assert.Equal(t, "a.jpg", state.Screens[0].Layout.LeftColumn.Images[0])
	assert.Equal(t, "welcome", state.Content[0].Tags[0])
	assert.Equal(t, "monday", state.Schedules[0].TimeSlots[0].Days[0])
	assert.Equal(t, "jpg", state.Settings.AllowedFormats[0])
}

func TestContent_IsImage(t *testing.T) {
	assert.True(t, Content{Type: MediaImage}.IsImage())
	assert.False(t, Content{Type: MediaVideo}.IsImage())
}
