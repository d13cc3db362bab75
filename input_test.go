package main

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeyActionFor(t *testing.T) {
	tests := []struct {
		key    glfw.Key
		action glfw.Action
		want   keyAction
	}{
		{glfw.KeyH, glfw.Press, toggleBloomAction},
		{glfw.KeyH, glfw.Repeat, noAction},
		{glfw.KeyH, glfw.Release, noAction},
		{glfw.KeyF1, glfw.Press, toggleOverlayAction},
		{glfw.KeyF12, glfw.Press, captureAction},
		{glfw.KeyW, glfw.Press, noAction},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keyActionFor(tt.key, tt.action), "key %v action %v", tt.key, tt.action)
	}
}

func TestToggleOverlay(t *testing.T) {
	s := NewProgramState()

	assert.Equal(t, glfw.CursorNormal, s.toggleOverlay())
	assert.True(t, s.ImGuiEnabled)
	assert.False(t, s.CameraMouseMovementUpdateEnabled)

	assert.Equal(t, glfw.CursorDisabled, s.toggleOverlay())
	assert.False(t, s.ImGuiEnabled)
	assert.True(t, s.CameraMouseMovementUpdateEnabled)
}

func TestMouseTrackerFirstEventOnlyRecords(t *testing.T) {
	var m mouseTracker
	x, y := m.offsets(400, 300)
	assert.Zero(t, x)
	assert.Zero(t, y)

	x, y = m.offsets(410, 290)
	assert.Equal(t, float32(10), x)
	// window y grows downwards, so moving up is a positive offset
	assert.Equal(t, float32(10), y)
}

func TestMovementKeysCoverEveryDirection(t *testing.T) {
	seen := map[CameraMovement]bool{}
	for _, mk := range movementKeys {
		seen[mk.direction] = true
	}
	for _, d := range []CameraMovement{FORWARD, BACKWARD, LEFT, RIGHT, UP, DOWN} {
		assert.True(t, seen[d], "direction %d", d)
	}
}
