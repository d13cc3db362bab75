package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramStateDefaults(t *testing.T) {
	s := NewProgramState()
	assert.Equal(t, mgl32.Vec3{}, s.ClearColor)
	assert.False(t, s.ImGuiEnabled)
	assert.True(t, s.CameraMouseMovementUpdateEnabled)
	assert.Equal(t, mgl32.Vec3{0, 0, 3}, s.Camera.Position())
	assert.InDelta(t, -1.0, s.Camera.Front().Z(), 1e-6)
	assert.Equal(t, float32(1), s.BackpackScale)
}

func TestProgramStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program_state.txt")

	saved := NewProgramState()
	saved.ClearColor = mgl32.Vec3{0.1, 0.2, 0.3}
	saved.ImGuiEnabled = true
	saved.Camera.SetPosition(mgl32.Vec3{-12.5, 1.0 / 3.0, 7.25})
	saved.Camera.SetFront(mgl32.Vec3{0.3, -0.2, -0.9327379})
	require.NoError(t, saved.SaveToFile(path))

	loaded := NewProgramState()
	require.NoError(t, loaded.LoadFromFile(path))
	assert.Equal(t, saved.ClearColor, loaded.ClearColor)
	assert.Equal(t, saved.ImGuiEnabled, loaded.ImGuiEnabled)
	assert.Equal(t, saved.Camera.Position(), loaded.Camera.Position())
	assert.Equal(t, saved.Camera.Front(), loaded.Camera.Front())
	assert.Equal(t, saved.Camera.Yaw(), loaded.Camera.Yaw())
	assert.Equal(t, saved.Camera.Pitch(), loaded.Camera.Pitch())
}

func TestProgramStateWritesTenLines(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, NewProgramState().write(&sb))

	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	require.Len(t, lines, stateFieldCount)
	assert.Equal(t, []string{"0", "0", "0", "0", "0", "0", "3"}, lines[:7])
	assert.Equal(t, "-1", lines[9])
}

func TestProgramStateMissingFile(t *testing.T) {
	s := NewProgramState()
	err := s.LoadFromFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{0, 0, 3}, s.Camera.Position())
}

func TestProgramStateShortFileKeepsReadFields(t *testing.T) {
	s := NewProgramState()
	err := s.read(strings.NewReader("0.5 0.25 0.125\n1\n4 5\n"))
	require.Error(t, err)

	assert.Equal(t, mgl32.Vec3{0.5, 0.25, 0.125}, s.ClearColor)
	assert.True(t, s.ImGuiEnabled)
	// z was never read, so it keeps its default
	assert.Equal(t, mgl32.Vec3{4, 5, 3}, s.Camera.Position())
}

func TestProgramStatePartialFrontMergesComponents(t *testing.T) {
	s := NewProgramState()
	err := s.read(strings.NewReader("0 0 0 0 1 2 3 1 0"))
	require.Error(t, err)

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, s.Camera.Position())
	assert.Equal(t, mgl32.Vec3{1, 0, -1}, s.Camera.Front())
	assert.InDelta(t, -45, s.Camera.Yaw(), 1e-4)
}

func TestProgramStateRejectsNonFinite(t *testing.T) {
	s := NewProgramState()
	err := s.read(strings.NewReader("0 0 0 0 NaN 2 3 0 0 -1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 5")
	assert.Equal(t, mgl32.Vec3{0, 0, 3}, s.Camera.Position())

	err = s.read(strings.NewReader("0 0 0 0 1 2 3 +Inf 0 -1"))
	require.Error(t, err)
	assert.False(t, math.IsNaN(float64(s.Camera.Front().X())))
}

func TestProgramStateBadField(t *testing.T) {
	s := NewProgramState()
	err := s.read(strings.NewReader("0.5\nabc\n0.1\n0\n1 2 3\n0 0 -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 2")
	assert.Equal(t, mgl32.Vec3{0.5, 0, 0}, s.ClearColor)
}

func TestProgramStateBadFlag(t *testing.T) {
	s := NewProgramState()
	err := s.read(strings.NewReader("0 0 0 2 1 2 3 0 0 -1"))
	require.Error(t, err)
	assert.False(t, s.ImGuiEnabled)
}

func TestProgramStateAcceptsBoolWords(t *testing.T) {
	s := NewProgramState()
	require.NoError(t, s.read(strings.NewReader("0 0 0 true 1 2 3 1 0 0")))
	assert.True(t, s.ImGuiEnabled)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, s.Camera.Position())
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, s.Camera.Front())
	assert.InDelta(t, 0.0, s.Camera.Yaw(), 1e-4)
}

func TestProgramStateSaveError(t *testing.T) {
	dir := t.TempDir()
	// a directory cannot be created as a file
	err := NewProgramState().SaveToFile(dir)
	assert.Error(t, err)
	_, statErr := os.Stat(dir)
	assert.NoError(t, statErr)
}
