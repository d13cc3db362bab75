package main

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCameraMovement(t *testing.T) {
	c := NewDefaultCameraAtPosition(mgl32.Vec3{0, 0, 3})

	c.processKeyboard(FORWARD, 1)
	assert.InDelta(t, 3-defaultSpeed, c.Position().Z(), 1e-5)

	c.processKeyboard(UP, 2)
	assert.InDelta(t, 2*defaultSpeed, c.Position().Y(), 1e-5)
	c.processKeyboard(DOWN, 2)
	assert.InDelta(t, 0, c.Position().Y(), 1e-5)

	c.processKeyboard(RIGHT, 1)
	assert.InDelta(t, defaultSpeed, c.Position().X(), 1e-5)
	c.processKeyboard(LEFT, 1)
	assert.InDelta(t, 0, c.Position().X(), 1e-5)
}

func TestCameraPitchIsClamped(t *testing.T) {
	c := NewDefaultCameraAtPosition(mgl32.Vec3{})
	c.processMouseMovement(0, 10000, true)
	assert.Equal(t, float32(maxPitch), c.Pitch())
	c.processMouseMovement(0, -100000, true)
	assert.Equal(t, float32(-maxPitch), c.Pitch())
}

func TestCameraMouseMovementTurnsYaw(t *testing.T) {
	c := NewDefaultCameraAtPosition(mgl32.Vec3{})
	c.processMouseMovement(900, 0, true)
	// 900 * 0.1 degrees turns from -Z to +X
	assert.InDelta(t, 0, c.Yaw(), 1e-4)
	assert.InDelta(t, 1, c.Front().X(), 1e-5)
	assert.InDelta(t, 1, c.Front().Len(), 1e-5)
}

func TestCameraZoomIsClamped(t *testing.T) {
	c := NewDefaultCameraAtPosition(mgl32.Vec3{})
	c.processMouseScroll(10)
	assert.Equal(t, float32(35), c.Zoom())
	c.processMouseScroll(100)
	assert.Equal(t, float32(minZoom), c.Zoom())
	c.processMouseScroll(-100)
	assert.Equal(t, float32(maxZoom), c.Zoom())
}

func TestCameraSetFrontDerivesAngles(t *testing.T) {
	c := NewDefaultCameraAtPosition(mgl32.Vec3{})
	c.SetFront(mgl32.Vec3{0, 1, -1})
	assert.InDelta(t, 45, c.Pitch(), 1e-4)
	assert.InDelta(t, -90, c.Yaw(), 1e-4)
	assert.Equal(t, mgl32.Vec3{0, 1, -1}, c.Front())

	// zero vectors are ignored
	c.SetFront(mgl32.Vec3{})
	assert.Equal(t, mgl32.Vec3{0, 1, -1}, c.Front())
}

func TestCameraViewMatrixMatchesLookAt(t *testing.T) {
	c := NewDefaultCameraAtPosition(mgl32.Vec3{1, 2, 3})
	c.processMouseMovement(123, -45, true)

	want := mgl32.LookAtV(c.Position(), c.Position().Add(c.Front()), c.up)
	assert.True(t, want.ApproxEqualThreshold(c.getViewMatrix(), 1e-5))
}

func TestCameraSetFrontAlongWorldUp(t *testing.T) {
	for _, front := range []mgl32.Vec3{{0, 1, 0}, {0, -2, 0}} {
		c := NewDefaultCameraAtPosition(mgl32.Vec3{1, 2, 3})
		c.SetFront(front)

		assert.InDelta(t, 89*float32(math.Copysign(1, float64(front.Y()))), c.Pitch(), 1e-4)
		assert.InDelta(t, 1, c.Front().Len(), 1e-5)
		assert.InDelta(t, 1, c.right.Len(), 1e-5)

		c.processKeyboard(RIGHT, 1)
		c.processKeyboard(UP, 1)
		p := c.Position()
		for _, v := range p {
			assert.False(t, math.IsNaN(float64(v)), "position %v", p)
		}
	}
}
