package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestOverlayProjectionMapsCorners(t *testing.T) {
	proj := overlayProjection([2]float32{800, 600})

	topLeft := proj.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -1, topLeft.X(), 1e-6)
	assert.InDelta(t, 1, topLeft.Y(), 1e-6)

	bottomRight := proj.Mul4x1(mgl32.Vec4{800, 600, 0, 1})
	assert.InDelta(t, 1, bottomRight.X(), 1e-6)
	assert.InDelta(t, -1, bottomRight.Y(), 1e-6)
}
