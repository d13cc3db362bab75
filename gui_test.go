package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlayDragRanges(t *testing.T) {
	assert.Equal(t, dragRange{speed: 0.025, min: -100, max: 100}, backpackDrag)
	assert.Equal(t, dragRange{speed: 0.05, min: 0, max: 1}, attenuationDrag)

	// the default light must sit inside the range the drags allow
	light := defaultPointLight()
	for _, v := range []float32{light.Constant, light.Linear, light.Quadratic} {
		assert.GreaterOrEqual(t, v, attenuationDrag.min)
		assert.LessOrEqual(t, v, attenuationDrag.max)
	}
	assert.GreaterOrEqual(t, NewProgramState().BackpackScale, backpackDrag.min)
}
