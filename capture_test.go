package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneImageFlipsRows(t *testing.T) {
	// bottom row red, top row blue, as glGetTexImage returns them
	data := []float32{
		4, 0, 0, 4, 0, 0,
		0, 0, 2, 0, 0, 2,
	}
	img, err := sceneImage(data, 2, 2)
	require.NoError(t, err)

	r, _, b, _ := img.HDRAt(0, 0).HDRRGBA()
	assert.InDelta(t, 0, r, 1e-6)
	assert.InDelta(t, 2, b, 1e-6)
	r, _, b, _ = img.HDRAt(1, 1).HDRRGBA()
	assert.InDelta(t, 4, r, 1e-6)
	assert.InDelta(t, 0, b, 1e-6)
}

func TestSceneImageRejectsShortData(t *testing.T) {
	_, err := sceneImage(make([]float32, 5), 2, 1)
	assert.Error(t, err)
}

func TestSceneImageEncodes(t *testing.T) {
	img, err := sceneImage(make([]float32, 4*3*3), 4, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rgbe.Encode(&buf, img))
	assert.NotZero(t, buf.Len())
}

func TestCaptureName(t *testing.T) {
	at := time.Date(2024, 5, 6, 7, 8, 9, 120_000_000, time.UTC)
	assert.Equal(t, "capture-20240506-070809.120.hdr", captureName(at))
}
