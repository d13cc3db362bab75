package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnpackGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.Pix = []byte{1, 2, 3, 4}

	p := unpackImage(img)
	assert.Equal(t, uint32(gl.RED), p.format)
	assert.Equal(t, 1, p.channels())
	assert.Equal(t, []byte{1, 2, 3, 4}, p.data)
}

func TestUnpackOpaqueDropsAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{10, 20, 30, 255})
	img.Set(1, 0, color.RGBA{40, 50, 60, 255})

	p := unpackImage(img)
	assert.Equal(t, uint32(gl.RGB), p.format)
	assert.Equal(t, []byte{10, 20, 30, 40, 50, 60}, p.data)
}

func TestUnpackKeepsTopRowFirst(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 128})
	img.Set(0, 1, color.NRGBA{0, 0, 255, 64})

	p := unpackImage(img)
	assert.Equal(t, uint32(gl.RGBA), p.format)
	assert.Equal(t, 4, p.channels())
	assert.Equal(t, []byte{255, 0, 0, 128, 0, 0, 255, 64}, p.data)
}

func TestUnpackSubImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 3))
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	sub := img.SubImage(image.Rect(1, 1, 3, 3))

	p := unpackImage(sub)
	assert.Equal(t, 2, p.width)
	assert.Equal(t, 2, p.height)
	assert.Equal(t, []byte{4, 5, 7, 8}, p.data)
}

func TestDecodeImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixel.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 4, 2))))
	require.NoError(t, f.Close())

	img, err := decodeImageFile(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())

	_, err = decodeImageFile(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
