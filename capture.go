package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"
)

// sceneImage converts tightly packed RGB floats, bottom row first as OpenGL
// returns them, into a top-down HDR image.
func sceneImage(data []float32, width, height int) (*hdr.RGB, error) {
	if len(data) != width*height*3 {
		return nil, fmt.Errorf("expected %d floats for %dx%d, got %d", width*height*3, width, height, len(data))
	}
	img := hdr.NewRGB(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := (height - 1 - y) * width * 3
		for x := 0; x < width; x++ {
			i := row + x*3
			img.Set(x, y, hdrcolor.RGB{R: float64(data[i]), G: float64(data[i+1]), B: float64(data[i+2])})
		}
	}
	return img, nil
}

func captureName(t time.Time) string {
	return fmt.Sprintf("capture-%s.hdr", t.Format("20060102-150405.000"))
}

// captureScene writes the bloom's scene color attachment as a Radiance file
// into dir and returns its path.
func captureScene(b *Bloom, dir string, now time.Time) (string, error) {
	data, width, height := b.readSceneColor()
	img, err := sceneImage(data, width, height)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create capture directory: %w", err)
	}
	path := filepath.Join(dir, captureName(now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create capture: %w", err)
	}
	defer f.Close()

	if err := rgbe.Encode(f, img); err != nil {
		return "", fmt.Errorf("failed to encode capture: %w", err)
	}
	return path, nil
}
