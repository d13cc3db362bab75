package main

import "fmt"

// titleInterval is how often, in seconds, the FPS title is refreshed.
const titleInterval = 1.0 / 30.0

// frameStats counts frames between window title updates.
type frameStats struct {
	last   float64
	frames int
}

// tick records a frame at time now. Once titleInterval has passed it returns
// the new title and starts counting again.
func (f *frameStats) tick(now float64) (string, bool) {
	f.frames++
	elapsed := now - f.last
	if elapsed < titleInterval {
		return "", false
	}
	fps := float64(f.frames) / elapsed
	ms := elapsed / float64(f.frames) * 1000.0
	f.last = now
	f.frames = 0
	return fmt.Sprintf("%.1f - FPS / %.3f - ms", fps, ms), true
}
