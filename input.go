package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// keyAction is a one-shot command bound to a key press.
type keyAction int

const (
	noAction keyAction = iota
	toggleBloomAction
	toggleOverlayAction
	captureAction
)

// keyActionFor maps a key event to its command. Only presses count, so
// holding a key toggles once.
func keyActionFor(key glfw.Key, action glfw.Action) keyAction {
	if action != glfw.Press {
		return noAction
	}
	switch key {
	case glfw.KeyH:
		return toggleBloomAction
	case glfw.KeyF1:
		return toggleOverlayAction
	case glfw.KeyF12:
		return captureAction
	}
	return noAction
}

// movementKeys are polled every frame.
var movementKeys = []struct {
	key       glfw.Key
	direction CameraMovement
}{
	{glfw.KeyW, FORWARD},
	{glfw.KeyS, BACKWARD},
	{glfw.KeyA, LEFT},
	{glfw.KeyD, RIGHT},
	{glfw.KeySpace, UP},
	{glfw.KeyX, DOWN},
}

// cursorMode is the GLFW cursor mode for the overlay visibility.
func cursorMode(overlayEnabled bool) int {
	if overlayEnabled {
		return glfw.CursorNormal
	}
	return glfw.CursorDisabled
}

// toggleOverlay flips the overlay and hands the mouse to whichever of the
// overlay and the camera is now active. It returns the new cursor mode.
func (s *ProgramState) toggleOverlay() int {
	s.ImGuiEnabled = !s.ImGuiEnabled
	s.CameraMouseMovementUpdateEnabled = !s.ImGuiEnabled
	return cursorMode(s.ImGuiEnabled)
}

// mouseTracker turns absolute cursor positions into per-event offsets.
type mouseTracker struct {
	lastX, lastY float64
	seen         bool
}

// offsets returns the x and y offsets since the previous event. y is reversed
// since window coordinates grow downwards. The first event only records the
// position and reports zero.
func (m *mouseTracker) offsets(x, y float64) (float32, float32) {
	if !m.seen {
		m.lastX, m.lastY = x, y
		m.seen = true
	}
	xOffset := float32(x - m.lastX)
	yOffset := float32(m.lastY - y)
	m.lastX, m.lastY = x, y
	return xOffset, yOffset
}

// processInput polls the held keys once per frame.
func (v *Viewer) processInput(deltaTime float32) {
	if v.window.GetKey(glfw.KeyEscape) == glfw.Press {
		v.window.SetShouldClose(true)
	}
	for _, mk := range movementKeys {
		if v.window.GetKey(mk.key) == glfw.Press {
			v.state.Camera.processKeyboard(mk.direction, deltaTime)
		}
	}
}

func (v *Viewer) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if v.state.ImGuiEnabled {
		v.overlay.platform.keyChange(key, action)
	}

	switch keyActionFor(key, action) {
	case toggleBloomAction:
		v.state.BloomEnabled = !v.state.BloomEnabled
	case toggleOverlayAction:
		w.SetInputMode(glfw.CursorMode, v.state.toggleOverlay())
	case captureAction:
		v.captureRequested = true
	}
}

func (v *Viewer) charCallback(w *glfw.Window, char rune) {
	if v.state.ImGuiEnabled {
		v.overlay.platform.charChange(char)
	}
}

func (v *Viewer) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if v.state.ImGuiEnabled {
		v.overlay.platform.mouseButtonChange(button, action)
	}
}

func (v *Viewer) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	xOffset, yOffset := v.mouse.offsets(xpos, ypos)
	if v.state.CameraMouseMovementUpdateEnabled {
		v.state.Camera.processMouseMovement(xOffset, yOffset, true)
	}
}

func (v *Viewer) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	if v.state.ImGuiEnabled {
		v.overlay.platform.mouseScrollChange(xoff, yoff)
		if v.overlay.wantsMouse() {
			return
		}
	}
	v.state.Camera.processMouseScroll(float32(yoff))
}

func (v *Viewer) framebufferSizeCallback(w *glfw.Window, width int, height int) {
	// minimised windows report a zero sized framebuffer
	if width == 0 || height == 0 {
		return
	}
	v.width, v.height = int32(width), int32(height)
	v.bloom.resize(v.width, v.height)
}
