package main

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

// imguiGLFW feeds window size, time and input into imgui. It installs no
// callbacks of its own; the viewer forwards events while the overlay is visible.
type imguiGLFW struct {
	io     imgui.IO
	window *glfw.Window
	time   float64
	// mouseJustPressed keeps clicks shorter than a frame from being lost
	mouseJustPressed [3]bool
}

func newImguiGLFW(io imgui.IO, window *glfw.Window) *imguiGLFW {
	p := &imguiGLFW{io: io, window: window}
	p.setKeyMapping()
	return p
}

func (p *imguiGLFW) setKeyMapping() {
	p.io.KeyMap(imgui.KeyTab, int(glfw.KeyTab))
	p.io.KeyMap(imgui.KeyLeftArrow, int(glfw.KeyLeft))
	p.io.KeyMap(imgui.KeyRightArrow, int(glfw.KeyRight))
	p.io.KeyMap(imgui.KeyUpArrow, int(glfw.KeyUp))
	p.io.KeyMap(imgui.KeyDownArrow, int(glfw.KeyDown))
	p.io.KeyMap(imgui.KeyPageUp, int(glfw.KeyPageUp))
	p.io.KeyMap(imgui.KeyPageDown, int(glfw.KeyPageDown))
	p.io.KeyMap(imgui.KeyHome, int(glfw.KeyHome))
	p.io.KeyMap(imgui.KeyEnd, int(glfw.KeyEnd))
	p.io.KeyMap(imgui.KeyInsert, int(glfw.KeyInsert))
	p.io.KeyMap(imgui.KeyDelete, int(glfw.KeyDelete))
	p.io.KeyMap(imgui.KeyBackspace, int(glfw.KeyBackspace))
	p.io.KeyMap(imgui.KeySpace, int(glfw.KeySpace))
	p.io.KeyMap(imgui.KeyEnter, int(glfw.KeyEnter))
	p.io.KeyMap(imgui.KeyEscape, int(glfw.KeyEscape))
	p.io.KeyMap(imgui.KeyA, int(glfw.KeyA))
	p.io.KeyMap(imgui.KeyC, int(glfw.KeyC))
	p.io.KeyMap(imgui.KeyV, int(glfw.KeyV))
	p.io.KeyMap(imgui.KeyX, int(glfw.KeyX))
	p.io.KeyMap(imgui.KeyY, int(glfw.KeyY))
	p.io.KeyMap(imgui.KeyZ, int(glfw.KeyZ))
}

func (p *imguiGLFW) DisplaySize() [2]float32 {
	w, h := p.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

func (p *imguiGLFW) FramebufferSize() [2]float32 {
	w, h := p.window.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

// NewFrame must be called before imgui.NewFrame.
func (p *imguiGLFW) NewFrame() {
	displaySize := p.DisplaySize()
	p.io.SetDisplaySize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})

	currentTime := glfw.GetTime()
	if p.time > 0 {
		p.io.SetDeltaTime(float32(currentTime - p.time))
	}
	p.time = currentTime

	if p.window.GetAttrib(glfw.Focused) != 0 {
		x, y := p.window.GetCursorPos()
		p.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		p.io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}

	for i := 0; i < len(p.mouseJustPressed); i++ {
		down := p.mouseJustPressed[i] || p.window.GetMouseButton(glfwButtonIDByIndex[i]) == glfw.Press
		p.io.SetMouseButtonDown(i, down)
		p.mouseJustPressed[i] = false
	}
}

var glfwButtonIndexByID = map[glfw.MouseButton]int{
	glfw.MouseButton1: 0,
	glfw.MouseButton2: 1,
	glfw.MouseButton3: 2,
}

var glfwButtonIDByIndex = map[int]glfw.MouseButton{
	0: glfw.MouseButton1,
	1: glfw.MouseButton2,
	2: glfw.MouseButton3,
}

func (p *imguiGLFW) mouseButtonChange(button glfw.MouseButton, action glfw.Action) {
	buttonIndex, known := glfwButtonIndexByID[button]
	if known && action == glfw.Press {
		p.mouseJustPressed[buttonIndex] = true
	}
}

func (p *imguiGLFW) mouseScrollChange(x, y float64) {
	p.io.AddMouseWheelDelta(float32(x), float32(y))
}

func (p *imguiGLFW) keyChange(key glfw.Key, action glfw.Action) {
	if key == glfw.KeyUnknown {
		return
	}
	if action == glfw.Press {
		p.io.KeyPress(int(key))
	}
	if action == glfw.Release {
		p.io.KeyRelease(int(key))
	}

	// modifiers are not reliable across systems
	p.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	p.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	p.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	p.io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

func (p *imguiGLFW) charChange(char rune) {
	p.io.AddInputCharacters(string(char))
}
