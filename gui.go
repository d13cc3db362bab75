package main

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

// overlay is the imgui debug UI: context, platform glue and renderer.
type overlay struct {
	context  *imgui.Context
	io       imgui.IO
	platform *imguiGLFW
	renderer *imguiRenderer

	// helloValue backs the demo slider in the hello window
	helloValue float32
}

func newOverlay(window *glfw.Window, shader *Shader) *overlay {
	context := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	imgui.StyleColorsDark()
	return &overlay{
		context:  context,
		io:       io,
		platform: newImguiGLFW(io, window),
		renderer: newImguiRenderer(io, shader),
	}
}

func (o *overlay) wantsMouse() bool {
	return o.io.WantCaptureMouse()
}

// Draw builds and renders the windows. Nothing happens while the overlay is hidden.
func (o *overlay) Draw(state *ProgramState) {
	if !state.ImGuiEnabled {
		return
	}
	o.platform.NewFrame()
	imgui.NewFrame()

	o.helloWindow(state)
	cameraInfoWindow(state)
	postProcessingWindow(state)

	imgui.Render()
	o.renderer.Render(o.platform.DisplaySize(), o.platform.FramebufferSize(), imgui.RenderedDrawData())
}

// dragRange is the speed and bounds of an imgui drag widget.
type dragRange struct {
	speed, min, max float32
}

var (
	backpackDrag    = dragRange{speed: 0.025, min: -100.0, max: 100.0}
	attenuationDrag = dragRange{speed: 0.05, min: 0.0, max: 1.0}
)

func (o *overlay) helloWindow(state *ProgramState) {
	imgui.Begin("Hello window")
	imgui.Text("Hello text")
	imgui.SliderFloat("Float slider", &o.helloValue, 0.0, 1.0)
	imgui.ColorEdit3("Background color", (*[3]float32)(&state.ClearColor))
	imgui.DragFloat3V("Backpack position", (*[3]float32)(&state.BackpackPosition),
		backpackDrag.speed, 0, 0, "%.3f", imgui.SliderFlagsNone)
	imgui.DragFloatV("Backpack scale", &state.BackpackScale,
		backpackDrag.speed, backpackDrag.min, backpackDrag.max, "%.3f", imgui.SliderFlagsNone)

	a := attenuationDrag
	imgui.DragFloatV("pointLight.constant", &state.PointLight.Constant, a.speed, a.min, a.max, "%.3f", imgui.SliderFlagsNone)
	imgui.DragFloatV("pointLight.linear", &state.PointLight.Linear, a.speed, a.min, a.max, "%.3f", imgui.SliderFlagsNone)
	imgui.DragFloatV("pointLight.quadratic", &state.PointLight.Quadratic, a.speed, a.min, a.max, "%.3f", imgui.SliderFlagsNone)
	imgui.End()
}

func cameraInfoWindow(state *ProgramState) {
	c := state.Camera
	imgui.Begin("Camera info")
	pos, front := c.Position(), c.Front()
	imgui.Text(fmt.Sprintf("Camera position: (%f, %f, %f)", pos.X(), pos.Y(), pos.Z()))
	imgui.Text(fmt.Sprintf("(Yaw, Pitch): (%f, %f)", c.Yaw(), c.Pitch()))
	imgui.Text(fmt.Sprintf("Camera front: (%f, %f, %f)", front.X(), front.Y(), front.Z()))
	imgui.Checkbox("Camera mouse update", &state.CameraMouseMovementUpdateEnabled)
	imgui.End()
}

func postProcessingWindow(state *ProgramState) {
	imgui.Begin("Post processing")
	imgui.Checkbox("Bloom", &state.BloomEnabled)
	imgui.SliderFloat("Exposure", &state.Exposure, 0.01, 5.0)
	imgui.SliderInt("Blur passes", &state.BlurPasses, 0, 20)
	imgui.End()
}

func (o *overlay) delete() {
	o.renderer.delete()
	o.context.Destroy()
}
