package main

import (
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// brightBuffer marks the HDR framebuffer's bright-pass attachment as a blur source.
const brightBuffer = -1

// blurPass is one separable Gaussian blur step.
type blurPass struct {
	// target is the ping-pong framebuffer written by this pass.
	target int
	// source is the ping-pong buffer sampled, or brightBuffer.
	source     int
	horizontal bool
}

// bloomPlan is everything the post-process does in one frame, decided up front.
type bloomPlan struct {
	passes []blurPass
	// addBloom controls whether the composite adds the blurred highlights.
	addBloom bool
	// composite is the buffer the composite samples on unit 1: a ping-pong
	// index, or brightBuffer when bloom is on with no blur passes.
	composite int
	exposure  float32
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// planBloom lays out the ping-pong passes. Pass i writes buffer 1 when
// horizontal and buffer 0 otherwise, starting horizontal; the first pass reads
// the bright-pass attachment and each later pass reads what the previous one
// wrote. The composite reads the output of the last pass.
func planBloom(passes int, enabled bool, exposure float32) bloomPlan {
	plan := bloomPlan{addBloom: enabled, exposure: exposure, composite: brightBuffer}
	if !enabled {
		plan.composite = 0
		return plan
	}

	horizontal := true
	for i := 0; i < passes; i++ {
		pass := blurPass{target: btoi(horizontal), source: btoi(!horizontal), horizontal: horizontal}
		if i == 0 {
			pass.source = brightBuffer
		}
		plan.passes = append(plan.passes, pass)
		horizontal = !horizontal
	}
	if passes > 0 {
		plan.composite = btoi(!horizontal)
	}
	return plan
}

func setBlurUniforms(u uniforms, pass blurPass) {
	u.setBool("horizontal", pass.horizontal)
}

func setCompositeUniforms(u uniforms, plan bloomPlan) {
	u.setInt("scene", 0)
	u.setInt("bloomBlur", 1)
	u.setBool("bloom", plan.addBloom)
	u.setFloat("exposure", plan.exposure)
}

// Bloom owns the HDR render target and the two ping-pong blur targets.
// Call BeginScene before drawing the scene and Apply afterwards.
type Bloom struct {
	width, height int32
	// hdrFBO has two float color attachments: shaded color and bright pass
	hdrFBO       uint32
	colorBuffers [2]uint32
	rboDepth     uint32

	pingpongFBO          [2]uint32
	pingpongColorbuffers [2]uint32

	quad *screenQuad
}

func NewBloom(width, height int32) *Bloom {
	b := &Bloom{width: width, height: height, quad: newScreenQuad()}

	gl.GenFramebuffers(1, &b.hdrFBO)
	gl.GenTextures(2, &b.colorBuffers[0])
	gl.GenRenderbuffers(1, &b.rboDepth)
	gl.GenFramebuffers(2, &b.pingpongFBO[0])
	gl.GenTextures(2, &b.pingpongColorbuffers[0])

	b.allocate()
	return b
}

// allocate (re)specifies storage for every attachment at the current size.
func (b *Bloom) allocate() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, b.hdrFBO)
	for i := range b.colorBuffers {
		allocateFloatTexture(b.colorBuffers[i], b.width, b.height)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0+uint32(i), gl.TEXTURE_2D, b.colorBuffers[i], 0)
	}
	gl.BindRenderbuffer(gl.RENDERBUFFER, b.rboDepth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT, b.width, b.height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, b.rboDepth)
	attachments := []uint32{gl.COLOR_ATTACHMENT0, gl.COLOR_ATTACHMENT1}
	gl.DrawBuffers(int32(len(attachments)), &attachments[0])
	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		log.Printf("HDR framebuffer not complete")
	}

	for i := range b.pingpongFBO {
		gl.BindFramebuffer(gl.FRAMEBUFFER, b.pingpongFBO[i])
		allocateFloatTexture(b.pingpongColorbuffers[i], b.width, b.height)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, b.pingpongColorbuffers[i], 0)
		// no depth buffer needed for the blur
		if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
			log.Printf("ping-pong framebuffer %d not complete", i)
		}
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func allocateFloatTexture(id uint32, width, height int32) {
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA16F, width, height, 0, gl.RGBA, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	// clamp, or the blur would sample texels wrapped from the opposite edge
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

func (b *Bloom) resize(width, height int32) {
	if width <= 0 || height <= 0 || (width == b.width && height == b.height) {
		return
	}
	b.width, b.height = width, height
	b.allocate()
}

func (b *Bloom) BeginScene(r, g, bl float32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, b.hdrFBO)
	gl.Viewport(0, 0, b.width, b.height)
	gl.ClearColor(r, g, bl, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (b *Bloom) texture(buffer int) uint32 {
	if buffer == brightBuffer {
		return b.colorBuffers[1]
	}
	return b.pingpongColorbuffers[buffer]
}

// Apply runs the blur passes from plan and composites into the default
// framebuffer sized width x height.
func (b *Bloom) Apply(plan bloomPlan, blur, composite *Shader, width, height int32) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	blur.use()
	blur.setInt("image", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	for _, pass := range plan.passes {
		gl.BindFramebuffer(gl.FRAMEBUFFER, b.pingpongFBO[pass.target])
		setBlurUniforms(blur, pass)
		gl.BindTexture(gl.TEXTURE_2D, b.texture(pass.source))
		b.quad.draw()
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, width, height)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	composite.use()
	setCompositeUniforms(composite, plan)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.colorBuffers[0])
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, b.texture(plan.composite))
	b.quad.draw()
	gl.ActiveTexture(gl.TEXTURE0)

	gl.Enable(gl.DEPTH_TEST)
}

// readSceneColor returns the shaded HDR color attachment as RGB floats, bottom row first.
func (b *Bloom) readSceneColor() (data []float32, width, height int) {
	width, height = int(b.width), int(b.height)
	data = make([]float32, width*height*3)
	gl.BindTexture(gl.TEXTURE_2D, b.colorBuffers[0])
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.GetTexImage(gl.TEXTURE_2D, 0, gl.RGB, gl.FLOAT, gl.Ptr(data))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return data, width, height
}

func (b *Bloom) delete() {
	gl.DeleteFramebuffers(1, &b.hdrFBO)
	gl.DeleteTextures(2, &b.colorBuffers[0])
	gl.DeleteRenderbuffers(1, &b.rboDepth)
	gl.DeleteFramebuffers(2, &b.pingpongFBO[0])
	gl.DeleteTextures(2, &b.pingpongColorbuffers[0])
	b.quad.delete()
}

// screenQuad is a full-screen triangle strip with texture coordinates.
type screenQuad struct {
	VAO, VBO uint32
}

func newScreenQuad() *screenQuad {
	quadVertices := []float32{
		// positions   // texture coords
		-1.0, 1.0, 0.0, 0.0, 1.0,
		-1.0, -1.0, 0.0, 0.0, 0.0,
		1.0, 1.0, 0.0, 1.0, 1.0,
		1.0, -1.0, 0.0, 1.0, 0.0,
	}
	q := &screenQuad{}
	gl.GenVertexArrays(1, &q.VAO)
	gl.GenBuffers(1, &q.VBO)
	gl.BindVertexArray(q.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*int(unsafe.Sizeof(quadVertices[0])), gl.Ptr(quadVertices), gl.STATIC_DRAW)
	stride := int32(5 * unsafe.Sizeof(float32(0)))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*unsafe.Sizeof(float32(0)))
	gl.BindVertexArray(0)
	return q
}

func (q *screenQuad) draw() {
	gl.BindVertexArray(q.VAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

func (q *screenQuad) delete() {
	gl.DeleteVertexArrays(1, &q.VAO)
	gl.DeleteBuffers(1, &q.VBO)
}
