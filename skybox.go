package main

import (
	"path/filepath"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// skyboxFaces are in cube map order: +X, -X, +Y, -Y, +Z, -Z.
var skyboxFaces = []string{"right.jpg", "left.jpg", "top.jpg", "bottom.jpg", "front.jpg", "back.jpg"}

var skyboxVertices = []float32{
	-1.0, 1.0, -1.0,
	-1.0, -1.0, -1.0,
	1.0, -1.0, -1.0,
	1.0, -1.0, -1.0,
	1.0, 1.0, -1.0,
	-1.0, 1.0, -1.0,

	-1.0, -1.0, 1.0,
	-1.0, -1.0, -1.0,
	-1.0, 1.0, -1.0,
	-1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0,
	-1.0, -1.0, 1.0,

	1.0, -1.0, -1.0,
	1.0, -1.0, 1.0,
	1.0, 1.0, 1.0,
	1.0, 1.0, 1.0,
	1.0, 1.0, -1.0,
	1.0, -1.0, -1.0,

	-1.0, -1.0, 1.0,
	-1.0, 1.0, 1.0,
	1.0, 1.0, 1.0,
	1.0, 1.0, 1.0,
	1.0, -1.0, 1.0,
	-1.0, -1.0, 1.0,

	-1.0, 1.0, -1.0,
	1.0, 1.0, -1.0,
	1.0, 1.0, 1.0,
	1.0, 1.0, 1.0,
	-1.0, 1.0, 1.0,
	-1.0, 1.0, -1.0,

	-1.0, -1.0, -1.0,
	-1.0, -1.0, 1.0,
	1.0, -1.0, -1.0,
	1.0, -1.0, -1.0,
	-1.0, -1.0, 1.0,
	1.0, -1.0, 1.0,
}

type Skybox struct {
	VAO, VBO uint32
	cubemap  uint32
}

func NewSkybox(dir string) (*Skybox, error) {
	faces := make([]string, len(skyboxFaces))
	for i, face := range skyboxFaces {
		faces[i] = filepath.Join(dir, face)
	}
	cubemap, err := loadCubemap(faces)
	if err != nil {
		return nil, err
	}

	s := &Skybox{cubemap: cubemap}
	gl.GenVertexArrays(1, &s.VAO)
	gl.GenBuffers(1, &s.VBO)
	gl.BindVertexArray(s.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(skyboxVertices)*int(unsafe.Sizeof(skyboxVertices[0])), gl.Ptr(skyboxVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(3*unsafe.Sizeof(float32(0))), 0)
	gl.BindVertexArray(0)
	return s, nil
}

// skyboxView drops the translation so the sky stays centred on the camera.
func skyboxView(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}

// Draw renders the sky last; LEQUAL lets it pass at the far plane.
func (s *Skybox) Draw(shader *Shader, view, projection mgl32.Mat4) {
	gl.DepthFunc(gl.LEQUAL)
	shader.use()
	shader.setInt("skybox", 0)
	shader.setMat4("view", skyboxView(view))
	shader.setMat4("projection", projection)
	gl.BindVertexArray(s.VAO)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.cubemap)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)
	gl.DepthFunc(gl.LESS)
}

func (s *Skybox) delete() {
	gl.DeleteVertexArrays(1, &s.VAO)
	gl.DeleteBuffers(1, &s.VBO)
	gl.DeleteTextures(1, &s.cubemap)
}
