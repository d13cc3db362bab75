package main

import (
	"strconv"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type Vertex struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	TexCoords mgl32.Vec2
}

const (
	textureDiffuse  = "texture_diffuse"
	textureSpecular = "texture_specular"
	textureNormal   = "texture_normal"
	textureHeight   = "texture_height"
)

type Texture struct {
	ID   uint32
	Type string
	Path string
}

type Mesh struct {
	vertices []Vertex
	indices  []uint32
	textures []Texture
	VAO      uint32
	VBO      uint32
	EBO      uint32
}

func NewMesh(vertices []Vertex, indices []uint32, textures []Texture) *Mesh {
	mesh := &Mesh{
		vertices: vertices,
		indices:  indices,
		textures: textures,
	}
	mesh.setupMesh()
	return mesh
}

// samplerNames returns the uniform each texture binds to, numbered per type:
// prefix+"texture_diffuse1", prefix+"texture_diffuse2", prefix+"texture_specular1"...
func samplerNames(textures []Texture, prefix string) []string {
	counters := make(map[string]int)
	names := make([]string, len(textures))
	for i, texture := range textures {
		counters[texture.Type]++
		names[i] = prefix + texture.Type + strconv.Itoa(counters[texture.Type])
	}
	return names
}

func (mesh *Mesh) Draw(shader uniforms, prefix string) {
	if mesh.VAO == 0 {
		return
	}
	for i, name := range samplerNames(mesh.textures, prefix) {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		shader.setInt(name, int32(i))
		gl.BindTexture(gl.TEXTURE_2D, mesh.textures[i].ID)
	}

	gl.BindVertexArray(mesh.VAO)
	gl.DrawElements(gl.TRIANGLES, int32(len(mesh.indices)), gl.UNSIGNED_INT, unsafe.Pointer(nil))
	gl.BindVertexArray(0)

	// Set everything back to defaults
	gl.ActiveTexture(gl.TEXTURE0)
}

func (mesh *Mesh) setupMesh() {
	if len(mesh.vertices) == 0 || len(mesh.indices) == 0 {
		return
	}
	gl.GenVertexArrays(1, &mesh.VAO)
	gl.GenBuffers(1, &mesh.VBO)
	gl.GenBuffers(1, &mesh.EBO)

	gl.BindVertexArray(mesh.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.vertices)*int(unsafe.Sizeof(Vertex{})), unsafe.Pointer(&mesh.vertices[0]), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.indices)*int(unsafe.Sizeof(uint32(0))), unsafe.Pointer(&mesh.indices[0]), gl.STATIC_DRAW)

	stride := int32(unsafe.Sizeof(Vertex{}))
	// Vertex Positions
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	// Vertex Normals
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, unsafe.Offsetof(Vertex{}.Normal))
	// Vertex Texture Coords
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, unsafe.Offsetof(Vertex{}.TexCoords))

	gl.BindVertexArray(0)
}

func (mesh *Mesh) delete() {
	if mesh.VAO == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &mesh.VAO)
	gl.DeleteBuffers(1, &mesh.VBO)
	gl.DeleteBuffers(1, &mesh.EBO)
	mesh.VAO = 0
}
