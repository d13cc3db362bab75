package main

import (
	"path/filepath"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var grassVertices = []float32{
	// positions   // texture coords
	0.0, 0.5, 0.0, 0.0, 0.0,
	0.0, -0.5, 0.0, 0.0, 1.0,
	1.0, -0.5, 0.0, 1.0, 1.0,

	0.0, 0.5, 0.0, 0.0, 0.0,
	1.0, -0.5, 0.0, 1.0, 1.0,
	1.0, 0.5, 0.0, 1.0, 0.0,
}

// grassPatch draws alpha-tested grass quads with a diffuse and a specular map.
type grassPatch struct {
	VAO, VBO   uint32
	diffuse    uint32
	specular   uint32
	transforms []mgl32.Mat4
}

func newGrassPatch(dir string) (*grassPatch, error) {
	// the quad's texture coordinates already put v=0 at the top of the image
	diffuse, err := loadTexture(filepath.Join(dir, "grass-min.png"))
	if err != nil {
		return nil, err
	}
	specular, err := loadTexture(filepath.Join(dir, "grass-min_specular.png"))
	if err != nil {
		gl.DeleteTextures(1, &diffuse)
		return nil, err
	}

	g := &grassPatch{diffuse: diffuse, specular: specular, transforms: grassTransforms()}
	gl.GenVertexArrays(1, &g.VAO)
	gl.GenBuffers(1, &g.VBO)
	gl.BindVertexArray(g.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(grassVertices)*int(unsafe.Sizeof(grassVertices[0])), gl.Ptr(grassVertices), gl.STATIC_DRAW)
	stride := int32(5 * unsafe.Sizeof(float32(0)))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*unsafe.Sizeof(float32(0)))
	gl.BindVertexArray(0)
	return g, nil
}

func (g *grassPatch) Draw(shader *Shader) {
	shader.setInt("texture1", 0)
	shader.setInt("specular1", 1)
	gl.BindVertexArray(g.VAO)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, g.diffuse)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, g.specular)
	for _, model := range g.transforms {
		shader.setMat4("model", model)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}
	gl.BindVertexArray(0)
	gl.ActiveTexture(gl.TEXTURE0)
}

func (g *grassPatch) delete() {
	gl.DeleteVertexArrays(1, &g.VAO)
	gl.DeleteBuffers(1, &g.VBO)
	gl.DeleteTextures(1, &g.diffuse)
	gl.DeleteTextures(1, &g.specular)
}
