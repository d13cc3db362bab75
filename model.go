package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/udhos/gwob"
)

type Model struct {
	texturesLoaded map[string]Texture // to avoid loading the same texture more than once
	meshes         []*Mesh
	directory      string
	// texturePrefix is prepended to sampler names, e.g. "material."
	texturePrefix string
}

// LoadModel loads an OBJ file and the MTL library it references.
func LoadModel(objPath string, texturePrefix string) (*Model, error) {
	m := &Model{
		texturesLoaded: make(map[string]Texture),
		directory:      filepath.Dir(objPath),
		texturePrefix:  texturePrefix,
	}

	obj, err := gwob.NewObjFromFile(objPath, &gwob.ObjParserOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to load OBJ model %s: %w", objPath, err)
	}

	mtlPath := strings.TrimSuffix(objPath, filepath.Ext(objPath)) + ".mtl"
	if obj.Mtllib != "" {
		mtlPath = filepath.Join(m.directory, obj.Mtllib)
	}
	mtlLib, err := gwob.ReadMaterialLibFromFile(mtlPath, &gwob.ObjParserOptions{})
	if err != nil {
		log.Printf("model %s: no material library: %v", objPath, err)
		mtlLib = gwob.MaterialLib{Lib: map[string]*gwob.Material{}}
	}

	for _, group := range obj.Groups {
		m.meshes = append(m.meshes, m.processMesh(group, obj, mtlLib))
	}

	return m, nil
}

// processMesh converts a group in the OBJ file into a Mesh.
func (m *Model) processMesh(group *gwob.Group, obj *gwob.Obj, mtlLib gwob.MaterialLib) *Mesh {
	vertices := make([]Vertex, 0, group.IndexCount)
	indices := make([]uint32, 0, group.IndexCount)

	for i := group.IndexBegin; i < group.IndexBegin+group.IndexCount; i++ {
		vertices = append(vertices, objVertex(obj, obj.Indices[i]))
		indices = append(indices, uint32(len(vertices)-1))
	}

	var textures []Texture
	if material, exists := mtlLib.Lib[group.Usemtl]; exists && group.Usemtl != "" {
		textures = m.loadMaterialTextures(material)
	}

	return NewMesh(vertices, indices, textures)
}

// objVertex reads one vertex out of gwob's interleaved coordinate array.
// Texture V is flipped because texture rows are uploaded top row first.
func objVertex(obj *gwob.Obj, index int) Vertex {
	stride := obj.StrideSize / 4
	posOffset := index*stride + obj.StrideOffsetPosition/4
	texOffset := index*stride + obj.StrideOffsetTexture/4
	normOffset := index*stride + obj.StrideOffsetNormal/4

	var v Vertex
	if posOffset+2 < len(obj.Coord) {
		v.Position = mgl32.Vec3{obj.Coord[posOffset], obj.Coord[posOffset+1], obj.Coord[posOffset+2]}
	}
	if obj.TextCoordFound && texOffset+1 < len(obj.Coord) {
		v.TexCoords = mgl32.Vec2{obj.Coord[texOffset], 1.0 - obj.Coord[texOffset+1]}
	}
	if obj.NormCoordFound && normOffset+2 < len(obj.Coord) {
		v.Normal = mgl32.Vec3{obj.Coord[normOffset], obj.Coord[normOffset+1], obj.Coord[normOffset+2]}
	}
	return v
}

// materialTextures lists the texture maps of a material in sampler order.
func materialTextures(material *gwob.Material) [][2]string {
	var maps [][2]string
	for _, entry := range [][2]string{
		{material.MapKd, textureDiffuse},
		{material.MapKs, textureSpecular},
		{material.Bump, textureNormal},
		{material.MapD, textureHeight},
	} {
		if entry[0] != "" {
			maps = append(maps, entry)
		}
	}
	return maps
}

func (m *Model) loadMaterialTextures(material *gwob.Material) []Texture {
	var textures []Texture
	for _, entry := range materialTextures(material) {
		texPath, texType := entry[0], entry[1]
		key := texType + ":" + texPath
		if texture, loaded := m.texturesLoaded[key]; loaded {
			textures = append(textures, texture)
			continue
		}
		id, err := loadTexture(filepath.Join(m.directory, texPath))
		if err != nil {
			log.Print(err)
			continue
		}
		texture := Texture{ID: id, Type: texType, Path: texPath}
		textures = append(textures, texture)
		m.texturesLoaded[key] = texture
	}
	return textures
}

// Draw renders the model using the provided shader.
func (m *Model) Draw(shader uniforms) {
	for _, mesh := range m.meshes {
		mesh.Draw(shader, m.texturePrefix)
	}
}

func (m *Model) delete() {
	for _, mesh := range m.meshes {
		mesh.delete()
	}
	for _, texture := range m.texturesLoaded {
		gl.DeleteTextures(1, &texture.ID)
	}
}
