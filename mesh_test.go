package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/udhos/gwob"
)

func TestSamplerNames(t *testing.T) {
	textures := []Texture{
		{Type: textureDiffuse},
		{Type: textureSpecular},
		{Type: textureDiffuse},
		{Type: textureNormal},
	}
	assert.Equal(t, []string{
		"material.texture_diffuse1",
		"material.texture_specular1",
		"material.texture_diffuse2",
		"material.texture_normal1",
	}, samplerNames(textures, "material."))
}

func TestMaterialTexturesOrder(t *testing.T) {
	maps := materialTextures(&gwob.Material{MapKd: "d.png", MapKs: "s.png", MapD: "a.png"})
	assert.Equal(t, [][2]string{
		{"d.png", textureDiffuse},
		{"s.png", textureSpecular},
		{"a.png", textureHeight},
	}, maps)

	assert.Empty(t, materialTextures(&gwob.Material{}))
}

func TestObjVertexFlipsV(t *testing.T) {
	obj := &gwob.Obj{
		// position, texture, normal
		Coord:                []float32{1, 2, 3, 0.25, 0.75, 0, 0, 1},
		StrideSize:           8 * 4,
		StrideOffsetPosition: 0,
		StrideOffsetTexture:  3 * 4,
		StrideOffsetNormal:   5 * 4,
		TextCoordFound:       true,
		NormCoordFound:       true,
	}
	v := objVertex(obj, 0)
	assert.Equal(t, float32(3), v.Position.Z())
	assert.Equal(t, float32(0.25), v.TexCoords.X())
	assert.Equal(t, float32(0.25), v.TexCoords.Y())
	assert.Equal(t, float32(1), v.Normal.Z())
}
