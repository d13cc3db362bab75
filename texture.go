package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// pixels is an image unpacked into the tightly packed layout glTexImage2D expects.
type pixels struct {
	data          []byte
	width, height int
	// format is gl.RED, gl.RGB or gl.RGBA
	format uint32
}

func (p pixels) channels() int {
	switch p.format {
	case gl.RED:
		return 1
	case gl.RGBA:
		return 4
	}
	return 3
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// unpackImage converts img to one, three or four channels, top row first.
func unpackImage(img image.Image) pixels {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if gray, ok := img.(*image.Gray); ok {
		p := pixels{data: make([]byte, 0, width*height), width: width, height: height, format: gl.RED}
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := gray.Pix[gray.PixOffset(bounds.Min.X, y):gray.PixOffset(bounds.Max.X, y)]
			p.data = append(p.data, row...)
		}
		return p
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	format := uint32(gl.RGBA)
	if nrgba.Opaque() {
		format = gl.RGB
	}
	p := pixels{width: width, height: height, format: format}
	p.data = make([]byte, 0, width*height*p.channels())
	for y := 0; y < height; y++ {
		row := nrgba.Pix[nrgba.PixOffset(0, y):nrgba.PixOffset(width, y)]
		if format == gl.RGBA {
			p.data = append(p.data, row...)
			continue
		}
		for x := 0; x < len(row); x += 4 {
			p.data = append(p.data, row[x], row[x+1], row[x+2])
		}
	}
	return p
}

// loadTexture uploads an image file as a mipmapped 2D texture. Textures with
// alpha clamp to edge so blended borders don't pick up texels from the far side.
func loadTexture(path string) (uint32, error) {
	img, err := decodeImageFile(path)
	if err != nil {
		return 0, fmt.Errorf("texture failed to load at path %s: %w", path, err)
	}
	p := unpackImage(img)

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(p.format), int32(p.width), int32(p.height), 0, p.format, gl.UNSIGNED_BYTE, gl.Ptr(p.data))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	wrap := int32(gl.REPEAT)
	if p.format == gl.RGBA {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return textureID, nil
}

// loadCubemap loads faces in +X, -X, +Y, -Y, +Z, -Z order.
func loadCubemap(faces []string) (uint32, error) {
	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, textureID)

	for i, face := range faces {
		img, err := decodeImageFile(face)
		if err != nil {
			gl.DeleteTextures(1, &textureID)
			return 0, fmt.Errorf("failed to load cube map texture face %s: %w", face, err)
		}
		p := unpackImage(img)
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, int32(p.format), int32(p.width), int32(p.height), 0, p.format, gl.UNSIGNED_BYTE, gl.Ptr(p.data))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	return textureID, nil
}
