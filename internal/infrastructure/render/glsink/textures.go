package glsink

import (
	"image"
	"image/draw"

	"github.com/go-gl/gl/v2.1/gl"
)

// Textures maps graphic ids to GL texture names. It implements
// graphics.Uploader.
type Textures struct {
	names map[int]uint32
}

func NewTextures() *Textures {
	return &Textures{names: make(map[int]uint32)}
}

// Upload creates a GL texture from img.
func (t *Textures) Upload(id int, img image.Image) error {
	rgba := ToRGBA(img)

	var name uint32
	if old, ok := t.names[id]; ok {
		name = old
	} else {
		gl.GenTextures(1, &name)
	}
	gl.BindTexture(gl.TEXTURE_2D, name)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	size := rgba.Rect.Size()
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(size.X),
		int32(size.Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	t.names[id] = name
	return nil
}

// Release deletes the texture of id.
func (t *Textures) Release(id int) {
	name, ok := t.names[id]
	if !ok {
		return
	}
	gl.DeleteTextures(1, &name)
	delete(t.names, id)
}

// Name returns the GL texture name of id, or 0 (no texture).
func (t *Textures) Name(id int) uint32 {
	return t.names[id]
}

// ToRGBA converts img to a tightly packed RGBA image with its origin at 0,0.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
