package demo

import (
	"image"
	"image/color"
	"image/draw"
)

// Texture paints a horizontal strip of frames, each size×size: a filled
// square with a darker border whose shade grows with the frame index.
func Texture(c color.RGBA, frames, size int) *image.RGBA {
	if frames < 1 {
		frames = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size*frames, size))
	border := shade(c, 0.5)
	for f := range frames {
		cell := image.Rect(f*size, 0, (f+1)*size, size)
		draw.Draw(img, cell, image.NewUniform(border), image.Point{}, draw.Src)
		fill := shade(c, 0.7+0.3*float64(f+1)/float64(frames))
		draw.Draw(img, cell.Inset(max(1, size/8)), image.NewUniform(fill), image.Point{}, draw.Src)
	}
	return img
}

func shade(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
