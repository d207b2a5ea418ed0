package termsink

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

var glyphs = []rune{'█', '▓', '▒', '░', '#', '@', '%', '*', '+', 'o'}

// Texture is what a terminal can show of an image.
type Texture struct {
	Color tcell.Color
	Glyph rune
}

// Textures implements graphics.Uploader by reducing each image to its
// average colour.
type Textures struct {
	textures map[int]Texture
}

func NewTextures() *Textures {
	return &Textures{textures: make(map[int]Texture)}
}

func (t *Textures) Upload(id int, img image.Image) error {
	t.textures[id] = Texture{
		Color: AverageColor(img),
		Glyph: glyphs[id%len(glyphs)],
	}
	return nil
}

func (t *Textures) Release(id int) { delete(t.textures, id) }

func (t *Textures) Texture(id int) (Texture, bool) {
	tex, ok := t.textures[id]
	return tex, ok
}

// AverageColor is the mean colour of the opaque-weighted pixels of img.
func AverageColor(img image.Image) tcell.Color {
	b := img.Bounds()
	var r, g, bl, w uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			pr, pg, pb, pa := img.At(x, y).RGBA()
			// premultiplied, so alpha already weights the channels
			r += uint64(pr)
			g += uint64(pg)
			bl += uint64(pb)
			w += uint64(pa)
		}
	}
	if w == 0 {
		return tcell.NewRGBColor(0, 0, 0)
	}
	conv := func(v uint64) int32 { return int32(v * 255 / w) }
	return tcell.NewRGBColor(conv(r), conv(g), conv(bl))
}
