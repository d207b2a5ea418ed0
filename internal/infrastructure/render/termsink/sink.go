// Package termsink renders Room batches as character cells on a tcell
// screen. Each quad fills the cells covered by its projected bounds.
package termsink

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// Sink implements room.Sink for a tcell.Screen.
type Sink struct {
	screen   tcell.Screen
	textures *Textures

	proj    mgl32.Mat4
	color   [4]float32
	texture int
	verts   []float32
}

func New(screen tcell.Screen, t *Textures) *Sink {
	return &Sink{
		screen:   screen,
		textures: t,
		proj:     mgl32.Ident4(),
		color:    [4]float32{1, 1, 1, 1},
		texture:  -1,
	}
}

func (s *Sink) SetProjection(proj mgl32.Mat4) { s.proj = proj }
func (s *Sink) ResetModelView()               {}
func (s *Sink) SetColor(r, g, b, a float32)   { s.color = [4]float32{r, g, b, a} }
func (s *Sink) BindTexture(id int)            { s.texture = id }
func (s *Sink) VertexPointer(v []float32)     { s.verts = v }

// TexCoordPointer is ignored; a texture is shown as one glyph and colour.
func (s *Sink) TexCoordPointer([]float32) {}

// DrawElements fills the cell bounds of every quad in the index stream.
// Fully transparent layers and textures that are not resident draw nothing.
func (s *Sink) DrawElements(indices []uint16) {
	if s.color[3] <= 0 {
		return
	}
	tex, ok := s.textures.Texture(s.texture)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(Tint(tex.Color, s.color))
	cols, rows := s.screen.Size()

	for i := 0; i+5 < len(indices); i += 6 {
		minX, minY := math.MaxFloat32, math.MaxFloat32
		maxX, maxY := -math.MaxFloat32, -math.MaxFloat32
		for _, idx := range indices[i : i+6] {
			j := int(idx) * 2
			if j+1 >= len(s.verts) {
				continue
			}
			cx, cy := s.Cell(s.verts[j], s.verts[j+1], cols, rows)
			minX, maxX = min(minX, cx), max(maxX, cx)
			minY, maxY = min(minY, cy), max(maxY, cy)
		}
		if minX > maxX || maxX < 0 || minX > float64(cols) || maxY < 0 || minY > float64(rows) {
			continue
		}
		x0, x1 := cellSpan(minX, maxX, cols)
		y0, y1 := cellSpan(minY, maxY, rows)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				s.screen.SetContent(x, y, tex.Glyph, nil, style)
			}
		}
	}
}

// Cell projects a world point to fractional cell coordinates, origin top-left.
func (s *Sink) Cell(x, y float32, cols, rows int) (cx, cy float64) {
	clip := s.proj.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	cx = float64(clip.X()+1) / 2 * float64(cols)
	cy = float64(1-clip.Y()) / 2 * float64(rows)
	return cx, cy
}

// cellSpan returns the cells whose centers lie in [lo, hi], at least one,
// clamped to [0, n).
func cellSpan(lo, hi float64, n int) (first, last int) {
	first = int(math.Round(lo))
	last = int(math.Round(hi)) - 1
	if last < first {
		last = first
	}
	return max(0, min(first, n-1)), max(0, min(last, n-1))
}

// Tint multiplies a texture colour by a layer colour. Alpha darkens the
// result since a terminal cell cannot blend.
func Tint(c tcell.Color, layer [4]float32) tcell.Color {
	r, g, b := c.RGB()
	a := mgl32.Clamp(layer[3], 0, 1)
	scale := func(v int32, f float32) int32 {
		return int32(float32(v) * mgl32.Clamp(f, 0, 1) * a)
	}
	return tcell.NewRGBColor(scale(r, layer[0]), scale(g, layer[1]), scale(b, layer[2]))
}
