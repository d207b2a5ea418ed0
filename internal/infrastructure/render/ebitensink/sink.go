// Package ebitensink draws Room batches onto an ebiten image.
package ebitensink

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// Sink implements room.Sink on top of ebiten.Image.DrawTriangles.
// Vertices are projected to pixels on the CPU with the current projection.
type Sink struct {
	textures *Textures
	target   *ebiten.Image
	w, h     float32

	proj    mgl32.Mat4
	color   [4]float32
	texture int
	verts   []float32
	texs    []float32

	buf []ebiten.Vertex
	op  ebiten.DrawTrianglesOptions
}

// New creates a sink drawing textures uploaded to t.
func New(t *Textures) *Sink {
	return &Sink{
		textures: t,
		proj:     mgl32.Ident4(),
		color:    [4]float32{1, 1, 1, 1},
		texture:  -1,
		op: ebiten.DrawTrianglesOptions{
			// vertex colours are already premultiplied
			ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		},
	}
}

// Begin sets the image the following draws render to.
func (s *Sink) Begin(target *ebiten.Image) {
	s.target = target
	b := target.Bounds()
	s.w, s.h = float32(b.Dx()), float32(b.Dy())
}

func (s *Sink) SetProjection(proj mgl32.Mat4) { s.proj = proj }

// ResetModelView is a no-op; vertices are already in world space.
func (s *Sink) ResetModelView() {}

func (s *Sink) SetColor(r, g, b, a float32) {
	s.color = [4]float32{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

func (s *Sink) BindTexture(id int)          { s.texture = id }
func (s *Sink) VertexPointer(v []float32)   { s.verts = v }
func (s *Sink) TexCoordPointer(t []float32) { s.texs = t }

// DrawElements draws the indexed triangles with the bound texture. Draws
// without a target or a resident texture are skipped.
func (s *Sink) DrawElements(indices []uint16) {
	if s.target == nil || len(indices) == 0 {
		return
	}
	img := s.textures.Image(s.texture)
	if img == nil {
		return
	}
	s.buf = s.Vertices(s.buf[:0], img)
	s.target.DrawTriangles(s.buf, indices, img, &s.op)
}

// Vertices appends the projected vertex stream to dst. Texture coordinates
// are scaled to the texel size of img.
func (s *Sink) Vertices(dst []ebiten.Vertex, img *ebiten.Image) []ebiten.Vertex {
	b := img.Bounds()
	tw, th := float32(b.Dx()), float32(b.Dy())
	// premultiplied color scale
	a := s.color[3]
	cr, cg, cb := s.color[0]*a, s.color[1]*a, s.color[2]*a

	for i := 0; i+1 < len(s.verts); i += 2 {
		px, py := s.Project(s.verts[i], s.verts[i+1])
		var u, v float32
		if i+1 < len(s.texs) {
			u, v = s.texs[i], s.texs[i+1]
		}
		dst = append(dst, ebiten.Vertex{
			DstX:   px,
			DstY:   py,
			SrcX:   float32(b.Min.X) + u*tw,
			SrcY:   float32(b.Min.Y) + v*th,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: a,
		})
	}
	return dst
}

// Project maps a world point to target pixels, origin top-left.
func (s *Sink) Project(x, y float32) (px, py float32) {
	clip := s.proj.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	px = (clip.X() + 1) / 2 * s.w
	py = (1 - clip.Y()) / 2 * s.h
	return px, py
}

func clamp01(v float32) float32 {
	return mgl32.Clamp(v, 0, 1)
}
