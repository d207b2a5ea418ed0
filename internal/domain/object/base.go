package object

import "math"

// Viewport exposes the world-space camera edges an object is culled against.
type Viewport interface {
	Edges() (left, right, top, bottom float64)
}

// Base is an embeddable GameObject drawn as a strip of Quads equal quads.
//
// Position is the strip's center in world units with Y growing upward. W and
// H are the size of one quad and are signed; negative values mirror the
// texture. Angle rotates the strip around its center, in radians.
type Base struct {
	ID       int
	X, Y     float64
	W, H     float64
	Angle    float64
	Visible  bool
	Frame    int // frame within a horizontal strip of Frames frames
	Frames   int
	Quads    int // tiles laid side by side along the local X axis
	Collider []Box

	layer   int
	graphic Graphic
	view    Viewport

	verts []float32
	tex   []float32
}

// NewBase creates a visible object on the given layer. view may be nil, in
// which case the object always reports itself on screen.
func NewBase(id int, layer int, view Viewport) Base {
	return Base{
		ID:       id,
		Visible:  true,
		Frames:   1,
		Quads:    1,
		Collider: []Box{FullBox},
		layer:    layer,
		view:     view,
		verts:    make([]float32, 0, 8),
		tex:      make([]float32, 0, 8),
	}
}

// IsNil reports whether b is a nil pointer.
func (b *Base) IsNil() bool { return b == nil }

// SetLayer moves the object to another render layer.
func (b *Base) SetLayer(layer int) { b.layer = layer }

// SetGraphic assigns the texture the object is batched under.
func (b *Base) SetGraphic(g Graphic) { b.graphic = g }

// SetViewport changes the camera used by OnScreen.
func (b *Base) SetViewport(v Viewport) { b.view = v }

func (b *Base) Layer() int       { return b.layer }
func (b *Base) Graphic() Graphic { return b.graphic }

// GraphicID returns -1 when no graphic is set, so the object is never batched.
func (b *Base) GraphicID() int {
	if b.graphic == nil {
		return -1
	}
	return b.graphic.ID()
}

func (b *Base) Position() (x, y float64) { return b.X, b.Y }
func (b *Base) Size() (w, h float64)     { return b.W, b.H }
func (b *Base) Boxes() []Box             { return b.Collider }

// OnScreen tests the object's bounding circle against the camera edges.
func (b *Base) OnScreen() bool {
	if !b.Visible {
		return false
	}
	if b.view == nil {
		return true
	}
	left, right, top, bottom := b.view.Edges()
	r := math.Hypot(b.W*float64(b.quads()), b.H) / 2
	return b.X+r >= left && b.X-r <= right && b.Y+r >= bottom && b.Y-r <= top
}

func (b *Base) quads() int {
	if b.Quads < 1 {
		return 1
	}
	return b.Quads
}

func (b *Base) IndexCount() int {
	if !b.Visible {
		return 0
	}
	return 6 * b.quads()
}

// Vertices returns four corners per quad. The returned slice is reused by
// the next call.
func (b *Base) Vertices() []float32 {
	n := b.quads()
	hw, hh := b.W/2, b.H/2
	sin, cos := math.Sincos(b.Angle)
	b.verts = b.verts[:0]
	for q := range n {
		off := (float64(q) - float64(n-1)/2) * b.W
		for _, c := range [4][2]float64{{off - hw, -hh}, {off - hw, hh}, {off + hw, -hh}, {off + hw, hh}} {
			x := b.X + c[0]*cos - c[1]*sin
			y := b.Y + c[0]*sin + c[1]*cos
			b.verts = append(b.verts, float32(x), float32(y))
		}
	}
	return b.verts
}

// GraphicVerts returns texcoords of the current frame. V is 0 at the top of
// the texture.
func (b *Base) GraphicVerts() []float32 {
	frames := b.Frames
	if frames < 1 {
		frames = 1
	}
	u0 := float32(b.Frame%frames) / float32(frames)
	u1 := float32(b.Frame%frames+1) / float32(frames)
	b.tex = b.tex[:0]
	for range b.quads() {
		b.tex = append(b.tex,
			u0, 1,
			u0, 0,
			u1, 1,
			u1, 0,
		)
	}
	return b.tex
}

func (b *Base) Update(float64)          {}
func (b *Base) Newpress(int)            {}
func (b *Base) Released(int)            {}
func (b *Base) ButtonNewpress(int, int) {}
func (b *Base) ButtonReleased(int, int) {}
