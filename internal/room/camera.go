package room

import "github.com/go-gl/mathgl/mgl32"

// Camera is a 2D orthographic camera with a zoom anchor.
//
// Zoom 1 shows exactly the camera size; below 1 zooms in, above 1 zooms out.
// The anchor is a screen-space point that keeps its world position while the
// zoom changes. Edges are derived by Recompute and stay fixed until the next
// call.
type Camera struct {
	X, Y             float64
	Zoom             float64
	AnchorX, AnchorY float64

	left, right float64
	top, bottom float64
}

// NewCamera returns a camera at the origin with identity zoom.
func NewCamera() Camera {
	return Camera{Zoom: 1}
}

// SetAnchor sets the zoom fixpoint in screen pixels.
func (c *Camera) SetAnchor(x, y float64) {
	c.AnchorX, c.AnchorY = x, y
}

// Recompute derives the edges for a camera of size w×h.
func (c *Camera) Recompute(w, h float64) {
	c.left = c.X + c.AnchorX - w*c.Zoom*(c.AnchorX/w)
	c.right = c.X + c.AnchorX + w*c.Zoom*((w-c.AnchorX)/w)
	c.top = c.Y + c.AnchorY + h*c.Zoom*((h-c.AnchorY)/h)
	c.bottom = c.Y + c.AnchorY - h*c.Zoom*(c.AnchorY/h)
}

// Edges returns the world-space edges computed by the last Recompute.
func (c *Camera) Edges() (left, right, top, bottom float64) {
	return c.left, c.right, c.top, c.bottom
}

func (c *Camera) Left() float64   { return c.left }
func (c *Camera) Right() float64  { return c.right }
func (c *Camera) Top() float64    { return c.top }
func (c *Camera) Bottom() float64 { return c.bottom }

// Projection is the orthographic matrix for the current edges, near -1 and
// far 1.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Ortho(float32(c.left), float32(c.right), float32(c.bottom), float32(c.top), -1, 1)
}

// Contains reports whether a world point is within the current edges.
func (c *Camera) Contains(x, y float64) bool {
	return x >= c.left && x <= c.right && y >= c.bottom && y <= c.top
}

// ScreenToWorld maps a screen pixel of a w×h viewport (origin top-left, Y
// down) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64, w, h int) (x, y float64) {
	if w <= 0 || h <= 0 {
		return c.left, c.top
	}
	x = c.left + (c.right-c.left)*sx/float64(w)
	y = c.top - (c.top-c.bottom)*sy/float64(h)
	return x, y
}
