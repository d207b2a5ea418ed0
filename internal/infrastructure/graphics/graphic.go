package graphics

import "image"

// Graphic is a texture known to a Manager. Objects ping it every frame they
// are in the active Room; once the pings stop for CleanupsTilRemoval cleanups
// the Manager releases it.
type Graphic struct {
	id  int
	src image.Image

	remaining int
	pinged    bool
	loaded    bool
}

// ID is the texture id sinks bind.
func (g *Graphic) ID() int { return g.id }

// Source is the image uploaded when the graphic loads.
func (g *Graphic) Source() image.Image { return g.src }

// Loaded reports whether the graphic is resident.
func (g *Graphic) Loaded() bool { return g.loaded }

// Remaining is the number of cleanups the graphic survives without a ping.
func (g *Graphic) Remaining() int { return g.remaining }

// IndicateUsed resets the liveness budget to n and requests a load if the
// graphic is not resident.
func (g *Graphic) IndicateUsed(n int) {
	g.remaining = n
	g.pinged = true
}

// ForceCleanup drops the budget so the next cleanup releases the graphic.
func (g *Graphic) ForceCleanup() {
	g.remaining = 0
	g.pinged = false
}

// ShouldLoad is true for a pinged graphic that is not resident.
func (g *Graphic) ShouldLoad() bool {
	return g.pinged && !g.loaded
}
