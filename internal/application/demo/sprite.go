package demo

import (
	"math"

	"github.com/younwookim/room/internal/domain/object"
)

// Bounds is the world rectangle sprites bounce inside. Y grows upward.
type Bounds struct {
	Left, Right, Bottom, Top float64
}

// Sprite is a bouncing, optionally animated object.
type Sprite struct {
	object.Base
	Group  string
	VX, VY float64

	// TicksPerFrame is how many dt units each animation frame is held.
	TicksPerFrame float64

	bounds   Bounds
	animTime float64
	hidden   float64 // ticks left before a popped sprite reappears
}

// NewSprite creates a sprite on layer inside bounds. view may be nil.
func NewSprite(id, layer int, view object.Viewport, bounds Bounds) *Sprite {
	return &Sprite{
		Base:          object.NewBase(id, layer, view),
		TicksPerFrame: 8,
		bounds:        bounds,
	}
}

func (s *Sprite) halfExtents() (hw, hh float64) {
	q := s.Quads
	if q < 1 {
		q = 1
	}
	return math.Abs(s.W) * float64(q) / 2, math.Abs(s.H) / 2
}

// Update moves the sprite, reflects it off the bounds and advances its
// animation.
func (s *Sprite) Update(dt float64) {
	if s.hidden > 0 {
		s.hidden -= dt
		if s.hidden <= 0 {
			s.Visible = true
		}
	}

	s.X += s.VX * dt
	s.Y += s.VY * dt

	hw, hh := s.halfExtents()
	if s.X-hw < s.bounds.Left {
		s.X = s.bounds.Left + hw
		s.VX = math.Abs(s.VX)
	} else if s.X+hw > s.bounds.Right {
		s.X = s.bounds.Right - hw
		s.VX = -math.Abs(s.VX)
	}
	if s.Y-hh < s.bounds.Bottom {
		s.Y = s.bounds.Bottom + hh
		s.VY = math.Abs(s.VY)
	} else if s.Y+hh > s.bounds.Top {
		s.Y = s.bounds.Top - hh
		s.VY = -math.Abs(s.VY)
	}

	// Face the direction of travel
	if s.VX < 0 {
		s.W = -math.Abs(s.W)
	} else if s.VX > 0 {
		s.W = math.Abs(s.W)
	}

	if s.Frames > 1 && s.TicksPerFrame > 0 {
		s.animTime += dt
		for s.animTime >= s.TicksPerFrame {
			s.animTime -= s.TicksPerFrame
			s.Frame = (s.Frame + 1) % s.Frames
		}
	}
}

// Newpress reverses the sprite.
func (s *Sprite) Newpress(int) {
	s.VX, s.VY = -s.VX, -s.VY
}

// ButtonNewpress flips vertical travel on the bottom face button.
func (s *Sprite) ButtonNewpress(_, button int) {
	if button == ButtonFlip {
		s.VY = -s.VY
	}
}

// Pop hides the sprite for ticks.
func (s *Sprite) Pop(ticks float64) {
	if ticks <= 0 {
		return
	}
	s.Visible = false
	s.hidden = ticks
}

// Popped reports whether the sprite is hidden by Pop.
func (s *Sprite) Popped() bool { return s.hidden > 0 }
