// Package demo populates a Room with bouncing sprites described by the
// config's spawn groups and steers its camera from controller buttons.
package demo

import (
	"fmt"
	"image"
	"math"
	"math/rand"

	"github.com/younwookim/room/internal/domain/object"
	"github.com/younwookim/room/internal/infrastructure/config"
	"github.com/younwookim/room/internal/infrastructure/graphics"
	"github.com/younwookim/room/internal/room"
)

// Standard gamepad buttons the demo reacts to.
const (
	ButtonFlip    = 0
	ButtonZoomOut = 4
	ButtonZoomIn  = 5
	ButtonUp      = 12
	ButtonDown    = 13
	ButtonLeft    = 14
	ButtonRight   = 15
)

const (
	PanSpeed = 4.0  // world units per tick
	ZoomRate = 0.02 // fraction per tick
	MinZoom  = 0.25
	MaxZoom  = 4.0
	PopTicks = 45.0

	// TapTicks is how long a press released within the same frame pans or
	// zooms for.
	TapTicks = 8.0

	textureSize = 16
)

// Textures registers generated sprite images. *graphics.Manager implements it.
type Textures interface {
	Register(img image.Image) *graphics.Graphic
}

// Demo owns the sprites it added to a Room.
type Demo struct {
	room   *room.Room
	rng    *rand.Rand
	seed   int64
	bounds Bounds
	ctrl   *controller

	groups map[string][]*Sprite
	order  []string
	pops   []popRule
	popped int
}

type popRule struct {
	from, into string
}

// New adds every spawn group to r and installs the camera step. Sprites are
// placed with a math/rand source seeded by seed so replays line up.
func New(r *room.Room, textures Textures, spawns []config.SpawnConfig, seed int64) (*Demo, error) {
	left, right, top, bottom := r.Camera().Edges()
	d := &Demo{
		room:   r,
		rng:    rand.New(rand.NewSource(seed)),
		seed:   seed,
		bounds: Bounds{Left: left, Right: right, Bottom: bottom, Top: top},
		groups: make(map[string][]*Sprite),
	}

	r.Camera().SetAnchor((right-left)/2, (top-bottom)/2)

	for _, s := range spawns {
		if err := d.spawn(textures, s); err != nil {
			return nil, err
		}
	}
	for _, s := range spawns {
		if s.Pops == "" {
			continue
		}
		if _, ok := d.groups[s.Pops]; !ok {
			return nil, fmt.Errorf("spawn %q pops unknown group %q", s.Name, s.Pops)
		}
		d.pops = append(d.pops, popRule{from: s.Name, into: s.Pops})
	}

	d.ctrl = &controller{Base: object.NewBase(r.NextInstance(), 0, nil)}
	d.ctrl.Visible = false
	d.ctrl.Collider = nil
	if err := r.Add(d.ctrl); err != nil {
		return nil, fmt.Errorf("add controller: %w", err)
	}

	r.SetStep(d.Step)
	return d, nil
}

func (d *Demo) spawn(textures Textures, s config.SpawnConfig) error {
	c, err := config.Color(s.Color)
	if err != nil {
		return fmt.Errorf("spawn %q: %w", s.Name, err)
	}
	frames := max(s.Frames, 1)
	g := textures.Register(Texture(c, frames, textureSize))

	if _, ok := d.groups[s.Name]; !ok {
		d.order = append(d.order, s.Name)
		d.groups[s.Name] = nil
	}
	for i := range s.Count {
		sp := NewSprite(d.room.NextInstance(), s.Layer, d.room.Camera(), d.bounds)
		sp.Group = s.Name
		sp.W, sp.H = s.Width, s.Height
		sp.Frames = frames
		sp.Quads = max(s.Quads, 1)
		sp.SetGraphic(g)
		d.place(sp, s, i)

		if err := d.room.Add(sp); err != nil {
			return fmt.Errorf("spawn %q #%d: %w", s.Name, i, err)
		}
		d.groups[s.Name] = append(d.groups[s.Name], sp)
	}
	return nil
}

// place scatters moving sprites at random and lines static ones up along
// the bottom edge.
func (d *Demo) place(sp *Sprite, s config.SpawnConfig, i int) {
	hw, hh := sp.halfExtents()
	b := d.bounds
	if s.Speed == 0 {
		step := (b.Right - b.Left) / float64(s.Count)
		sp.X = b.Left + step*(float64(i)+0.5)
		sp.Y = b.Bottom + hh
		return
	}
	sp.X = b.Left + hw + d.rng.Float64()*math.Max(0, b.Right-b.Left-2*hw)
	sp.Y = b.Bottom + hh + d.rng.Float64()*math.Max(0, b.Top-b.Bottom-2*hh)
	heading := d.rng.Float64() * 2 * math.Pi
	sp.VX = s.Speed * math.Cos(heading)
	sp.VY = s.Speed * math.Sin(heading)
	sp.Frame = d.rng.Intn(sp.Frames)
}

// Step pans and zooms the camera from the held buttons, then pops sprites
// hit by their popper groups.
func (d *Demo) Step(dt float64) {
	cam := d.room.Camera()
	panX, panY, zoom := d.ctrl.motion(dt)
	cam.X += panX * PanSpeed
	cam.Y += panY * PanSpeed
	if zoom != 0 {
		cam.Zoom = math.Min(MaxZoom, math.Max(MinZoom, cam.Zoom*(1+zoom*ZoomRate)))
	}

	for _, p := range d.pops {
		for _, a := range d.groups[p.from] {
			if !a.Visible {
				continue
			}
			for _, b := range d.groups[p.into] {
				if b.Visible && a != b && d.room.CheckCollision(a, b) {
					b.Pop(PopTicks)
					d.popped++
				}
			}
		}
	}
}

// Seed returns the seed sprites were placed with.
func (d *Demo) Seed() int64 { return d.seed }

// Bounds returns the world rectangle sprites bounce inside.
func (d *Demo) Bounds() Bounds { return d.bounds }

// Group returns the sprites of the named spawn group.
func (d *Demo) Group(name string) []*Sprite { return d.groups[name] }

// Groups returns the spawn group names in config order.
func (d *Demo) Groups() []string { return d.order }

// Popped counts sprites popped so far.
func (d *Demo) Popped() int { return d.popped }

// controller is an invisible object tracking held camera buttons. Buttons
// pressed and released before the same Update count as taps.
type controller struct {
	object.Base
	panX, panY float64
	zoom       float64

	tapX, tapY, tapZoom float64
	fresh               [3]bool // pressed since the last motion, per axis
}

const (
	axisX = iota
	axisY
	axisZoom
)

func (c *controller) ButtonNewpress(_, button int) {
	switch button {
	case ButtonLeft:
		c.panX, c.fresh[axisX] = -1, true
	case ButtonRight:
		c.panX, c.fresh[axisX] = 1, true
	case ButtonUp:
		c.panY, c.fresh[axisY] = 1, true
	case ButtonDown:
		c.panY, c.fresh[axisY] = -1, true
	case ButtonZoomIn:
		c.zoom, c.fresh[axisZoom] = -1, true
	case ButtonZoomOut:
		c.zoom, c.fresh[axisZoom] = 1, true
	}
}

func (c *controller) ButtonReleased(_, button int) {
	switch button {
	case ButtonLeft, ButtonRight:
		if c.fresh[axisX] {
			c.tapX += c.panX * TapTicks
		}
		c.panX = 0
	case ButtonUp, ButtonDown:
		if c.fresh[axisY] {
			c.tapY += c.panY * TapTicks
		}
		c.panY = 0
	case ButtonZoomIn, ButtonZoomOut:
		if c.fresh[axisZoom] {
			c.tapZoom += c.zoom * TapTicks
		}
		c.zoom = 0
	}
}

// motion returns this tick's pan and zoom in ticks of travel and consumes
// pending taps.
func (c *controller) motion(dt float64) (panX, panY, zoom float64) {
	panX = c.panX*dt + c.tapX
	panY = c.panY*dt + c.tapY
	zoom = c.zoom*dt + c.tapZoom
	c.tapX, c.tapY, c.tapZoom = 0, 0, 0
	c.fresh = [3]bool{}
	return panX, panY, zoom
}
