// Package room implements the Room: a 2D scene container that owns drawable
// objects, batches them by layer and texture into packed vertex and index
// streams, drives a zoom-anchored orthographic camera, fans update and input
// edges out to its objects, and answers spatial queries about them.
//
// Update and Draw run on the render goroutine. The Signify methods may be
// called from any goroutine; their effects are delivered by the next Update.
package room

import (
	"errors"
	"fmt"

	"github.com/younwookim/room/internal/domain/object"
	"github.com/younwookim/room/internal/domain/spatial"
)

const (
	DefaultCapacity       = 8000
	DefaultLayers         = 10
	DefaultMaxFingers     = 10
	DefaultMaxControllers = 4

	// MaxCapacity keeps every vertex index of a bucket within uint16.
	MaxCapacity = 1 << 14
)

var (
	ErrRoomFull      = errors.New("room: object capacity reached")
	ErrNilObject     = errors.New("room: nil object")
	ErrInvalidConfig = errors.New("room: invalid config")
)

// Config sizes a Room.
type Config struct {
	Capacity       int // maximum number of objects, bounds the arenas
	Layers         int
	MaxFingers     int
	MaxControllers int
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Capacity:       DefaultCapacity,
		Layers:         DefaultLayers,
		MaxFingers:     DefaultMaxFingers,
		MaxControllers: DefaultMaxControllers,
	}
}

// Validate checks the config bounds.
func (c Config) Validate() error {
	switch {
	case c.Capacity < 1 || c.Capacity > MaxCapacity:
		return fmt.Errorf("%w: capacity %d not in [1, %d]", ErrInvalidConfig, c.Capacity, MaxCapacity)
	case c.Layers < 1:
		return fmt.Errorf("%w: layers %d", ErrInvalidConfig, c.Layers)
	case c.MaxFingers < 0:
		return fmt.Errorf("%w: max fingers %d", ErrInvalidConfig, c.MaxFingers)
	case c.MaxControllers < 0:
		return fmt.Errorf("%w: max controllers %d", ErrInvalidConfig, c.MaxControllers)
	}
	return nil
}

// Room is a collection of GameObjects that it updates and renders.
type Room struct {
	view     View
	capacity int
	layers   int

	instances int
	objects   objectSet
	camera    Camera
	colors    [][4]float32
	latches   *latches
	arenas    *arenas
	step      func(dt float64)

	stats            FrameStats
	overflowReported bool
}

// New creates a Room for the given view.
func New(view View, cfg Config) (*Room, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Room{
		view:     view,
		capacity: cfg.Capacity,
		layers:   cfg.Layers,
		objects:  newObjectSet(cfg.Capacity),
		camera:   NewCamera(),
		colors:   make([][4]float32, cfg.Layers),
		latches:  newLatches(cfg.MaxFingers, cfg.MaxControllers),
		arenas:   newArenas(cfg.Capacity, cfg.Layers),
	}
	for l := range r.colors {
		r.colors[l] = [4]float32{1, 1, 1, 1}
	}
	r.recomputeCamera()
	return r, nil
}

// View returns the host capabilities the Room was created with.
func (r *Room) View() View { return r.view }

// Resize updates the viewport and the camera size. Zero camera dimensions
// follow the viewport.
func (r *Room) Resize(width, height int, cameraWidth, cameraHeight float64) {
	r.view.Width, r.view.Height = width, height
	r.view.CameraWidth, r.view.CameraHeight = cameraWidth, cameraHeight
}

func (r *Room) Width() int      { return r.view.Width }
func (r *Room) Height() int     { return r.view.Height }
func (r *Room) RatioX() float64 { return r.view.RatioX }
func (r *Room) RatioY() float64 { return r.view.RatioY }
func (r *Room) Layers() int     { return r.layers }
func (r *Room) Capacity() int   { return r.capacity }
func (r *Room) Camera() *Camera { return &r.camera }

// NextInstance returns an id never handed out before by this Room.
func (r *Room) NextInstance() int {
	id := r.instances
	r.instances++
	return id
}

// Add appends o. Objects beyond the configured capacity are refused, as are
// nil objects, including typed-nil pointers that implement object.Nilable.
func (r *Room) Add(o object.GameObject) error {
	return r.objects.add(o)
}

// Remove deletes the first occurrence of o and reports whether it was found.
func (r *Room) Remove(o object.GameObject) bool {
	return r.objects.remove(o)
}

// Clear removes every object.
func (r *Room) Clear() {
	r.objects.clear()
}

// Len is the number of objects in the Room.
func (r *Room) Len() int { return r.objects.len() }

// Objects returns the objects in insertion order. The slice is a copy.
func (r *Room) Objects() []object.GameObject {
	return r.objects.snapshot()
}

// SetLayerColor sets the color every draw on layer l is multiplied by.
// Values are stored as given; the sink clamps.
func (r *Room) SetLayerColor(l int, red, green, blue, alpha float32) {
	if l < 0 || l >= r.layers {
		return
	}
	r.colors[l] = [4]float32{red, green, blue, alpha}
}

// LayerColor returns the color of layer l, or opaque white when out of range.
func (r *Room) LayerColor(l int) (red, green, blue, alpha float32) {
	if l < 0 || l >= r.layers {
		return 1, 1, 1, 1
	}
	c := r.colors[l]
	return c[0], c[1], c[2], c[3]
}

// SetStep installs a function run every Update after input delivery and
// before the camera edges are recomputed.
func (r *Room) SetStep(fn func(dt float64)) {
	r.step = fn
}

// Update advances the Room by one frame. dt is the lag correction
// multiplier: 1 at the target rate, above 1 when frames run long.
func (r *Room) Update(dt float64) {
	r.latches.drain(r)

	if r.step != nil {
		r.step(dt)
	}

	r.recomputeCamera()

	for i := 0; i < r.objects.len(); i++ {
		r.objects.at(i).Update(dt)
	}
}

func (r *Room) recomputeCamera() {
	w, h := r.view.cameraSize()
	r.camera.Recompute(w, h)
}

// SignifyNewpress latches a touch press on pointer p.
func (r *Room) SignifyNewpress(p int) { r.latches.signifyNewpress(p) }

// SignifyReleased latches a touch release on pointer p.
func (r *Room) SignifyReleased(p int) { r.latches.signifyReleased(p) }

// SignifyButtonNewpress latches a button press on controller c. A later
// press before the next Update replaces it.
func (r *Room) SignifyButtonNewpress(c, button int) { r.latches.signifyButtonNewpress(c, button) }

// SignifyButtonReleased latches a button release on controller c.
func (r *Room) SignifyButtonReleased(c, button int) { r.latches.signifyButtonReleased(c, button) }

// Newpress delivers a touch press on pointer p to every object.
func (r *Room) Newpress(p int) {
	for i := 0; i < r.objects.len(); i++ {
		r.objects.at(i).Newpress(p)
	}
}

// Released delivers a touch release on pointer p to every object.
func (r *Room) Released(p int) {
	for i := 0; i < r.objects.len(); i++ {
		r.objects.at(i).Released(p)
	}
}

// ButtonNewpress delivers a controller button press to every object.
func (r *Room) ButtonNewpress(c, button int) {
	for i := 0; i < r.objects.len(); i++ {
		r.objects.at(i).ButtonNewpress(c, button)
	}
}

// ButtonReleased delivers a controller button release to every object.
func (r *Room) ButtonReleased(c, button int) {
	for i := 0; i < r.objects.len(); i++ {
		r.objects.at(i).ButtonReleased(c, button)
	}
}

// IndicateGraphicsUsed pings every object's graphic so the graphics manager
// keeps it resident. Hosts call it once per frame for the current Room.
func (r *Room) IndicateGraphicsUsed() {
	if r.view.Graphics == nil {
		return
	}
	n := r.view.Graphics.CleanupsTilRemoval()
	for i := 0; i < r.objects.len(); i++ {
		if g := r.objects.at(i).Graphic(); g != nil {
			g.IndicateUsed(n)
		}
	}
}

// ClearAllGraphics evicts every graphic used in the Room regardless of its
// remaining liveness budget.
func (r *Room) ClearAllGraphics() {
	for i := 0; i < r.objects.len(); i++ {
		if g := r.objects.at(i).Graphic(); g != nil {
			g.ForceCleanup()
		}
	}
}

// Angle is spatial.Angle.
func (r *Room) Angle(x1, y1, x2, y2 float64) float64 { return spatial.Angle(x1, y1, x2, y2) }

// AngleBetween is spatial.AngleBetween.
func (r *Room) AngleBetween(a, b object.Body) float64 { return spatial.AngleBetween(a, b) }

// Distance is spatial.Distance.
func (r *Room) Distance(x1, y1, x2, y2 float64) float64 { return spatial.Distance(x1, y1, x2, y2) }

// DistanceBetween is spatial.DistanceBetween.
func (r *Room) DistanceBetween(a, b object.Body) float64 { return spatial.DistanceBetween(a, b) }

// DistanceBetweenSquared is spatial.DistanceBetweenSquared.
func (r *Room) DistanceBetweenSquared(a, b object.Body) float64 {
	return spatial.DistanceBetweenSquared(a, b)
}

// CheckCollision is spatial.CheckCollision.
func (r *Room) CheckCollision(a, b object.Body) bool { return spatial.CheckCollision(a, b) }

// ObjectAt reports whether (x, y) is inside one of ob's collision boxes.
func (r *Room) ObjectAt(ob object.Body, x, y float64) bool { return spatial.ObjectAt(ob, x, y) }

// ObjectAtPosition returns the first object, in insertion order, with a
// collision box containing (x, y), or nil.
func (r *Room) ObjectAtPosition(x, y float64) object.GameObject {
	for i := 0; i < r.objects.len(); i++ {
		if o := r.objects.at(i); spatial.ObjectAt(o, x, y) {
			return o
		}
	}
	return nil
}
