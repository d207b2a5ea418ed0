// Package object defines the contract between a Room and the things it holds.
//
// A GameObject is read by the Room every frame: the batcher pulls geometry
// through Drawable, the spatial queries read Body, and the lifecycle driver
// pushes time and input edges through Updater and InputHandler. The Room
// never mutates an object.
package object

// Graphic is a texture handle whose lifetime is managed outside the Room.
// The Room only pings it (IndicateUsed), evicts it (ForceCleanup) and asks
// whether it still needs uploading (ShouldLoad).
type Graphic interface {
	ID() int
	IndicateUsed(cleanups int)
	ForceCleanup()
	ShouldLoad() bool
}

// Drawable produces batched quad geometry.
//
// Vertices and GraphicVerts return 8 floats per quad (four 2D corners, four
// texcoords) in the order (left,bottom) (left,top) (right,bottom) (right,top).
// IndexCount is 6 per quad; 0 means the object contributes nothing.
type Drawable interface {
	GraphicID() int
	Layer() int
	OnScreen() bool
	Graphic() Graphic
	Vertices() []float32
	GraphicVerts() []float32
	IndexCount() int
}

// Body is the spatial view of an object. Size is signed: a negative width or
// height mirrors the sprite, collision uses the absolute values.
type Body interface {
	Position() (x, y float64)
	Size() (w, h float64)
	Boxes() []Box
}

// Updater receives the per-frame step. dt is a lag correction multiplier:
// 1 at the target frame rate, >1 when running slow.
type Updater interface {
	Update(dt float64)
}

// InputHandler receives input edges fanned out by the Room.
type InputHandler interface {
	Newpress(pointer int)
	Released(pointer int)
	ButtonNewpress(controller, button int)
	ButtonReleased(controller, button int)
}

// GameObject is everything a Room needs from an object.
type GameObject interface {
	Drawable
	Body
	Updater
	InputHandler
}

// Nilable is implemented by pointer objects that can report a nil receiver
// hidden behind a non-nil interface value.
type Nilable interface {
	IsNil() bool
}

// Box is a collision rectangle in normalized object-local space.
// X grows to the right from the object's left edge, Y grows downward from
// the object's top edge.
type Box struct {
	X0, X1 float64
	Y0, Y1 float64
}

// FullBox covers the whole object.
var FullBox = Box{X0: 0, X1: 1, Y0: 0, Y1: 1}

// Valid reports whether the box is normalized and ordered. Invalid boxes are
// treated as empty by every query.
func (b Box) Valid() bool {
	return 0 <= b.X0 && b.X0 <= b.X1 && b.X1 <= 1 &&
		0 <= b.Y0 && b.Y0 <= b.Y1 && b.Y1 <= 1
}
