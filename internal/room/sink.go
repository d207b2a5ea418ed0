package room

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/room/internal/domain/object"
)

// Sink is the fixed-function 2D graphics API a Room draws into.
//
// Streams are 2 float32 components per vertex. The slices passed to
// VertexPointer, TexCoordPointer and DrawElements alias the Room's arenas and
// are only valid until the next call into the Room.
type Sink interface {
	SetProjection(proj mgl32.Mat4)
	ResetModelView()
	SetColor(r, g, b, a float32)
	BindTexture(id int)
	VertexPointer(v []float32)
	TexCoordPointer(t []float32)
	DrawElements(indices []uint16)
}

// GraphicsHelper is the texture manager the Room reports to.
type GraphicsHelper interface {
	// MaxGraphicID is the highest registered graphic id, or -1 if none.
	MaxGraphicID() int
	// AddGraphic schedules a graphic for upload.
	AddGraphic(g object.Graphic)
	// CleanupsTilRemoval is the liveness budget handed to IndicateUsed.
	CleanupsTilRemoval() int
}

// View is what the Room needs from its host. It replaces a pointer back to
// the host surface.
type View struct {
	Width, Height int
	// RatioX and RatioY are screen correction ratios relative to the
	// resolution the game was designed for.
	RatioX, RatioY float64
	// CameraWidth and CameraHeight are the world size covered at zoom 1.
	// Zero means Width and Height.
	CameraWidth, CameraHeight float64
	Graphics                  GraphicsHelper
}

func (v View) cameraSize() (w, h float64) {
	w, h = v.CameraWidth, v.CameraHeight
	if w == 0 {
		w = float64(v.Width)
	}
	if h == 0 {
		h = float64(v.Height)
	}
	return w, h
}
