// Package glsink draws Room batches through the OpenGL 2.1 fixed-function
// pipeline. Every method must be called on the thread owning the GL context.
package glsink

import (
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Sink implements room.Sink with client-side vertex arrays.
type Sink struct {
	textures *Textures
}

// New creates a sink binding textures uploaded to t.
func New(t *Textures) *Sink {
	return &Sink{textures: t}
}

// Setup enables the state every frame relies on. Call it once after the
// context is current.
func (s *Sink) Setup() {
	gl.Enable(gl.TEXTURE_2D)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.EnableClientState(gl.VERTEX_ARRAY)
	gl.EnableClientState(gl.TEXTURE_COORD_ARRAY)
}

// Clear clears the color buffer.
func (s *Sink) Clear(r, g, b float32) {
	gl.ClearColor(r, g, b, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Viewport sets the GL viewport to the framebuffer size.
func (s *Sink) Viewport(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (s *Sink) SetProjection(proj mgl32.Mat4) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&proj[0])
}

func (s *Sink) ResetModelView() {
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
}

func (s *Sink) SetColor(r, g, b, a float32) {
	gl.Color4f(r, g, b, a)
}

func (s *Sink) BindTexture(id int) {
	gl.BindTexture(gl.TEXTURE_2D, s.textures.Name(id))
}

func (s *Sink) VertexPointer(v []float32) {
	if len(v) == 0 {
		return
	}
	gl.VertexPointer(2, gl.FLOAT, 0, gl.Ptr(v))
}

func (s *Sink) TexCoordPointer(t []float32) {
	if len(t) == 0 {
		return
	}
	gl.TexCoordPointer(2, gl.FLOAT, 0, gl.Ptr(t))
}

func (s *Sink) DrawElements(indices []uint16) {
	if len(indices) == 0 {
		return
	}
	gl.DrawElements(gl.TRIANGLES, int32(len(indices)), gl.UNSIGNED_SHORT, gl.Ptr(indices))
}
