package object

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeViewport struct {
	left, right, top, bottom float64
}

func (v fakeViewport) Edges() (float64, float64, float64, float64) {
	return v.left, v.right, v.top, v.bottom
}

type fakeGraphic struct{ id int }

func (g *fakeGraphic) ID() int          { return g.id }
func (g *fakeGraphic) IndicateUsed(int) {}
func (g *fakeGraphic) ForceCleanup()    {}
func (g *fakeGraphic) ShouldLoad() bool { return false }

func TestBox_Valid(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		want bool
	}{
		{"full", FullBox, true},
		{"inner", Box{X0: 0.25, X1: 0.75, Y0: 0.1, Y1: 0.9}, true},
		{"degenerate", Box{X0: 0.5, X1: 0.5, Y0: 0.5, Y1: 0.5}, true},
		{"reversed x", Box{X0: 0.8, X1: 0.2, Y0: 0, Y1: 1}, false},
		{"reversed y", Box{X0: 0, X1: 1, Y0: 1, Y1: 0}, false},
		{"not normalized", Box{X0: 0, X1: 1.5, Y0: 0, Y1: 1}, false},
		{"negative", Box{X0: -0.1, X1: 1, Y0: 0, Y1: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.box.Valid())
		})
	}
}

func TestNewBase(t *testing.T) {
	b := NewBase(7, 3, nil)

	assert.Equal(t, 7, b.ID)
	assert.Equal(t, 3, b.Layer())
	assert.True(t, b.Visible)
	assert.Equal(t, []Box{FullBox}, b.Boxes())
	assert.Equal(t, -1, b.GraphicID(), "no graphic means never batched")
}

func TestBase_GraphicID(t *testing.T) {
	b := NewBase(0, 0, nil)
	b.SetGraphic(&fakeGraphic{id: 4})

	assert.Equal(t, 4, b.GraphicID())
}

func TestBase_IsNil(t *testing.T) {
	var nilBase *Base
	assert.True(t, nilBase.IsNil())
	b := NewBase(0, 0, nil)
	assert.False(t, b.IsNil())
}

func TestBase_Vertices(t *testing.T) {
	b := NewBase(0, 0, nil)
	b.X, b.Y = 10, 20
	b.W, b.H = 4, 6

	v := b.Vertices()
	require.Len(t, v, 8)
	assert.Equal(t, []float32{
		8, 17, // left bottom
		8, 23, // left top
		12, 17, // right bottom
		12, 23, // right top
	}, v)
}

func TestBase_Vertices_Mirrored(t *testing.T) {
	b := NewBase(0, 0, nil)
	b.W, b.H = -4, 2

	v := b.Vertices()
	assert.Equal(t, float32(2), v[0], "negative width swaps left and right")
	assert.Equal(t, float32(-2), v[4])
}

func TestBase_Vertices_Rotated(t *testing.T) {
	b := NewBase(0, 0, nil)
	b.W, b.H = 2, 2
	b.Angle = math.Pi / 2

	v := b.Vertices()
	// (-1,-1) rotated a quarter turn lands on (1,-1)
	assert.InDelta(t, 1, v[0], 1e-6)
	assert.InDelta(t, -1, v[1], 1e-6)
}

func TestBase_GraphicVerts(t *testing.T) {
	b := NewBase(0, 0, nil)
	b.Frames = 4
	b.Frame = 1

	assert.Equal(t, []float32{
		0.25, 1,
		0.25, 0,
		0.5, 1,
		0.5, 0,
	}, b.GraphicVerts())
}

func TestBase_OnScreen(t *testing.T) {
	view := fakeViewport{left: 0, right: 100, top: 100, bottom: 0}

	t.Run("inside", func(t *testing.T) {
		b := NewBase(0, 0, view)
		b.X, b.Y, b.W, b.H = 50, 50, 10, 10
		assert.True(t, b.OnScreen())
	})

	t.Run("overlapping edge", func(t *testing.T) {
		b := NewBase(0, 0, view)
		b.X, b.Y, b.W, b.H = 104, 50, 10, 10
		assert.True(t, b.OnScreen())
	})

	t.Run("outside", func(t *testing.T) {
		b := NewBase(0, 0, view)
		b.X, b.Y, b.W, b.H = 200, 50, 10, 10
		assert.False(t, b.OnScreen())
	})

	t.Run("hidden", func(t *testing.T) {
		b := NewBase(0, 0, view)
		b.X, b.Y, b.W, b.H = 50, 50, 10, 10
		b.Visible = false
		assert.False(t, b.OnScreen())
		assert.Equal(t, 0, b.IndexCount())
	})
}

func TestBase_Strip(t *testing.T) {
	b := NewBase(0, 0, nil)
	b.W, b.H = 2, 2
	b.Quads = 3

	assert.Equal(t, 18, b.IndexCount())
	assert.Equal(t, []float32{
		-3, -1, -3, 1, -1, -1, -1, 1,
		-1, -1, -1, 1, 1, -1, 1, 1,
		1, -1, 1, 1, 3, -1, 3, 1,
	}, b.Vertices())
	assert.Len(t, b.GraphicVerts(), 24)

	b.Quads = 0
	assert.Equal(t, 6, b.IndexCount(), "zero is treated as one")
}
