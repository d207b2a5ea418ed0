package ebitensink

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_Project(t *testing.T) {
	s := New(NewTextures())
	s.Begin(ebiten.NewImage(200, 100))
	s.SetProjection(mgl32.Ortho(0, 1000, 0, 500, -1, 1))

	tests := []struct {
		name   string
		x, y   float32
		px, py float32
	}{
		{"bottom left", 0, 0, 0, 100},
		{"top right", 1000, 500, 200, 0},
		{"center", 500, 250, 100, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, py := s.Project(tt.x, tt.y)
			assert.InDelta(t, tt.px, px, 1e-3)
			assert.InDelta(t, tt.py, py, 1e-3)
		})
	}
}

func TestSink_Vertices(t *testing.T) {
	s := New(NewTextures())
	s.Begin(ebiten.NewImage(100, 100))
	s.SetProjection(mgl32.Ortho(0, 100, 0, 100, -1, 1))
	s.SetColor(1, 0.5, 2, 0.5)
	s.VertexPointer([]float32{0, 0, 0, 100, 100, 0, 100, 100})
	s.TexCoordPointer([]float32{0, 1, 0, 0, 1, 1, 1, 0})

	img := ebiten.NewImage(16, 8)
	vs := s.Vertices(nil, img)

	require.Len(t, vs, 4)
	assert.InDelta(t, 0, vs[0].DstX, 1e-3)
	assert.InDelta(t, 100, vs[0].DstY, 1e-3)
	assert.Equal(t, float32(0), vs[0].SrcX)
	assert.Equal(t, float32(8), vs[0].SrcY)
	assert.Equal(t, float32(16), vs[3].SrcX)
	assert.Equal(t, float32(0), vs[3].SrcY)

	// clamped and premultiplied
	assert.Equal(t, float32(0.5), vs[0].ColorR)
	assert.Equal(t, float32(0.25), vs[0].ColorG)
	assert.Equal(t, float32(0.5), vs[0].ColorB)
	assert.Equal(t, float32(0.5), vs[0].ColorA)
	assert.Equal(t, ebiten.ColorScaleModePremultipliedAlpha, s.op.ColorScaleMode)
}

func TestSink_HalfAlphaWhiteKeepsHalfIntensity(t *testing.T) {
	s := New(NewTextures())
	s.Begin(ebiten.NewImage(10, 10))
	s.SetColor(1, 1, 1, 0.5)
	s.VertexPointer([]float32{0, 0})
	s.TexCoordPointer([]float32{0, 0})

	vs := s.Vertices(nil, ebiten.NewImage(1, 1))
	require.Len(t, vs, 1)

	// ebiten scales by ColorA again only in straight alpha mode
	require.Equal(t, ebiten.ColorScaleModePremultipliedAlpha, s.op.ColorScaleMode)
	assert.Equal(t, float32(0.5), vs[0].ColorR)
	assert.Equal(t, float32(0.5), vs[0].ColorA)
}

func TestSink_DrawElementsWithoutTexture(t *testing.T) {
	s := New(NewTextures())
	s.BindTexture(3)
	s.VertexPointer([]float32{0, 0, 0, 1, 1, 0, 1, 1})
	assert.NotPanics(t, func() { s.DrawElements([]uint16{0, 1, 2, 1, 2, 3}) }, "no target")

	s.Begin(ebiten.NewImage(10, 10))
	assert.NotPanics(t, func() { s.DrawElements([]uint16{0, 1, 2, 1, 2, 3}) }, "texture not resident")
}

func TestTextures_UploadRelease(t *testing.T) {
	tex := NewTextures()
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	src.Set(0, 0, color.White)

	require.NoError(t, tex.Upload(1, src))
	require.NotNil(t, tex.Image(1))
	assert.Equal(t, image.Rect(0, 0, 4, 2), tex.Image(1).Bounds())
	assert.Equal(t, 1, tex.Len())

	tex.Release(1)
	tex.Release(1)
	assert.Nil(t, tex.Image(1))
	assert.Zero(t, tex.Len())
}
