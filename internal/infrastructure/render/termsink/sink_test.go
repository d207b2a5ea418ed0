package termsink

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func solid(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			img.Set(x, y, c)
		}
	}
	return img
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(20, 10)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestSink_DrawElements(t *testing.T) {
	screen := newScreen(t)
	tex := NewTextures()
	require.NoError(t, tex.Upload(0, solid(colornames.Red)))

	s := New(screen, tex)
	s.SetProjection(mgl32.Ortho(0, 20, 0, 10, -1, 1))
	s.SetColor(1, 1, 1, 1)
	s.BindTexture(0)
	// world x [2,6], y [6,9] covers columns 2..5 and rows 1..3
	s.VertexPointer([]float32{2, 6, 2, 9, 6, 6, 6, 9})
	s.DrawElements([]uint16{0, 1, 2, 1, 2, 3})

	assert.Equal(t, '█', runeAt(screen, 2, 1))
	assert.Equal(t, '█', runeAt(screen, 5, 1))
	assert.Equal(t, '█', runeAt(screen, 5, 3))
	assert.NotEqual(t, '█', runeAt(screen, 6, 2))
	assert.NotEqual(t, '█', runeAt(screen, 3, 4))
	assert.NotEqual(t, '█', runeAt(screen, 3, 0))
}

func TestSink_SkipsInvisible(t *testing.T) {
	screen := newScreen(t)
	tex := NewTextures()
	require.NoError(t, tex.Upload(1, solid(colornames.Blue)))

	s := New(screen, tex)
	s.SetProjection(mgl32.Ortho(0, 20, 0, 10, -1, 1))
	s.VertexPointer([]float32{0, 0, 0, 10, 20, 0, 20, 10})

	s.BindTexture(2)
	s.DrawElements([]uint16{0, 1, 2, 1, 2, 3})
	assert.NotEqual(t, '▓', runeAt(screen, 10, 5), "texture not resident")

	s.BindTexture(1)
	s.SetColor(1, 1, 1, 0)
	s.DrawElements([]uint16{0, 1, 2, 1, 2, 3})
	assert.NotEqual(t, '▓', runeAt(screen, 10, 5), "transparent layer")

	s.SetColor(1, 1, 1, 1)
	s.DrawElements([]uint16{0, 1, 2, 1, 2, 3})
	assert.Equal(t, '▓', runeAt(screen, 10, 5))
	assert.Equal(t, '▓', runeAt(screen, 19, 9), "clamped to the screen")
}

func TestSink_SkipsOffScreenQuads(t *testing.T) {
	screen := newScreen(t)
	tex := NewTextures()
	require.NoError(t, tex.Upload(0, solid(colornames.Red)))

	s := New(screen, tex)
	s.SetProjection(mgl32.Ortho(0, 20, 0, 10, -1, 1))
	s.BindTexture(0)
	s.VertexPointer([]float32{-8, 2, -8, 4, -2, 2, -2, 4})
	s.DrawElements([]uint16{0, 1, 2, 1, 2, 3})

	assert.NotEqual(t, '█', runeAt(screen, 0, 7), "left of the screen")
}

func TestSink_OutOfRangeIndices(t *testing.T) {
	s := New(newScreen(t), NewTextures())
	require.NoError(t, s.textures.Upload(0, solid(colornames.White)))
	s.BindTexture(0)
	s.VertexPointer([]float32{0, 0})
	assert.NotPanics(t, func() { s.DrawElements([]uint16{0, 1, 2, 1, 2, 3}) })
}

func TestTint(t *testing.T) {
	tests := []struct {
		name  string
		layer [4]float32
		want  tcell.Color
	}{
		{"identity", [4]float32{1, 1, 1, 1}, tcell.NewRGBColor(200, 100, 50)},
		{"half red", [4]float32{0.5, 1, 1, 1}, tcell.NewRGBColor(100, 100, 50)},
		{"half alpha", [4]float32{1, 1, 1, 0.5}, tcell.NewRGBColor(100, 50, 25)},
		{"clamped", [4]float32{2, -1, 1, 1}, tcell.NewRGBColor(200, 0, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tint(tcell.NewRGBColor(200, 100, 50), tt.layer))
		})
	}
}

func TestAverageColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 0, 255, 255})
	assert.Equal(t, tcell.NewRGBColor(127, 0, 127), AverageColor(img))

	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), AverageColor(image.NewRGBA(image.Rect(0, 0, 1, 1))))
}

func TestTextures_Glyphs(t *testing.T) {
	tex := NewTextures()
	for id := range 12 {
		require.NoError(t, tex.Upload(id, solid(colornames.Green)))
	}
	a, _ := tex.Texture(0)
	b, _ := tex.Texture(10)
	c, _ := tex.Texture(3)
	assert.Equal(t, a.Glyph, b.Glyph)
	assert.Equal(t, '░', c.Glyph)

	tex.Release(3)
	_, ok := tex.Texture(3)
	assert.False(t, ok)
}
