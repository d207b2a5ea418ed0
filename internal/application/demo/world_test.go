package demo

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/room/internal/infrastructure/config"
)

type mockUploader struct {
	uploaded []int
	released []int
}

func (u *mockUploader) Upload(id int, _ image.Image) error {
	u.uploaded = append(u.uploaded, id)
	return nil
}

func (u *mockUploader) Release(id int) { u.released = append(u.released, id) }

// countingSink counts draw calls per bound texture
type countingSink struct {
	bound int
	draws map[int]int
}

func (s *countingSink) SetProjection(mgl32.Mat4)    {}
func (s *countingSink) ResetModelView()             {}
func (s *countingSink) SetColor(_, _, _, _ float32) {}
func (s *countingSink) BindTexture(id int)          { s.bound = id }
func (s *countingSink) VertexPointer([]float32)     {}
func (s *countingSink) TexCoordPointer([]float32)   {}
func (s *countingSink) DrawElements([]uint16)       { s.draws[s.bound]++ }

func TestNewWorld(t *testing.T) {
	cfg := config.Default()
	cfg.Display.ScreenWidth, cfg.Display.ScreenHeight = 320, 180
	cfg.Layers = []config.LayerConfig{{Layer: 1, RGBA: &[4]float32{1, 0, 0, 1}}}
	cfg.Spawns = []config.SpawnConfig{
		{Name: "a", Count: 3, Layer: 1, Color: "red", Width: 8, Height: 8, Speed: 1},
		{Name: "b", Count: 2, Layer: 2, Color: "blue", Width: 8, Height: 8},
	}
	up := &mockUploader{}

	w, err := NewWorld(cfg, up, 7)
	require.NoError(t, err)

	assert.Equal(t, 320, w.Room.Width())
	assert.Equal(t, 6, w.Room.Len())
	r, g, b, a := w.Room.LayerColor(1)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, [4]float32{r, g, b, a})
	assert.Equal(t, int64(7), w.Demo.Seed())

	// Nothing is uploaded until objects are pinged and drawn once
	sink := &countingSink{draws: map[int]int{}}
	w.Room.Draw(sink)
	assert.Empty(t, up.uploaded)

	w.Room.IndicateGraphicsUsed()
	w.Room.Draw(sink)
	assert.Equal(t, []int{0, 1}, up.uploaded)
	assert.Empty(t, sink.draws, "textures loaded during a draw are drawn from the next one")

	w.Room.Draw(sink)
	assert.Equal(t, map[int]int{0: 1, 1: 1}, sink.draws)
}

func TestNewWorld_InvalidRoom(t *testing.T) {
	cfg := config.Default()
	cfg.Room.ObjectCapacity = 0

	_, err := NewWorld(cfg, &mockUploader{}, 1)
	assert.Error(t, err)
}
