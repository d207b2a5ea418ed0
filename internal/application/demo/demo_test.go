package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/room/internal/infrastructure/config"
	"github.com/younwookim/room/internal/infrastructure/graphics"
	"github.com/younwookim/room/internal/room"
)

func newTestRoom(t *testing.T, capacity int) *room.Room {
	t.Helper()
	cfg := room.DefaultConfig()
	cfg.Capacity = capacity
	r, err := room.New(room.View{Width: 200, Height: 100}, cfg)
	require.NoError(t, err)
	return r
}

func spawn(name string, count int, speed float64) config.SpawnConfig {
	return config.SpawnConfig{
		Name: name, Count: count, Layer: 1, Color: "orange",
		Width: 10, Height: 10, Speed: speed, Frames: 1,
	}
}

func TestNew_PopulatesGroups(t *testing.T) {
	r := newTestRoom(t, 100)
	gfx := graphics.NewManager(nil, 3)

	d, err := New(r, gfx, []config.SpawnConfig{spawn("a", 5, 2), spawn("b", 3, 1)}, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, d.Groups())
	assert.Len(t, d.Group("a"), 5)
	assert.Len(t, d.Group("b"), 3)
	assert.Equal(t, 9, r.Len(), "sprites plus the camera controller")
	assert.Equal(t, 2, gfx.Len(), "one texture per group")

	b := d.Bounds()
	for _, s := range append(d.Group("a"), d.Group("b")...) {
		assert.GreaterOrEqual(t, s.X-5, b.Left)
		assert.LessOrEqual(t, s.X+5, b.Right)
		assert.GreaterOrEqual(t, s.Y-5, b.Bottom)
		assert.LessOrEqual(t, s.Y+5, b.Top)
		assert.NotNil(t, s.Graphic())
	}
}

func TestNew_SameSeedSameLayout(t *testing.T) {
	layout := func(seed int64) [][4]float64 {
		d, err := New(newTestRoom(t, 100), graphics.NewManager(nil, 3), []config.SpawnConfig{spawn("a", 10, 2)}, seed)
		require.NoError(t, err)
		var out [][4]float64
		for _, s := range d.Group("a") {
			out = append(out, [4]float64{s.X, s.Y, s.VX, s.VY})
		}
		return out
	}

	assert.Equal(t, layout(42), layout(42))
	assert.NotEqual(t, layout(42), layout(43))
}

func TestNew_StaticGroupLinesUpAtBottom(t *testing.T) {
	d, err := New(newTestRoom(t, 100), graphics.NewManager(nil, 3), []config.SpawnConfig{spawn("ground", 4, 0)}, 1)
	require.NoError(t, err)

	var xs []float64
	for _, s := range d.Group("ground") {
		xs = append(xs, s.X)
		assert.Equal(t, 5.0, s.Y)
		assert.Zero(t, s.VX)
	}
	assert.Equal(t, []float64{25, 75, 125, 175}, xs)
}

func TestNew_Errors(t *testing.T) {
	bad := spawn("a", 1, 1)
	bad.Color = "notacolor"
	pops := spawn("a", 1, 1)
	pops.Pops = "missing"

	tests := []struct {
		name     string
		capacity int
		spawns   []config.SpawnConfig
		is       error
	}{
		{"unknown color", 10, []config.SpawnConfig{bad}, config.ErrUnknownColor},
		{"room full", 3, []config.SpawnConfig{spawn("a", 4, 1)}, room.ErrRoomFull},
		{"no room for controller", 4, []config.SpawnConfig{spawn("a", 4, 1)}, room.ErrRoomFull},
		{"unknown pops group", 10, []config.SpawnConfig{pops}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(newTestRoom(t, tt.capacity), graphics.NewManager(nil, 3), tt.spawns, 1)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestDemo_PanWhileHeld(t *testing.T) {
	r := newTestRoom(t, 10)
	_, err := New(r, graphics.NewManager(nil, 3), nil, 1)
	require.NoError(t, err)

	r.SignifyButtonNewpress(0, ButtonRight)
	r.Update(1)
	assert.Equal(t, PanSpeed, r.Camera().X)

	r.Update(1)
	assert.Equal(t, 2*PanSpeed, r.Camera().X)

	r.SignifyButtonReleased(0, ButtonRight)
	r.Update(1)
	assert.Equal(t, 2*PanSpeed, r.Camera().X, "release after a hold stops without a tap")
	assert.Equal(t, 2*PanSpeed, r.Camera().Left(), "edges follow the pan")
}

func TestDemo_TapNudges(t *testing.T) {
	r := newTestRoom(t, 10)
	_, err := New(r, graphics.NewManager(nil, 3), nil, 1)
	require.NoError(t, err)

	r.SignifyButtonNewpress(0, ButtonUp)
	r.SignifyButtonReleased(0, ButtonUp)
	r.Update(1)
	assert.Equal(t, PanSpeed*TapTicks, r.Camera().Y)

	r.Update(1)
	assert.Equal(t, PanSpeed*TapTicks, r.Camera().Y)
}

func TestDemo_ZoomClamps(t *testing.T) {
	r := newTestRoom(t, 10)
	_, err := New(r, graphics.NewManager(nil, 3), nil, 1)
	require.NoError(t, err)

	r.SignifyButtonNewpress(0, ButtonZoomIn)
	for range 500 {
		r.Update(1)
	}
	assert.Equal(t, MinZoom, r.Camera().Zoom)

	r.SignifyButtonReleased(0, ButtonZoomIn)
	r.Update(1)
	assert.Equal(t, MinZoom, r.Camera().Zoom)

	r.SignifyButtonNewpress(0, ButtonZoomOut)
	for range 500 {
		r.Update(1)
	}
	assert.Equal(t, MaxZoom, r.Camera().Zoom)
}

func TestDemo_Pops(t *testing.T) {
	r := newTestRoom(t, 10)
	movers := spawn("movers", 1, 0)
	movers.Pops = "bubbles"
	d, err := New(r, graphics.NewManager(nil, 3), []config.SpawnConfig{spawn("bubbles", 1, 0), movers}, 1)
	require.NoError(t, err)

	bubble, mover := d.Group("bubbles")[0], d.Group("movers")[0]
	mover.X, mover.Y = bubble.X, bubble.Y

	r.Update(1)
	assert.True(t, bubble.Popped())
	assert.False(t, bubble.Visible)
	assert.Equal(t, 1, d.Popped())
	assert.Nil(t, r.ObjectAtPosition(bubble.X+60, bubble.Y), "the controller has no boxes")

	mover.X += 50
	for range int(PopTicks) {
		r.Update(1)
	}
	assert.True(t, bubble.Visible)
	assert.Equal(t, 1, d.Popped())
}
