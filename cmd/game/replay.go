package main

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/room/internal/application/demo"
	"github.com/younwookim/room/internal/application/game"
	"github.com/younwookim/room/internal/application/replay"
	"github.com/younwookim/room/internal/application/state"
	"github.com/younwookim/room/internal/infrastructure/config"
)

// Summary is the state left by a headless replay.
type Summary struct {
	Frames    int
	Popped    int
	CameraX   float64
	CameraY   float64
	Zoom      float64
	Positions float64 // sum of sprite coordinates
	Quads     int     // quads submitted by the last draw
}

func (s Summary) String() string {
	return fmt.Sprintf("frames=%d popped=%d camera=(%.2f,%.2f) zoom=%.3f positions=%.4f quads=%d",
		s.Frames, s.Popped, s.CameraX, s.CameraY, s.Zoom, s.Positions, s.Quads)
}

// discard accepts every texture and draw without rendering.
type discard struct{}

func (discard) Upload(int, image.Image) error { return nil }
func (discard) Release(int)                   {}
func (discard) SetProjection(mgl32.Mat4)      {}
func (discard) ResetModelView()               {}
func (discard) SetColor(_, _, _, _ float32)   {}
func (discard) BindTexture(int)               {}
func (discard) VertexPointer([]float32)       {}
func (discard) TexCoordPointer([]float32)     {}
func (discard) DrawElements([]uint16)         {}

// runHeadless drives a world with recorded input at dt 1 until the replay
// runs out, drawing into a discarding sink every frame.
func runHeadless(cfg *config.RoomConfig, data replay.ReplayData) (Summary, error) {
	w, err := demo.NewWorld(cfg, discard{}, data.Seed)
	if err != nil {
		return Summary{}, err
	}

	g := game.New(w.Room, nil, nil, w.Graphics, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	rp := replay.NewReplayer(data)
	g.Replay(rp)

	for g.State() != state.StateFinished {
		g.Step()
		w.Room.Draw(discard{})
		w.Graphics.Cleanup()
	}

	cam := w.Room.Camera()
	sum := Summary{
		Frames:  rp.CurrentFrame(),
		Popped:  w.Demo.Popped(),
		CameraX: cam.X,
		CameraY: cam.Y,
		Zoom:    cam.Zoom,
		Quads:   w.Room.Stats().Quads,
	}
	for _, name := range w.Demo.Groups() {
		for _, s := range w.Demo.Group(name) {
			sum.Positions += s.X + s.Y
		}
	}
	return sum, nil
}
