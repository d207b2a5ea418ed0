// Package game hosts a Room inside the ebiten game loop.
package game

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/room/internal/application/replay"
	"github.com/younwookim/room/internal/application/state"
	"github.com/younwookim/room/internal/infrastructure/input"
	"github.com/younwookim/room/internal/room"
)

// Room is what the host drives each frame. *room.Room implements it.
type Room interface {
	input.Target
	Update(dt float64)
	Draw(sink room.Sink)
	IndicateGraphicsUsed()
}

// Sink is a room.Sink that renders into the ebiten screen.
type Sink interface {
	room.Sink
	Begin(screen *ebiten.Image)
}

// Poller publishes device input, usually an ebiteninput.Source.
type Poller interface {
	Poll()
	SetTarget(t input.Target)
}

// Cleaner is the graphics manager's per-frame eviction pass.
type Cleaner interface {
	Cleanup()
}

// Game implements ebiten.Game for a single Room.
type Game struct {
	room     Room
	sink     Sink
	input    Poller
	graphics Cleaner

	state   state.RunState
	resume  state.RunState
	screenW int
	screenH int
	dt      float64
	bg      color.Color

	recorder       *replay.Recorder
	recordFilename string
	replayer       *replay.Replayer

	// ExitOnReplayEnd stops the game loop when the replay runs out.
	ExitOnReplayEnd bool
}

// New creates a Game drawing r with sink.
func New(r Room, sink Sink, in Poller, graphics Cleaner, screenW, screenH int) *Game {
	return &Game{
		room:     r,
		sink:     sink,
		input:    in,
		graphics: graphics,
		state:    state.StateRunning,
		resume:   state.StateRunning,
		screenW:  screenW,
		screenH:  screenH,
		dt:       1, // ebiten ticks at a fixed rate, so no lag correction
		bg:       color.Black,
	}
}

// SetBackground sets the color the screen is cleared to.
func (g *Game) SetBackground(c color.Color) { g.bg = c }

// Record tees device input through a recorder saved to filename on exit.
func (g *Game) Record(rec *replay.Recorder, filename string) {
	g.recorder = rec
	g.recordFilename = filename
	if g.input != nil {
		g.input.SetTarget(rec)
	}
	log.Printf("Recording enabled: %s", filename)
}

// Replay feeds recorded input instead of the devices.
func (g *Game) Replay(r *replay.Replayer) {
	g.replayer = r
	g.state = state.StateReplaying
	g.resume = state.StateReplaying
}

// State returns the current run state.
func (g *Game) State() state.RunState { return g.state }

// TogglePause pauses or resumes the room.
func (g *Game) TogglePause() {
	g.state = g.state.TogglePause(g.resume)
}

// Update advances the room by one tick.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && g.recorder != nil {
		g.SaveRecording()
	}

	if !g.state.Advances() {
		if g.state == state.StateFinished && g.ExitOnReplayEnd {
			return ebiten.Termination
		}
		return nil
	}

	g.Step()
	return nil
}

// Step runs one frame of input and room update regardless of key state.
func (g *Game) Step() {
	switch {
	case g.replayer != nil:
		if !g.replayer.Apply(g.room) {
			g.state = state.StateFinished
			log.Printf("Replay finished after %d frames", g.replayer.TotalFrames())
			return
		}
	case g.input != nil:
		g.input.Poll()
	}
	if g.recorder != nil {
		g.recorder.EndFrame()
	}

	g.room.IndicateGraphicsUsed()
	g.room.Update(g.dt)
}

// Draw renders the room and runs the graphics cleanup pass.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	g.sink.Begin(screen)
	g.room.Draw(g.sink)
	if g.graphics != nil {
		g.graphics.Cleanup()
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the lag multiplier passed to Room.Update.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SaveRecording writes the recording, if any.
func (g *Game) SaveRecording() {
	if g.recorder == nil {
		return
	}
	if err := g.recorder.Save(g.recordFilename); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	log.Printf("Recording saved: %s (%d frames)", g.recordFilename, g.recorder.FrameCount())
}
