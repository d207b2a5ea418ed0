// Command termroom runs the demo room in a terminal. Sprites are drawn as
// coloured glyph cells, the mouse taps pointer 0 and keys tap controller 0.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/xlab/closer"

	"github.com/younwookim/room/cmd/game/configs"
	"github.com/younwookim/room/internal/application/demo"
	"github.com/younwookim/room/internal/application/game"
	"github.com/younwookim/room/internal/application/replay"
	"github.com/younwookim/room/internal/infrastructure/graphics"
	"github.com/younwookim/room/internal/infrastructure/input"
	"github.com/younwookim/room/internal/infrastructure/input/terminput"
	"github.com/younwookim/room/internal/infrastructure/render/termsink"
	"github.com/younwookim/room/internal/room"
)

func main() {
	configFlag := flag.String("config", "", "Directory containing room.json (default: embedded)")
	fpsFlag := flag.Int("fps", 30, "Frames per second")
	recordFlag := flag.String("record", "", "Record input to file at a fixed dt of 1 (e.g., -record replay.json)")
	logFlag := flag.String("log", "", "Write diagnostics to this file instead of discarding them")
	flag.Parse()

	// The terminal is the screen; diagnostics go to a file or nowhere
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		closer.Bind(func() { f.Close() })
		log.SetOutput(f)
		room.SetLogger(slog.Default())
		graphics.SetLogger(slog.Default())
	}

	cfg, cfgName, err := configs.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *fpsFlag <= 0 {
		log.Fatalf("Invalid -fps %d", *fpsFlag)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	closer.Bind(screen.Fini)
	screen.EnableMouse()
	screen.HideCursor()

	seed := time.Now().UnixNano()
	textures := termsink.NewTextures()
	w, err := demo.NewWorld(cfg, textures, seed)
	if err != nil {
		closer.Fatalln("Failed to build room:", err)
	}
	closer.Bind(w.Graphics.ReleaseAll)

	var target input.Target = w.Room
	var rec *replay.Recorder
	if *recordFlag != "" {
		rec = replay.NewRecorder(w.Room, seed, cfgName)
		target = rec
		closer.Bind(func() {
			if err := rec.Save(*recordFlag); err != nil {
				log.Printf("Failed to save recording: %v", err)
				return
			}
			log.Printf("Recording saved: %s (%d frames)", *recordFlag, rec.FrameCount())
		})
	}

	source := terminput.New(target, nil)
	source.OnQuit = func() { closer.Close() }
	source.OnResize = func(int, int) { screen.Sync() }
	go source.Run(screen)

	go run(screen, w, termsink.New(screen, textures), rec, *fpsFlag)
	closer.Hold()
}

// run drives frames off a ticker until the process exits. Recording pins dt
// to 1 so the file replays headlessly to the same state.
func run(screen tcell.Screen, w *demo.World, sink *termsink.Sink, rec *replay.Recorder, fps int) {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	clock := game.NewFPSLimiter(fps)

	for now := range ticker.C {
		w.Room.IndicateGraphicsUsed()
		if rec != nil {
			// replays run at dt 1, and the input goroutine waits out the drain
			rec.Frame(func() { w.Room.Update(1) })
		} else {
			w.Room.Update(clock.DT(now))
		}

		screen.Clear()
		w.Room.Draw(sink)
		w.Graphics.Cleanup()
		drawStatus(screen, w)
		screen.Show()
	}
}

func drawStatus(screen tcell.Screen, w *demo.World) {
	st := w.Room.Stats()
	cam := w.Room.Camera()
	line := fmt.Sprintf(" objects %d  draws %d  quads %d  popped %d  zoom %.2f  [wasd pan, q/e zoom, j flip, esc quit]",
		w.Room.Len(), st.Buckets, st.Quads, w.Demo.Popped(), cam.Zoom)
	style := tcell.StyleDefault.Reverse(true)
	cols, _ := screen.Size()
	for x, r := range []rune(line) {
		if x >= cols {
			break
		}
		screen.SetContent(x, 0, r, nil, style)
	}
}
