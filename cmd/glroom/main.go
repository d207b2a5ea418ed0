// Command glroom runs the demo room in a glfw window through the OpenGL 2.1
// fixed-function pipeline.
package main

import (
	"flag"
	"log"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/younwookim/room/cmd/game/configs"
	"github.com/younwookim/room/internal/application/demo"
	"github.com/younwookim/room/internal/application/game"
	"github.com/younwookim/room/internal/application/state"
	"github.com/younwookim/room/internal/infrastructure/config"
	"github.com/younwookim/room/internal/infrastructure/graphics"
	"github.com/younwookim/room/internal/infrastructure/input/glfwinput"
	"github.com/younwookim/room/internal/infrastructure/render/glsink"
	"github.com/younwookim/room/internal/room"
)

func init() {
	// GL calls must come from the thread that created the context
	runtime.LockOSThread()
}

func main() {
	configFlag := flag.String("config", "", "Directory containing room.json (default: embedded)")
	vsyncFlag := flag.Bool("vsync", false, "Sync buffer swaps to the display instead of the framerate limiter")
	flag.Parse()

	room.SetLogger(slog.Default())
	graphics.SetLogger(slog.Default())

	cfg, _, err := configs.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	d := cfg.Display

	if err := glfw.Init(); err != nil {
		log.Fatalf("Failed to init glfw: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale, "Room (GL)", nil, nil)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	window.MakeContextCurrent()
	if *vsyncFlag {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		log.Fatalf("Failed to init gl: %v", err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	textures := glsink.NewTextures()
	w, err := demo.NewWorld(cfg, textures, time.Now().UnixNano())
	if err != nil {
		log.Fatalf("Failed to build room: %v", err)
	}
	defer w.Graphics.ReleaseAll()

	sink := glsink.New(textures)
	sink.Setup()

	var bg [3]float32
	if c, err := config.Color(d.Background); err == nil {
		bg = [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
	}

	source := glfwinput.New(w.Room, cfg.Room.MaxControllers)
	source.Attach(window)

	run := state.StateRunning
	window.SetKeyCallback(func(win *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			run = run.TogglePause(state.StateRunning)
		case glfw.KeyQ:
			win.SetShouldClose(true)
		}
	})

	// The world keeps its design size; the window only scales it
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, fw, fh int) {
		sink.Viewport(fw, fh)
	})
	fw, fh := window.GetFramebufferSize()
	sink.Viewport(fw, fh)

	limiter := game.NewFPSLimiter(d.Framerate)
	if *vsyncFlag {
		limiter = game.NewFPSLimiter(0)
	}
	frames := 0
	fpsTicker := time.NewTicker(time.Second)
	defer fpsTicker.Stop()

	for !window.ShouldClose() {
		glfw.PollEvents()
		dt := limiter.DT(time.Now())

		if run.Advances() {
			source.Poll()
			w.Room.IndicateGraphicsUsed()
			w.Room.Update(dt)
		}

		sink.Clear(bg[0], bg[1], bg[2])
		w.Room.Draw(sink)
		w.Graphics.Cleanup()
		window.SwapBuffers()

		frames++
		select {
		case <-fpsTicker.C:
			st := w.Room.Stats()
			log.Printf("fps=%d draws=%d quads=%d popped=%d", frames, st.Buckets, st.Quads, w.Demo.Popped())
			frames = 0
		default:
		}

		limiter.Wait()
	}
}
