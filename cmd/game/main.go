package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/room/cmd/game/configs"
	"github.com/younwookim/room/internal/application/demo"
	"github.com/younwookim/room/internal/application/game"
	"github.com/younwookim/room/internal/application/replay"
	"github.com/younwookim/room/internal/infrastructure/config"
	"github.com/younwookim/room/internal/infrastructure/graphics"
	"github.com/younwookim/room/internal/infrastructure/input/ebiteninput"
	"github.com/younwookim/room/internal/infrastructure/render/ebitensink"
	"github.com/younwookim/room/internal/room"
)

func main() {
	// Parse command line flags
	configFlag := flag.String("config", "", "Directory containing room.json (default: embedded)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay input from file")
	headlessFlag := flag.Bool("headless", false, "With -replay, run without a window and print a summary")
	flag.Parse()

	room.SetLogger(slog.Default())
	graphics.SetLogger(slog.Default())

	cfg, cfgName, err := configs.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := time.Now().UnixNano()
	var data *replay.ReplayData
	if *replayFlag != "" {
		data, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		seed = data.Seed
		log.Printf("Replaying %s: %d frames, seed %d", *replayFlag, len(data.Frames), seed)
	}

	if *headlessFlag {
		if data == nil {
			log.Fatal("-headless requires -replay")
		}
		sum, err := runHeadless(cfg, *data)
		if err != nil {
			log.Fatalf("Headless replay failed: %v", err)
		}
		fmt.Println(sum)
		return
	}

	textures := ebitensink.NewTextures()
	w, err := demo.NewWorld(cfg, textures, seed)
	if err != nil {
		log.Fatalf("Failed to build room: %v", err)
	}

	d := cfg.Display
	source := ebiteninput.New(w.Room, cfg.Room.MaxFingers, cfg.Room.MaxControllers)
	g := game.New(w.Room, ebitensink.New(textures), source, w.Graphics, d.ScreenWidth, d.ScreenHeight)
	if bg, err := config.Color(d.Background); err == nil {
		g.SetBackground(bg)
	}

	if data != nil {
		g.Replay(replay.NewReplayer(*data))
		g.ExitOnReplayEnd = true
	}
	if *recordFlag != "" {
		g.Record(replay.NewRecorder(w.Room, seed, cfgName), *recordFlag)
	}

	// Set up ebiten
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle("Room")
	ebiten.SetTPS(d.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	g.SaveRecording()
	w.Graphics.ReleaseAll()
}
