package demo

import (
	"fmt"

	"github.com/younwookim/room/internal/infrastructure/config"
	"github.com/younwookim/room/internal/infrastructure/graphics"
	"github.com/younwookim/room/internal/room"
)

// World is a configured Room, its graphics manager and the demo populating
// it. Every host builds one.
type World struct {
	Room     *room.Room
	Graphics *graphics.Manager
	Demo     *Demo
}

// NewWorld builds a Room sized by cfg's display, tints its layers, and
// spawns cfg's groups with textures uploaded through up.
func NewWorld(cfg *config.RoomConfig, up graphics.Uploader, seed int64) (*World, error) {
	gfx := graphics.NewManager(up, cfg.Room.CleanupsTilRemoval)
	view := room.View{
		Width:    cfg.Display.ScreenWidth,
		Height:   cfg.Display.ScreenHeight,
		RatioX:   1,
		RatioY:   1,
		Graphics: gfx,
	}

	r, err := room.New(view, cfg.RoomOptions())
	if err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	if err := cfg.Apply(r); err != nil {
		return nil, fmt.Errorf("apply layers: %w", err)
	}
	d, err := New(r, gfx, cfg.Spawns, seed)
	if err != nil {
		return nil, err
	}
	return &World{Room: r, Graphics: gfx, Demo: d}, nil
}
