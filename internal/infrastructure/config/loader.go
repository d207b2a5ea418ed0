package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"golang.org/x/image/colornames"

	"github.com/younwookim/room/internal/room"
)

const roomFile = "room.json"

var (
	ErrInvalid      = errors.New("config: invalid")
	ErrUnknownColor = errors.New("config: unknown color name")
)

// Loader loads room configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadRoom loads room.json. Missing fields take the values of Default.
func (l *Loader) LoadRoom() (*RoomConfig, error) {
	data, err := fs.ReadFile(l.fsys, roomFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", roomFile, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", roomFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", roomFile, err)
	}

	return cfg, nil
}

// Default returns the engine defaults with no layers tinted and nothing
// spawned.
func Default() *RoomConfig {
	return &RoomConfig{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 360,
			Scale:        2,
			Framerate:    60,
			Background:   "black",
		},
		Room: RoomSettings{
			ObjectCapacity:     room.DefaultCapacity,
			LayerCount:         room.DefaultLayers,
			MaxFingers:         room.DefaultMaxFingers,
			MaxControllers:     room.DefaultMaxControllers,
			CleanupsTilRemoval: 3,
		},
	}
}

// Validate checks ranges and color names.
func (c *RoomConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen %dx%d", ErrInvalid, d.ScreenWidth, d.ScreenHeight)
	}
	if d.Scale <= 0 || d.Framerate <= 0 {
		return fmt.Errorf("%w: scale %d framerate %d", ErrInvalid, d.Scale, d.Framerate)
	}
	if d.Background != "" {
		if _, err := Color(d.Background); err != nil {
			return err
		}
	}
	if err := c.RoomOptions().Validate(); err != nil {
		return err
	}
	if c.Room.CleanupsTilRemoval <= 0 {
		return fmt.Errorf("%w: cleanupsTilRemoval %d", ErrInvalid, c.Room.CleanupsTilRemoval)
	}

	total := 0
	for _, lc := range c.Layers {
		if lc.Layer < 0 || lc.Layer >= c.Room.LayerCount {
			return fmt.Errorf("%w: layer %d out of range", ErrInvalid, lc.Layer)
		}
		if lc.RGBA == nil && lc.Color != "" {
			if _, err := Color(lc.Color); err != nil {
				return err
			}
		}
	}
	for _, s := range c.Spawns {
		if s.Count < 0 || s.Width == 0 || s.Height == 0 {
			return fmt.Errorf("%w: spawn %q", ErrInvalid, s.Name)
		}
		if s.Layer < 0 || s.Layer >= c.Room.LayerCount {
			return fmt.Errorf("%w: spawn %q layer %d out of range", ErrInvalid, s.Name, s.Layer)
		}
		if _, err := Color(s.Color); err != nil {
			return fmt.Errorf("spawn %q: %w", s.Name, err)
		}
		total += s.Count
	}
	for _, s := range c.Spawns {
		if s.Pops != "" && !c.hasSpawn(s.Pops) {
			return fmt.Errorf("%w: spawn %q pops unknown group %q", ErrInvalid, s.Name, s.Pops)
		}
	}
	if total > c.Room.ObjectCapacity {
		return fmt.Errorf("%w: %d spawns exceed objectCapacity %d", ErrInvalid, total, c.Room.ObjectCapacity)
	}
	return nil
}

func (c *RoomConfig) hasSpawn(name string) bool {
	for _, s := range c.Spawns {
		if s.Name == name {
			return true
		}
	}
	return false
}

// RoomOptions converts the room section for room.New.
func (c *RoomConfig) RoomOptions() room.Config {
	return room.Config{
		Capacity:       c.Room.ObjectCapacity,
		Layers:         c.Room.LayerCount,
		MaxFingers:     c.Room.MaxFingers,
		MaxControllers: c.Room.MaxControllers,
	}
}

// Apply sets the configured layer colors on r.
func (c *RoomConfig) Apply(r *room.Room) error {
	for _, lc := range c.Layers {
		rgba, err := lc.Tint()
		if err != nil {
			return err
		}
		r.SetLayerColor(lc.Layer, rgba[0], rgba[1], rgba[2], rgba[3])
	}
	return nil
}

// Tint resolves the layer color to normalized RGBA.
func (lc LayerConfig) Tint() ([4]float32, error) {
	if lc.RGBA != nil {
		return *lc.RGBA, nil
	}
	out := [4]float32{1, 1, 1, 1}
	if lc.Color != "" {
		c, err := Color(lc.Color)
		if err != nil {
			return out, err
		}
		out[0] = float32(c.R) / 255
		out[1] = float32(c.G) / 255
		out[2] = float32(c.B) / 255
	}
	if lc.Alpha != nil {
		out[3] = *lc.Alpha
	}
	return out, nil
}

// Color looks up an SVG color name.
func Color(name string) (color.RGBA, error) {
	c, ok := colornames.Map[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return c, nil
}
