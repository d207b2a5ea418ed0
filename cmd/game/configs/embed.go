// Package configs embeds the default room.json shared by every host.
package configs

import (
	"embed"

	"github.com/younwookim/room/internal/infrastructure/config"
)

//go:embed room.json
var FS embed.FS

// Name identifies the embedded config in recordings.
const Name = "embedded"

// Load reads room.json from dir, or the embedded copy when dir is empty.
// The returned name is what recordings store as their config.
func Load(dir string) (*config.RoomConfig, string, error) {
	if dir != "" {
		cfg, err := config.NewLoader(dir).LoadRoom()
		return cfg, dir, err
	}
	cfg, err := config.NewFSLoader(FS, ".").LoadRoom()
	return cfg, Name, err
}
