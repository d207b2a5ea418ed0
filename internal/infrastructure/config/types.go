package config

// RoomConfig is the root config for room.json
type RoomConfig struct {
	Display DisplayConfig `json:"display"`
	Room    RoomSettings  `json:"room"`
	Layers  []LayerConfig `json:"layers"`
	Spawns  []SpawnConfig `json:"spawns"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Background   string `json:"background"` // colornames name
}

type RoomSettings struct {
	ObjectCapacity     int `json:"objectCapacity"`
	LayerCount         int `json:"layerCount"`
	MaxFingers         int `json:"maxFingers"`
	MaxControllers     int `json:"maxControllers"`
	CleanupsTilRemoval int `json:"cleanupsTilRemoval"`
}

// LayerConfig tints one layer. RGBA, when present, wins over Color and Alpha.
type LayerConfig struct {
	Layer int         `json:"layer"`
	Color string      `json:"color"` // colornames name
	Alpha *float32    `json:"alpha"`
	RGBA  *[4]float32 `json:"rgba"`
}

// SpawnConfig describes a group of identical sprites.
type SpawnConfig struct {
	Name   string  `json:"name"`
	Count  int     `json:"count"`
	Layer  int     `json:"layer"`
	Color  string  `json:"color"` // colornames name of the generated texture
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Speed  float64 `json:"speed"`  // world units per frame at dt 1
	Frames int     `json:"frames"` // animation strip length
	Quads  int     `json:"quads"`  // tiles per sprite
	Pops   string  `json:"pops"`   // group hidden on contact
}
