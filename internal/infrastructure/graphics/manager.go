// Package graphics tracks textures used by rooms and uploads or releases
// them through a backend Uploader according to the liveness-ping protocol.
//
// A Manager is used from the render goroutine only.
package graphics

import (
	"errors"
	"fmt"
	"image"

	"github.com/younwookim/room/internal/domain/object"
)

// DefaultCleanupsTilRemoval is the number of frames a graphic stays resident
// after its last ping.
const DefaultCleanupsTilRemoval = 3

var ErrForeignGraphic = errors.New("graphics: graphic not registered with this manager")

// Uploader moves textures to and from a rendering backend.
type Uploader interface {
	Upload(id int, img image.Image) error
	Release(id int)
}

// Manager owns every registered Graphic.
type Manager struct {
	uploader  Uploader
	graphics  []*Graphic
	budget    int
	maxLoaded int
}

// NewManager creates a manager. A non-positive budget selects
// DefaultCleanupsTilRemoval.
func NewManager(u Uploader, cleanupsTilRemoval int) *Manager {
	if cleanupsTilRemoval <= 0 {
		cleanupsTilRemoval = DefaultCleanupsTilRemoval
	}
	return &Manager{
		uploader:  u,
		budget:    cleanupsTilRemoval,
		maxLoaded: -1,
	}
}

// Register adds an image and returns its Graphic. Ids are dense and start
// at 0. The graphic is not loaded until an object using it is pinged.
func (m *Manager) Register(img image.Image) *Graphic {
	g := &Graphic{id: len(m.graphics), src: img}
	m.graphics = append(m.graphics, g)
	return g
}

// Graphic returns the graphic with the given id, or nil.
func (m *Manager) Graphic(id int) *Graphic {
	if id < 0 || id >= len(m.graphics) {
		return nil
	}
	return m.graphics[id]
}

// Len is the number of registered graphics.
func (m *Manager) Len() int { return len(m.graphics) }

// Loaded is the number of resident graphics.
func (m *Manager) Loaded() int {
	n := 0
	for _, g := range m.graphics {
		if g.loaded {
			n++
		}
	}
	return n
}

// MaxGraphicID is the highest resident id, or -1.
func (m *Manager) MaxGraphicID() int { return m.maxLoaded }

// CleanupsTilRemoval is the budget objects ping their graphics with.
func (m *Manager) CleanupsTilRemoval() int { return m.budget }

// AddGraphic uploads g. Failures are logged and the upload is retried the
// next time g is pinged and scheduled.
func (m *Manager) AddGraphic(og object.Graphic) {
	if err := m.Load(og); err != nil {
		Logger().Warn("graphics: load failed", "id", og.ID(), "err", err)
	}
}

// Load uploads og if it is not already resident.
func (m *Manager) Load(og object.Graphic) error {
	g, ok := og.(*Graphic)
	if !ok || g == nil || m.Graphic(g.id) != g {
		return ErrForeignGraphic
	}
	if g.loaded {
		return nil
	}
	if err := m.uploader.Upload(g.id, g.src); err != nil {
		g.pinged = false
		return fmt.Errorf("upload graphic %d: %w", g.id, err)
	}
	g.loaded = true
	if g.remaining <= 0 {
		g.remaining = m.budget
	}
	if g.id > m.maxLoaded {
		m.maxLoaded = g.id
	}
	Logger().Debug("graphics: loaded", "id", g.id)
	return nil
}

// Cleanup spends one unit of every resident graphic's budget and releases
// the graphics that ran out. Hosts call it once per frame after drawing.
func (m *Manager) Cleanup() {
	for _, g := range m.graphics {
		if !g.loaded {
			continue
		}
		g.remaining--
		if g.remaining < 0 {
			m.release(g)
		}
	}
	m.recomputeMax()
}

// ReleaseAll evicts every resident graphic.
func (m *Manager) ReleaseAll() {
	for _, g := range m.graphics {
		if g.loaded {
			m.release(g)
		}
	}
	m.maxLoaded = -1
}

func (m *Manager) release(g *Graphic) {
	m.uploader.Release(g.id)
	g.loaded = false
	g.pinged = false
	g.remaining = 0
	Logger().Debug("graphics: released", "id", g.id)
}

func (m *Manager) recomputeMax() {
	m.maxLoaded = -1
	for i := len(m.graphics) - 1; i >= 0; i-- {
		if m.graphics[i].loaded {
			m.maxLoaded = i
			return
		}
	}
}
