// Package terminput turns tcell events into Target calls. A terminal reports
// key presses but not releases, so a key is a tap: a press and a release of
// the bound button delivered together.
package terminput

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/room/internal/infrastructure/input"
)

// Controller is the controller slot keys are reported on.
const Controller = 0

// DefaultKeys binds keys to standard gamepad button numbers.
var DefaultKeys = map[rune]int{
	'j': 0, // bottom face button
	'k': 1,
	'u': 2,
	'i': 3,
	'q': 4, // shoulders
	'e': 5,
	'w': 12, // dpad
	's': 13,
	'a': 14,
	'd': 15,
	' ': 9, // start
}

// Source handles events from one screen. Handle may be called from the
// event goroutine while the Target is drained on another.
type Source struct {
	target input.Target
	keys   map[rune]int
	down   bool

	// OnQuit and OnResize are called from the event goroutine.
	OnQuit   func()
	OnResize func(w, h int)
}

func New(target input.Target, keys map[rune]int) *Source {
	if keys == nil {
		keys = DefaultKeys
	}
	return &Source{target: target, keys: keys}
}

// Run polls screen until it is finalized.
func (s *Source) Run(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		s.Handle(ev)
	}
}

// Handle publishes the edges of one event.
func (s *Source) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !s.down {
			s.target.SignifyNewpress(0)
		} else if !down && s.down {
			s.target.SignifyReleased(0)
		}
		s.down = down

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			if s.OnQuit != nil {
				s.OnQuit()
			}
			return
		case tcell.KeyRune:
			if b, ok := s.keys[ev.Rune()]; ok {
				s.target.SignifyButtonNewpress(Controller, b)
				s.target.SignifyButtonReleased(Controller, b)
			}
		}

	case *tcell.EventResize:
		if s.OnResize != nil {
			w, h := ev.Size()
			s.OnResize(w, h)
		}
	}
}
