// Package glfwinput publishes glfw mouse and gamepad edges to a Target.
// Everything here runs on the main thread with the window.
package glfwinput

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/younwookim/room/internal/infrastructure/input"
)

// buttonCount is the number of buttons in glfw's gamepad mapping.
const buttonCount = len(glfw.GamepadState{}.Buttons)

// Gamepads reports polled gamepad state.
type Gamepads interface {
	// Count is the number of joystick ids to scan.
	Count() int
	// Buttons fills dst with the pressed state of joystick j and reports
	// whether j is a connected gamepad.
	Buttons(j int, dst []bool) bool
}

// Source maps the left mouse button to pointer 0 and gamepads to controller
// slots in order of discovery.
type Source struct {
	target   input.Target
	gamepads Gamepads

	slots *input.Slots
	edges map[int]*input.Edges
	cur   []bool
}

func New(target input.Target, controllers int) *Source {
	return NewWithGamepads(target, GLFW{}, controllers)
}

func NewWithGamepads(target input.Target, g Gamepads, controllers int) *Source {
	return &Source{
		target:   target,
		gamepads: g,
		slots:    input.NewSlots(controllers),
		edges:    make(map[int]*input.Edges),
		cur:      make([]bool, buttonCount),
	}
}

// Attach installs the mouse callback on w.
func (s *Source) Attach(w *glfw.Window) {
	w.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, a glfw.Action, _ glfw.ModifierKey) {
		s.MouseButton(b, a)
	})
}

// MouseButton handles one mouse callback.
func (s *Source) MouseButton(b glfw.MouseButton, a glfw.Action) {
	if b != glfw.MouseButtonLeft {
		return
	}
	switch a {
	case glfw.Press:
		s.target.SignifyNewpress(0)
	case glfw.Release:
		s.target.SignifyReleased(0)
	}
}

// Poll scans the gamepads and publishes button edges. Call it once per
// frame after glfw.PollEvents.
func (s *Source) Poll() {
	for j := 0; j < s.gamepads.Count(); j++ {
		clear(s.cur)
		present := s.gamepads.Buttons(j, s.cur)
		slot, held := s.slots.Lookup(j)

		switch {
		case present && !held:
			var ok bool
			if slot, ok = s.slots.Acquire(j); !ok {
				continue
			}
			s.edges[j] = input.NewEdges(buttonCount)
		case !present && held:
			s.edges[j].Reset(func(b int) { s.target.SignifyButtonReleased(slot, b) })
			delete(s.edges, j)
			s.slots.Release(j)
			continue
		case !present:
			continue
		}

		s.edges[j].Update(s.cur,
			func(b int) { s.target.SignifyButtonNewpress(slot, b) },
			func(b int) { s.target.SignifyButtonReleased(slot, b) },
		)
	}
}

// GLFW implements Gamepads with glfw joysticks.
type GLFW struct{}

func (GLFW) Count() int { return int(glfw.JoystickLast) + 1 }

func (GLFW) Buttons(j int, dst []bool) bool {
	joy := glfw.Joystick(j)
	if !joy.IsGamepad() {
		return false
	}
	state := joy.GetGamepadState()
	if state == nil {
		return false
	}
	for i, a := range state.Buttons {
		if i < len(dst) {
			dst[i] = a == glfw.Press
		}
	}
	return true
}
