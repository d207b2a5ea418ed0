// Package ebiteninput turns ebiten touch, mouse and gamepad edges into
// Target calls. Poll must run inside ebiten's Update.
package ebiteninput

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/room/internal/infrastructure/input"
)

// mouseID is the touch id the left mouse button is tracked under.
const mouseID = -1

// Devices is the edge-level view of the input hardware.
type Devices interface {
	AppendJustPressedTouches(dst []int) []int
	TouchJustReleased(id int) bool
	MouseJustPressed() bool
	MouseJustReleased() bool

	AppendJustConnectedGamepads(dst []int) []int
	GamepadJustDisconnected(id int) bool
	AppendJustPressedButtons(gamepad int, dst []int) []int
	ButtonJustReleased(gamepad, button int) bool
}

// Source routes touches and the left mouse button to pointer slots, and
// standard-layout gamepads to controller slots.
type Source struct {
	target  input.Target
	devices Devices

	pointers    *input.Slots
	controllers *input.Slots

	buf  []int
	held []int
}

// New creates a source reading from ebiten.
func New(target input.Target, fingers, controllers int) *Source {
	return NewWithDevices(target, Ebiten{}, fingers, controllers)
}

func NewWithDevices(target input.Target, d Devices, fingers, controllers int) *Source {
	return &Source{
		target:      target,
		devices:     d,
		pointers:    input.NewSlots(fingers),
		controllers: input.NewSlots(controllers),
	}
}

// SetTarget redirects subsequent edges, e.g. to a replay recorder.
func (s *Source) SetTarget(t input.Target) { s.target = t }

// Poll publishes this tick's edges.
func (s *Source) Poll() {
	s.pollPointers()
	s.pollControllers()
}

func (s *Source) pollPointers() {
	s.held = s.pointers.IDs(s.held[:0])
	for _, id := range s.held {
		released := false
		if id == mouseID {
			released = s.devices.MouseJustReleased()
		} else {
			released = s.devices.TouchJustReleased(id)
		}
		if released {
			slot, _ := s.pointers.Release(id)
			s.target.SignifyReleased(slot)
		}
	}

	s.buf = s.devices.AppendJustPressedTouches(s.buf[:0])
	if s.devices.MouseJustPressed() {
		s.buf = append(s.buf, mouseID)
	}
	for _, id := range s.buf {
		if slot, ok := s.pointers.Acquire(id); ok {
			s.target.SignifyNewpress(slot)
		}
	}
}

func (s *Source) pollControllers() {
	s.buf = s.devices.AppendJustConnectedGamepads(s.buf[:0])
	for _, id := range s.buf {
		s.controllers.Acquire(id)
	}

	s.held = s.controllers.IDs(s.held[:0])
	for _, id := range s.held {
		if s.devices.GamepadJustDisconnected(id) {
			s.controllers.Release(id)
			continue
		}
		slot, _ := s.controllers.Lookup(id)
		for b := 0; b <= int(ebiten.StandardGamepadButtonMax); b++ {
			if s.devices.ButtonJustReleased(id, b) {
				s.target.SignifyButtonReleased(slot, b)
			}
		}
		s.buf = s.devices.AppendJustPressedButtons(id, s.buf[:0])
		for _, b := range s.buf {
			s.target.SignifyButtonNewpress(slot, b)
		}
	}
}

// Ebiten implements Devices with inpututil.
type Ebiten struct{}

func (Ebiten) AppendJustPressedTouches(dst []int) []int {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		dst = append(dst, int(id))
	}
	return dst
}

func (Ebiten) TouchJustReleased(id int) bool {
	return inpututil.IsTouchJustReleased(ebiten.TouchID(id))
}

func (Ebiten) MouseJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (Ebiten) MouseJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (Ebiten) AppendJustConnectedGamepads(dst []int) []int {
	for _, id := range inpututil.AppendJustConnectedGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			dst = append(dst, int(id))
		}
	}
	return dst
}

func (Ebiten) GamepadJustDisconnected(id int) bool {
	return inpututil.IsGamepadJustDisconnected(ebiten.GamepadID(id))
}

func (Ebiten) AppendJustPressedButtons(gamepad int, dst []int) []int {
	for _, b := range inpututil.AppendJustPressedStandardGamepadButtons(ebiten.GamepadID(gamepad), nil) {
		dst = append(dst, int(b))
	}
	return dst
}

func (Ebiten) ButtonJustReleased(gamepad, button int) bool {
	return inpututil.IsStandardGamepadButtonJustReleased(ebiten.GamepadID(gamepad), ebiten.StandardGamepadButton(button))
}
