package room

import "sync/atomic"

// noButton marks an empty controller latch.
const noButton = -1

// latches hold input edges published by input goroutines until the render
// goroutine drains them. Each slot is an independent atomic word; no
// invariant spans slots.
type latches struct {
	newpress []atomic.Bool
	released []atomic.Bool

	buttonNewpress []atomic.Int32
	buttonReleased []atomic.Int32
}

func newLatches(fingers, controllers int) *latches {
	l := &latches{
		newpress:       make([]atomic.Bool, fingers),
		released:       make([]atomic.Bool, fingers),
		buttonNewpress: make([]atomic.Int32, controllers),
		buttonReleased: make([]atomic.Int32, controllers),
	}
	for i := range controllers {
		l.buttonNewpress[i].Store(noButton)
		l.buttonReleased[i].Store(noButton)
	}
	return l
}

func (l *latches) signifyNewpress(p int) {
	if p >= 0 && p < len(l.newpress) {
		l.newpress[p].Store(true)
	}
}

func (l *latches) signifyReleased(p int) {
	if p >= 0 && p < len(l.released) {
		l.released[p].Store(true)
	}
}

func (l *latches) signifyButtonNewpress(c, button int) {
	if c >= 0 && c < len(l.buttonNewpress) && button >= 0 {
		l.buttonNewpress[c].Store(int32(button))
	}
}

func (l *latches) signifyButtonReleased(c, button int) {
	if c >= 0 && c < len(l.buttonReleased) && button >= 0 {
		l.buttonReleased[c].Store(int32(button))
	}
}

// inputSink receives drained edges.
type inputSink interface {
	Newpress(pointer int)
	Released(pointer int)
	ButtonNewpress(controller, button int)
	ButtonReleased(controller, button int)
}

// drain clears every latch, delivering pending edges to s. Pointers come
// first, newpress before released; then controllers. A latch is cleared
// before its edge is delivered, so an edge published during delivery waits
// for the next drain.
func (l *latches) drain(s inputSink) {
	for p := range l.newpress {
		if l.newpress[p].Swap(false) {
			s.Newpress(p)
		}
		if l.released[p].Swap(false) {
			s.Released(p)
		}
	}
	for c := range l.buttonNewpress {
		if b := l.buttonNewpress[c].Swap(noButton); b != noButton {
			s.ButtonNewpress(c, int(b))
		}
		if b := l.buttonReleased[c].Swap(noButton); b != noButton {
			s.ButtonReleased(c, int(b))
		}
	}
}

// pending reports whether any latch holds an edge.
func (l *latches) pending() bool {
	for p := range l.newpress {
		if l.newpress[p].Load() || l.released[p].Load() {
			return true
		}
	}
	for c := range l.buttonNewpress {
		if l.buttonNewpress[c].Load() != noButton || l.buttonReleased[c].Load() != noButton {
			return true
		}
	}
	return false
}
