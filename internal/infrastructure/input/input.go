// Package input holds the device-independent parts of the input sources:
// the Target they publish edges to, slot allocation for touches and
// controllers, and edge detection for polled devices.
package input

// Target receives input edges. Implementations must accept calls from any
// goroutine.
type Target interface {
	SignifyNewpress(pointer int)
	SignifyReleased(pointer int)
	SignifyButtonNewpress(controller, button int)
	SignifyButtonReleased(controller, button int)
}

// Slots maps device ids, such as touch or gamepad ids, to a fixed range of
// dense slot indices. Not safe for concurrent use.
type Slots struct {
	ids  []int
	used []bool
}

func NewSlots(n int) *Slots {
	return &Slots{ids: make([]int, n), used: make([]bool, n)}
}

// Cap is the number of slots.
func (s *Slots) Cap() int { return len(s.ids) }

// Len is the number of occupied slots.
func (s *Slots) Len() int {
	n := 0
	for _, u := range s.used {
		if u {
			n++
		}
	}
	return n
}

// Lookup returns the slot held by id.
func (s *Slots) Lookup(id int) (slot int, ok bool) {
	for i, u := range s.used {
		if u && s.ids[i] == id {
			return i, true
		}
	}
	return -1, false
}

// IDs appends the ids holding a slot to dst, in slot order.
func (s *Slots) IDs(dst []int) []int {
	for i, u := range s.used {
		if u {
			dst = append(dst, s.ids[i])
		}
	}
	return dst
}

// Acquire returns the slot held by id, assigning the lowest free slot if id
// has none. ok is false when every slot is taken.
func (s *Slots) Acquire(id int) (slot int, ok bool) {
	if slot, ok := s.Lookup(id); ok {
		return slot, true
	}
	for i, u := range s.used {
		if !u {
			s.used[i] = true
			s.ids[i] = id
			return i, true
		}
	}
	return -1, false
}

// Release frees the slot held by id and returns it.
func (s *Slots) Release(id int) (slot int, ok bool) {
	slot, ok = s.Lookup(id)
	if ok {
		s.used[slot] = false
	}
	return slot, ok
}

// Edges detects press and release edges of polled buttons.
type Edges struct {
	prev []bool
}

func NewEdges(n int) *Edges {
	return &Edges{prev: make([]bool, n)}
}

// Update compares cur with the previous poll and calls press or release
// for every button that changed. Buttons beyond the tracked count are
// ignored.
func (e *Edges) Update(cur []bool, press, release func(button int)) {
	for i := 0; i < len(cur) && i < len(e.prev); i++ {
		switch {
		case cur[i] && !e.prev[i]:
			press(i)
		case !cur[i] && e.prev[i]:
			release(i)
		}
		e.prev[i] = cur[i]
	}
}

// Reset forgets the previous poll, releasing every held button through
// release.
func (e *Edges) Reset(release func(button int)) {
	for i, down := range e.prev {
		if down && release != nil {
			release(i)
		}
		e.prev[i] = false
	}
}
