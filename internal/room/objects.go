package room

import "github.com/younwookim/room/internal/domain/object"

// objectSet is an insertion-ordered list of objects bounded by the arena
// capacity. Iteration re-reads the length every step, so objects added
// during a pass are visited in that pass.
type objectSet struct {
	items    []object.GameObject
	capacity int
}

func newObjectSet(capacity int) objectSet {
	return objectSet{
		items:    make([]object.GameObject, 0, capacity),
		capacity: capacity,
	}
}

func (s *objectSet) add(o object.GameObject) error {
	if isNil(o) {
		return ErrNilObject
	}
	if len(s.items) >= s.capacity {
		return ErrRoomFull
	}
	s.items = append(s.items, o)
	return nil
}

// isNil catches nil interfaces and typed-nil pointers. A nil outer pointer
// calling a promoted IsNil panics while taking the embedded field's address.
func isNil(o object.GameObject) (null bool) {
	if o == nil {
		return true
	}
	n, ok := o.(object.Nilable)
	if !ok {
		return false
	}
	defer func() {
		if recover() != nil {
			null = true
		}
	}()
	return n.IsNil()
}

// remove deletes the first occurrence of o.
func (s *objectSet) remove(o object.GameObject) bool {
	for i, it := range s.items {
		if it == o {
			copy(s.items[i:], s.items[i+1:])
			s.items[len(s.items)-1] = nil
			s.items = s.items[:len(s.items)-1]
			return true
		}
	}
	return false
}

func (s *objectSet) clear() {
	clear(s.items)
	s.items = s.items[:0]
}

func (s *objectSet) len() int { return len(s.items) }

func (s *objectSet) at(i int) object.GameObject { return s.items[i] }

func (s *objectSet) snapshot() []object.GameObject {
	out := make([]object.GameObject, len(s.items))
	copy(out, s.items)
	return out
}
