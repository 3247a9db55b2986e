package scroll

import "fmt"

// Handle is a non-owning reference to a View held in a [Table]. The zero
// Handle refers to nothing.
type Handle struct {
	index      uint32
	generation uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.generation == 0
}

func (h Handle) String() string {
	if h.IsZero() {
		return "scroll.Handle(nil)"
	}
	return fmt.Sprintf("scroll.Handle(%d#%d)", h.index, h.generation)
}

type slot struct {
	view       View
	generation uint32
	live       bool
}

// Table is the host-owned registry of scroll views. The engine only keeps
// Handles, so removing a view from the table ends its participation even
// if a capture still names it. A Table is not safe for concurrent use.
type Table struct {
	slots []slot
	free  []uint32
	count int
}

// Insert registers v and returns its handle.
func (t *Table) Insert(v View) Handle {
	var index uint32
	if n := len(t.free); n > 0 {
		index = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		index = uint32(len(t.slots))
		t.slots = append(t.slots, slot{})
	}
	s := &t.slots[index]
	s.generation++
	s.view = v
	s.live = true
	t.count++
	return Handle{index: index, generation: s.generation}
}

// Remove unregisters the view behind h. Stale handles are ignored.
func (t *Table) Remove(h Handle) bool {
	s := t.slot(h)
	if s == nil {
		return false
	}
	s.view = nil
	s.live = false
	t.free = append(t.free, h.index)
	t.count--
	return true
}

// Lookup returns the view behind h, if it is still registered.
func (t *Table) Lookup(h Handle) (View, bool) {
	s := t.slot(h)
	if s == nil {
		return nil, false
	}
	return s.view, true
}

// Len returns the number of registered views.
func (t *Table) Len() int {
	return t.count
}

func (t *Table) slot(h Handle) *slot {
	if t == nil || h.IsZero() || int(h.index) >= len(t.slots) {
		return nil
	}
	s := &t.slots[h.index]
	if !s.live || s.generation != h.generation {
		return nil
	}
	return s
}
