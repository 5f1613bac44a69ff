package slot

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-workbench/internal/item"
)

// Change describes a single slot mutation. Before and After are nil when
// the slot was or became empty.
type Change struct {
	Region Region
	Index  int
	Before *item.Stack
	After  *item.Stack
}

type listener struct {
	id int
	fn func(Change)
}

type region struct {
	layout Layout
	slots  []*item.Stack
}

// Store holds every slot region. It performs no cross-slot validation;
// stacking rules are enforced by its callers.
//
// Store is not safe for concurrent use. Listeners run synchronously on the
// goroutine that made the change.
type Store struct {
	regions map[Region]*region
	order   []Region

	listeners []listener
	nextID    int
}

// NewStore creates a store with every slot of every region empty.
func NewStore(layouts ...Layout) (*Store, error) {
	el := errors.NewErrorList()
	s := &Store{regions: make(map[Region]*region, len(layouts))}

	for _, l := range layouts {
		if err := l.Validate(); err != nil {
			el.Add(err)
			continue
		}
		if _, ok := s.regions[l.Region]; ok {
			el.Add(fmt.Errorf("duplicate region %q", l.Region))
			continue
		}
		s.regions[l.Region] = &region{
			layout: l,
			slots:  make([]*item.Stack, l.Capacity),
		}
		s.order = append(s.order, l.Region)
	}

	if err := el.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// Regions returns the region names in construction order.
func (s *Store) Regions() []Region {
	out := make([]Region, len(s.order))
	copy(out, s.order)
	return out
}

// Layout returns the layout of r.
func (s *Store) Layout(r Region) (Layout, error) {
	reg, ok := s.regions[r]
	if !ok {
		return Layout{}, fmt.Errorf("%s: %w", r, ErrUnknownRegion)
	}
	return reg.layout, nil
}

func (s *Store) slot(r Region, index int) (*region, error) {
	reg, ok := s.regions[r]
	if !ok {
		return nil, fmt.Errorf("%s: %w", r, ErrUnknownRegion)
	}
	if index < 0 || index >= len(reg.slots) {
		return nil, fmt.Errorf("%s[%d]: %w", r, index, ErrIndexOutOfRange)
	}
	return reg, nil
}

// Get returns a copy of the stack at r[index], or nil if the slot is empty.
func (s *Store) Get(r Region, index int) (*item.Stack, error) {
	reg, err := s.slot(r, index)
	if err != nil {
		return nil, err
	}
	return clone(reg.slots[index]), nil
}

// Set replaces the contents of r[index]. A nil stack or one with a quantity
// below 1 empties the slot. Listeners are notified if the contents changed.
func (s *Store) Set(r Region, index int, stack *item.Stack) error {
	reg, err := s.slot(r, index)
	if err != nil {
		return err
	}

	if stack != nil && stack.Quantity < 1 {
		stack = nil
	}

	before := reg.slots[index]
	if equal(before, stack) {
		return nil
	}

	reg.slots[index] = clone(stack)
	s.notify(Change{
		Region: r,
		Index:  index,
		Before: clone(before),
		After:  clone(stack),
	})
	return nil
}

// Clear empties r[index].
func (s *Store) Clear(r Region, index int) error {
	return s.Set(r, index, nil)
}

// Snapshot returns a copy of every slot in r.
func (s *Store) Snapshot(r Region) ([]*item.Stack, error) {
	reg, ok := s.regions[r]
	if !ok {
		return nil, fmt.Errorf("%s: %w", r, ErrUnknownRegion)
	}
	out := make([]*item.Stack, len(reg.slots))
	for i, st := range reg.slots {
		out[i] = clone(st)
	}
	return out, nil
}

// Subscribe registers fn to be called after every change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Change)) func() {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(c Change) {
	// Listeners may unsubscribe while being notified.
	ls := make([]listener, len(s.listeners))
	copy(ls, s.listeners)
	for _, l := range ls {
		l.fn(c)
	}
}

func clone(st *item.Stack) *item.Stack {
	if st == nil {
		return nil
	}
	c := *st
	return &c
}

func equal(a, b *item.Stack) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
