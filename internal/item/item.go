package item

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Definition describes a type of item loaded from the item dataset.
// Definitions are immutable once the catalog is built.
type Definition struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	DisplayName string `yaml:"displayName"`

	// StackSize is the largest quantity allowed in a single slot.
	StackSize int `yaml:"stackSize"`
}

// Validate checks a single definition in isolation.
func (d *Definition) Validate() error {
	el := errors.NewErrorList()
	if d.ID < 0 {
		el.Add(fmt.Errorf("item id must not be negative"))
	}
	if d.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if d.StackSize < 1 {
		el.Add(fmt.Errorf("item stack size must be at least 1"))
	}
	return el.Err()
}

// List is the item dataset as it appears on disk.
type List []Definition

// Validate satisfies storage.ValidatingSpec
func (l List) Validate() error {
	el := errors.NewErrorList()
	seen := make(map[int]bool, len(l))
	for i := range l {
		d := &l[i]
		if err := d.Validate(); err != nil {
			el.Add(fmt.Errorf("item %d (%q): %w", d.ID, d.Name, err))
		}
		if seen[d.ID] {
			el.Add(fmt.Errorf("duplicate item id %d", d.ID))
		}
		seen[d.ID] = true
	}
	return el.Err()
}

// Stack is a quantity of a single item type held in one slot.
type Stack struct {
	ItemID   int `json:"id"`
	Quantity int `json:"quantity"`
}

// NewStack creates a new item stack
func NewStack(id, quantity int) Stack {
	return Stack{ItemID: id, Quantity: quantity}
}

// IsItemEqual checks if two stacks contain the same item type
func (s Stack) IsItemEqual(other Stack) bool {
	return s.ItemID == other.ItemID
}
