package slot

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Region names a fixed-capacity collection of slots.
type Region string

const (
	RegionCraftingInput  Region = "crafting_input"
	RegionCraftingOutput Region = "crafting_output"
	RegionInventory      Region = "inventory"
)

func (r Region) String() string {
	return string(r)
}

// Layout fixes a region's capacity and how it is read as a grid.
type Layout struct {
	Region   Region `json:"region"`
	Capacity int    `json:"capacity"`

	// Width is the number of slots per row. Zero means a single row.
	Width int `json:"width,omitempty"`
}

func (l Layout) Validate() error {
	el := errors.NewErrorList()
	if l.Region == "" {
		el.Add(fmt.Errorf("region name is required"))
	}
	if l.Capacity < 1 {
		el.Add(fmt.Errorf("region %q: capacity must be at least 1", l.Region))
	}
	if l.Width < 0 {
		el.Add(fmt.Errorf("region %q: width must not be negative", l.Region))
	} else if l.Width > 0 && l.Capacity%l.Width != 0 {
		el.Add(fmt.Errorf("region %q: capacity %d is not a multiple of width %d", l.Region, l.Capacity, l.Width))
	}
	return el.Err()
}

// RowWidth returns the effective number of slots per row.
func (l Layout) RowWidth() int {
	if l.Width == 0 {
		return l.Capacity
	}
	return l.Width
}

// Rows returns the number of rows in the region.
func (l Layout) Rows() int {
	w := l.RowWidth()
	if w == 0 {
		return 0
	}
	return l.Capacity / w
}
