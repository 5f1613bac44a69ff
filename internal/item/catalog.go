package item

import (
	"fmt"
)

// airID is the placeholder "nothing" item present at the head of most item
// datasets. It is a valid id for lookups but is never offered for browsing.
const airID = 0

// Catalog is a read-only lookup of item definitions.
type Catalog struct {
	defs []Definition
	byID map[int]int
}

// NewCatalog builds a catalog from defs, preserving their order.
func NewCatalog(defs []Definition) (*Catalog, error) {
	if err := List(defs).Validate(); err != nil {
		return nil, fmt.Errorf("validating items: %w", err)
	}

	c := &Catalog{
		defs: make([]Definition, len(defs)),
		byID: make(map[int]int, len(defs)),
	}
	copy(c.defs, defs)
	for i, d := range c.defs {
		c.byID[d.ID] = i
	}

	return c, nil
}

// Lookup returns the definition for id.
func (c *Catalog) Lookup(id int) (*Definition, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	d := c.defs[i]
	return &d, nil
}

// StackSize returns the maximum stack size of id.
func (c *Catalog) StackSize(id int) (int, error) {
	d, err := c.Lookup(id)
	if err != nil {
		return 0, err
	}
	return d.StackSize, nil
}

// Has reports whether id is present in the catalog.
func (c *Catalog) Has(id int) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of definitions, air included.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// All returns every browsable definition in declaration order.
func (c *Catalog) All() []Definition {
	out := make([]Definition, 0, len(c.defs))
	for _, d := range c.defs {
		if d.ID == airID {
			continue
		}
		out = append(out, d)
	}
	return out
}
