package recipe

import (
	"fmt"
	"slices"

	"github.com/pixil98/go-errors"
)

// Result is the output produced by a matched recipe.
type Result struct {
	ItemID int `json:"id"`
	Count  int `json:"count"`
}

// Definition is one normalized variant of a recipe. Shape is nil for
// shapeless variants and Ingredients is nil for shaped ones.
type Definition struct {
	Shape       Pattern
	Ingredients []int
	Result      Result
}

// IsShaped reports whether the variant requires a specific arrangement.
func (d *Definition) IsShaped() bool {
	return d.Shape != nil
}

// IsShapeless reports whether the variant accepts any arrangement of its
// ingredients.
func (d *Definition) IsShapeless() bool {
	return d.Ingredients != nil
}

// Recipe is every variant producing a single output key.
type Recipe struct {
	Key      string
	Variants []Definition
}

// ItemChecker reports whether an item id exists.
type ItemChecker interface {
	Has(id int) bool
}

// Index is the immutable, ordered set of recipes. Declaration order decides
// which recipe wins when more than one matches a grid.
type Index struct {
	recipes []Recipe
}

// NewIndex validates and normalizes table. Any invalid record fails the
// whole build.
func NewIndex(table Table) (*Index, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecipe, err)
	}

	idx := &Index{recipes: make([]Recipe, 0, len(table))}
	for _, e := range table {
		r := Recipe{Key: e.Key, Variants: make([]Definition, 0, len(e.Variants))}
		for _, v := range e.Variants {
			r.Variants = append(r.Variants, normalize(v))
		}
		idx.recipes = append(idx.recipes, r)
	}

	return idx, nil
}

func normalize(v RawVariant) Definition {
	d := Definition{
		Result: Result{ItemID: v.Result.ID.id, Count: v.Result.Count},
	}

	if len(v.InShape) > 0 {
		p := make(Pattern, len(v.InShape))
		for y, row := range v.InShape {
			p[y] = make([]Cell, len(row))
			for x, c := range row {
				if c.kind == rawInt {
					p[y][x] = FilledCell(c.id)
				} else {
					p[y][x] = EmptyCell
				}
			}
		}
		d.Shape = trimPattern(p)
	}

	if len(v.Ingredients) > 0 {
		d.Ingredients = make([]int, len(v.Ingredients))
		for i, c := range v.Ingredients {
			d.Ingredients[i] = c.id
		}
		slices.Sort(d.Ingredients)
	}

	return d
}

// All returns every recipe in declaration order.
func (idx *Index) All() []Recipe {
	return slices.Clone(idx.recipes)
}

// Len returns the number of recipes.
func (idx *Index) Len() int {
	return len(idx.recipes)
}

// CheckItems verifies every item referenced by the index exists.
func (idx *Index) CheckItems(items ItemChecker) error {
	el := errors.NewErrorList()
	check := func(key string, id int) {
		if !items.Has(id) {
			el.Add(fmt.Errorf("recipe %q: item %d: %w", key, id, ErrUnknownItem))
		}
	}

	for _, r := range idx.recipes {
		for _, v := range r.Variants {
			for _, row := range v.Shape {
				for _, c := range row {
					if c.Kind == Filled {
						check(r.Key, c.ItemID)
					}
				}
			}
			for _, id := range v.Ingredients {
				check(r.Key, id)
			}
			check(r.Key, v.Result.ItemID)
		}
	}

	return el.Err()
}
