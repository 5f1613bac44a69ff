package recipe

import "slices"

// Matcher resolves a crafting grid against an index.
type Matcher struct {
	index *Index
}

func NewMatcher(idx *Index) *Matcher {
	return &Matcher{index: idx}
}

// Match returns the output crafted by g, if any.
//
// Recipes are scanned in declaration order. The first variant whose shape
// equals the grid's shape wins outright. The first shapeless variant whose
// ingredients equal the grid's ingredients is kept as a fallback while the
// scan continues looking for a shaped match.
func (m *Matcher) Match(g *Grid) (Result, bool) {
	ingredients := g.Ingredients()
	if len(ingredients) == 0 {
		return Result{}, false
	}
	shape := g.Shape()

	var shapeless *Result
	for _, r := range m.index.recipes {
		for i := range r.Variants {
			v := &r.Variants[i]
			if v.IsShaped() && v.Shape.Equal(shape) {
				return v.Result, true
			}
			if shapeless == nil && v.IsShapeless() && slices.Equal(v.Ingredients, ingredients) {
				res := v.Result
				shapeless = &res
			}
		}
	}

	if shapeless != nil {
		return *shapeless, true
	}
	return Result{}, false
}
