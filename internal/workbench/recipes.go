package workbench

import (
	"github.com/pixil98/go-workbench/internal/recipe"
)

// RecipePreview is the first variant of a recipe laid out on the crafting
// grid.
type RecipePreview struct {
	Key    string
	Result recipe.Result
	Cells  []recipe.Cell
}

// Recipes returns a preview of every recipe in declaration order.
func (w *Workbench) Recipes() []RecipePreview {
	all := w.index.All()
	out := make([]RecipePreview, 0, len(all))
	for _, r := range all {
		if len(r.Variants) == 0 {
			continue
		}
		v := r.Variants[0]
		out = append(out, RecipePreview{
			Key:    r.Key,
			Result: v.Result,
			Cells:  recipe.Preview(v, InputWidth, InputHeight),
		})
	}
	return out
}
