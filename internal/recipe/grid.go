package recipe

import "slices"

// Grid is a snapshot of the crafting input laid out row-major.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid returns an empty width by height grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Set places item id at column x, row y. Out of range positions are ignored.
func (g *Grid) Set(x, y, id int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = FilledCell(id)
}

// SetIndex places item id at row-major position i.
func (g *Grid) SetIndex(i, id int) {
	if g.width == 0 {
		return
	}
	g.Set(i%g.width, i/g.width, id)
}

// At returns the cell at column x, row y.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Cell{}
	}
	return g.cells[y*g.width+x]
}

// Ingredients returns the item id of every filled cell, sorted. Quantities
// are not part of the grid, so each occupied slot counts once.
func (g *Grid) Ingredients() []int {
	var out []int
	for _, c := range g.cells {
		if c.Kind == Filled {
			out = append(out, c.ItemID)
		}
	}
	slices.Sort(out)
	return out
}

// Shape returns the grid as a pattern comparable against recipe shapes.
//
// Columns filled in the first row mark every other row's empty cell in that
// column as EmptyInPattern; remaining empty cells are dropped per row and rows
// left with nothing are dropped. Only the first row anchors column alignment.
func (g *Grid) Shape() Pattern {
	rows := make(Pattern, g.height)
	for y := range rows {
		rows[y] = slices.Clone(g.cells[y*g.width : (y+1)*g.width])
	}

	if g.height > 1 {
		for x, c := range rows[0] {
			if c.Kind != Filled {
				continue
			}
			for y := 1; y < g.height; y++ {
				if rows[y][x].Kind == Absent {
					rows[y][x] = EmptyCell
				}
			}
		}
	}

	var out Pattern
	for _, row := range rows {
		kept := slices.DeleteFunc(row, func(c Cell) bool { return c.Kind == Absent })
		if len(kept) > 0 {
			out = append(out, kept)
		}
	}
	return out
}
