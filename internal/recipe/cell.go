package recipe

import (
	"fmt"
	"strings"
)

// CellKind distinguishes the three states a pattern cell can be in.
type CellKind uint8

const (
	// Absent cells lie outside the pattern bounds.
	Absent CellKind = iota
	// EmptyInPattern cells are inside the pattern bounds but must hold nothing.
	EmptyInPattern
	// Filled cells require a specific item.
	Filled
)

// Cell is a single position of a shaped pattern or crafting grid.
type Cell struct {
	Kind   CellKind
	ItemID int
}

// EmptyCell is an in-pattern cell that requires no item.
var EmptyCell = Cell{Kind: EmptyInPattern}

// FilledCell returns a cell requiring item id.
func FilledCell(id int) Cell {
	return Cell{Kind: Filled, ItemID: id}
}

func (c Cell) String() string {
	switch c.Kind {
	case Filled:
		return fmt.Sprintf("%d", c.ItemID)
	case EmptyInPattern:
		return "_"
	default:
		return "."
	}
}

// Pattern is a jagged row-major arrangement of cells.
type Pattern [][]Cell

// Equal compares two patterns cell by cell, including row and column counts.
func (p Pattern) Equal(o Pattern) bool {
	if len(p) != len(o) {
		return false
	}
	for y := range p {
		if len(p[y]) != len(o[y]) {
			return false
		}
		for x := range p[y] {
			if p[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

func (p Pattern) String() string {
	rows := make([]string, len(p))
	for y, row := range p {
		cells := make([]string, len(row))
		for x, c := range row {
			cells[x] = c.String()
		}
		rows[y] = "[" + strings.Join(cells, " ") + "]"
	}
	return strings.Join(rows, "")
}

// trimPattern drops outer rows and columns that contain no filled cell.
// Rows keep their own length, so jagged input stays jagged.
func trimPattern(p Pattern) Pattern {
	first, last := -1, -1
	minCol, maxCol := -1, -1
	for y, row := range p {
		for x, c := range row {
			if c.Kind != Filled {
				continue
			}
			if first == -1 {
				first = y
			}
			last = y
			if minCol == -1 || x < minCol {
				minCol = x
			}
			if x > maxCol {
				maxCol = x
			}
		}
	}
	if first == -1 {
		return nil
	}

	out := make(Pattern, 0, last-first+1)
	for _, row := range p[first : last+1] {
		end := min(len(row), maxCol+1)
		if end <= minCol {
			out = append(out, []Cell{})
			continue
		}
		trimmed := make([]Cell, end-minCol)
		copy(trimmed, row[minCol:end])
		out = append(out, trimmed)
	}
	return out
}
