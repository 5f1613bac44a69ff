package display

import (
	"strings"

	"github.com/muesli/reflow/padding"
)

// Grid lays cells out in rows of width, each column padded to the widest
// cell in the grid.
func Grid(cells []string, width int) string {
	if width < 1 || len(cells) == 0 {
		return ""
	}

	col := 0
	for _, c := range cells {
		col = max(col, len(c))
	}

	var sb strings.Builder
	for i, c := range cells {
		switch {
		case i == 0:
		case i%width == 0:
			sb.WriteString("\n")
		default:
			sb.WriteString(" ")
		}
		if i%width == width-1 || i == len(cells)-1 {
			sb.WriteString(c)
			continue
		}
		sb.WriteString(padding.String(c, uint(col)))
	}
	return sb.String()
}
