package recipe

// Preview lays a variant out on a width by height grid for listing. Shaped
// variants keep their rows, each padded to width. Shapeless ingredients fill
// positions row-major. Cells are either Filled or Absent.
func Preview(d Definition, width, height int) []Cell {
	out := make([]Cell, width*height)

	if d.IsShaped() {
		for y, row := range d.Shape {
			if y >= height {
				break
			}
			for x, c := range row {
				if x >= width {
					break
				}
				if c.Kind == Filled {
					out[y*width+x] = c
				}
			}
		}
		return out
	}

	for i, id := range d.Ingredients {
		if i >= len(out) {
			break
		}
		out[i] = FilledCell(id)
	}
	return out
}
