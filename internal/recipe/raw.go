package recipe

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"
)

type rawKind uint8

const (
	rawInvalid rawKind = iota
	rawNull
	rawInt
)

// RawCell is a single item reference as it appears in the recipe dataset.
// It records whether the source value was an integer, null, or something
// else so that malformed data is rejected when the index is built rather
// than when it is decoded.
type RawCell struct {
	kind  rawKind
	id    int
	value string
}

// IntCell returns a RawCell holding item id.
func IntCell(id int) RawCell {
	return RawCell{kind: rawInt, id: id}
}

// NullCell returns a RawCell holding an explicit null.
func NullCell() RawCell {
	return RawCell{kind: rawNull}
}

// cellFromNode classifies a single dataset value. Null has to be seen on
// the node itself: yaml.v3 skips unmarshalers for null values and drops them
// from sequences.
func cellFromNode(n *yaml.Node) RawCell {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return RawCell{kind: rawInvalid, value: fmt.Sprintf("<%s>", n.ShortTag())}
	}

	switch n.ShortTag() {
	case "!!null":
		return NullCell()
	case "!!int":
		var id int
		if err := n.Decode(&id); err == nil {
			return IntCell(id)
		}
	}
	return RawCell{kind: rawInvalid, value: n.Value}
}

// cellsFromNode reads a sequence of cells. A null node is an absent list.
func cellsFromNode(n *yaml.Node) ([]RawCell, error) {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a list, got %s", n.Line, n.ShortTag())
	}

	cells := make([]RawCell, len(n.Content))
	for i, c := range n.Content {
		cells[i] = cellFromNode(c)
	}
	return cells, nil
}

func (c RawCell) String() string {
	switch c.kind {
	case rawInt:
		return fmt.Sprintf("%d", c.id)
	case rawNull:
		return "null"
	default:
		return fmt.Sprintf("%q", c.value)
	}
}

func shapeFromNode(n *yaml.Node) ([][]RawCell, error) {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a list of rows, got %s", n.Line, n.ShortTag())
	}

	shape := make([][]RawCell, len(n.Content))
	for y, rowNode := range n.Content {
		row, err := cellsFromNode(rowNode)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", y, err)
		}
		shape[y] = row
	}
	return shape, nil
}

// RawResult is the output of a recipe variant.
type RawResult struct {
	ID    RawCell
	Count int
}

func (r *RawResult) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: result must be a mapping", value.Line)
	}

	*r = RawResult{ID: NullCell()}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		switch key.Value {
		case "id":
			r.ID = cellFromNode(val)
		case "count":
			if err := val.Decode(&r.Count); err != nil {
				return fmt.Errorf("result count: %w", err)
			}
		}
	}
	return nil
}

// RawVariant is one way of crafting a recipe's output. Exactly the fields
// present in the source record are populated.
type RawVariant struct {
	InShape     [][]RawCell
	Ingredients []RawCell
	Result      RawResult
}

// UnmarshalYAML reads a variant from its mapping node so that null cells
// keep their position in shape rows and ingredient lists. Unknown keys are
// ignored.
func (v *RawVariant) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: recipe variant must be a mapping", value.Line)
	}

	*v = RawVariant{Result: RawResult{ID: NullCell()}}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		switch key.Value {
		case "inShape":
			shape, err := shapeFromNode(val)
			if err != nil {
				return fmt.Errorf("inShape: %w", err)
			}
			v.InShape = shape
		case "ingredients":
			cells, err := cellsFromNode(val)
			if err != nil {
				return fmt.Errorf("ingredients: %w", err)
			}
			v.Ingredients = cells
		case "result":
			if err := val.Decode(&v.Result); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate checks a variant in isolation.
func (v *RawVariant) Validate() error {
	el := errors.NewErrorList()

	if len(v.InShape) == 0 && len(v.Ingredients) == 0 {
		el.Add(fmt.Errorf("neither inShape nor ingredients present"))
	}

	filled := 0
	for y, row := range v.InShape {
		for x, c := range row {
			switch c.kind {
			case rawInt:
				filled++
			case rawInvalid:
				el.Add(fmt.Errorf("inShape[%d][%d]: malformed cell %s", y, x, c))
			}
		}
	}
	if len(v.InShape) > 0 && filled == 0 {
		el.Add(fmt.Errorf("inShape has no items"))
	}

	for i, c := range v.Ingredients {
		if c.kind != rawInt {
			el.Add(fmt.Errorf("ingredients[%d]: malformed ingredient %s", i, c))
		}
	}

	if v.Result.ID.kind != rawInt {
		el.Add(fmt.Errorf("result id must be an item id, got %s", v.Result.ID))
	}
	if v.Result.Count < 1 {
		el.Add(fmt.Errorf("result count must be at least 1"))
	}

	return el.Err()
}

// TableEntry groups the variants that produce one output key.
type TableEntry struct {
	Key      string
	Variants []RawVariant
}

// Table is the recipe dataset in declaration order.
type Table []TableEntry

// UnmarshalYAML decodes a mapping of output key to variants, keeping the
// mapping's key order.
func (t *Table) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.DocumentNode && len(value.Content) == 1 {
		value = value.Content[0]
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: recipe table must be a mapping", value.Line)
	}

	entries := make(Table, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]

		if valNode.Kind != yaml.SequenceNode {
			return fmt.Errorf("recipe %q: line %d: variants must be a list", keyNode.Value, valNode.Line)
		}
		variants := make([]RawVariant, len(valNode.Content))
		for j, n := range valNode.Content {
			if err := variants[j].UnmarshalYAML(n); err != nil {
				return fmt.Errorf("recipe %q variant %d: %w", keyNode.Value, j, err)
			}
		}
		entries = append(entries, TableEntry{Key: keyNode.Value, Variants: variants})
	}

	*t = entries
	return nil
}

// Validate satisfies storage.ValidatingSpec
func (t Table) Validate() error {
	el := errors.NewErrorList()
	seen := make(map[string]bool, len(t))
	for _, e := range t {
		if seen[e.Key] {
			el.Add(fmt.Errorf("recipe %q: duplicate key", e.Key))
		}
		seen[e.Key] = true

		if len(e.Variants) == 0 {
			el.Add(fmt.Errorf("recipe %q: no variants", e.Key))
		}
		for i := range e.Variants {
			if err := e.Variants[i].Validate(); err != nil {
				el.Add(fmt.Errorf("recipe %q variant %d: %w", e.Key, i, err))
			}
		}
	}
	return el.Err()
}
