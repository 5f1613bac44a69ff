package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/pixil98/go-workbench/internal/item"
)

func TestTooltip_Render(t *testing.T) {
	pearl := item.Definition{ID: 331, Name: "ender_pearl", DisplayName: "Ender Pearl", StackSize: 16}

	tests := map[string]struct {
		tmpl   string
		stack  *item.Stack
		exp    string
		expErr string
	}{
		"default": {
			exp: "Ender Pearl (#331)",
		},
		"quantity": {
			tmpl:  "{{ .DisplayName }} x{{ .Quantity }}/{{ .StackSize }}",
			stack: &item.Stack{ItemID: 331, Quantity: 3},
			exp:   "Ender Pearl x3/16",
		},
		"sprig functions": {
			tmpl: "{{ .Name | replace \"_\" \" \" | title }}",
			exp:  "Ender Pearl",
		},
		"unknown field": {
			tmpl:   "{{ .Colour }}",
			expErr: "executing template",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tip, err := NewTooltip(tt.tmpl)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			result, err := tip.Render(pearl, tt.stack)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "tooltip", result, tt.exp)
		})
	}
}

func TestNewTooltip_ParseError(t *testing.T) {
	_, err := NewTooltip("{{ .DisplayName ")
	testutil.AssertErrorContains(t, err, "parsing tooltip template")
}

func TestGrid(t *testing.T) {
	tests := map[string]struct {
		cells []string
		width int
		exp   string
	}{
		"empty": {
			width: 3,
			exp:   "",
		},
		"zero width": {
			cells: []string{"a"},
			exp:   "",
		},
		"single row": {
			cells: []string{"a", "b", "c"},
			width: 3,
			exp:   "a b c",
		},
		"padded columns": {
			cells: []string{"143", ".", ".", ".", "5", "."},
			width: 3,
			exp:   "143 .   .\n.   5   .",
		},
		"partial last row": {
			cells: []string{"1", "2", "3", "4"},
			width: 3,
			exp:   "1 2 3\n4",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "grid", Grid(tt.cells, tt.width), tt.exp)
		})
	}
}

func TestWrapWidth(t *testing.T) {
	text := "Oak Planks (#5) Oak Log (#143)"

	testutil.AssertEqual(t, "unwrapped", WrapWidth(text, 0), text)
	testutil.AssertEqual(t, "default", Wrap(text), text)

	lines := strings.Split(WrapWidth(text, 16), "\n")
	testutil.AssertEqual(t, "line count", len(lines), 2)
	testutil.AssertEqual(t, "first line", lines[0], "Oak Planks (#5)")
}

func TestCapitalize(t *testing.T) {
	testutil.AssertEqual(t, "empty", Capitalize(""), "")
	testutil.AssertEqual(t, "word", Capitalize("slot is empty"), "Slot is empty")
}
