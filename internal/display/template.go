package display

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pixil98/go-workbench/internal/item"
)

// DefaultTooltip renders an item as its display name and id.
const DefaultTooltip = "{{ .DisplayName }} (#{{ .ID }})"

// templateFuncs provides utility functions for templates.
var templateFuncs = sprig.TxtFuncMap()

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}

// TooltipData is what a tooltip template can reference.
type TooltipData struct {
	ID          int
	Name        string
	DisplayName string
	StackSize   int

	// Quantity is zero when the tooltip is not for a slot.
	Quantity int
}

// Tooltip renders hover text for items.
type Tooltip struct {
	tmpl *template.Template
}

// NewTooltip parses tmplStr once. An empty string uses DefaultTooltip.
func NewTooltip(tmplStr string) (*Tooltip, error) {
	if tmplStr == "" {
		tmplStr = DefaultTooltip
	}
	tmpl, err := template.New("tooltip").Funcs(templateFuncs).Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return nil, fmt.Errorf("parsing tooltip template: %w", err)
	}
	return &Tooltip{tmpl: tmpl}, nil
}

// Render returns the tooltip for def. stack may be nil.
func (t *Tooltip) Render(def item.Definition, stack *item.Stack) (string, error) {
	data := TooltipData{
		ID:          def.ID,
		Name:        def.Name,
		DisplayName: def.DisplayName,
		StackSize:   def.StackSize,
	}
	if stack != nil {
		data.Quantity = stack.Quantity
	}
	return execute(t.tmpl, data)
}
