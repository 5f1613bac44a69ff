package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-workbench/internal/display"
	"github.com/pixil98/go-workbench/internal/item"
	"github.com/pixil98/go-workbench/internal/messaging"
	"github.com/pixil98/go-workbench/internal/recipe"
	"github.com/pixil98/go-workbench/internal/slot"
	"github.com/pixil98/go-workbench/internal/workbench"
)

// defaultInitialStacks seeds a new session with a single oak log.
var defaultInitialStacks = []InitialStackConfig{
	{Region: slot.RegionCraftingInput, Index: 0, Item: 143, Quantity: 1},
}

type SessionConfig struct {
	ID            string `json:"id,omitempty"`
	InventoryRows int    `json:"inventory_rows,omitempty"`
	Tooltip       string `json:"tooltip,omitempty"`
	WrapWidth     int    `json:"wrap_width,omitempty"`
	QueueSize     int    `json:"queue_size,omitempty"`

	// InitialStacks defaults to defaultInitialStacks when omitted. An empty
	// list starts the session with every slot empty.
	InitialStacks []InitialStackConfig `json:"initial_stacks"`
}

type InitialStackConfig struct {
	Region   slot.Region `json:"region"`
	Index    int         `json:"index"`
	Item     int         `json:"item"`
	Quantity int         `json:"quantity"`
}

func (c *InitialStackConfig) validate() error {
	el := errors.NewErrorList()

	switch c.Region {
	case slot.RegionCraftingInput, slot.RegionCraftingOutput, slot.RegionInventory:
	default:
		el.Add(fmt.Errorf("unknown region %q", c.Region))
	}
	if c.Index < 0 {
		el.Add(fmt.Errorf("index must not be negative"))
	}
	if c.Quantity < 1 {
		el.Add(fmt.Errorf("quantity must be at least 1"))
	}

	return el.Err()
}

func (c *SessionConfig) validate() error {
	el := errors.NewErrorList()

	if c.InventoryRows < 0 {
		el.Add(fmt.Errorf("inventory_rows must not be negative"))
	}
	if c.WrapWidth < 0 {
		el.Add(fmt.Errorf("wrap_width must not be negative"))
	}
	if c.QueueSize < 0 {
		el.Add(fmt.Errorf("queue_size must not be negative"))
	}
	if _, err := display.NewTooltip(c.Tooltip); err != nil {
		el.Add(err)
	}
	for i, s := range c.InitialStacks {
		if err := s.validate(); err != nil {
			el.Add(fmt.Errorf("initial_stacks %d: %w", i, err))
		}
	}

	return el.Err()
}

func (c *SessionConfig) initialStacks() []InitialStackConfig {
	if c.InitialStacks == nil {
		return defaultInitialStacks
	}
	return c.InitialStacks
}

func (c *SessionConfig) BuildWorkbench(items *item.Catalog, index *recipe.Index) (*workbench.Workbench, error) {
	var opts []workbench.WorkbenchOpt
	if c.InventoryRows != 0 {
		opts = append(opts, workbench.WithInventoryRows(c.InventoryRows))
	}
	for _, s := range c.initialStacks() {
		opts = append(opts, workbench.WithInitialStack(s.Region, s.Index, item.NewStack(s.Item, s.Quantity)))
	}

	return workbench.NewWorkbench(items, index, opts...)
}

func (c *SessionConfig) BuildSession(bench *workbench.Workbench, broker messaging.Broker) (*messaging.Session, error) {
	tooltip, err := display.NewTooltip(c.Tooltip)
	if err != nil {
		return nil, err
	}

	var opts []messaging.SessionOpt
	if c.ID != "" {
		opts = append(opts, messaging.WithSessionID(c.ID))
	}
	if c.WrapWidth != 0 {
		opts = append(opts, messaging.WithWrapWidth(c.WrapWidth))
	}
	if c.QueueSize != 0 {
		opts = append(opts, messaging.WithQueueSize(c.QueueSize))
	}

	return messaging.NewSession(bench, broker, tooltip, opts...), nil
}
