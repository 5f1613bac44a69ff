package workbench

import (
	"fmt"
	"log/slog"

	"github.com/pixil98/go-workbench/internal/item"
	"github.com/pixil98/go-workbench/internal/recipe"
	"github.com/pixil98/go-workbench/internal/slot"
	"github.com/pixil98/go-workbench/internal/transfer"
)

const (
	InputWidth  = 3
	InputHeight = 3

	InventoryWidth       = 9
	DefaultInventoryRows = 4
)

type placement struct {
	region slot.Region
	index  int
	stack  item.Stack
}

// Workbench ties the slot store, recipe matcher and transfer engine into a
// single crafting session. Every change to the crafting input re-runs the
// matcher and rewrites the crafting output before the change returns.
//
// Like the pieces it is built from, a Workbench must be driven from a single
// goroutine.
type Workbench struct {
	items   *item.Catalog
	index   *recipe.Index
	matcher *recipe.Matcher
	store   *slot.Store
	engine  *transfer.Engine

	inventoryRows int
	initial       []placement
}

func NewWorkbench(items *item.Catalog, index *recipe.Index, opts ...WorkbenchOpt) (*Workbench, error) {
	w := &Workbench{
		items:         items,
		index:         index,
		matcher:       recipe.NewMatcher(index),
		inventoryRows: DefaultInventoryRows,
	}

	for _, opt := range opts {
		opt(w)
	}

	store, err := slot.NewStore(
		slot.Layout{Region: slot.RegionCraftingInput, Capacity: InputWidth * InputHeight, Width: InputWidth},
		slot.Layout{Region: slot.RegionCraftingOutput, Capacity: 1},
		slot.Layout{Region: slot.RegionInventory, Capacity: InventoryWidth * w.inventoryRows, Width: InventoryWidth},
	)
	if err != nil {
		return nil, fmt.Errorf("building slot store: %w", err)
	}
	w.store = store
	w.store.Subscribe(w.onChange)

	w.engine = transfer.NewEngine(store, items,
		transfer.WithCraftRegions(slot.RegionCraftingInput, slot.RegionCraftingOutput),
		transfer.WithPushRegion(slot.RegionInventory),
	)

	for _, p := range w.initial {
		if !items.Has(p.stack.ItemID) {
			return nil, fmt.Errorf("initial stack %s[%d]: item %d: %w", p.region, p.index, p.stack.ItemID, item.ErrNotFound)
		}
		st := p.stack
		if err := w.store.Set(p.region, p.index, &st); err != nil {
			return nil, fmt.Errorf("initial stack: %w", err)
		}
	}

	return w, nil
}

func (w *Workbench) onChange(c slot.Change) {
	if c.Region != slot.RegionCraftingInput {
		return
	}
	if err := w.recompute(); err != nil {
		slog.Error("recomputing crafting output", "error", err)
	}
}

// recompute matches the crafting input and writes the result, or nothing,
// into the crafting output.
func (w *Workbench) recompute() error {
	layout, err := w.store.Layout(slot.RegionCraftingInput)
	if err != nil {
		return err
	}
	slots, err := w.store.Snapshot(slot.RegionCraftingInput)
	if err != nil {
		return err
	}

	g := recipe.NewGrid(layout.RowWidth(), layout.Rows())
	for i, st := range slots {
		if st != nil {
			g.SetIndex(i, st.ItemID)
		}
	}

	res, ok := w.matcher.Match(g)
	if !ok {
		return w.store.Clear(slot.RegionCraftingOutput, 0)
	}
	out := item.NewStack(res.ItemID, res.Count)
	return w.store.Set(slot.RegionCraftingOutput, 0, &out)
}

// Catalog returns the item catalog the workbench was built with.
func (w *Workbench) Catalog() *item.Catalog {
	return w.items
}

// Regions returns every region in display order.
func (w *Workbench) Regions() []slot.Region {
	return w.store.Regions()
}

func (w *Workbench) Layout(r slot.Region) (slot.Layout, error) {
	return w.store.Layout(r)
}

// Snapshot returns a copy of every slot in r.
func (w *Workbench) Snapshot(r slot.Region) ([]*item.Stack, error) {
	return w.store.Snapshot(r)
}

// Subscribe registers fn for every slot change, including crafting output
// rewrites. The returned function removes the subscription.
func (w *Workbench) Subscribe(fn func(slot.Change)) func() {
	return w.store.Subscribe(fn)
}

// PointerDown applies a pointer event to the workbench.
func (w *Workbench) PointerDown(ev transfer.Event) (transfer.Action, error) {
	return w.engine.PointerDown(ev)
}

// Held returns the stack currently picked up, if any.
func (w *Workbench) Held() (item.Stack, bool) {
	return w.engine.Held()
}

// Give puts one unit, or a full stack, of an item into the inventory.
func (w *Workbench) Give(id int, fullStack bool) error {
	return w.engine.Give(id, fullStack)
}

// SearchItems returns the catalog entries matching query.
func (w *Workbench) SearchItems(query string) []item.Definition {
	return w.items.Search(query)
}

// ResetCrafting empties the crafting input. The crafting output follows.
func (w *Workbench) ResetCrafting() error {
	layout, err := w.store.Layout(slot.RegionCraftingInput)
	if err != nil {
		return err
	}
	for i := range layout.Capacity {
		if err := w.store.Clear(slot.RegionCraftingInput, i); err != nil {
			return err
		}
	}
	return nil
}

// SlotItem returns the definition of the item in r[index], or nil if the
// slot is empty.
func (w *Workbench) SlotItem(r slot.Region, index int) (*item.Definition, *item.Stack, error) {
	st, err := w.store.Get(r, index)
	if err != nil {
		return nil, nil, err
	}
	if st == nil {
		return nil, nil, nil
	}
	def, err := w.items.Lookup(st.ItemID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s[%d]: %w", r, index, err)
	}
	return def, st, nil
}
