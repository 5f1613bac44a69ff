package workbench

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/pixil98/go-workbench/internal/item"
	"github.com/pixil98/go-workbench/internal/recipe"
	"github.com/pixil98/go-workbench/internal/slot"
	"github.com/pixil98/go-workbench/internal/transfer"
	"gopkg.in/yaml.v3"
)

const testRecipes = `
"5":
  - ingredients: [143]
    result: {id: 5, count: 4}
"280":
  - inShape: [[5], [5]]
    result: {id: 280, count: 4}
"58":
  - inShape: [[5, 5], [5, 5]]
    result: {id: 58, count: 1}
`

func newTestWorkbench(t *testing.T, opts ...WorkbenchOpt) *Workbench {
	t.Helper()

	items, err := item.NewCatalog([]item.Definition{
		{ID: 5, Name: "oak_planks", DisplayName: "Oak Planks", StackSize: 64},
		{ID: 58, Name: "crafting_table", DisplayName: "Crafting Table", StackSize: 64},
		{ID: 143, Name: "oak_log", DisplayName: "Oak Log", StackSize: 64},
		{ID: 280, Name: "stick", DisplayName: "Stick", StackSize: 64},
		{ID: 331, Name: "ender_pearl", DisplayName: "Ender Pearl", StackSize: 16},
	})
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}

	var table recipe.Table
	if err := yaml.Unmarshal([]byte(testRecipes), &table); err != nil {
		t.Fatalf("decoding recipes: %v", err)
	}
	idx, err := recipe.NewIndex(table)
	if err != nil {
		t.Fatalf("building index: %v", err)
	}
	if err := idx.CheckItems(items); err != nil {
		t.Fatalf("checking recipe items: %v", err)
	}

	w, err := NewWorkbench(items, idx, opts...)
	if err != nil {
		t.Fatalf("building workbench: %v", err)
	}
	return w
}

func slotString(t *testing.T, w *Workbench, r slot.Region, index int) string {
	t.Helper()
	slots, err := w.Snapshot(r)
	if err != nil {
		t.Fatalf("snapshot %s: %v", r, err)
	}
	if slots[index] == nil {
		return "empty"
	}
	return fmt.Sprintf("%dx%d", slots[index].ItemID, slots[index].Quantity)
}

func press(t *testing.T, w *Workbench, ev transfer.Event) transfer.Action {
	t.Helper()
	action, err := w.PointerDown(ev)
	if err != nil {
		t.Fatalf("%s: %v", ev, err)
	}
	return action
}

func TestNewWorkbench_Layout(t *testing.T) {
	tests := map[string]struct {
		opts         []WorkbenchOpt
		expInventory int
	}{
		"default": {
			expInventory: 36,
		},
		"two rows": {
			opts:         []WorkbenchOpt{WithInventoryRows(2)},
			expInventory: 18,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorkbench(t, tt.opts...)

			input, err := w.Layout(slot.RegionCraftingInput)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "input width", input.RowWidth(), 3)
			testutil.AssertEqual(t, "input rows", input.Rows(), 3)

			output, err := w.Layout(slot.RegionCraftingOutput)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "output capacity", output.Capacity, 1)

			inv, err := w.Layout(slot.RegionInventory)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "inventory capacity", inv.Capacity, tt.expInventory)
			testutil.AssertEqual(t, "region count", len(w.Regions()), 3)
		})
	}
}

func TestNewWorkbench_InvalidInventory(t *testing.T) {
	items, _ := item.NewCatalog(nil)
	idx, _ := recipe.NewIndex(nil)

	_, err := NewWorkbench(items, idx, WithInventoryRows(0))
	testutil.AssertErrorContains(t, err, "capacity must be at least 1")
}

func TestNewWorkbench_InitialStack(t *testing.T) {
	w := newTestWorkbench(t, WithInitialStack(slot.RegionCraftingInput, 0, item.NewStack(143, 1)))

	testutil.AssertEqual(t, "input", slotString(t, w, slot.RegionCraftingInput, 0), "143x1")
	testutil.AssertEqual(t, "output", slotString(t, w, slot.RegionCraftingOutput, 0), "5x4")
}

func TestNewWorkbench_InitialStackErrors(t *testing.T) {
	items, _ := item.NewCatalog([]item.Definition{{ID: 1, Name: "stone", StackSize: 64}})
	idx, _ := recipe.NewIndex(nil)

	_, err := NewWorkbench(items, idx, WithInitialStack(slot.RegionCraftingInput, 0, item.NewStack(2, 1)))
	if !errors.Is(err, item.ErrNotFound) {
		t.Errorf("expected item.ErrNotFound, got %v", err)
	}

	_, err = NewWorkbench(items, idx, WithInitialStack(slot.RegionCraftingInput, 9, item.NewStack(1, 1)))
	if !errors.Is(err, slot.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestWorkbench_ResetCrafting(t *testing.T) {
	w := newTestWorkbench(t,
		WithInitialStack(slot.RegionCraftingInput, 0, item.NewStack(143, 1)),
		WithInitialStack(slot.RegionInventory, 0, item.NewStack(331, 3)),
	)

	if err := w.ResetCrafting(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inputs, _ := w.Snapshot(slot.RegionCraftingInput)
	for i, st := range inputs {
		if st != nil {
			t.Errorf("input %d not empty: %+v", i, *st)
		}
	}
	testutil.AssertEqual(t, "output", slotString(t, w, slot.RegionCraftingOutput, 0), "empty")
	testutil.AssertEqual(t, "inventory untouched", slotString(t, w, slot.RegionInventory, 0), "331x3")
}

func TestWorkbench_CraftCycle(t *testing.T) {
	w := newTestWorkbench(t, WithInitialStack(slot.RegionCraftingInput, 0, item.NewStack(143, 1)))

	// Take the planks; the log is consumed and nothing is left to craft.
	testutil.AssertEqual(t, "take planks", press(t, w, transfer.Event{Region: slot.RegionCraftingOutput}), transfer.ActionPickup)
	testutil.AssertEqual(t, "log consumed", slotString(t, w, slot.RegionCraftingInput, 0), "empty")
	testutil.AssertEqual(t, "output cleared", slotString(t, w, slot.RegionCraftingOutput, 0), "empty")

	// Lay the planks out as a column of two below the first row.
	press(t, w, transfer.Event{Region: slot.RegionCraftingInput, Index: 3})
	testutil.AssertEqual(t, "single plank", slotString(t, w, slot.RegionCraftingOutput, 0), "empty")

	testutil.AssertEqual(t, "split", press(t, w, transfer.Event{Region: slot.RegionCraftingInput, Index: 3, Button: transfer.ButtonSecondary}), transfer.ActionSplit)
	press(t, w, transfer.Event{Region: slot.RegionCraftingInput, Index: 6})
	testutil.AssertEqual(t, "sticks offered", slotString(t, w, slot.RegionCraftingOutput, 0), "280x4")

	// Taking the sticks consumes one plank from each slot and the recipe
	// still matches.
	press(t, w, transfer.Event{Region: slot.RegionCraftingOutput})
	testutil.AssertEqual(t, "top plank", slotString(t, w, slot.RegionCraftingInput, 3), "5x1")
	testutil.AssertEqual(t, "bottom plank", slotString(t, w, slot.RegionCraftingInput, 6), "5x1")
	testutil.AssertEqual(t, "sticks again", slotString(t, w, slot.RegionCraftingOutput, 0), "280x4")

	held, ok := w.Held()
	testutil.AssertEqual(t, "holding", ok, true)
	testutil.AssertEqual(t, "held sticks", held, item.NewStack(280, 4))

	testutil.AssertEqual(t, "store sticks", press(t, w, transfer.Event{Region: slot.RegionInventory, Index: 5}), transfer.ActionPlace)
	testutil.AssertEqual(t, "inventory", slotString(t, w, slot.RegionInventory, 5), "280x4")
}

func TestWorkbench_DropOntoOutputRejected(t *testing.T) {
	w := newTestWorkbench(t, WithInitialStack(slot.RegionInventory, 0, item.NewStack(5, 3)))

	press(t, w, transfer.Event{Region: slot.RegionInventory, Index: 0})

	_, err := w.PointerDown(transfer.Event{Region: slot.RegionCraftingOutput})
	if !errors.Is(err, transfer.ErrOutputSlot) {
		t.Fatalf("expected ErrOutputSlot, got %v", err)
	}
	held, _ := w.Held()
	testutil.AssertEqual(t, "still holding", held, item.NewStack(5, 3))
}

func TestWorkbench_Give(t *testing.T) {
	w := newTestWorkbench(t)

	if err := w.Give(331, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "inventory", slotString(t, w, slot.RegionInventory, 0), "331x16")
}

func TestWorkbench_Subscribe(t *testing.T) {
	w := newTestWorkbench(t, WithInitialStack(slot.RegionInventory, 0, item.NewStack(143, 2)))

	var changes []slot.Change
	unsubscribe := w.Subscribe(func(c slot.Change) {
		changes = append(changes, c)
	})

	press(t, w, transfer.Event{Region: slot.RegionInventory, Index: 0})
	press(t, w, transfer.Event{Region: slot.RegionCraftingInput, Index: 4})

	// The recompute listener was registered first, so the output change it
	// causes is delivered before the input change that caused it.
	testutil.AssertEqual(t, "change count", len(changes), 3)
	testutil.AssertEqual(t, "pickup", changes[0].Region, slot.RegionInventory)
	testutil.AssertEqual(t, "recompute", changes[1].Region, slot.RegionCraftingOutput)
	testutil.AssertEqual(t, "crafted", *changes[1].After, item.NewStack(5, 4))
	testutil.AssertEqual(t, "place", changes[2].Region, slot.RegionCraftingInput)

	unsubscribe()
	if err := w.ResetCrafting(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "after unsubscribe", len(changes), 3)
}

func TestWorkbench_Recipes(t *testing.T) {
	w := newTestWorkbench(t)

	previews := w.Recipes()
	testutil.AssertEqual(t, "count", len(previews), 3)
	testutil.AssertEqual(t, "order", previews[0].Key+","+previews[1].Key+","+previews[2].Key, "5,280,58")

	cells := func(p RecipePreview) string {
		s := ""
		for _, c := range p.Cells {
			s += c.String()
		}
		return s
	}
	testutil.AssertEqual(t, "planks", cells(previews[0]), "143........")
	testutil.AssertEqual(t, "sticks", cells(previews[1]), "5..5.....")
	testutil.AssertEqual(t, "table", cells(previews[2]), "55.55....")
	testutil.AssertEqual(t, "table result", previews[2].Result, recipe.Result{ItemID: 58, Count: 1})
}

func TestWorkbench_SlotItem(t *testing.T) {
	w := newTestWorkbench(t, WithInitialStack(slot.RegionInventory, 2, item.NewStack(331, 5)))

	def, st, err := w.SlotItem(slot.RegionInventory, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "name", def.DisplayName, "Ender Pearl")
	testutil.AssertEqual(t, "quantity", st.Quantity, 5)

	def, st, err = w.SlotItem(slot.RegionInventory, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "empty def", def == nil, true)
	testutil.AssertEqual(t, "empty stack", st == nil, true)

	_, _, err = w.SlotItem(slot.RegionInventory, 99)
	if !errors.Is(err, slot.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestWorkbench_SearchItems(t *testing.T) {
	w := newTestWorkbench(t)

	found := w.SearchItems("oak")
	testutil.AssertEqual(t, "count", len(found), 2)
	testutil.AssertEqual(t, "first", found[0].ID, 5)
}
