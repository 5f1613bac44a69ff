package workbench

import (
	"github.com/pixil98/go-workbench/internal/item"
	"github.com/pixil98/go-workbench/internal/slot"
)

type WorkbenchOpt func(*Workbench)

// WithInitialStack places stack at r[index] when the workbench is built.
func WithInitialStack(r slot.Region, index int, stack item.Stack) WorkbenchOpt {
	return func(w *Workbench) {
		w.initial = append(w.initial, placement{region: r, index: index, stack: stack})
	}
}

// WithInventoryRows sets how many rows of InventoryWidth slots the
// inventory has.
func WithInventoryRows(rows int) WorkbenchOpt {
	return func(w *Workbench) {
		w.inventoryRows = rows
	}
}
