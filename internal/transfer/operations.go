package transfer

import (
	"fmt"
	"log/slog"

	"github.com/pixil98/go-workbench/internal/item"
	"github.com/pixil98/go-workbench/internal/slot"
)

// source returns the non-empty stack at r[index] for a pickup.
func (e *Engine) source(r slot.Region, index int) (*item.Stack, error) {
	if e.held != nil {
		return nil, ErrAlreadyHolding
	}
	st, err := e.store.Get(r, index)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("%s[%d]: %w", r, index, ErrEmptySlot)
	}
	return st, nil
}

func (e *Engine) split(r slot.Region, index int) error {
	src, err := e.source(r, index)
	if err != nil {
		return err
	}

	half := (src.Quantity + 1) / 2
	held := item.NewStack(src.ItemID, half)
	e.held = &held

	rest := item.NewStack(src.ItemID, src.Quantity-half)
	if err := e.store.Set(r, index, &rest); err != nil {
		e.held = nil
		return err
	}

	return e.afterPickup(r, index)
}

func (e *Engine) pushOne(r slot.Region, index int) error {
	src, err := e.source(r, index)
	if err != nil {
		return err
	}

	ok, err := e.push(e.pushRegion, item.NewStack(src.ItemID, 1))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", e.pushRegion, ErrRegionFull)
	}

	// The push may have landed in the source slot itself.
	cur, err := e.store.Get(r, index)
	if err != nil {
		return err
	}
	if cur != nil {
		cur.Quantity--
	}
	if err := e.store.Set(r, index, cur); err != nil {
		return err
	}

	return e.afterPickup(r, index)
}

// pickupFullStack does not check the source holds a full stack.
func (e *Engine) pickupFullStack(r slot.Region, index int) error {
	src, err := e.source(r, index)
	if err != nil {
		return err
	}

	size, err := e.items.StackSize(src.ItemID)
	if err != nil {
		return fmt.Errorf("picking up full stack: %w", err)
	}

	held := item.NewStack(src.ItemID, size)
	e.held = &held

	return e.afterPickup(r, index)
}

func (e *Engine) pickup(r slot.Region, index int) error {
	src, err := e.source(r, index)
	if err != nil {
		return err
	}

	e.held = src
	if err := e.store.Clear(r, index); err != nil {
		e.held = nil
		return err
	}

	return e.afterPickup(r, index)
}

// afterPickup crafts when a pickup has emptied a crafting output slot.
func (e *Engine) afterPickup(r slot.Region, index int) error {
	if r != e.outputRegion {
		return nil
	}
	out, err := e.store.Get(r, index)
	if err != nil {
		return err
	}
	if out != nil {
		return nil
	}
	return e.consume()
}

func (e *Engine) drop(r slot.Region, index int) (Action, error) {
	if e.held == nil {
		return "", ErrNotHolding
	}
	if r == e.outputRegion {
		return "", ErrOutputSlot
	}

	dst, err := e.store.Get(r, index)
	if err != nil {
		return "", err
	}

	if dst == nil {
		if err := e.store.Set(r, index, e.held); err != nil {
			return "", err
		}
		e.held = nil
		return ActionPlace, nil
	}

	if !dst.IsItemEqual(*e.held) {
		return "", fmt.Errorf("%s[%d]: %w", r, index, ErrIncompatibleStack)
	}

	size, err := e.items.StackSize(dst.ItemID)
	if err != nil {
		return "", fmt.Errorf("merging stacks: %w", err)
	}

	merged := item.NewStack(dst.ItemID, dst.Quantity+e.held.Quantity)
	if merged.Quantity > size {
		slog.Warn("merged stack exceeds stack size",
			"region", r, "index", index, "item", merged.ItemID,
			"quantity", merged.Quantity, "stack_size", size)
	}
	if err := e.store.Set(r, index, &merged); err != nil {
		return "", err
	}
	e.held = nil
	return ActionMerge, nil
}

func (e *Engine) push(r slot.Region, stack item.Stack) (bool, error) {
	size, err := e.items.StackSize(stack.ItemID)
	if err != nil {
		return false, fmt.Errorf("pushing item: %w", err)
	}

	slots, err := e.store.Snapshot(r)
	if err != nil {
		return false, err
	}

	for i, cur := range slots {
		if cur == nil {
			return true, e.store.Set(r, i, &stack)
		}
		if cur.IsItemEqual(stack) && cur.Quantity+stack.Quantity <= size {
			merged := item.NewStack(cur.ItemID, cur.Quantity+stack.Quantity)
			return true, e.store.Set(r, i, &merged)
		}
	}

	return false, nil
}

// consume takes one unit from each occupied input slot, emptying slots that
// hold a single unit. Ingredient counts of the matched recipe are not checked.
func (e *Engine) consume() error {
	slots, err := e.store.Snapshot(e.inputRegion)
	if err != nil {
		return err
	}

	for i, st := range slots {
		if st == nil {
			continue
		}
		st.Quantity--
		if err := e.store.Set(e.inputRegion, i, st); err != nil {
			return err
		}
	}
	return nil
}
