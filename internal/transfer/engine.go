package transfer

import (
	"fmt"

	"github.com/pixil98/go-workbench/internal/item"
	"github.com/pixil98/go-workbench/internal/slot"
)

// StackSizer reports the maximum stack size of an item.
type StackSizer interface {
	StackSize(id int) (int, error)
}

// Engine moves items between slots. It is either idle or holding a single
// stack that has been picked up but not yet placed.
//
// Engine is driven by one event at a time and is not safe for concurrent use.
type Engine struct {
	store *slot.Store
	items StackSizer

	inputRegion  slot.Region
	outputRegion slot.Region
	pushRegion   slot.Region

	held *item.Stack
	busy bool
}

func NewEngine(store *slot.Store, items StackSizer, opts ...EngineOpt) *Engine {
	e := &Engine{
		store:        store,
		items:        items,
		inputRegion:  slot.RegionCraftingInput,
		outputRegion: slot.RegionCraftingOutput,
		pushRegion:   slot.RegionInventory,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// State returns whether the engine is holding a stack.
func (e *Engine) State() State {
	if e.held != nil {
		return StateHolding
	}
	return StateIdle
}

// Held returns the held stack, if any.
func (e *Engine) Held() (item.Stack, bool) {
	if e.held == nil {
		return item.Stack{}, false
	}
	return *e.held, true
}

func (e *Engine) begin() error {
	if e.busy {
		return ErrBusy
	}
	e.busy = true
	return nil
}

func (e *Engine) end() {
	e.busy = false
}

// PointerDown applies a pointer-down event. While holding, the event drops
// the held stack. Otherwise the button and modifiers select the pickup: the
// secondary button splits, then ctrl pushes one unit, then alt grabs a full
// stack, and anything else picks up the whole slot.
func (e *Engine) PointerDown(ev Event) (Action, error) {
	if err := e.begin(); err != nil {
		return "", err
	}
	defer e.end()

	if e.held != nil {
		return e.drop(ev.Region, ev.Index)
	}

	var err error
	var action Action
	switch {
	case ev.Button == ButtonSecondary:
		action, err = ActionSplit, e.split(ev.Region, ev.Index)
	case ev.Modifiers.Ctrl:
		action, err = ActionPushOne, e.pushOne(ev.Region, ev.Index)
	case ev.Modifiers.Alt:
		action, err = ActionFullStack, e.pickupFullStack(ev.Region, ev.Index)
	default:
		action, err = ActionPickup, e.pickup(ev.Region, ev.Index)
	}
	if err != nil {
		return "", err
	}
	return action, nil
}

// Split picks up the larger half of a slot.
func (e *Engine) Split(r slot.Region, index int) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()
	return e.split(r, index)
}

// PushOne moves a single unit from a slot into the push region.
func (e *Engine) PushOne(r slot.Region, index int) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()
	return e.pushOne(r, index)
}

// PickupFullStack holds a full stack of the slot's item without taking
// anything from the slot.
func (e *Engine) PickupFullStack(r slot.Region, index int) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()
	return e.pickupFullStack(r, index)
}

// Pickup holds the whole contents of a slot and empties it.
func (e *Engine) Pickup(r slot.Region, index int) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()
	return e.pickup(r, index)
}

// Drop places the held stack into a slot.
func (e *Engine) Drop(r slot.Region, index int) (Action, error) {
	if err := e.begin(); err != nil {
		return "", err
	}
	defer e.end()
	return e.drop(r, index)
}

// Push places stack into the first slot of r that is empty or holds the
// same item with room for all of it. It reports false if no slot qualifies.
func (e *Engine) Push(r slot.Region, stack item.Stack) (bool, error) {
	if err := e.begin(); err != nil {
		return false, err
	}
	defer e.end()
	return e.push(r, stack)
}

// Give pushes one unit of id, or a full stack, into the push region.
func (e *Engine) Give(id int, fullStack bool) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()

	qty := 1
	if fullStack {
		size, err := e.items.StackSize(id)
		if err != nil {
			return fmt.Errorf("giving item: %w", err)
		}
		qty = size
	}

	ok, err := e.push(e.pushRegion, item.NewStack(id, qty))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", e.pushRegion, ErrRegionFull)
	}
	return nil
}

// CraftConsume takes one unit from every occupied crafting input slot.
func (e *Engine) CraftConsume() error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()
	return e.consume()
}
