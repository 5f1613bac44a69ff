package transfer

import (
	"fmt"

	"github.com/pixil98/go-workbench/internal/slot"
)

// Button identifies the pointer button of an event.
type Button int

const (
	ButtonPrimary   Button = 0
	ButtonAuxiliary Button = 1
	ButtonSecondary Button = 2
)

// Modifiers are the keyboard modifiers held during an event.
type Modifiers struct {
	// Ctrl moves a single unit into the inventory.
	Ctrl bool `json:"ctrl,omitempty"`
	// Alt grabs a full stack worth of the item.
	Alt bool `json:"alt,omitempty"`
}

// Event is a pointer-down on a slot.
type Event struct {
	Region    slot.Region `json:"region"`
	Index     int         `json:"index"`
	Button    Button      `json:"button"`
	Modifiers Modifiers   `json:"modifiers"`
}

func (e Event) String() string {
	return fmt.Sprintf("%s[%d] button=%d ctrl=%t alt=%t", e.Region, e.Index, e.Button, e.Modifiers.Ctrl, e.Modifiers.Alt)
}

// Action names what an event did.
type Action string

const (
	ActionSplit     Action = "split"
	ActionPushOne   Action = "push_one"
	ActionFullStack Action = "full_stack"
	ActionPickup    Action = "pickup"
	ActionPlace     Action = "place"
	ActionMerge     Action = "merge"
)

// State is the engine's hold state.
type State int

const (
	StateIdle State = iota
	StateHolding
)

func (s State) String() string {
	switch s {
	case StateHolding:
		return "holding"
	default:
		return "idle"
	}
}
