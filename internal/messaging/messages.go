package messaging

import (
	"github.com/pixil98/go-workbench/internal/item"
	"github.com/pixil98/go-workbench/internal/slot"
	"github.com/pixil98/go-workbench/internal/transfer"
)

// Action names a request kind. An empty action is a pointer event.
type Action string

const (
	ActionPointer  Action = "pointer"
	ActionGive     Action = "give"
	ActionReset    Action = "reset"
	ActionDescribe Action = "describe"
	ActionSearch   Action = "search"
	ActionRecipes  Action = "recipes"
)

// Request is a message received on a session's events subject.
type Request struct {
	Action Action `json:"action,omitempty"`

	// Pointer and describe
	Region slot.Region     `json:"region,omitempty"`
	Index  int             `json:"index"`
	Button transfer.Button `json:"button"`
	Ctrl   bool            `json:"ctrl,omitempty"`
	Alt    bool            `json:"alt,omitempty"`

	// Give
	Item int  `json:"item,omitempty"`
	Full bool `json:"full,omitempty"`

	// Search
	Query string `json:"query,omitempty"`
}

func (r Request) event() transfer.Event {
	return transfer.Event{
		Region:    r.Region,
		Index:     r.Index,
		Button:    r.Button,
		Modifiers: transfer.Modifiers{Ctrl: r.Ctrl, Alt: r.Alt},
	}
}

// Reply answers a single request on the replies subject. Rejected carries
// an expected refusal; Error carries anything else.
type Reply struct {
	Action   Action          `json:"action"`
	Outcome  transfer.Action `json:"outcome,omitempty"`
	Rejected string          `json:"rejected,omitempty"`
	Error    string          `json:"error,omitempty"`
	Text     string          `json:"text,omitempty"`
	Held     *item.Stack     `json:"held,omitempty"`
}

// RegionSnapshot is published on the changes subject whenever a region
// changes.
type RegionSnapshot struct {
	Region slot.Region   `json:"region"`
	Slots  []*item.Stack `json:"slots"`
}
