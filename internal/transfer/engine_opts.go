package transfer

import "github.com/pixil98/go-workbench/internal/slot"

type EngineOpt func(*Engine)

// WithPushRegion sets the region single units and given items are pushed into.
func WithPushRegion(r slot.Region) EngineOpt {
	return func(e *Engine) {
		e.pushRegion = r
	}
}

// WithCraftRegions sets the crafting input and output regions.
func WithCraftRegions(input, output slot.Region) EngineOpt {
	return func(e *Engine) {
		e.inputRegion = input
		e.outputRegion = output
	}
}
