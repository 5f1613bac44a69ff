package transfer

import "errors"

// Rejection is returned when an operation cannot proceed for an expected
// reason. State is left unchanged and nothing is wrong with the data.
type Rejection struct {
	Reason string
}

func (r *Rejection) Error() string {
	return r.Reason
}

func newRejection(reason string) *Rejection {
	return &Rejection{Reason: reason}
}

var (
	ErrAlreadyHolding    = newRejection("already holding a stack")
	ErrNotHolding        = newRejection("not holding a stack")
	ErrEmptySlot         = newRejection("slot is empty")
	ErrIncompatibleStack = newRejection("slot holds a different item")
	ErrRegionFull        = newRejection("no room in region")
	ErrOutputSlot        = newRejection("cannot place into the crafting output")

	// ErrBusy means an operation was started from inside another one, for
	// example from a store listener.
	ErrBusy = errors.New("transfer engine is busy")
)

// IsRejection reports whether err is an expected, recoverable rejection.
func IsRejection(err error) bool {
	var r *Rejection
	return errors.As(err, &r)
}
