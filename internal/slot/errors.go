package slot

import "errors"

var (
	ErrIndexOutOfRange = errors.New("slot index out of range")
	ErrUnknownRegion   = errors.New("unknown region")
)
