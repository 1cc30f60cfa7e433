package style

import "errors"

var (
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownSlot       = errors.New("unknown slot")
	ErrWeightMapMismatch = errors.New("weight map slot set does not match component slot set")
	ErrInvalidCount      = errors.New("variant count must be at least 1")
)
