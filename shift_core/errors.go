package shift_core

import "errors"

var (
	ErrNoActiveShift    = errors.New("no active shift")
	ErrShiftAlreadyOpen = errors.New("shift already open")
	ErrShiftClosed      = errors.New("shift already closed")
	ErrShiftNotLoaded   = errors.New("shift not loaded")
)
