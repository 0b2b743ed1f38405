package transition

import "errors"

var (
	ErrIllegalTransition   = errors.New("illegal assignment status transition")
	ErrInvalidAssignmentID = errors.New("invalid assignment id")
)
