package waitsession

import "errors"

var (
	ErrCancelled      = errors.New("wait session cancelled")
	ErrAlreadyStarted = errors.New("wait session already started")
	ErrInvalidRole    = errors.New("invalid role")
)
