package support

import "errors"

var (
	ErrHandlerNotRegistered = errors.New("no handler registered for category")
	ErrDuplicateHandler     = errors.New("more than one handler registered for category")
)
