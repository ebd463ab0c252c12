package gui

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is matched by errors for draw-command features the
	// controller cannot execute.
	ErrNotImplemented = errors.New("gui: not implemented")

	// ErrDisposed is returned by Render after Dispose.
	ErrDisposed = errors.New("gui: controller disposed")
)

// CallbackError reports a draw command carrying a user callback. It matches
// ErrNotImplemented.
type CallbackError struct {
	List    int
	Command int
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("gui: user callback in command %d of draw list %d: %v", e.Command, e.List, ErrNotImplemented)
}

func (e *CallbackError) Unwrap() error { return ErrNotImplemented }
