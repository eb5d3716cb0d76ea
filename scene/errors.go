package scene

import "errors"

var (
	// ErrNotYetStarted is the panic value when a behavior reaches for its owner
	// or a sibling before it has been attached to a GameObject.
	ErrNotYetStarted = errors.New("behavior not yet started")

	// ErrAlreadyAttached is the panic value when a behavior instance is attached twice.
	ErrAlreadyAttached = errors.New("behavior already attached")

	// ErrObjectDestroyed is the panic value when attaching to a destroyed GameObject.
	ErrObjectDestroyed = errors.New("game object destroyed")
)
