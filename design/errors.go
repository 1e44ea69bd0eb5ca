package design

import "errors"

var (
	// ErrInvalidTarget is returned for a non-positive or non-finite target
	// modulus. It is the only error Design surfaces to callers.
	ErrInvalidTarget = errors.New("design: target modulus must be a positive finite number")

	// ErrUnknownFamily is returned by DesignFamily for a family outside the
	// store's configured set.
	ErrUnknownFamily = errors.New("design: unknown material family")

	// ErrNoDesigner is returned by Service queries before the first snapshot.
	ErrNoDesigner = errors.New("design: no dataset loaded")
)
