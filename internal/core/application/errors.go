package application

import "errors"

var (
	// ErrPoolNotFound is returned when no pool matches the given id or pair.
	ErrPoolNotFound = errors.New("pool not found")
	// ErrPoolAlreadyExists is returned when creating a pool for a pair that
	// already has one.
	ErrPoolAlreadyExists = errors.New("a pool for the given pair already exists")
)
