package core

import "errors"

// Common errors.
var (
	ErrEmptyKey   = errors.New("node key cannot be empty")
	ErrEmptyLabel = errors.New("sub-node label cannot be empty")

	errRepositoryNotWatchable = errors.New("repository does not support watching")
)
