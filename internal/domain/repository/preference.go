package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a preference slot has never been written.
var ErrNotFound = errors.New("preference not found")

// PreferenceRepository persists string preferences in named slots.
type PreferenceRepository interface {
	// Get returns the stored value for key.
	// Returns ErrNotFound if the slot is empty.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
