// Package memory provides an in-process preference repository.
package memory

import (
	"context"
	"sync"

	"github.com/bnema/colorpref/internal/domain/repository"
)

type preferenceRepo struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewPreferenceRepository creates an empty in-memory repository.
// Values are lost when the process exits.
func NewPreferenceRepository() repository.PreferenceRepository {
	return &preferenceRepo{values: make(map[string]string)}
}

func (r *preferenceRepo) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.values[key]
	if !ok {
		return "", repository.ErrNotFound
	}
	return value, nil
}

func (r *preferenceRepo) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
	return nil
}
