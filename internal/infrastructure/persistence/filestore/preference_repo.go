// Package filestore persists preferences in a small TOML state file.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/colorpref/internal/domain/repository"
	"github.com/bnema/colorpref/internal/logging"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// stateFile is the on-disk layout:
//
//	[preferences]
//	theme = 'dark'
type stateFile struct {
	Preferences map[string]string `toml:"preferences"`
}

type preferenceRepo struct {
	mu   sync.Mutex
	path string
}

// NewPreferenceRepository returns a repository backed by the TOML file at path.
// The file and its directory are created on first write.
func NewPreferenceRepository(path string) (repository.PreferenceRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("state file path cannot be empty")
	}
	return &preferenceRepo{path: path}, nil
}

func (r *preferenceRepo) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := r.read()
	if err != nil {
		return "", err
	}

	value, ok := state.Preferences[key]
	if !ok {
		logging.FromContext(ctx).Debug().Str("key", key).Str("path", r.path).Msg("preference not set")
		return "", repository.ErrNotFound
	}
	return value, nil
}

func (r *preferenceRepo) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := r.read()
	if err != nil {
		return err
	}
	state.Preferences[key] = value

	if err := r.write(state); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().
		Str("key", key).
		Str("value", value).
		Str("path", r.path).
		Msg("preference saved")
	return nil
}

// read loads the state file. A missing file is an empty state.
func (r *preferenceRepo) read() (*stateFile, error) {
	state := &stateFile{Preferences: make(map[string]string)}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file %s: %w", r.path, err)
	}

	if err := toml.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", r.path, err)
	}
	if state.Preferences == nil {
		state.Preferences = make(map[string]string)
	}
	return state, nil
}

// write replaces the state file atomically via a temp file and rename.
func (r *preferenceRepo) write(state *stateFile) error {
	data, err := toml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set state file permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close state file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
