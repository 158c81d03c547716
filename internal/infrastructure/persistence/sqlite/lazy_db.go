package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/colorpref/internal/logging"
)

// LazyDB holds the preferences database and opens it, migrations included,
// the first time the theme slot is read or written. Headless runs and
// config commands never pay for the WASM sqlite start-up.
//
// A failed open is remembered: later calls return the same error.
type LazyDB struct {
	path string

	mu     sync.Mutex
	opened bool
	db     *sql.DB
	err    error
}

// NewLazyDB returns a LazyDB for the sqlite file at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the open connection. Concurrent first calls share one open.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.opened && l.db == nil && l.err == nil {
		return nil, fmt.Errorf("preferences database %s is closed", l.path)
	}
	if !l.opened {
		l.opened = true
		l.db, l.err = NewConnection(ctx, l.path)
		if l.err != nil {
			logger := logging.Component(ctx, "sqlite")
			logger.Error().
				Err(l.err).
				Str("path", l.path).
				Msg("cannot open preferences database")
		}
	}
	if l.err != nil {
		return nil, fmt.Errorf("open preferences database: %w", l.err)
	}
	return l.db, nil
}

// Close releases the connection if one was opened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// IsInitialized reports whether a connection is currently open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the sqlite file path.
func (l *LazyDB) Path() string {
	return l.path
}
