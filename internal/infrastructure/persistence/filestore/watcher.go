package filestore

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/colorpref/internal/logging"
)

// Watcher calls onChange whenever the state file is replaced or written,
// whichever process did it. Own writes are reported too; callers compare
// against what they hold.
type Watcher struct {
	path     string
	onChange func(context.Context)
}

// NewWatcher creates a watcher for the state file at path.
func NewWatcher(path string, onChange func(context.Context)) *Watcher {
	return &Watcher{path: filepath.Clean(path), onChange: onChange}
}

// Run blocks until ctx is cancelled. The parent directory is watched since
// writes go through a temp file and a rename.
func (w *Watcher) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "state-watcher")
	log := logging.FromContext(ctx)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn().Err(err).Msg("file watcher unavailable")
		return nil
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		log.Warn().Err(err).Str("path", dir).Msg("cannot create state directory")
		return nil
	}
	if err := fw.Add(dir); err != nil {
		log.Warn().Err(err).Str("path", dir).Msg("cannot watch state directory")
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				log.Trace().Str("op", event.Op.String()).Msg("state file changed")
				w.onChange(ctx)
			}
		case watchErr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(watchErr).Msg("file watcher error")
		}
	}
}
