package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	logDirPerm  = 0o750
	logFilePerm = 0o600

	backupTimeFormat = "20060102-150405.000000000"
	gzipSuffix       = ".gz"
)

// LogRotator is an io.Writer appending to dir/name. When a write would push
// the file past maxSize, the file is renamed with a timestamp suffix,
// optionally gzipped, and a fresh file is started. Backups beyond maxBackups
// or older than maxAge are removed.
type LogRotator struct {
	mu         sync.Mutex
	dir        string
	name       string
	maxSize    int64
	maxAge     time.Duration
	maxBackups int
	compress   bool
	now        func() time.Time

	file *os.File
	size int64
}

// NewLogRotator opens (or creates) dir/name for appending.
func NewLogRotator(dir, name string, maxSizeMB, maxBackups, maxAgeDays int, compress bool) (*LogRotator, error) {
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	r := &LogRotator{
		dir:        dir,
		name:       name,
		maxSize:    int64(maxSizeMB) << 20,
		maxAge:     time.Duration(maxAgeDays) * 24 * time.Hour,
		maxBackups: maxBackups,
		compress:   compress,
		now:        time.Now,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the path of the active log file.
func (r *LogRotator) Path() string {
	return filepath.Join(r.dir, r.name)
}

func (r *LogRotator) open() error {
	path := r.Path()
	r.size = 0
	if info, err := os.Stat(path); err == nil {
		r.size = info.Size()
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	r.file = f
	return nil
}

// Write implements io.Writer.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.maxSize > 0 && r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// rotate moves the active file aside and opens a new one.
// Caller must hold r.mu.
func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "colorpref: close log file: %v\n", err)
	}
	r.file = nil

	backup := filepath.Join(r.dir, r.name+"."+r.now().Format(backupTimeFormat))
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	if r.compress {
		if err := gzipFile(backup); err != nil {
			fmt.Fprintf(os.Stderr, "colorpref: compress %s: %v\n", backup, err)
		} else if err := os.Remove(backup); err != nil {
			fmt.Fprintf(os.Stderr, "colorpref: remove %s: %v\n", backup, err)
		}
	}

	r.prune()
	return r.open()
}

func gzipFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(path+gzipSuffix, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}

	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		_ = zw.Close()
		_ = out.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Backups returns backup file names, oldest first.
func (r *LogRotator) Backups() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	infos := r.backupInfos()
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names
}

// backupInfos lists backups sorted oldest first. Backup names embed a
// sortable timestamp, so name order is age order.
func (r *LogRotator) backupInfos() []os.FileInfo {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil
	}

	prefix := r.name + "."
	var infos []os.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name() < infos[j].Name()
	})
	return infos
}

// prune removes expired and excess backups. Caller must hold r.mu.
func (r *LogRotator) prune() {
	infos := r.backupInfos()
	now := r.now()

	kept := infos[:0]
	for _, info := range infos {
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			r.remove(info.Name())
			continue
		}
		kept = append(kept, info)
	}

	if r.maxBackups > 0 && len(kept) > r.maxBackups {
		for _, info := range kept[:len(kept)-r.maxBackups] {
			r.remove(info.Name())
		}
	}
}

func (r *LogRotator) remove(name string) {
	if err := os.Remove(filepath.Join(r.dir, name)); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "colorpref: remove old log %s: %v\n", name, err)
	}
}

// Close closes the active file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
