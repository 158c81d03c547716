package colorscheme

import (
	"context"
	"os/exec"
	"time"
)

// detectTimeout bounds a single detector subprocess.
const detectTimeout = 2 * time.Second

// commandRunner runs an external command and returns its stdout.
type commandRunner func(name string, args ...string) ([]byte, error)

// lookPath reports whether an executable is on PATH.
type lookPath func(name string) (string, error)

func runCommand(name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), detectTimeout)
	defer cancel()
	return exec.CommandContext(ctx, name, args...).Output()
}
