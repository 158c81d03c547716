package bootstrap

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/colorpref/internal/infrastructure/config"
	"github.com/bnema/colorpref/internal/ui/theme"
)

var (
	defaultOnce  sync.Once
	defaultStack *ThemeStack
	defaultErr   error
)

// DefaultStack returns the process-wide stack, built on first use from the
// global configuration with the default side effect. It lives for the rest
// of the process. OS changes are picked up once a caller runs StartWatching.
func DefaultStack(ctx context.Context) (*ThemeStack, error) {
	defaultOnce.Do(func() {
		if err := config.Init(); err != nil {
			defaultErr = err
			return
		}
		defaultStack, defaultErr = BuildThemeStack(ctx, config.Get())
	})
	if defaultErr != nil {
		return nil, fmt.Errorf("default theme stack: %w", defaultErr)
	}
	return defaultStack, nil
}

// DefaultPreference returns the process-wide theme preference.
func DefaultPreference(ctx context.Context) (*theme.Preference, error) {
	stack, err := DefaultStack(ctx)
	if err != nil {
		return nil, err
	}
	return stack.Preference, nil
}
