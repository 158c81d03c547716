package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/colorpref/internal/domain/entity"
	"github.com/bnema/colorpref/internal/logging"
	"github.com/bnema/colorpref/internal/ui/theme"
)

var watchJSON bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the effective theme every time it changes",
	Long: `Print the effective theme, then one line per change until interrupted.

Changes come from the OS color scheme (when the option is system) and, with
the file storage backend, from other processes changing the option, such as
"colorpref set" or a PUT on the HTTP API of "colorpref serve".

Examples:
  colorpref watch
  colorpref watch --json | jq -r .effective`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchJSON, "json", false, "print one JSON object per change")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	stack, err := app.Stack()
	if err != nil {
		return err
	}
	if !stack.Preference.Attached() {
		return fmt.Errorf(`no display environment to watch (set display.mode = "always" to force)`)
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stack.StartWatching(ctx)
	if err := app.WatchConfig(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config hot reload disabled")
	}

	out := cmd.OutOrStdout()
	var mu sync.Mutex
	unsubscribe := stack.Preference.Subscribe(func(e entity.Effective) {
		mu.Lock()
		defer mu.Unlock()
		if watchJSON {
			snap := stack.Preference.Snapshot()
			snap.Effective = e
			_ = writeJSON(out, watchEvent{Time: time.Now(), Snapshot: snap})
			return
		}
		fmt.Fprintln(out, app.Theme.ChangeLine(time.Now(), e))
	}, nil)
	defer unsubscribe()

	<-ctx.Done()
	return nil
}

type watchEvent struct {
	Time time.Time `json:"time"`
	theme.Snapshot
}
