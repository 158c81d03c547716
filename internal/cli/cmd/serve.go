package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/colorpref/internal/logging"
	"github.com/bnema/colorpref/internal/ui/document"
	"github.com/bnema/colorpref/internal/web"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live preview page, a JSON API and metrics",
	Long: `Serve the theme preference over HTTP until interrupted.

Routes:
  GET  /            preview page; its root element carries the dark class
  GET  /api/theme   current option and effective theme as JSON
  PUT  /api/theme   change the option, body {"option":"dark"}
  GET  /ws          websocket pushing every change
  GET  /metrics     Prometheus metrics

The listen address defaults to server.listen from the config file.

Examples:
  colorpref serve
  colorpref serve --listen 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "listen address (overrides server.listen)")
}

func runServe(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	stack, err := app.Stack()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stack.StartWatching(ctx)
	if err := app.WatchConfig(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config hot reload disabled")
	}

	srv, err := web.NewServer(ctx, web.Options{
		Preference: stack.Preference,
		Document:   document.Default(),
	})
	if err != nil {
		return err
	}
	defer srv.Close()

	addr := serveListen
	if addr == "" {
		addr = app.Config.Server.Listen
	}
	return srv.ListenAndServe(ctx, addr)
}
