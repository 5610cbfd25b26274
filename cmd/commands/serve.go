package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pluqqy/microcomp/internal/cli"
	"github.com/pluqqy/microcomp/pkg/server"
)

var serveAddr string

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search compiler over HTTP",
		Long: `Start an HTTP server exposing splitting, parsing, autocompletion,
suggestions and query building as JSON endpoints.

Endpoints:
  GET  /healthz
  POST /api/split
  POST /api/parse
  POST /api/autocomplete
  POST /api/values
  POST /api/query
  GET  /api/suggest?q=...

Examples:
  # Listen on the configured address
  microcomp serve

  # Listen on a specific port
  microcomp serve --addr :9090`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	settings := ctx.LoadSettingsWithDefault()
	logger := ctx.Logger()
	registry, err := ctx.Registry()
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = settings.Server.Addr
	}

	sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.PrintInfo("Listening on %s", addr)
	return server.New(*settings, registry, logger).ListenAndServe(sigCtx, addr)
}
