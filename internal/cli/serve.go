package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpgo/fi-forecaster/internal/calculation"
	"github.com/rpgo/fi-forecaster/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve forecasts over HTTP (POST /forecast)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port == 0 {
				port = a.settings.Server.Port
			}
			opts, err := a.settings.EngineOptions()
			if err != nil {
				return err
			}

			srv := server.NewServer(server.Options{
				Port:            port,
				ShutdownTimeout: time.Duration(a.settings.Server.ShutdownTimeoutSeconds) * time.Second,
			}, calculation.NewCalculationEngineWithOptions(opts), a.logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serveUntilDone(ctx, srv)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (default from settings)")
	return cmd
}

// serveUntilDone runs srv until it fails or ctx is cancelled.
func serveUntilDone(ctx context.Context, srv *server.Server) error {
	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return srv.Stop(context.Background())
	}
}
