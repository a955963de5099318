package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/ppda"
	"github.com/aretw0/ppda/internal/cli"
	"github.com/aretw0/ppda/internal/presentation/tui"
	httpAdapter "github.com/aretw0/ppda/pkg/adapters/http"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Exposes the models over a JSON API, with Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := env.Config.Listen
		if cmd.Flags().Changed("listen") {
			addr, _ = cmd.Flags().GetString("listen")
		}

		srv := &http.Server{
			Addr:              addr,
			Handler:           httpAdapter.NewHandler(env.Workspace, env.Metrics),
			ReadHeaderTimeout: 5 * time.Second,
		}

		out := cmd.OutOrStdout()
		if cli.IsTerminal(out) {
			tui.PrintBanner(out, ppda.Version)
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			cli.PrintSystemMessage(out, "Listening on %s", srv.Addr)
			env.Logger.Info("http server started", "addr", srv.Addr, "store", env.Config.Store.Driver)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(shutdown)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err

		case sig := <-shutdown:
			env.Logger.Info("shutdown requested", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				env.Logger.Error("graceful shutdown did not complete", "err", err)
				return srv.Close()
			}
			cli.PrintSystemMessage(out, "Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", ":8080", "Address to listen on (overrides config)")
}
