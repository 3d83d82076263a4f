package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/just-nibble/commit-tracker/internal/adapters/http/handlers"
	"github.com/just-nibble/commit-tracker/internal/adapters/http/routes"
	"github.com/just-nibble/commit-tracker/internal/render"
	"github.com/just-nibble/commit-tracker/pkg/config"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var overrides config.Config
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the commit tracker page",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig(overrides)
			if err != nil {
				return err
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().IntVarP(&overrides.Server.Port, "port", "p", 0, "listen port (default from config, 8080)")
	cmd.Flags().BoolVar(&overrides.Server.AllowAllOrigins, "cors-allow-all", false, "allow all CORS origins")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.warnUnsetAccessKey()
	router := routes.NewRouter(
		handlers.NewPageHandler(a.pages, a.dispatcher, render.NewRenderer(a.cfg.UI.Title), a.log),
		handlers.NewCommitHandler(a.pages, a.viewer),
		routes.Options{AllowAllOrigins: a.cfg.Server.AllowAllOrigins},
	)
	srv := routes.NewServer(fmt.Sprintf(":%d", a.cfg.Server.Port), router)

	errCh := make(chan error, 1)
	go func() {
		a.log.Successf("%s loaded successfully, listening on %s", a.cfg.UI.Title, srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("could not start server: %w", err)
	case <-ctx.Done():
	}

	a.log.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// warnUnsetAccessKey only matters when the contact form is being served.
func (a *app) warnUnsetAccessKey() {
	if a.pages.Hidden.Get("access_key") == "" {
		a.log.Warnf("relay.access_key is not set; contact submissions will be rejected by the relay")
	}
}
