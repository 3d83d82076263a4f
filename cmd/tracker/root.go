package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/just-nibble/commit-tracker/internal/adapters/api"
	"github.com/just-nibble/commit-tracker/internal/adapters/http/handlers"
	"github.com/just-nibble/commit-tracker/internal/core/service"
	"github.com/just-nibble/commit-tracker/internal/core/ui"
	"github.com/just-nibble/commit-tracker/internal/logger"
	"github.com/just-nibble/commit-tracker/pkg/config"
)

type rootOptions struct {
	cfgFile string
	debug   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "tracker",
		Short:         "Browse GitHub commits and relay contact messages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "tracker.yml", "config file path")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "debug logging")

	cmd.AddCommand(newServeCmd(opts), newCommitsCmd(opts), newVersionCmd())
	return cmd
}

// loadConfig reads the config file and env, then applies flag overrides.
func (o *rootOptions) loadConfig(overrides config.Config) (*config.Config, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	overrides.Debug = overrides.Debug || o.debug
	if err := cfg.Merge(overrides); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// app holds everything the commands share.
type app struct {
	cfg        *config.Config
	log        *logger.Logger
	pages      handlers.PageFactory
	dispatcher *ui.Dispatcher
	viewer     *service.CommitViewer
}

func newApp(cfg *config.Config) (*app, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	log := logger.New(os.Stderr, cfg.Debug)

	viewer := service.NewCommitViewer(api.NewGitHubClient(cfg.GitHub.BaseURL, cfg.GitHub.Timeout))
	submitter := service.NewContactSubmitter(api.NewRelayClient(cfg.Relay.URL, cfg.Relay.Timeout), log)

	d := ui.NewDispatcher()
	ui.RegisterNavigation(d)
	viewer.Register(d)
	submitter.Register(d)

	hidden := url.Values{}
	if cfg.Relay.AccessKey != "" {
		hidden.Set("access_key", cfg.Relay.AccessKey)
	}

	return &app{
		cfg: cfg,
		log: log,
		pages: handlers.PageFactory{
			Breakpoint: cfg.UI.Breakpoint,
			Location:   loc,
			Hidden:     hidden,
		},
		dispatcher: d,
		viewer:     viewer,
	}, nil
}
