package main

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/just-nibble/commit-tracker/internal/adapters/validators"
	"github.com/just-nibble/commit-tracker/internal/render"
	"github.com/just-nibble/commit-tracker/pkg/config"
)

func newCommitsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "commits [owner/repo]",
		Short: "Print the latest commits of a repository",
		Long:  "Print the latest commits of a repository. Without an argument the configured default_repository is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig(config.Config{})
			if err != nil {
				return err
			}
			repo := cfg.DefaultRepository
			if len(args) == 1 {
				repo = validators.Repo(args[0])
			}
			if err := repo.Validate(); err != nil {
				return errors.New("expected a repository in owner/repo form")
			}

			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			return a.printCommits(cmd.Context(), cmd.OutOrStdout(), repo)
		},
	}
}

func (a *app) printCommits(ctx context.Context, w io.Writer, repo validators.Repo) error {
	page := a.pages.ForLanguage(posixLanguage(os.Getenv("LANG")))
	lookup := repo.Lookup()

	if err := a.viewer.Submit(ctx, page, lookup.Owner, lookup.Repo); err != nil {
		return err
	}
	return render.NewRenderer(a.cfg.UI.Title).Text(w, page)
}

// posixLanguage turns a POSIX locale such as "de_DE.UTF-8" into "de-DE".
func posixLanguage(lang string) string {
	lang, _, _ = strings.Cut(lang, ".")
	lang, _, _ = strings.Cut(lang, "@")
	if lang == "C" || lang == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(lang, "_", "-")
}
