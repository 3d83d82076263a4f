package service

import (
	"context"
	"fmt"

	"github.com/just-nibble/commit-tracker/internal/adapters/validators"
	"github.com/just-nibble/commit-tracker/internal/core/domain/entities"
	"github.com/just-nibble/commit-tracker/internal/core/ui"
)

const (
	lookupRequiredMessage = "Please enter both username and repository name."
	noCommitsMessage      = "No commits found for this repository."
)

// Form field names of the commit lookup form.
const (
	FieldUsername   = "username"
	FieldRepository = "repository"
)

// CommitLister lists a repository's commits in one round trip.
type CommitLister interface {
	ListCommits(ctx context.Context, owner, repo string) ([]entities.Commit, error)
}

// CommitViewer looks up commits and renders them into the page.
type CommitViewer struct {
	lister CommitLister
}

func NewCommitViewer(lister CommitLister) *CommitViewer {
	return &CommitViewer{lister: lister}
}

// Register binds the viewer to repo form submissions.
func (v *CommitViewer) Register(d *ui.Dispatcher) {
	d.OnSubmit(ui.RepoFormID, func(ctx context.Context, page *ui.Page, ev ui.Event) error {
		return v.Submit(ctx, page, ev.Form.Get(FieldUsername), ev.Form.Get(FieldRepository))
	})
}

// Submit validates the lookup, fetches the commits and fills the commit
// region. The loading region is hidden again on every return path.
func (v *CommitViewer) Submit(ctx context.Context, page *ui.Page, owner, repo string) error {
	lookup, err := validators.Lookup(owner, repo)
	page.Lookup = ui.LookupForm{Owner: lookup.Owner, Repo: lookup.Repo}
	if err != nil {
		verr := &ValidationError{Message: lookupRequiredMessage}
		page.ShowError(verr.Message)
		return verr
	}

	page.Loading.Show("")
	page.Error.Hide()
	page.Commits.Clear()
	defer page.Loading.Hide()

	commits, err := v.lister.ListCommits(ctx, lookup.Owner, lookup.Repo)
	if err != nil {
		rerr := newCommitRequestError(err)
		page.ShowError(rerr.Message)
		return rerr
	}

	renderCommits(page, lookup, commits)
	return nil
}

func renderCommits(page *ui.Page, lookup entities.Lookup, commits []entities.Commit) {
	if len(commits) == 0 {
		page.Commits.Notice = noCommitsMessage
		return
	}

	page.Commits.Heading = fmt.Sprintf("📊 %s - %d commits", lookup.FullName(), len(commits))
	page.Commits.Cards = make([]ui.Card, 0, len(commits))
	for _, c := range commits {
		page.Commits.Cards = append(page.Commits.Cards, ui.Card{
			Message:  c.Message,
			Author:   c.AuthorName,
			Date:     page.Locale.Date(c.AuthorDate),
			Time:     page.Locale.Time(c.AuthorDate),
			ShortSHA: c.ShortSHA(),
		})
	}
}
