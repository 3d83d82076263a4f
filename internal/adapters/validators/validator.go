package validators

import (
	"errors"
	"strings"

	"github.com/just-nibble/commit-tracker/internal/core/domain/entities"
)

// ErrMissingLookup is returned when either lookup field is blank.
var ErrMissingLookup = errors.New("owner and repository are required")

// Repo is an "owner/name" repository reference.
type Repo string

func (r *Repo) Validate() error {
	repoSlice := strings.Split(string(*r), "/")
	if len(repoSlice) != 2 || strings.TrimSpace(repoSlice[0]) == "" || strings.TrimSpace(repoSlice[1]) == "" {
		return errors.New("invalid repo")
	}

	return nil
}

// Lookup returns the repository reference as a lookup. Call Validate first.
func (r Repo) Lookup() entities.Lookup {
	owner, name, _ := strings.Cut(string(r), "/")
	return entities.Lookup{Owner: strings.TrimSpace(owner), Repo: strings.TrimSpace(name)}
}

// Lookup trims both inputs and requires each to be non-empty. The trimmed
// values are returned even on error so forms can redisplay them.
func Lookup(owner, repo string) (entities.Lookup, error) {
	l := entities.Lookup{Owner: strings.TrimSpace(owner), Repo: strings.TrimSpace(repo)}
	if l.Owner == "" || l.Repo == "" {
		return l, ErrMissingLookup
	}
	return l, nil
}
