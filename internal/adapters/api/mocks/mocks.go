package mocks

import (
	"context"
	"net/url"

	"github.com/just-nibble/commit-tracker/internal/core/domain/entities"
	"github.com/stretchr/testify/mock"
)

// CommitLister mock
type CommitLister struct {
	mock.Mock
}

func (m *CommitLister) ListCommits(ctx context.Context, owner, repo string) ([]entities.Commit, error) {
	args := m.Called(ctx, owner, repo)
	commits, _ := args.Get(0).([]entities.Commit)
	return commits, args.Error(1)
}

// FormRelay mock
type FormRelay struct {
	mock.Mock
}

func (m *FormRelay) Submit(ctx context.Context, fields url.Values) (*entities.RelayResponse, error) {
	args := m.Called(ctx, fields)
	resp, _ := args.Get(0).(*entities.RelayResponse)
	return resp, args.Error(1)
}
