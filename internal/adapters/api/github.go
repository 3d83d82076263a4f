package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/just-nibble/commit-tracker/internal/core/domain/entities"
)

// DefaultGitHubURL is the public GitHub REST API.
const DefaultGitHubURL = "https://api.github.com"

var errNullCommits = errors.New("expected a JSON array, got null")

// StatusError is returned when an endpoint answers with a non-success status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("received status code %d", e.StatusCode)
}

// GitHubClient is a simple client for interacting with GitHub's API
type GitHubClient struct {
	HTTPClient *http.Client
	BaseURL    string
}

// NewGitHubClient creates a new instance of GitHubClient. A zero timeout
// leaves requests unbounded.
func NewGitHubClient(baseURL string, timeout time.Duration) *GitHubClient {
	if baseURL == "" {
		baseURL = DefaultGitHubURL
	}
	return &GitHubClient{
		HTTPClient: &http.Client{Timeout: timeout},
		BaseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Commit represents the JSON structure of a GitHub commit
type Commit struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name  string    `json:"name"`
			Email string    `json:"email"`
			Date  time.Time `json:"date"`
		} `json:"author"`
		URL string `json:"url"`
	} `json:"commit"`
}

func (c Commit) toEntity() entities.Commit {
	return entities.Commit{
		SHA:         c.SHA,
		Message:     c.Commit.Message,
		AuthorName:  c.Commit.Author.Name,
		AuthorEmail: c.Commit.Author.Email,
		AuthorDate:  c.Commit.Author.Date,
		URL:         c.Commit.URL,
	}
}

// ListCommits fetches the first page of commits for owner/repo. It issues
// exactly one request and keeps the API's ordering.
func (c *GitHubClient) ListCommits(ctx context.Context, owner, repo string) ([]entities.Commit, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/commits", c.BaseURL, url.PathEscape(owner), url.PathEscape(repo))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch commits: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var commits []Commit
	if err := json.NewDecoder(resp.Body).Decode(&commits); err != nil {
		return nil, fmt.Errorf("failed to decode commits response: %w", err)
	}
	if commits == nil {
		return nil, fmt.Errorf("failed to decode commits response: %w", errNullCommits)
	}

	out := make([]entities.Commit, 0, len(commits))
	for _, commit := range commits {
		out = append(out, commit.toEntity())
	}
	return out, nil
}
