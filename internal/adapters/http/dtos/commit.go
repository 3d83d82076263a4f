package dtos

import "github.com/just-nibble/commit-tracker/internal/core/ui"

// Commit is one commit card as returned by the JSON API. Text is not
// HTML-escaped; clients must escape it themselves.
type Commit struct {
	Message  string `json:"message"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	ShortSHA string `json:"sha"`
}

// CommitsResponse mirrors the commit region of the page.
type CommitsResponse struct {
	Heading string   `json:"heading,omitempty"`
	Notice  string   `json:"notice,omitempty"`
	Commits []Commit `json:"commits"`
}

func NewCommitsResponse(list ui.CommitList) CommitsResponse {
	resp := CommitsResponse{
		Heading: list.Heading,
		Notice:  list.Notice,
		Commits: make([]Commit, 0, len(list.Cards)),
	}
	for _, c := range list.Cards {
		resp.Commits = append(resp.Commits, Commit{
			Message:  c.Message,
			Author:   c.Author,
			Date:     c.Date,
			Time:     c.Time,
			ShortSHA: c.ShortSHA,
		})
	}
	return resp
}
