package entities

import "time"

// ShortSHALength is the number of hash characters shown on a commit card.
const ShortSHALength = 7

// Commit is a single change as returned by the commit-listing endpoint.
type Commit struct {
	SHA         string
	Message     string
	AuthorName  string
	AuthorEmail string
	AuthorDate  time.Time
	URL         string
}

// ShortSHA returns the abbreviated hash shown to users.
func (c Commit) ShortSHA() string {
	if len(c.SHA) <= ShortSHALength {
		return c.SHA
	}
	return c.SHA[:ShortSHALength]
}

// Lookup identifies the repository whose commits are listed.
type Lookup struct {
	Owner string
	Repo  string
}

// FullName returns "owner/repo".
func (l Lookup) FullName() string {
	return l.Owner + "/" + l.Repo
}
