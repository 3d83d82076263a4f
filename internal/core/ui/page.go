// Package ui holds the view model for the tracker page: every region the
// handlers write to, built fresh for each request.
package ui

import (
	"net/url"

	"github.com/just-nibble/commit-tracker/internal/locale"
)

// Element ids rendered by the page template.
const (
	NavbarID         = "navbar"
	NavLinksID       = "navLinks"
	MenuToggleID     = "menuToggle"
	RepoFormID       = "repoForm"
	LoadingID        = "loading"
	ErrorID          = "error"
	CommitsID        = "commits"
	ContactFormID    = "contactForm"
	ContactSubmitID  = "contactSubmitBtn"
	ContactSuccessID = "contactSuccess"
	ContactErrorID   = "contactError"
)

// Section ids reachable from the navigation bar.
var Sections = []string{"home", "tracker", "about", "contact"}

// Contact submit button labels.
const (
	SubmitLabel  = "Send Message"
	SendingLabel = "Sending..."
)

// Region is a block of the page that is either shown or hidden.
type Region struct {
	Visible bool
	Text    string
}

func (r *Region) Show(text string) {
	r.Visible = true
	r.Text = text
}

func (r *Region) Hide() {
	r.Visible = false
}

// Button is a form's submit control.
type Button struct {
	Disabled bool
	Label    string
}

// Card is one rendered commit. Fields hold raw text; escaping happens at
// render time.
type Card struct {
	Message  string
	Author   string
	Date     string
	Time     string
	ShortSHA string
}

// CommitList is the commit result region.
type CommitList struct {
	Heading string
	Notice  string
	Cards   []Card
}

// Clear empties the region.
func (c *CommitList) Clear() {
	*c = CommitList{}
}

// Empty reports whether nothing is rendered in the region.
func (c *CommitList) Empty() bool {
	return c.Heading == "" && c.Notice == "" && len(c.Cards) == 0
}

// LookupForm holds the commit lookup inputs as last submitted.
type LookupForm struct {
	Owner string
	Repo  string
}

// ContactForm is the contact section: its field values, the submit control
// and the two status banners.
type ContactForm struct {
	Fields  url.Values
	Submit  Button
	Success Region
	Failure Region
}

// Reset clears every field value.
func (c *ContactForm) Reset() {
	c.Fields = url.Values{}
}

// Value returns the current value of a field.
func (c ContactForm) Value(name string) string {
	return c.Fields.Get(name)
}

// Page is the view model passed to every handler.
type Page struct {
	Menu    Menu
	Loading Region
	Error   Region
	Commits CommitList
	Lookup  LookupForm
	Contact ContactForm
	Scroll  *ScrollIntent
	Anchors *Anchors
	Locale  locale.Format
	// Hidden fields rendered into the contact form, e.g. the relay access key.
	Hidden url.Values
}

// Options configures a new Page.
type Options struct {
	Breakpoint int
	Locale     locale.Format
	Hidden     url.Values
}

// NewPage builds the page in its initial state.
func NewPage(opts Options) *Page {
	if opts.Breakpoint <= 0 {
		opts.Breakpoint = DefaultBreakpoint
	}
	if opts.Locale.DateLayout == "" {
		opts.Locale = locale.Default()
	}
	hidden := opts.Hidden
	if hidden == nil {
		hidden = url.Values{}
	}
	return &Page{
		Menu: Menu{Breakpoint: opts.Breakpoint},
		Contact: ContactForm{
			Fields: url.Values{},
			Submit: Button{Label: SubmitLabel},
		},
		Anchors: NewAnchors(Sections...),
		Locale:  opts.Locale,
		Hidden:  hidden,
	}
}

// ScrollTo records where the browser should scroll after rendering.
func (p *Page) ScrollTo(intent ScrollIntent) {
	p.Scroll = &intent
}

// ShowError writes message into the error region and clears the commit
// region.
func (p *Page) ShowError(message string) {
	p.Error.Show(message)
	p.Commits.Clear()
}
