// Package render turns a ui.Page into HTML or plain text.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/just-nibble/commit-tracker/internal/core/ui"
)

// DefaultTitle is the page heading.
const DefaultTitle = "GitHub Commit Tracker"

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}).Parse(pageTemplate))

type pageData struct {
	Title      string
	Lang       string
	ToggleHref string
	Sections   []string
	Page       *ui.Page
}

// Renderer writes the tracker page.
type Renderer struct {
	Title string
}

func NewRenderer(title string) *Renderer {
	if title == "" {
		title = DefaultTitle
	}
	return &Renderer{Title: title}
}

// HTML renders the full page. Commit messages and author names are
// escaped by html/template.
func (r *Renderer) HTML(w io.Writer, page *ui.Page) error {
	toggle := "/?menu=open"
	if page.Menu.Active {
		toggle = "/"
	}
	data := pageData{
		Title:      r.Title,
		Lang:       page.Locale.Tag.String(),
		ToggleHref: toggle,
		Sections:   ui.Sections,
		Page:       page,
	}

	// Buffer so a template failure never leaves a half-written response.
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Text renders the commit and error regions for a terminal.
func (r *Renderer) Text(w io.Writer, page *ui.Page) error {
	var b strings.Builder
	if page.Error.Visible {
		fmt.Fprintln(&b, page.Error.Text)
	}
	if page.Commits.Notice != "" {
		fmt.Fprintln(&b, page.Commits.Notice)
	}
	if page.Commits.Heading != "" {
		fmt.Fprintln(&b, page.Commits.Heading)
		fmt.Fprintln(&b)
	}
	for _, c := range page.Commits.Cards {
		fmt.Fprintf(&b, "%s  %s\n", c.ShortSHA, firstLine(c.Message))
		fmt.Fprintf(&b, "         By: %s, %s at %s\n", c.Author, c.Date, c.Time)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
