package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/just-nibble/commit-tracker/internal/core/service"
	"github.com/just-nibble/commit-tracker/internal/core/ui"
	"github.com/just-nibble/commit-tracker/internal/locale"
	"github.com/just-nibble/commit-tracker/internal/logger"
	"github.com/just-nibble/commit-tracker/internal/render"
)

// Viewport width client hints, newest first.
var viewportHints = []string{"Sec-CH-Viewport-Width", "Viewport-Width"}

// PageFactory builds a fresh view model for each request.
type PageFactory struct {
	Breakpoint int
	Location   *time.Location
	Hidden     url.Values
}

// New builds a page localized for the request's Accept-Language.
func (f PageFactory) New(r *http.Request) *ui.Page {
	return f.ForLanguage(r.Header.Get("Accept-Language"))
}

// ForLanguage builds a page localized for an Accept-Language style list.
func (f PageFactory) ForLanguage(acceptLanguage string) *ui.Page {
	format := locale.Match(acceptLanguage)
	if f.Location != nil {
		format = format.In(f.Location)
	}
	return ui.NewPage(ui.Options{
		Breakpoint: f.Breakpoint,
		Locale:     format,
		Hidden:     f.Hidden,
	})
}

// PageHandler serves the tracker page and its two forms.
type PageHandler struct {
	pages      PageFactory
	dispatcher *ui.Dispatcher
	renderer   *render.Renderer
	log        *logger.Logger
}

func NewPageHandler(pages PageFactory, dispatcher *ui.Dispatcher, renderer *render.Renderer, log *logger.Logger) *PageHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &PageHandler{pages: pages, dispatcher: dispatcher, renderer: renderer, log: log}
}

// Index renders the page. ?menu=open replays the toggle click, ?goto=<id>
// replays an anchor click and the viewport client hint replays a resize.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	page := h.pages.New(r)
	var events []ui.Event

	query := r.URL.Query()
	if query.Get("menu") == "open" {
		events = append(events, ui.Event{Kind: ui.Click, Target: ui.MenuToggleID, InsideNavbar: true})
	}
	if width, ok := viewportWidth(r); ok {
		events = append(events, ui.Event{Kind: ui.Resize, Width: width})
	}
	if target := query.Get("goto"); target != "" {
		events = append(events, ui.Event{Kind: ui.AnchorClick, Href: "#" + target})
	}

	h.serve(w, r, page, events...)
}

// SubmitCommits handles the commit lookup form.
func (h *PageHandler) SubmitCommits(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, ui.RepoFormID)
}

// SubmitContact handles the contact form.
func (h *PageHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, ui.ContactFormID)
}

func (h *PageHandler) submit(w http.ResponseWriter, r *http.Request, formID string) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}
	page := h.pages.New(r)
	h.serve(w, r, page, ui.Event{Kind: ui.Submit, Target: formID, Form: r.PostForm})
}

func (h *PageHandler) serve(w http.ResponseWriter, r *http.Request, page *ui.Page, events ...ui.Event) {
	for _, ev := range events {
		if err := h.dispatch(r.Context(), page, ev); err != nil {
			h.log.Debugf("%s on %q: %v", ev.Kind, ev.Target, err)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Accept-CH", strings.Join(viewportHints, ", "))
	if err := h.renderer.HTML(w, page); err != nil {
		h.log.Errorf("rendering page: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// dispatch returns only errors the page does not already show.
func (h *PageHandler) dispatch(ctx context.Context, page *ui.Page, ev ui.Event) error {
	err := h.dispatcher.Dispatch(ctx, page, ev)
	var verr *service.ValidationError
	var rerr *service.RequestError
	if errors.As(err, &verr) || errors.As(err, &rerr) {
		return nil
	}
	return err
}

func viewportWidth(r *http.Request) (int, bool) {
	for _, name := range viewportHints {
		if v := r.Header.Get(name); v != "" {
			width, err := strconv.Atoi(strings.TrimSpace(v))
			if err == nil && width > 0 {
				return width, true
			}
		}
	}
	return 0, false
}
