package ui

import (
	"context"
	"fmt"
	"net/url"
)

// EventKind identifies what the user did.
type EventKind int

const (
	Click EventKind = iota
	Resize
	Submit
	AnchorClick
)

func (k EventKind) String() string {
	switch k {
	case Click:
		return "click"
	case Resize:
		return "resize"
	case Submit:
		return "submit"
	case AnchorClick:
		return "anchor-click"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a single user interaction. Only the fields relevant to Kind are
// set.
type Event struct {
	Kind EventKind
	// Target is the id of the element the event fired on.
	Target       string
	InsideNavbar bool
	Width        int
	Form         url.Values
	Href         string
}

// Handler reacts to an event by updating the page.
type Handler func(ctx context.Context, page *Page, ev Event) error

// Dispatcher routes events to the handlers registered for their kind.
type Dispatcher struct {
	handlers map[EventKind][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[EventKind][]Handler)}
}

// On registers h for events of the given kind.
func (d *Dispatcher) On(kind EventKind, h Handler) {
	d.handlers[kind] = append(d.handlers[kind], h)
}

// OnSubmit registers h for submissions of the form with the given id.
func (d *Dispatcher) OnSubmit(formID string, h Handler) {
	d.On(Submit, func(ctx context.Context, page *Page, ev Event) error {
		if ev.Target != formID {
			return nil
		}
		return h(ctx, page, ev)
	})
}

// Dispatch runs every handler for ev.Kind in registration order and returns
// the first error. Later handlers still run.
func (d *Dispatcher) Dispatch(ctx context.Context, page *Page, ev Event) error {
	var first error
	for _, h := range d.handlers[ev.Kind] {
		if err := h(ctx, page, ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// RegisterNavigation wires the menu and smooth-scroll behavior.
func RegisterNavigation(d *Dispatcher) {
	d.On(Click, func(_ context.Context, page *Page, ev Event) error {
		if ev.Target == MenuToggleID {
			page.Menu.Toggle()
			return nil
		}
		page.Menu.CloseOnOutsideClick(ev.InsideNavbar)
		return nil
	})
	d.On(Resize, func(_ context.Context, page *Page, ev Event) error {
		page.Menu.CloseOnWideViewport(ev.Width)
		return nil
	})
	d.On(AnchorClick, func(_ context.Context, page *Page, ev Event) error {
		if intent, ok := page.Anchors.Resolve(ev.Href); ok {
			page.ScrollTo(intent)
		}
		return nil
	})
}
