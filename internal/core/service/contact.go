package service

import (
	"context"
	"errors"
	"net/url"

	"github.com/google/uuid"

	"github.com/just-nibble/commit-tracker/internal/core/domain/entities"
	"github.com/just-nibble/commit-tracker/internal/core/ui"
	"github.com/just-nibble/commit-tracker/internal/logger"
)

const (
	contactSuccessMessage = "Thank you! Your message has been sent successfully."
	contactFailureMessage = "Oops! Something went wrong. Please try again later."
	relayFailedMessage    = "Form submission failed"
)

// FormRelay forwards a contact form to the relay service.
type FormRelay interface {
	Submit(ctx context.Context, fields url.Values) (*entities.RelayResponse, error)
}

// ContactSubmitter relays the contact form and toggles its banners.
type ContactSubmitter struct {
	relay FormRelay
	log   *logger.Logger
}

func NewContactSubmitter(relay FormRelay, log *logger.Logger) *ContactSubmitter {
	if log == nil {
		log = logger.Discard()
	}
	return &ContactSubmitter{relay: relay, log: log}
}

// Register binds the submitter to contact form submissions.
func (s *ContactSubmitter) Register(d *ui.Dispatcher) {
	d.OnSubmit(ui.ContactFormID, func(ctx context.Context, page *ui.Page, ev ui.Event) error {
		return s.Submit(ctx, page, ev.Form)
	})
}

// Submit posts fields verbatim to the relay. Success is decided by the
// relay's success flag alone. The submit button is restored on every return
// path.
func (s *ContactSubmitter) Submit(ctx context.Context, page *ui.Page, fields url.Values) error {
	id := uuid.NewString()
	contact := &page.Contact
	contact.Fields = cloneValues(fields)
	contact.Success.Hide()
	contact.Failure.Hide()
	contact.Submit = ui.Button{Disabled: true, Label: ui.SendingLabel}
	defer func() {
		contact.Submit = ui.Button{Label: ui.SubmitLabel}
	}()

	resp, err := s.relay.Submit(ctx, fields)
	if err == nil && (resp == nil || !resp.Success) {
		msg := relayFailedMessage
		if resp != nil && resp.Message != "" {
			msg = resp.Message
		}
		err = errors.New(msg)
	}
	if err != nil {
		s.log.Errorf("Contact form error [%s]: %v", id, err)
		contact.Failure.Show(contactFailureMessage)
		page.ScrollTo(ui.ScrollIntent{Target: ui.ContactErrorID, Block: ui.BlockCenter, Smooth: true})
		return &RequestError{Message: err.Error(), Err: err}
	}

	s.log.Infof("contact submission %s relayed", id)
	contact.Success.Show(contactSuccessMessage)
	contact.Reset()
	page.ScrollTo(ui.ScrollIntent{Target: ui.ContactSuccessID, Block: ui.BlockCenter, Smooth: true})
	return nil
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
