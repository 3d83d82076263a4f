package service

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/just-nibble/commit-tracker/internal/adapters/api/mocks"
	"github.com/just-nibble/commit-tracker/internal/core/domain/entities"
	"github.com/just-nibble/commit-tracker/internal/core/ui"
	"github.com/just-nibble/commit-tracker/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func contactFields() url.Values {
	return url.Values{
		"access_key": {"key"},
		"name":       {"Ada"},
		"email":      {"ada@example.com"},
		"message":    {"Hello"},
	}
}

func TestContactSubmitter_Success(t *testing.T) {
	page := ui.NewPage(ui.Options{})
	page.Contact.Failure.Show("old failure")

	relay := new(mocks.FormRelay)
	relay.On("Submit", mock.Anything, contactFields()).
		Run(func(mock.Arguments) {
			assert.True(t, page.Contact.Submit.Disabled)
			assert.Equal(t, ui.SendingLabel, page.Contact.Submit.Label)
			assert.False(t, page.Contact.Success.Visible)
			assert.False(t, page.Contact.Failure.Visible)
		}).
		Return(&entities.RelayResponse{Success: true}, nil).Once()

	err := NewContactSubmitter(relay, nil).Submit(context.Background(), page, contactFields())

	require.NoError(t, err)
	assert.True(t, page.Contact.Success.Visible)
	assert.False(t, page.Contact.Failure.Visible)
	assert.Empty(t, page.Contact.Value("name"))
	assert.Empty(t, page.Contact.Value("message"))
	assert.False(t, page.Contact.Submit.Disabled)
	assert.Equal(t, ui.SubmitLabel, page.Contact.Submit.Label)
	require.NotNil(t, page.Scroll)
	assert.Equal(t, ui.ScrollIntent{Target: ui.ContactSuccessID, Block: ui.BlockCenter, Smooth: true}, *page.Scroll)
	relay.AssertExpectations(t)
}

func TestContactSubmitter_RelayRejects(t *testing.T) {
	var logs bytes.Buffer
	relay := new(mocks.FormRelay)
	relay.On("Submit", mock.Anything, mock.Anything).Return(&entities.RelayResponse{Success: false, Message: "x"}, nil)

	page := ui.NewPage(ui.Options{})
	err := NewContactSubmitter(relay, logger.New(&logs, false)).Submit(context.Background(), page, contactFields())

	var rerr *RequestError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "x", rerr.Message)
	assert.True(t, page.Contact.Failure.Visible)
	assert.False(t, page.Contact.Success.Visible)
	assert.False(t, page.Contact.Submit.Disabled)
	assert.Equal(t, ui.SubmitLabel, page.Contact.Submit.Label)
	assert.Equal(t, "Ada", page.Contact.Value("name"), "fields survive a failed submission")
	assert.Equal(t, ui.ContactErrorID, page.Scroll.Target)
	assert.Contains(t, logs.String(), "Contact form error")
}

func TestContactSubmitter_RelayRejectsWithoutMessage(t *testing.T) {
	relay := new(mocks.FormRelay)
	relay.On("Submit", mock.Anything, mock.Anything).Return(&entities.RelayResponse{}, nil)

	err := NewContactSubmitter(relay, nil).Submit(context.Background(), ui.NewPage(ui.Options{}), url.Values{})
	assert.EqualError(t, err, relayFailedMessage)
}

func TestContactSubmitter_NetworkError(t *testing.T) {
	cause := errors.New("connection reset")
	relay := new(mocks.FormRelay)
	relay.On("Submit", mock.Anything, mock.Anything).Return(nil, cause)

	page := ui.NewPage(ui.Options{})
	err := NewContactSubmitter(relay, nil).Submit(context.Background(), page, contactFields())

	assert.ErrorIs(t, err, cause)
	assert.True(t, page.Contact.Failure.Visible)
	assert.False(t, page.Contact.Success.Visible)
	assert.False(t, page.Contact.Submit.Disabled)
	assert.Equal(t, ui.SubmitLabel, page.Contact.Submit.Label)
}

func TestContactSubmitter_Register(t *testing.T) {
	relay := new(mocks.FormRelay)
	relay.On("Submit", mock.Anything, contactFields()).Return(&entities.RelayResponse{Success: true}, nil)

	d := ui.NewDispatcher()
	NewContactSubmitter(relay, nil).Register(d)

	page := ui.NewPage(ui.Options{})
	ev := ui.Event{Kind: ui.Submit, Target: ui.ContactFormID, Form: contactFields()}
	require.NoError(t, d.Dispatch(context.Background(), page, ev))
	assert.True(t, page.Contact.Success.Visible)
}
