package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchOrderAndFirstError(t *testing.T) {
	d := NewDispatcher()
	var order []int
	errFirst := errors.New("first")

	d.On(Click, func(context.Context, *Page, Event) error { order = append(order, 1); return errFirst })
	d.On(Click, func(context.Context, *Page, Event) error { order = append(order, 2); return errors.New("second") })
	d.On(Resize, func(context.Context, *Page, Event) error { order = append(order, 3); return nil })

	err := d.Dispatch(context.Background(), NewPage(Options{}), Event{Kind: Click})
	assert.ErrorIs(t, err, errFirst)
	assert.Equal(t, []int{1, 2}, order)
}

func TestDispatchOnSubmitFiltersByForm(t *testing.T) {
	d := NewDispatcher()
	called := 0
	d.OnSubmit(RepoFormID, func(context.Context, *Page, Event) error { called++; return nil })

	page := NewPage(Options{})
	require.NoError(t, d.Dispatch(context.Background(), page, Event{Kind: Submit, Target: ContactFormID}))
	assert.Equal(t, 0, called)

	require.NoError(t, d.Dispatch(context.Background(), page, Event{Kind: Submit, Target: RepoFormID}))
	assert.Equal(t, 1, called)
}

func TestRegisterNavigation(t *testing.T) {
	d := NewDispatcher()
	RegisterNavigation(d)
	ctx := context.Background()
	page := NewPage(Options{})

	require.NoError(t, d.Dispatch(ctx, page, Event{Kind: Click, Target: MenuToggleID, InsideNavbar: true}))
	assert.True(t, page.Menu.Active)

	require.NoError(t, d.Dispatch(ctx, page, Event{Kind: Click, Target: NavLinksID, InsideNavbar: true}))
	assert.True(t, page.Menu.Active)

	require.NoError(t, d.Dispatch(ctx, page, Event{Kind: Click, Target: "about"}))
	assert.False(t, page.Menu.Active)

	page.Menu.Open()
	require.NoError(t, d.Dispatch(ctx, page, Event{Kind: Resize, Width: 1024}))
	assert.False(t, page.Menu.Active)

	require.NoError(t, d.Dispatch(ctx, page, Event{Kind: AnchorClick, Href: "#nowhere"}))
	assert.Nil(t, page.Scroll)

	require.NoError(t, d.Dispatch(ctx, page, Event{Kind: AnchorClick, Href: "#contact"}))
	require.NotNil(t, page.Scroll)
	assert.Equal(t, "contact", page.Scroll.Target)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "submit", Submit.String())
	assert.Equal(t, "EventKind(42)", EventKind(42).String())
}
