package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuOpenCloseIdempotent(t *testing.T) {
	m := Menu{Breakpoint: DefaultBreakpoint}

	m.Open()
	m.Open()
	assert.True(t, m.Active)

	m.Close()
	m.Close()
	assert.False(t, m.Active)
}

func TestMenuToggle(t *testing.T) {
	m := Menu{}
	m.Toggle()
	assert.True(t, m.Active)
	m.Toggle()
	assert.False(t, m.Active)
}

func TestMenuCloseOnOutsideClick(t *testing.T) {
	m := Menu{Active: true}
	m.CloseOnOutsideClick(true)
	assert.True(t, m.Active, "click inside the navbar keeps the menu open")

	m.CloseOnOutsideClick(false)
	assert.False(t, m.Active)
}

func TestMenuCloseOnWideViewport(t *testing.T) {
	m := Menu{Active: true, Breakpoint: 768}
	m.CloseOnWideViewport(768)
	assert.True(t, m.Active, "width equal to the breakpoint is still narrow")

	m.CloseOnWideViewport(769)
	assert.False(t, m.Active)
}
