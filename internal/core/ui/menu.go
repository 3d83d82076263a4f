package ui

// DefaultBreakpoint is the viewport width above which the mobile menu closes.
const DefaultBreakpoint = 768

// Menu is the collapsible navigation list.
type Menu struct {
	Active     bool
	Breakpoint int
}

func (m *Menu) Open() {
	m.Active = true
}

func (m *Menu) Close() {
	m.Active = false
}

// Toggle flips the menu, as the toggle button does.
func (m *Menu) Toggle() {
	m.Active = !m.Active
}

// CloseOnOutsideClick closes the menu for any click outside the navbar.
func (m *Menu) CloseOnOutsideClick(insideNavbar bool) {
	if !insideNavbar {
		m.Close()
	}
}

// CloseOnWideViewport closes the menu once the viewport is wider than the
// breakpoint.
func (m *Menu) CloseOnWideViewport(width int) {
	if width > m.Breakpoint {
		m.Close()
	}
}
