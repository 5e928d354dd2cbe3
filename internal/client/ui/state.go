package ui

import "fmt"

type View string

const (
	ViewChat    View = "chat"
	ViewHistory View = "history"
	ViewProfile View = "profile"
)

func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case ViewChat, ViewHistory, ViewProfile:
		return v, nil
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// State is an immutable snapshot of what is on screen. Exactly one of
// ChatVisible, WelcomeVisible, HistoryVisible and ProfileVisible is set,
// and InputVisible holds only in the chat view.
type State struct {
	View View

	ChatVisible    bool
	WelcomeVisible bool
	HistoryVisible bool
	ProfileVisible bool
	InputVisible   bool

	DropdownOpen     bool
	SidebarCollapsed bool
}

// deriveState is the single place where panel visibility is decided.
func deriveState(view View, hasMessages, dropdownOpen, collapsed bool) State {
	s := State{View: view, DropdownOpen: dropdownOpen, SidebarCollapsed: collapsed}
	switch view {
	case ViewHistory:
		s.HistoryVisible = true
	case ViewProfile:
		s.ProfileVisible = true
	default:
		s.View = ViewChat
		s.InputVisible = true
		if hasMessages {
			s.ChatVisible = true
		} else {
			s.WelcomeVisible = true
		}
	}
	return s
}

// VisiblePanels counts the main panels currently shown.
func (s State) VisiblePanels() int {
	n := 0
	for _, v := range []bool{s.ChatVisible, s.WelcomeVisible, s.HistoryVisible, s.ProfileVisible} {
		if v {
			n++
		}
	}
	return n
}

// Change is delivered to subscribers. Navigated is set when the change came
// from an explicit navigation event, even if the view did not change.
type Change struct {
	Prev      State
	Next      State
	Navigated bool
}

// Entered reports whether this change navigated to view.
func (c Change) Entered(view View) bool {
	return c.Navigated && c.Next.View == view
}

// DropdownOpened reports whether the compact history list was just opened.
func (c Change) DropdownOpened() bool {
	return c.Next.DropdownOpen && !c.Prev.DropdownOpen
}
