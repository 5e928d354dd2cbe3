package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/textfix/internal/client/services"
	"github.com/dmitrijs2005/textfix/internal/client/ui"
	"github.com/dmitrijs2005/textfix/internal/client/ui/render"
)

type screen int

const (
	screenLogin screen = iota
	screenMain
)

const (
	fieldName = iota
	fieldEmail
	fieldPassword
)

// Model is the bubbletea model. Shared state lives behind the pointers;
// the value itself only carries widgets and screen bookkeeping.
type Model struct {
	ctx    context.Context
	ui     *ui.UI
	auth   services.AuthService
	bridge *bridge
	term   *render.Terminal

	screen screen
	signup bool
	fields []textinput.Model
	focus  int

	input textinput.Model
	vp    viewport.Model

	selected   int
	confirming bool
	busy       bool
	notice     string

	width, height int
}

func newModel(ctx context.Context, u *ui.UI, auth services.AuthService, b *bridge) Model {
	m := Model{
		ctx:    ctx,
		ui:     u,
		auth:   auth,
		bridge: b,
		term:   render.NewTerminal(0),
		vp:     viewport.New(80, 20),
		fields: newFields(),
	}

	in := textinput.New()
	in.Placeholder = "Type text to correct…"
	in.Prompt = "› "
	in.CharLimit = 10000
	m.input = in

	if auth.LoggedIn(ctx) {
		m.screen = screenMain
		m.input.Focus()
	} else {
		m.screen = screenLogin
		m.focusField(fieldEmail)
	}
	m.refreshViewport()
	return m
}

func newFields() []textinput.Model {
	fields := make([]textinput.Model, 3)
	for i, ph := range []string{"Name", "Email", "Password"} {
		t := textinput.New()
		t.Placeholder = ph
		t.Prompt = ph + ": "
		t.CharLimit = 256
		fields[i] = t
	}
	fields[fieldPassword].EchoMode = textinput.EchoPassword
	fields[fieldPassword].EchoCharacter = '•'
	return fields
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) focusField(i int) {
	for j := range m.fields {
		m.fields[j].Blur()
	}
	m.focus = i
	m.fields[i].Focus()
}

// visibleFields are the login form fields in tab order.
func (m Model) visibleFields() []int {
	if m.signup {
		return []int{fieldName, fieldEmail, fieldPassword}
	}
	return []int{fieldEmail, fieldPassword}
}

// activeList is the list that selection keys act on, or nil.
func (m Model) activeList() *ui.HistoryList {
	s := m.ui.Controller.State()
	switch {
	case s.DropdownOpen:
		return m.ui.Dropdown
	case s.HistoryVisible:
		return m.ui.History
	}
	return nil
}

func (m *Model) clampSelection() {
	l := m.activeList()
	if l == nil {
		m.selected = 0
		return
	}
	n := len(l.Items())
	switch {
	case n == 0:
		m.selected = 0
	case m.selected >= n:
		m.selected = n - 1
	case m.selected < 0:
		m.selected = 0
	}
}

func (m *Model) refreshViewport() {
	m.vp.SetContent(m.term.Transcript(m.ui.Controller.Transcript().Messages()))
	m.vp.GotoBottom()
}

func (m *Model) toLogin() {
	m.screen = screenLogin
	m.busy = false
	m.confirming = false
	m.input.Blur()
	m.fields[fieldPassword].SetValue("")
	m.focusField(fieldEmail)
}

func (m *Model) toMain() {
	m.screen = screenMain
	for i := range m.fields {
		m.fields[i].Blur()
	}
	m.fields[fieldPassword].SetValue("")
	m.input.Focus()
}
