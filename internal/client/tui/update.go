package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/textfix/internal/client/client"
	"github.com/dmitrijs2005/textfix/internal/client/ui"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		if msg.String() == keyQuit {
			return m, tea.Quit
		}
		if m.screen == screenLogin {
			return m.handleLoginKey(msg)
		}
		return m.handleMainKey(msg)

	case actionDoneMsg:
		return m.handleDone(msg)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.term.Width = msg.Width
	m.input.Width = msg.Width - 4
	m.vp.Width = msg.Width
	// tabs, input, notice and help
	m.vp.Height = max(msg.Height-6, 3)
	m.refreshViewport()
	return m, nil
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	order := m.visibleFields()
	pos := 0
	for i, f := range order {
		if f == m.focus {
			pos = i
		}
	}

	switch msg.String() {
	case keyTab, keyDown:
		m.focusField(order[(pos+1)%len(order)])
		return m, nil

	case keyBackTab, keyUp:
		m.focusField(order[(pos+len(order)-1)%len(order)])
		return m, nil

	case keySignup:
		m.signup = !m.signup
		m.notice = ""
		m.focusField(m.visibleFields()[0])
		return m, nil

	case keyEnter:
		if pos < len(order)-1 {
			m.focusField(order[pos+1])
			return m, nil
		}
		m.busy = true
		m.notice = ""
		return m, m.authCmd()
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m Model) authCmd() tea.Cmd {
	ctx, auth := m.ctx, m.auth
	name := m.fields[fieldName].Value()
	email := m.fields[fieldEmail].Value()
	password := []byte(m.fields[fieldPassword].Value())

	if m.signup {
		return func() tea.Msg {
			return actionDoneMsg{action: actionSignup, err: auth.Signup(ctx, name, email, password)}
		}
	}
	return func() tea.Msg {
		return actionDoneMsg{action: actionLogin, err: auth.Login(ctx, email, password)}
	}
}

func (m Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.confirming {
		m.confirming = false
		m.notice = ""
		if key == "y" || key == "Y" {
			return m, m.deleteCmd()
		}
		return m, nil
	}

	state := m.ui.Controller.State()
	typing := state.InputVisible && m.input.Value() != ""

	switch key {
	case "1", "2", "3":
		if !typing {
			m.selected = 0
			return m, m.switchCmd([]ui.View{ui.ViewChat, ui.ViewHistory, ui.ViewProfile}[key[0]-'1'])
		}

	case keyTab:
		next := map[ui.View]ui.View{ui.ViewChat: ui.ViewHistory, ui.ViewHistory: ui.ViewProfile, ui.ViewProfile: ui.ViewChat}
		m.selected = 0
		return m, m.switchCmd(next[state.View])

	case keyNewChat:
		_ = m.ui.Chat.NewChat(m.ctx)
		m.input.SetValue("")
		m.notice = ""
		m.refreshViewport()
		return m, nil

	case keyDropdown:
		m.selected = 0
		return m, m.async(actionDropdown, func() error {
			m.ui.Controller.ToggleDropdown(m.ctx)
			return nil
		})

	case keyEsc:
		if state.DropdownOpen {
			m.ui.Controller.CloseDropdown(m.ctx)
			m.clampSelection()
			return m, nil
		}

	case keyLogout:
		_ = m.auth.Logout(m.ctx)
		_ = m.ui.Chat.NewChat(m.ctx)
		m.refreshViewport()
		redirect, _ := m.bridge.drain()
		if redirect {
			m.toLogin()
		}
		return m, nil

	case keyUp, keyDown:
		if m.activeList() != nil {
			if key == keyUp {
				m.selected--
			} else {
				m.selected++
			}
			m.clampSelection()
			return m, nil
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd

	case keyDelete:
		if l := m.activeList(); l != nil && len(l.Items()) > 0 {
			m.confirming = true
			m.notice = ui.MsgConfirmDelete + " (y/n)"
		}
		return m, nil

	case keyEnter:
		if l := m.activeList(); l != nil {
			items := l.Items()
			if len(items) == 0 {
				return m, nil
			}
			_ = l.Load(m.ctx, items[m.selected].ID)
			m.selected = 0
			m.refreshViewport()
			return m, nil
		}
		if state.InputVisible && !m.busy {
			text := m.input.Value()
			if text == "" {
				return m, nil
			}
			m.input.SetValue("")
			m.busy = true
			m.notice = ""
			return m, m.async(actionSend, func() error { return m.ui.Chat.Send(m.ctx, text) })
		}
		return m, nil
	}

	if state.InputVisible {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.ui.Chat.SetDraft(m.input.Value())
		return m, cmd
	}
	return m, nil
}

func (m Model) switchCmd(view ui.View) tea.Cmd {
	return m.async(actionSwitch, func() error { return m.ui.Controller.Switch(m.ctx, view) })
}

func (m Model) deleteCmd() tea.Cmd {
	l := m.activeList()
	if l == nil {
		return nil
	}
	items := l.Items()
	if m.selected >= len(items) {
		return nil
	}
	id := items[m.selected].ID
	return m.async(actionDelete, func() error { return l.Delete(m.ctx, id) })
}

func (m Model) async(a action, fn func() error) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{action: a, err: fn()}
	}
}

func (m Model) handleDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	redirect, notice := m.bridge.drain()
	if notice != "" {
		m.notice = notice
	}

	switch msg.action {
	case actionLogin, actionSignup:
		if msg.err != nil {
			fallback := ui.MsgLoginFailed
			if msg.action == actionSignup {
				fallback = ui.MsgSignupFailed
			}
			m.notice = client.DetailOr(msg.err, fallback)
			return m, nil
		}
		m.notice = ""
		m.toMain()
		return m, m.switchCmd(ui.ViewChat)
	}

	if redirect {
		m.toLogin()
		m.notice = "Please log in again."
		return m, nil
	}

	if msg.err != nil && errors.Is(msg.err, ui.ErrUnknownItem) {
		m.notice = msg.err.Error()
	}
	m.clampSelection()
	m.refreshViewport()
	if m.ui.Controller.State().InputVisible {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m, nil
}
