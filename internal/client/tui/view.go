package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1)
	busyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	formStyle  = lipgloss.NewStyle().Padding(1, 2)
)

func (m Model) View() string {
	if m.screen == screenLogin {
		return m.viewLogin()
	}
	return m.viewMain()
}

func (m Model) viewLogin() string {
	var sb strings.Builder
	if m.signup {
		sb.WriteString(titleStyle.Render("textfix · sign up"))
	} else {
		sb.WriteString(titleStyle.Render("textfix · log in"))
	}
	sb.WriteString("\n\n")
	for _, f := range m.visibleFields() {
		sb.WriteString(m.fields[f].View())
		sb.WriteString("\n")
	}
	if m.busy {
		sb.WriteString("\n" + busyStyle.Render("working…"))
	}
	if m.notice != "" {
		sb.WriteString("\n" + m.term.Notice(m.notice))
	}
	sb.WriteString("\n\n" + helpStyle.Render(helpLogin))
	return formStyle.Render(sb.String())
}

func (m Model) viewMain() string {
	state := m.ui.Controller.State()

	var body string
	switch {
	case state.HistoryVisible:
		sel := -1
		if !state.DropdownOpen {
			sel = m.selected
		}
		body = m.term.History(m.ui.History.Items(), m.ui.History.Mode(), sel)
	case state.ProfileVisible:
		if p, ok := m.ui.Profile.Profile(); ok {
			body = m.term.Profile(p)
		} else {
			body = helpStyle.Render("loading…")
		}
	default:
		body = m.vp.View()
	}

	if state.DropdownOpen {
		list := m.term.History(m.ui.Dropdown.Items(), m.ui.Dropdown.Mode(), m.selected)
		body = lipgloss.JoinHorizontal(lipgloss.Top, boxStyle.Render(list), " ", body)
	}

	parts := []string{m.term.Tabs(state), "", body}
	if state.InputVisible {
		parts = append(parts, "", m.input.View())
	}
	if m.busy {
		parts = append(parts, busyStyle.Render("working…"))
	}
	if m.notice != "" {
		parts = append(parts, m.term.Notice(m.notice))
	}
	parts = append(parts, helpStyle.Render(helpMain))
	return strings.Join(parts, "\n")
}
