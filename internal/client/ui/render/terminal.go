package render

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/textfix/internal/client/models"
	"github.com/dmitrijs2005/textfix/internal/client/ui"
	"github.com/mattn/go-runewidth"
)

const defaultWidth = 80

var (
	brand = lipgloss.Color("#7C3AED")
	muted = lipgloss.Color("#6B7280")
	green = lipgloss.Color("#10B981")
	red   = lipgloss.Color("#EF4444")

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(muted)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(brand).Bold(true).Underline(true)
	userStyle      = lipgloss.NewStyle().Bold(true)
	labelStyle     = lipgloss.NewStyle().Foreground(muted)
	assistantStyle = lipgloss.NewStyle().Foreground(green)
	selectedStyle  = lipgloss.NewStyle().Foreground(brand).Bold(true)
	noticeStyle    = lipgloss.NewStyle().Foreground(red).Bold(true)
	avatarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(brand).Bold(true).Padding(0, 1)
)

// ansiSeq matches CSI and OSC escape sequences.
var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)|\x1b[@-Z\\-_]`)

// Sanitize strips escape sequences and control characters other than
// newline and tab, so remote text cannot drive the terminal.
func Sanitize(s string) string {
	s = ansiSeq.ReplaceAllString(s, "")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// Truncate shortens s to width display columns, marking the cut with an
// ellipsis. Newlines are folded to spaces first.
func Truncate(s string, width int) string {
	s = strings.Join(strings.Fields(Sanitize(s)), " ")
	return runewidth.Truncate(s, width, "…")
}

// Terminal renders the panels for a terminal of the given width.
type Terminal struct {
	Width int
}

func NewTerminal(width int) *Terminal {
	return &Terminal{Width: width}
}

func (t *Terminal) width() int {
	if t.Width <= 0 {
		return defaultWidth
	}
	return t.Width
}

// Tabs renders the navigation rail with the active view highlighted.
func (t *Terminal) Tabs(s ui.State) string {
	views := []ui.View{ui.ViewChat, ui.ViewHistory, ui.ViewProfile}
	parts := make([]string, 0, len(views))
	for i, v := range views {
		label := fmt.Sprintf("%d %s", i+1, v)
		if v == s.View {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (t *Terminal) Welcome() string {
	return labelStyle.Render(ui.MsgWelcome)
}

func (t *Terminal) Transcript(msgs []models.Message) string {
	if len(msgs) == 0 {
		return t.Welcome()
	}

	body := lipgloss.NewStyle().Width(t.width() - 2)
	var sb strings.Builder
	for i, m := range msgs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		text := Sanitize(m.Text)
		if m.IsUser() {
			sb.WriteString(labelStyle.Render("you") + "\n")
			sb.WriteString(body.Inherit(userStyle).Render(text))
		} else {
			sb.WriteString(labelStyle.Render("textfix") + "\n")
			sb.WriteString(body.Inherit(assistantStyle).Render(text))
		}
	}
	return sb.String()
}

// History renders a history list. selected is the highlighted row or -1.
// Compact rows carry only the id and a one-line preview.
func (t *Terminal) History(items []models.Exchange, mode ui.Mode, selected int) string {
	if len(items) == 0 {
		return labelStyle.Render(ui.MsgHistoryEmpty)
	}

	var sb strings.Builder
	for i, it := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		id := fmt.Sprintf("[%d] ", it.ID)
		avail := t.width() - runewidth.StringWidth(id) - 2

		line := id + Truncate(it.Preview(), avail)
		if mode == ui.ModeFull {
			if !it.CreatedAt.IsZero() {
				line += "\n    " + labelStyle.Render(it.CreatedAt.Local().Format("2006-01-02 15:04"))
			}
			if it.CorrectedText != "" {
				line += "\n    " + assistantStyle.Render(Truncate(it.CorrectedText, avail-2))
			}
		}

		if i == selected {
			sb.WriteString(selectedStyle.Render("> ") + line)
		} else {
			sb.WriteString("  " + line)
		}
	}
	return sb.String()
}

func (t *Terminal) Profile(p models.Profile) string {
	rows := []string{
		avatarStyle.Render(Sanitize(p.Initial())) + " " + userStyle.Render(Sanitize(p.DisplayName())),
		"",
		labelStyle.Render("Email         ") + Sanitize(p.DisplayEmail()),
		labelStyle.Render("Member Since  ") + Sanitize(p.DisplayCreatedAt()),
	}
	return strings.Join(rows, "\n")
}

func (t *Terminal) Notice(msg string) string {
	return noticeStyle.Render("! " + Sanitize(msg))
}
