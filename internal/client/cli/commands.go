package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/textfix/internal/client/services"
	"github.com/dmitrijs2005/textfix/internal/client/ui"
	"github.com/dmitrijs2005/textfix/internal/client/ui/render"
	"github.com/dmitrijs2005/textfix/internal/filex"
)

var errUsage = errors.New("usage")

// Switch navigates to view and prints it.
func (a *App) Switch(ctx context.Context, view ui.View) error {
	if err := a.ui.Controller.Switch(ctx, view); err != nil {
		return err
	}
	a.show()
	return nil
}

// Dropdown toggles the compact history list and prints it when open.
func (a *App) Dropdown(ctx context.Context) error {
	if a.ui.Controller.ToggleDropdown(ctx) {
		if a.ui.Dropdown.Loaded() {
			printlnFn(a.term.History(a.ui.Dropdown.Items(), ui.ModeCompact, -1))
			printlnFn("Use 'load <id>' or 'delete <id>'; 'dropdown' again to close.")
		}
	}
	return nil
}

// Send analyzes text and prints the reply.
func (a *App) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		printlnFn("Usage: send <text>")
		return errUsage
	}
	if a.currentView() != ui.ViewChat {
		if err := a.ui.Controller.Switch(ctx, ui.ViewChat); err != nil {
			return err
		}
	}

	before := a.ui.Controller.Transcript().Len()
	err := a.ui.Chat.Send(ctx, text)

	msgs := a.ui.Controller.Transcript().Messages()
	if err == nil && len(msgs) > before+1 {
		printlnFn(a.term.Transcript(msgs[len(msgs)-1:]))
	}
	return err
}

// Paste reads multi-line text and sends it.
func (a *App) Paste(ctx context.Context) error {
	text, err := getMultiline(a.reader, "Paste text", a.out)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	return a.Send(ctx, text)
}

// activeList is the list load/delete act on: the dropdown when it is open,
// the full history otherwise.
func (a *App) activeList() *ui.HistoryList {
	if a.ui.Controller.State().DropdownOpen {
		return a.ui.Dropdown
	}
	return a.ui.History
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// Load puts a history entry into the chat.
func (a *App) Load(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		printlnFn("Usage: load <id>")
		return err
	}
	list := a.activeList()
	if !list.Loaded() {
		_ = list.Refresh(ctx)
	}
	if err := list.Load(ctx, id); err != nil {
		printlnFn(err.Error())
		return err
	}
	a.show()
	return nil
}

// Delete removes a history entry after confirmation.
func (a *App) Delete(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		printlnFn("Usage: delete <id>")
		return err
	}
	list := a.activeList()
	if !list.Loaded() {
		if err := list.Refresh(ctx); err != nil {
			return err
		}
	}

	ok, err := confirmFn(a.reader, ui.MsgConfirmDelete, a.out)
	if err != nil || !ok {
		return err
	}

	if err := list.Delete(ctx, id); err != nil {
		if errors.Is(err, ui.ErrUnknownItem) {
			printlnFn(err.Error())
		}
		return err
	}
	printlnFn(a.term.History(list.Items(), list.Mode(), -1))
	return nil
}

// NewChat clears the transcript.
func (a *App) NewChat(ctx context.Context) error {
	if err := a.ui.Chat.NewChat(ctx); err != nil {
		return err
	}
	a.show()
	return nil
}

// Export writes the transcript as a standalone HTML document. Without an
// argument the file goes to the export directory with a timestamped name.
func (a *App) Export(ctx context.Context, arg string) error {
	msgs := a.ui.Controller.Transcript().Messages()
	if len(msgs) == 0 {
		printlnFn("Nothing to export")
		return nil
	}

	path := strings.TrimSpace(arg)
	if path == "" {
		dir := a.config.ExportDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(a.dataDir, dir)
		}
		dir, err := filex.EnsureDir(dir)
		if err != nil {
			return err
		}
		path = filepath.Join(dir, "transcript-"+time.Now().Format("20060102-150405")+".html")
	}

	var buf bytes.Buffer
	if err := (render.HTML{}).Document(&buf, render.Document{Title: "textfix transcript", Messages: msgs}); err != nil {
		return err
	}
	if err := filex.WriteFileAtomic(path, buf.Bytes(), 0o600); err != nil {
		a.Notice("Failed to export transcript", err)
		return err
	}

	a.logger.Info(ctx, "transcript exported", "path", path)
	printlnFn("Exported to " + path)
	return nil
}

// show prints the visible panel.
func (a *App) show() {
	s := a.ui.Controller.State()
	printlnFn(a.term.Tabs(s))

	switch {
	case s.WelcomeVisible:
		printlnFn(a.term.Welcome())
	case s.ChatVisible:
		printlnFn(a.term.Transcript(a.ui.Controller.Transcript().Messages()))
	case s.HistoryVisible:
		if a.ui.History.Loaded() {
			printlnFn(a.term.History(a.ui.History.Items(), ui.ModeFull, -1))
		}
	case s.ProfileVisible:
		if p, ok := a.ui.Profile.Profile(); ok {
			printlnFn(a.term.Profile(p))
		}
	}
}

func errText(err error, fallback string) string {
	if errors.Is(err, services.ErrEmailRequired) || errors.Is(err, services.ErrOTPRequired) {
		return err.Error()
	}
	return fallback
}
