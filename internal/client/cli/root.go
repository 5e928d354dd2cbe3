package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/textfix/internal/client/session"
)

func (a *App) getStatus() string {
	s := ""
	if token, err := a.set.Store.Token(context.Background()); err == nil && token != "" {
		if _, email, err := session.Identity(token); err == nil || email != "" {
			s = email + " "
		}
		s += string(a.currentView()) + " "
	}
	if m := a.mode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root greets the user, asks for credentials when no session is stored,
// starts the connectivity watcher and runs the REPL until exit.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to textfix (type 'help' for commands)")

	if !a.isLoggedIn() {
		a.RedirectToLogin()
	} else {
		a.setMode(ModeOnline)
		a.show()
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
