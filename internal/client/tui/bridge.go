package tui

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/textfix/internal/logging"
)

// bridge receives redirects and notices from whatever goroutine produced
// them and holds them until the model drains it.
type bridge struct {
	logger logging.Logger

	mu       sync.Mutex
	redirect bool
	notice   string
}

func (b *bridge) RedirectToLogin() {
	b.mu.Lock()
	b.redirect = true
	b.mu.Unlock()
}

func (b *bridge) Notice(message string, err error) {
	if err != nil {
		b.logger.Warn(context.Background(), message, "error", err)
	}
	b.mu.Lock()
	b.notice = message
	b.mu.Unlock()
}

// drain returns and clears the pending events.
func (b *bridge) drain() (redirect bool, notice string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	redirect, notice = b.redirect, b.notice
	b.redirect, b.notice = false, ""
	return redirect, notice
}
