package ui

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/textfix/internal/client/models"
	"github.com/dmitrijs2005/textfix/internal/client/session"
	"github.com/dmitrijs2005/textfix/internal/logging"
)

type ProfileSource interface {
	Get(ctx context.Context) (*models.Profile, error)
}

// ProfilePanel shows the signed-in user's account. It refreshes whenever
// the profile view is entered.
type ProfilePanel struct {
	src      ProfileSource
	notifier Notifier
	logger   logging.Logger
	seq      requestSeq

	mu      sync.RWMutex
	profile models.Profile
	loaded  bool
}

func NewProfilePanel(ctrl *Controller, src ProfileSource, notifier Notifier, logger logging.Logger) *ProfilePanel {
	p := &ProfilePanel{src: src, notifier: notifier, logger: logger.With("module", "profile")}
	ctrl.Subscribe(func(ctx context.Context, ch Change) {
		if ch.Entered(ViewProfile) {
			_ = p.Refresh(ctx)
		}
	})
	return p
}

func (p *ProfilePanel) Refresh(ctx context.Context) error {
	ticket := p.seq.next()
	prof, err := p.src.Get(ctx)
	if !p.seq.current(ticket) {
		return nil
	}
	if err != nil {
		if !session.Silent(err) {
			p.logger.Error(ctx, "failed to load profile", "error", err)
			p.notifier.Notice(MsgProfileFailed, err)
		}
		return err
	}

	p.mu.Lock()
	if prof != nil {
		p.profile = *prof
	} else {
		p.profile = models.Profile{}
	}
	p.loaded = true
	p.mu.Unlock()
	return nil
}

// Profile returns the last loaded profile and whether one was loaded.
func (p *ProfilePanel) Profile() (models.Profile, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.profile, p.loaded
}
