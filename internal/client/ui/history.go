package ui

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/textfix/internal/client/models"
	"github.com/dmitrijs2005/textfix/internal/client/session"
	"github.com/dmitrijs2005/textfix/internal/logging"
)

// ErrUnknownItem is returned for an id that is not in the rendered list.
var ErrUnknownItem = errors.New("no such history item")

// Mode selects how a HistoryList is shown: the full history view or the
// compact dropdown reachable from the navigation rail.
type Mode int

const (
	ModeFull Mode = iota
	ModeCompact
)

func (m Mode) String() string {
	if m == ModeCompact {
		return "compact"
	}
	return "full"
}

type HistorySource interface {
	List(ctx context.Context) ([]models.Exchange, error)
	Delete(ctx context.Context, id int64) error
}

// HistoryList is the one list component behind both history surfaces.
// Selecting an entry loads it into the chat; deleting removes exactly that
// entry once the server confirms.
type HistoryList struct {
	mode     Mode
	ctrl     *Controller
	src      HistorySource
	notifier Notifier
	logger   logging.Logger
	seq      requestSeq

	mu     sync.RWMutex
	items  []models.Exchange
	loaded bool
}

// NewHistoryList subscribes the list to ctrl: a full list refreshes when
// the history view is entered, a compact one when the dropdown opens.
func NewHistoryList(mode Mode, ctrl *Controller, src HistorySource, notifier Notifier, logger logging.Logger) *HistoryList {
	h := &HistoryList{
		mode:     mode,
		ctrl:     ctrl,
		src:      src,
		notifier: notifier,
		logger:   logger.With("module", "history", "mode", mode.String()),
	}
	ctrl.Subscribe(h.onChange)
	return h
}

func (h *HistoryList) onChange(ctx context.Context, ch Change) {
	if (h.mode == ModeFull && ch.Entered(ViewHistory)) || (h.mode == ModeCompact && ch.DropdownOpened()) {
		_ = h.Refresh(ctx)
	}
}

func (h *HistoryList) Mode() Mode { return h.mode }

// Refresh replaces the items with the server's list.
func (h *HistoryList) Refresh(ctx context.Context) error {
	ticket := h.seq.next()
	items, err := h.src.List(ctx)
	if !h.seq.current(ticket) {
		h.logger.Debug(ctx, "discarding stale history response", "ticket", ticket)
		return nil
	}
	if err != nil {
		if !session.Silent(err) {
			h.logger.Error(ctx, "failed to load history", "error", err)
			h.notifier.Notice(MsgHistoryFailed, err)
		}
		return err
	}

	h.mu.Lock()
	h.items = items
	h.loaded = true
	h.mu.Unlock()
	return nil
}

// Delete removes id on the server and then from the list. On failure the
// list is left as it was.
func (h *HistoryList) Delete(ctx context.Context, id int64) error {
	if _, ok := h.find(id); !ok {
		return ErrUnknownItem
	}

	if err := h.src.Delete(ctx, id); err != nil {
		if !session.Silent(err) {
			h.logger.Error(ctx, "failed to delete history", "id", id, "error", err)
			h.notifier.Notice(MsgDeleteFailed, err)
		}
		return err
	}

	h.mu.Lock()
	for i, it := range h.items {
		if it.ID == id {
			h.items = append(h.items[:i:i], h.items[i+1:]...)
			break
		}
	}
	h.mu.Unlock()
	h.logger.Info(ctx, "history item deleted", "id", id)
	return nil
}

// Load puts the exchange into the chat, closes the dropdown and shows the
// chat view.
func (h *HistoryList) Load(ctx context.Context, id int64) error {
	ex, ok := h.find(id)
	if !ok {
		return ErrUnknownItem
	}
	h.ctrl.Transcript().LoadFromHistory(ex)
	h.ctrl.CloseDropdown(ctx)
	return h.ctrl.Switch(ctx, ViewChat)
}

// Items returns a copy of the listed exchanges.
func (h *HistoryList) Items() []models.Exchange {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]models.Exchange, len(h.items))
	copy(out, h.items)
	return out
}

// Loaded reports whether a refresh has completed.
func (h *HistoryList) Loaded() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loaded
}

func (h *HistoryList) find(id int64) (models.Exchange, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, it := range h.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.Exchange{}, false
}
