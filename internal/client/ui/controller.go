package ui

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/textfix/internal/logging"
)

// Listener receives every state change. Listeners run synchronously on the
// goroutine that caused the change, after the new state is visible through
// Controller.State.
type Listener func(ctx context.Context, ch Change)

// Controller is the view state machine. The view changes only through
// Switch; transcript edits and dropdown toggles republish the derived state.
type Controller struct {
	mu         sync.Mutex
	state      State
	transcript *Transcript
	listeners  map[int]Listener
	nextID     int
	logger     logging.Logger
}

// NewController starts in the chat view.
func NewController(transcript *Transcript, logger logging.Logger) *Controller {
	c := &Controller{
		transcript: transcript,
		listeners:  make(map[int]Listener),
		logger:     logger.With("module", "view_controller"),
	}
	c.state = deriveState(ViewChat, !transcript.Empty(), false, false)
	transcript.onChange = func() { c.publish(context.Background(), c.derive, false) }
	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Transcript() *Transcript {
	return c.transcript
}

// Subscribe registers l and returns a function removing it.
func (c *Controller) Subscribe(l Listener) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Switch navigates to view. Switching closes the history dropdown.
func (c *Controller) Switch(ctx context.Context, view View) error {
	if _, err := ParseView(string(view)); err != nil {
		return err
	}
	c.logger.Debug(ctx, "switch view", "view", view)
	c.publish(ctx, func(s State) State {
		return deriveState(view, !c.transcript.Empty(), false, s.SidebarCollapsed)
	}, true)
	return nil
}

// ToggleDropdown opens or closes the compact history list and reports
// whether it is now open.
func (c *Controller) ToggleDropdown(ctx context.Context) bool {
	next := c.publish(ctx, func(s State) State {
		return deriveState(s.View, !c.transcript.Empty(), !s.DropdownOpen, s.SidebarCollapsed)
	}, false)
	return next.DropdownOpen
}

func (c *Controller) CloseDropdown(ctx context.Context) {
	c.publish(ctx, func(s State) State {
		return deriveState(s.View, !c.transcript.Empty(), false, s.SidebarCollapsed)
	}, false)
}

func (c *Controller) ToggleSidebar(ctx context.Context) {
	c.publish(ctx, func(s State) State {
		return deriveState(s.View, !c.transcript.Empty(), s.DropdownOpen, !s.SidebarCollapsed)
	}, false)
}

func (c *Controller) derive(s State) State {
	return deriveState(s.View, !c.transcript.Empty(), s.DropdownOpen, s.SidebarCollapsed)
}

func (c *Controller) publish(ctx context.Context, next func(State) State, navigated bool) State {
	c.mu.Lock()
	prev := c.state
	c.state = next(prev)
	ch := Change{Prev: prev, Next: c.state, Navigated: navigated}
	ls := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		ls = append(ls, l)
	}
	c.mu.Unlock()

	if !navigated && ch.Prev == ch.Next {
		return ch.Next
	}
	for _, l := range ls {
		l(ctx, ch)
	}
	return ch.Next
}
