package ui

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/textfix/internal/client/models"
	"github.com/dmitrijs2005/textfix/internal/client/session"
	"github.com/dmitrijs2005/textfix/internal/logging"
)

// AuthChecker returns the stored credential or redirects to login.
type AuthChecker interface {
	CheckAuth(ctx context.Context) (string, error)
}

type Analyzer interface {
	Analyze(ctx context.Context, text string) (*models.Exchange, error)
}

// Chat drives the transcript: it sends input for analysis and appends the
// result.
type Chat struct {
	ctrl     *Controller
	auth     AuthChecker
	analyzer Analyzer
	notifier Notifier
	logger   logging.Logger

	// generation changes on every new chat; replies from an older one are dropped
	generation requestSeq

	mu    sync.Mutex
	draft string
}

func NewChat(ctrl *Controller, auth AuthChecker, analyzer Analyzer, notifier Notifier, logger logging.Logger) *Chat {
	return &Chat{
		ctrl:     ctrl,
		auth:     auth,
		analyzer: analyzer,
		notifier: notifier,
		logger:   logger.With("module", "chat"),
	}
}

// Send appends text as a user message, analyzes it and appends the answer.
// Blank input is ignored. Overlapping sends each get their answer; a
// response that arrives after a new chat was started is dropped.
func (c *Chat) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if _, err := c.auth.CheckAuth(ctx); err != nil {
		return err
	}

	t := c.ctrl.Transcript()
	t.AppendMessage(text, true)
	c.SetDraft("")

	gen := c.generation.latest()
	ex, err := c.analyzer.Analyze(ctx, text)
	if !c.generation.current(gen) {
		c.logger.Debug(ctx, "discarding analysis from a previous chat", "generation", gen)
		return nil
	}
	if err != nil {
		if !session.Silent(err) {
			c.logger.Error(ctx, "analyze failed", "error", err)
			c.notifier.Notice(MsgAnalyzeFailed, err)
		}
		return err
	}

	reply := ex.CorrectedText
	if reply == "" {
		reply = MsgAnalyzeEmpty
	}
	t.AppendMessage(reply, false)
	return nil
}

// NewChat clears the transcript and the input and shows the chat view.
// In-flight analyses are abandoned.
func (c *Chat) NewChat(ctx context.Context) error {
	c.generation.next()
	c.ctrl.Transcript().StartNewChat()
	c.SetDraft("")
	return c.ctrl.Switch(ctx, ViewChat)
}

// Draft is the text currently in the input affordance.
func (c *Chat) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

func (c *Chat) SetDraft(s string) {
	c.mu.Lock()
	c.draft = s
	c.mu.Unlock()
}
