package ui

import (
	"sync"

	"github.com/dmitrijs2005/textfix/internal/client/models"
)

// Transcript is the ordered list of chat messages. Text is stored as typed
// or as received; renderers escape it.
type Transcript struct {
	mu     sync.RWMutex
	msgs   []models.Message
	scroll int

	onChange func()
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

// AppendMessage adds one entry and pins the scroll cursor to it.
func (t *Transcript) AppendMessage(text string, isUser bool) {
	role := models.RoleAssistant
	if isUser {
		role = models.RoleUser
	}

	t.mu.Lock()
	t.msgs = append(t.msgs, models.Message{Role: role, Text: text})
	t.scroll = len(t.msgs) - 1
	t.mu.Unlock()

	t.changed()
}

// LoadFromHistory replaces the transcript with the exchange's input and
// its correction, in that order.
func (t *Transcript) LoadFromHistory(ex models.Exchange) {
	t.mu.Lock()
	t.msgs = []models.Message{
		{Role: models.RoleUser, Text: ex.InputText},
		{Role: models.RoleAssistant, Text: ex.CorrectedText},
	}
	t.scroll = 1
	t.mu.Unlock()

	t.changed()
}

func (t *Transcript) StartNewChat() {
	t.mu.Lock()
	t.msgs = nil
	t.scroll = 0
	t.mu.Unlock()

	t.changed()
}

// Messages returns a copy of the entries.
func (t *Transcript) Messages() []models.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]models.Message, len(t.msgs))
	copy(out, t.msgs)
	return out
}

func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.msgs)
}

func (t *Transcript) Empty() bool {
	return t.Len() == 0
}

// ScrollOffset is the index of the entry the view is scrolled to.
func (t *Transcript) ScrollOffset() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scroll
}

// ScrollTo moves the cursor, clamped to the existing entries.
func (t *Transcript) ScrollTo(i int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch {
	case len(t.msgs) == 0 || i < 0:
		t.scroll = 0
	case i >= len(t.msgs):
		t.scroll = len(t.msgs) - 1
	default:
		t.scroll = i
	}
}

func (t *Transcript) changed() {
	if t.onChange != nil {
		t.onChange()
	}
}
