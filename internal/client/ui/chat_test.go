package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/textfix/internal/client/models"
	"github.com/dmitrijs2005/textfix/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_SendRendersUserThenAssistant(t *testing.T) {
	f := newFixture()
	f.analyzer.fn = func(_ context.Context, text string) (*models.Exchange, error) {
		return &models.Exchange{InputText: text, CorrectedText: "hello world"}, nil
	}

	require.NoError(t, f.ui.Chat.Send(context.Background(), "helo wrld"))

	assert.Equal(t, []models.Message{
		{Role: models.RoleUser, Text: "helo wrld"},
		{Role: models.RoleAssistant, Text: "hello world"},
	}, f.ui.Controller.Transcript().Messages())
	assert.True(t, f.ui.Controller.State().ChatVisible)
	assert.Empty(t, f.notifier.messages())
}

func TestChat_EmptyCorrectionFallback(t *testing.T) {
	f := newFixture()
	f.analyzer.fn = func(context.Context, string) (*models.Exchange, error) {
		return &models.Exchange{}, nil
	}

	require.NoError(t, f.ui.Chat.Send(context.Background(), "fine text"))
	msgs := f.ui.Controller.Transcript().Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, MsgAnalyzeEmpty, msgs[1].Text)
}

func TestChat_BlankInputIgnored(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.ui.Chat.Send(context.Background(), "   \n"))
	assert.Empty(t, f.analyzer.calls)
	assert.Equal(t, 0, f.auth.calls)
	assert.True(t, f.ui.Controller.Transcript().Empty())
}

func TestChat_NoTokenNoMessageNoCall(t *testing.T) {
	f := newFixture()
	f.auth.err = session.ErrNotAuthenticated

	err := f.ui.Chat.Send(context.Background(), "hello")
	require.ErrorIs(t, err, session.ErrNotAuthenticated)
	assert.Empty(t, f.analyzer.calls)
	assert.True(t, f.ui.Controller.Transcript().Empty())
	assert.Empty(t, f.notifier.messages())
}

func TestChat_FailureNotices(t *testing.T) {
	f := newFixture()
	f.ui.Chat.SetDraft("draft")
	f.analyzer.fn = func(context.Context, string) (*models.Exchange, error) {
		return nil, errors.New("503")
	}

	err := f.ui.Chat.Send(context.Background(), "x")
	require.Error(t, err)
	assert.Equal(t, []string{MsgAnalyzeFailed}, f.notifier.messages())
	assert.Equal(t, 1, f.ui.Controller.Transcript().Len(), "user message stays")
	assert.Empty(t, f.ui.Chat.Draft())
}

func TestChat_AuthExpiredIsSilent(t *testing.T) {
	f := newFixture()
	f.analyzer.fn = func(context.Context, string) (*models.Exchange, error) {
		return nil, session.ErrAuthExpired
	}

	err := f.ui.Chat.Send(context.Background(), "x")
	require.ErrorIs(t, err, session.ErrAuthExpired)
	assert.Empty(t, f.notifier.messages())
}

func TestChat_NewChatDropsInFlightReply(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	f.analyzer.fn = func(context.Context, string) (*models.Exchange, error) {
		close(started)
		<-release
		return &models.Exchange{CorrectedText: "late"}, nil
	}

	done := make(chan error, 1)
	go func() { done <- f.ui.Chat.Send(ctx, "first") }()

	<-started
	require.NoError(t, f.ui.Chat.NewChat(ctx))
	close(release)
	require.NoError(t, <-done)

	assert.True(t, f.ui.Controller.Transcript().Empty())
	assert.True(t, f.ui.Controller.State().WelcomeVisible)
}

func TestChat_OverlappingSendsKeepBothReplies(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	f.analyzer.fn = func(_ context.Context, text string) (*models.Exchange, error) {
		if text == "first" {
			close(started)
			<-release
		}
		return &models.Exchange{InputText: text, CorrectedText: "fixed " + text}, nil
	}

	done := make(chan error, 1)
	go func() { done <- f.ui.Chat.Send(ctx, "first") }()

	<-started
	require.NoError(t, f.ui.Chat.Send(ctx, "second"))
	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, []models.Message{
		{Role: models.RoleUser, Text: "first"},
		{Role: models.RoleUser, Text: "second"},
		{Role: models.RoleAssistant, Text: "fixed second"},
		{Role: models.RoleAssistant, Text: "fixed first"},
	}, f.ui.Controller.Transcript().Messages())
}

func TestChat_NewChatResetsDraftAndView(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	require.NoError(t, f.ui.Chat.Send(ctx, "hi"))
	f.ui.Chat.SetDraft("half typed")
	require.NoError(t, f.ui.Controller.Switch(ctx, ViewProfile))

	require.NoError(t, f.ui.Chat.NewChat(ctx))
	s := f.ui.Controller.State()
	assert.Equal(t, ViewChat, s.View)
	assert.True(t, s.WelcomeVisible)
	assert.Empty(t, f.ui.Chat.Draft())
}
