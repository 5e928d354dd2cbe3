package tui

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/textfix/internal/client/client"
	"github.com/dmitrijs2005/textfix/internal/client/models"
	"github.com/dmitrijs2005/textfix/internal/client/services"
	"github.com/dmitrijs2005/textfix/internal/client/ui"
	"github.com/dmitrijs2005/textfix/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu sync.Mutex

	token      string
	loginErr   error
	corrected  string
	analyzeErr error
	history    []models.Exchange
	deleted    []int64
}

func (f *fakeAPI) Login(context.Context, string, []byte) (string, error) {
	return f.token, f.loginErr
}

func (f *fakeAPI) Signup(context.Context, string, string, []byte) (string, error) {
	return f.token, nil
}

func (f *fakeAPI) SendOTP(context.Context, string) (string, error) { return "", nil }

func (f *fakeAPI) VerifyOTP(context.Context, string, string) (string, error) { return "", nil }

func (f *fakeAPI) Analyze(_ context.Context, _, text string, _ int64) (*models.Exchange, error) {
	if f.analyzeErr != nil {
		return nil, f.analyzeErr
	}
	return &models.Exchange{ID: 9, InputText: text, CorrectedText: f.corrected}, nil
}

func (f *fakeAPI) ListHistory(context.Context, string) ([]models.Exchange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Exchange(nil), f.history...), nil
}

func (f *fakeAPI) DeleteHistory(_ context.Context, _ string, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) GetProfile(context.Context, string) (*models.Profile, error) {
	return &models.Profile{Name: "Ann", Email: "ann@example.com"}, nil
}

func (f *fakeAPI) Ping(context.Context) error { return nil }

var _ client.Client = (*fakeAPI)(nil)

func testToken(t *testing.T) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     "ann@example.com",
		"user_id": 1,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

func newTestModel(t *testing.T, api *fakeAPI, loggedIn bool) Model {
	t.Helper()
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	b := &bridge{logger: logging.Discard()}
	set := services.NewSet(db, api, b, logging.Discard())
	t.Cleanup(func() { _ = set.Close() })

	if loggedIn {
		require.NoError(t, set.Guard.Begin(ctx, api.token))
	}
	return newModel(ctx, ui.New(set.UIDeps(b, logging.Discard())), set.Auth, b)
}

func key(s string) tea.KeyMsg {
	switch s {
	case keyEnter:
		return tea.KeyMsg{Type: tea.KeyEnter}
	case keyTab:
		return tea.KeyMsg{Type: tea.KeyTab}
	case keyUp:
		return tea.KeyMsg{Type: tea.KeyUp}
	case keyDown:
		return tea.KeyMsg{Type: tea.KeyDown}
	case keyEsc:
		return tea.KeyMsg{Type: tea.KeyEsc}
	case keyNewChat:
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case keyDelete:
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case keyDropdown:
		return tea.KeyMsg{Type: tea.KeyCtrlO}
	case keyLogout:
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case keySignup:
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends k and returns the model with no command run.
func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key(k))
	return next.(Model), cmd
}

// act sends k, runs the resulting action and feeds its result back,
// following any action the result schedules.
func act(t *testing.T, m Model, k string) Model {
	t.Helper()
	m, cmd := press(t, m, k)
	require.NotNil(t, cmd, "key %q scheduled no action", k)
	return settle(t, m, cmd)
}

func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		done, ok := msg.(actionDoneMsg)
		require.True(t, ok, "unexpected message %T", msg)
		var next tea.Model
		next, cmd = m.Update(done)
		m = next.(Model)
	}
	return m
}

func TestModel_StartsOnLoginScreenWithoutSession(t *testing.T) {
	m := newTestModel(t, &fakeAPI{token: testToken(t)}, false)

	assert.Equal(t, screenLogin, m.screen)
	assert.Contains(t, m.View(), "log in")
	assert.Equal(t, fieldEmail, m.focus)
}

func TestModel_LoginMovesToChat(t *testing.T) {
	m := newTestModel(t, &fakeAPI{token: testToken(t)}, false)
	m.fields[fieldEmail].SetValue("ann@example.com")
	m.fields[fieldPassword].SetValue("secret123")

	m, cmd := press(t, m, keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, fieldPassword, m.focus)

	m = act(t, m, keyEnter)
	assert.Equal(t, screenMain, m.screen)
	assert.Empty(t, m.fields[fieldPassword].Value())
	assert.Equal(t, ui.ViewChat, m.ui.Controller.State().View)
	assert.Contains(t, m.View(), ui.MsgWelcome)
}

func TestModel_LoginFailureShowsDetail(t *testing.T) {
	api := &fakeAPI{loginErr: &client.HTTPError{Status: 401, Detail: "Invalid email or password"}}
	m := newTestModel(t, api, false)
	m.focusField(fieldPassword)

	m = act(t, m, keyEnter)
	assert.Equal(t, screenLogin, m.screen)
	assert.Equal(t, "Invalid email or password", m.notice)
}

func TestModel_SignupToggleShowsNameField(t *testing.T) {
	m := newTestModel(t, &fakeAPI{}, false)

	m, _ = press(t, m, keySignup)
	assert.True(t, m.signup)
	assert.Equal(t, fieldName, m.focus)
	assert.Contains(t, m.View(), "sign up")

	m, _ = press(t, m, keyTab)
	assert.Equal(t, fieldEmail, m.focus)
}

func TestModel_SendShowsCorrection(t *testing.T) {
	api := &fakeAPI{token: testToken(t), corrected: "Hello world"}
	m := newTestModel(t, api, true)
	m.input.SetValue("helo wrld")

	m = act(t, m, keyEnter)

	msgs := m.ui.Controller.Transcript().Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "helo wrld", msgs[0].Text)
	assert.Equal(t, "Hello world", msgs[1].Text)
	assert.Empty(t, m.input.Value())
	assert.False(t, m.busy)
	assert.Contains(t, m.View(), "Hello world")
}

func TestModel_DigitsInDraftAreTyped(t *testing.T) {
	m := newTestModel(t, &fakeAPI{token: testToken(t)}, true)
	m.input.SetValue("room")

	m, _ = press(t, m, "2")
	assert.Equal(t, ui.ViewChat, m.ui.Controller.State().View)
	assert.Equal(t, "room2", m.input.Value())
	assert.Equal(t, "room2", m.ui.Chat.Draft())
}

func TestModel_HistoryDeleteAfterConfirm(t *testing.T) {
	api := &fakeAPI{token: testToken(t), history: []models.Exchange{
		{ID: 3, InputText: "third"},
		{ID: 2, InputText: "second"},
		{ID: 1, InputText: "first"},
	}}
	m := newTestModel(t, api, true)

	m = act(t, m, "2")
	require.Equal(t, ui.ViewHistory, m.ui.Controller.State().View)
	require.Len(t, m.ui.History.Items(), 3)
	assert.NotContains(t, m.View(), m.input.Placeholder)

	m, _ = press(t, m, keyDown)
	assert.Equal(t, 1, m.selected)

	m, cmd := press(t, m, keyDelete)
	assert.Nil(t, cmd)
	assert.True(t, m.confirming)

	m = act(t, m, "y")
	assert.Equal(t, []int64{2}, api.deleted)
	ids := []int64{}
	for _, it := range m.ui.History.Items() {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []int64{3, 1}, ids)
	assert.Equal(t, 1, m.selected)
}

func TestModel_DeleteDeclined(t *testing.T) {
	api := &fakeAPI{token: testToken(t), history: []models.Exchange{{ID: 1, InputText: "first"}}}
	m := newTestModel(t, api, true)
	m = act(t, m, "2")

	m, _ = press(t, m, keyDelete)
	m, cmd := press(t, m, "n")
	assert.Nil(t, cmd)
	assert.False(t, m.confirming)
	assert.Empty(t, api.deleted)
	assert.Len(t, m.ui.History.Items(), 1)
}

func TestModel_DropdownLoadsExchange(t *testing.T) {
	api := &fakeAPI{token: testToken(t), history: []models.Exchange{
		{ID: 5, InputText: "their going", CorrectedText: "They're going"},
	}}
	m := newTestModel(t, api, true)

	m = act(t, m, keyDropdown)
	require.True(t, m.ui.Controller.State().DropdownOpen)
	require.Len(t, m.ui.Dropdown.Items(), 1)

	m, _ = press(t, m, keyEnter)
	state := m.ui.Controller.State()
	assert.False(t, state.DropdownOpen)
	assert.True(t, state.ChatVisible)
	msgs := m.ui.Controller.Transcript().Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "They're going", msgs[1].Text)
}

func TestModel_ExpiredSessionReturnsToLogin(t *testing.T) {
	api := &fakeAPI{token: testToken(t), analyzeErr: &client.HTTPError{Status: 401}}
	m := newTestModel(t, api, true)
	m.input.SetValue("hello")

	m = act(t, m, keyEnter)
	assert.Equal(t, screenLogin, m.screen)
	assert.NotEmpty(t, m.notice)
	assert.False(t, m.auth.LoggedIn(context.Background()))
}

func TestModel_NewChatClearsTranscript(t *testing.T) {
	api := &fakeAPI{token: testToken(t), corrected: "Fine."}
	m := newTestModel(t, api, true)
	m.input.SetValue("fine")
	m = act(t, m, keyEnter)
	require.Equal(t, 2, m.ui.Controller.Transcript().Len())

	m, _ = press(t, m, keyNewChat)
	assert.True(t, m.ui.Controller.Transcript().Empty())
	assert.True(t, m.ui.Controller.State().WelcomeVisible)
}

func TestModel_LogoutReturnsToLogin(t *testing.T) {
	m := newTestModel(t, &fakeAPI{token: testToken(t)}, true)

	m, _ = press(t, m, keyLogout)
	assert.Equal(t, screenLogin, m.screen)
	assert.False(t, m.auth.LoggedIn(context.Background()))
}

func TestModel_ResizeSetsWidths(t *testing.T) {
	m := newTestModel(t, &fakeAPI{token: testToken(t)}, true)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	assert.Equal(t, 100, m.term.Width)
	assert.Equal(t, 34, m.vp.Height)
	assert.True(t, strings.Contains(m.View(), "1 chat"))
}

func TestBridge_Drain(t *testing.T) {
	b := &bridge{logger: logging.Discard()}
	b.RedirectToLogin()
	b.Notice("boom", nil)

	redirect, notice := b.drain()
	assert.True(t, redirect)
	assert.Equal(t, "boom", notice)

	redirect, notice = b.drain()
	assert.False(t, redirect)
	assert.Empty(t, notice)
}
