package cli

import (
	"bufio"
	"context"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/textfix/internal/client/client"
	"github.com/dmitrijs2005/textfix/internal/client/config"
	"github.com/dmitrijs2005/textfix/internal/client/models"
	"github.com/dmitrijs2005/textfix/internal/client/services"
	"github.com/dmitrijs2005/textfix/internal/client/ui"
	"github.com/dmitrijs2005/textfix/internal/client/ui/render"
	"github.com/dmitrijs2005/textfix/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// fakeAPI implements client.Client for the CLI tests.
type fakeAPI struct {
	mu sync.Mutex

	token     string
	loginErr  error
	signupErr error
	otpMsg    string
	otpErr    error
	verifyErr error

	corrected  string
	analyzeErr error
	history    []models.Exchange
	deleteErr  error
	profile    models.Profile
	pingErr    error

	lastEmail    string
	lastPassword string
	lastText     string
	lastUserID   int64
	deleted      []int64
	analyzeCalls int
}

func (f *fakeAPI) Login(_ context.Context, email string, password []byte) (string, error) {
	f.lastEmail, f.lastPassword = email, string(password)
	return f.token, f.loginErr
}

func (f *fakeAPI) Signup(_ context.Context, _, email string, password []byte) (string, error) {
	f.lastEmail, f.lastPassword = email, string(password)
	return f.token, f.signupErr
}

func (f *fakeAPI) SendOTP(_ context.Context, email string) (string, error) {
	f.lastEmail = email
	return f.otpMsg, f.otpErr
}

func (f *fakeAPI) VerifyOTP(context.Context, string, string) (string, error) {
	return "ok", f.verifyErr
}

func (f *fakeAPI) Analyze(_ context.Context, _, text string, userID int64) (*models.Exchange, error) {
	f.analyzeCalls++
	f.lastText, f.lastUserID = text, userID
	if f.analyzeErr != nil {
		return nil, f.analyzeErr
	}
	return &models.Exchange{ID: 1, InputText: text, CorrectedText: f.corrected}, nil
}

func (f *fakeAPI) ListHistory(context.Context, string) ([]models.Exchange, error) {
	return append([]models.Exchange(nil), f.history...), nil
}

func (f *fakeAPI) DeleteHistory(_ context.Context, _ string, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func (f *fakeAPI) GetProfile(context.Context, string) (*models.Profile, error) {
	p := f.profile
	return &p, nil
}

func (f *fakeAPI) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pingErr
}

var _ client.Client = (*fakeAPI)(nil)

func testToken(t *testing.T, id int64, email string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     email,
		"user_id": id,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

// captureOutput redirects printlnFn into a slice for the duration of the test.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = strings.TrimSpace(toString(v))
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func joined(lines *[]string) string {
	return strings.Join(*lines, "\n")
}

// newTestApp builds an App over a temp sqlite file and api. input feeds
// the REPL and prompt reader.
func newTestApp(t *testing.T, api client.Client, input string) *App {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = dir
	cfg.OnlineCheckInterval = 10 * time.Millisecond

	db, err := client.InitDatabase(ctx, filepath.Join(dir, "test.db"))
	require.NoError(t, err)

	a := &App{
		config:  cfg,
		dataDir: dir,
		term:    render.NewTerminal(80),
		logger:  logging.Discard(),
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     io.Discard,
	}
	a.set = services.NewSet(db, api, a, logging.Discard())
	a.auth = a.set.Auth
	a.ui = ui.New(a.set.UIDeps(a, logging.Discard()))
	t.Cleanup(func() { _ = a.set.Close() })
	return a
}

func stubInputs(t *testing.T, texts []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		i++
		return texts[i-1], nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func stubConfirm(t *testing.T, answer bool) *int {
	t.Helper()
	orig := confirmFn
	asked := 0
	confirmFn = func(*bufio.Reader, string, io.Writer) (bool, error) {
		asked++
		return answer, nil
	}
	t.Cleanup(func() { confirmFn = orig })
	return &asked
}
