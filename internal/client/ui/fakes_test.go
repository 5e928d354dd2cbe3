package ui

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/textfix/internal/client/models"
	"github.com/dmitrijs2005/textfix/internal/logging"
)

type fakeAuth struct {
	err   error
	calls int
}

func (f *fakeAuth) CheckAuth(context.Context) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "tok", nil
}

type fakeAnalyzer struct {
	mu    sync.Mutex
	calls []string
	fn    func(ctx context.Context, text string) (*models.Exchange, error)
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, text string) (*models.Exchange, error) {
	f.mu.Lock()
	f.calls = append(f.calls, text)
	f.mu.Unlock()
	return f.fn(ctx, text)
}

type fakeHistory struct {
	mu        sync.Mutex
	items     []models.Exchange
	listErr   error
	deleteErr error
	lists     int
	deleted   []int64
	listFn    func() ([]models.Exchange, error)
}

func (f *fakeHistory) List(context.Context) ([]models.Exchange, error) {
	f.mu.Lock()
	f.lists++
	fn := f.listFn
	f.mu.Unlock()
	if fn != nil {
		return fn()
	}
	out := make([]models.Exchange, len(f.items))
	copy(out, f.items)
	return out, f.listErr
}

func (f *fakeHistory) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

type fakeProfile struct {
	profile *models.Profile
	err     error
	calls   int
}

func (f *fakeProfile) Get(context.Context) (*models.Profile, error) {
	f.calls++
	return f.profile, f.err
}

type notice struct {
	msg string
	err error
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (r *recordingNotifier) Notice(msg string, err error) {
	r.mu.Lock()
	r.notices = append(r.notices, notice{msg, err})
	r.mu.Unlock()
}

func (r *recordingNotifier) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, n := range r.notices {
		out = append(out, n.msg)
	}
	return out
}

type fixture struct {
	ui       *UI
	auth     *fakeAuth
	analyzer *fakeAnalyzer
	history  *fakeHistory
	profile  *fakeProfile
	notifier *recordingNotifier
}

func newFixture() *fixture {
	f := &fixture{
		auth: &fakeAuth{},
		analyzer: &fakeAnalyzer{fn: func(_ context.Context, text string) (*models.Exchange, error) {
			return &models.Exchange{InputText: text, CorrectedText: text}, nil
		}},
		history:  &fakeHistory{},
		profile:  &fakeProfile{profile: &models.Profile{}},
		notifier: &recordingNotifier{},
	}
	f.ui = New(Deps{
		Auth:     f.auth,
		Analyzer: f.analyzer,
		History:  f.history,
		Profile:  f.profile,
		Notifier: f.notifier,
		Logger:   logging.Discard(),
	})
	return f
}
