package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/textfix/internal/client/client"
	"github.com/dmitrijs2005/textfix/internal/logging"
)

var (
	// ErrNotAuthenticated means no token is stored. The login surface has
	// already been shown; callers abort without reporting.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrAuthExpired means the server rejected the token. It has been
	// cleared and the login surface shown; callers abort without reporting.
	ErrAuthExpired = errors.New("session expired")
	ErrEmptyToken  = errors.New("empty token")
)

// Navigator is implemented by front ends to show their login surface.
type Navigator interface {
	RedirectToLogin()
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func()

func (f NavigatorFunc) RedirectToLogin() { f() }

// Silent reports whether err is one of the guard's own outcomes, which
// front ends must not surface as a notice.
func Silent(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) || errors.Is(err, ErrAuthExpired)
}

// Guard gates protected calls on a stored token and applies the 401 policy.
type Guard struct {
	store  *Store
	nav    Navigator
	logger logging.Logger

	// serialises expiry so concurrent 401s for one token redirect once
	mu sync.Mutex
}

func NewGuard(store *Store, nav Navigator, logger logging.Logger) *Guard {
	return &Guard{store: store, nav: nav, logger: logger.With("module", "session")}
}

// CheckAuth returns the stored token. With no token it redirects to login
// and returns ErrNotAuthenticated.
func (g *Guard) CheckAuth(ctx context.Context) (string, error) {
	token, err := g.store.Token(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		g.nav.RedirectToLogin()
		return "", ErrNotAuthenticated
	}
	return token, nil
}

// Do runs fn with the stored token. If fn fails with client.ErrUnauthorized
// the token is cleared, the login surface is shown and ErrAuthExpired is
// returned in place of the original error.
func (g *Guard) Do(ctx context.Context, fn func(ctx context.Context, token string) error) error {
	token, err := g.CheckAuth(ctx)
	if err != nil {
		return err
	}

	err = fn(ctx, token)
	if errors.Is(err, client.ErrUnauthorized) {
		g.expire(ctx, token)
		return ErrAuthExpired
	}
	return err
}

func (g *Guard) expire(ctx context.Context, token string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	current, err := g.store.Token(ctx)
	if err != nil {
		g.logger.Error(ctx, "failed to read token on expiry", "error", err)
	}
	// Already replaced or cleared by someone else.
	if err == nil && current != token {
		return
	}

	if err := g.store.Clear(ctx); err != nil {
		g.logger.Error(ctx, "failed to clear expired token", "error", err)
	}
	g.logger.Info(ctx, "token rejected by server, session cleared")
	g.nav.RedirectToLogin()
}

// Begin stores a freshly issued token.
func (g *Guard) Begin(ctx context.Context, token string) error {
	return g.store.Save(ctx, token)
}

// HasSession reports whether a token is stored, without redirecting.
func (g *Guard) HasSession(ctx context.Context) bool {
	token, err := g.store.Token(ctx)
	return err == nil && token != ""
}

// Logout clears the token and shows the login surface.
func (g *Guard) Logout(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.store.Clear(ctx); err != nil {
		return err
	}
	g.nav.RedirectToLogin()
	return nil
}
