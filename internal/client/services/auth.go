// Package services contains the client application services. They sit
// between the front ends and the API client: credentials flow through
// AuthService, and every protected call is routed through the session guard.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/textfix/internal/client/client"
	"github.com/dmitrijs2005/textfix/internal/client/session"
	"github.com/dmitrijs2005/textfix/internal/logging"
)

var (
	ErrEmailRequired = errors.New("Enter email")
	ErrOTPRequired   = errors.New("Enter OTP")
)

// AuthService covers the unauthenticated surface: login, signup, the
// email OTP flow and session housekeeping.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Signup(ctx context.Context, name, email string, password []byte) error
	SendOTP(ctx context.Context, email string) (string, error)
	VerifyOTP(ctx context.Context, email, otp string) (string, error)
	Logout(ctx context.Context) error
	LoggedIn(ctx context.Context) bool
	Ping(ctx context.Context) error
}

type authService struct {
	client client.Client
	guard  *session.Guard
	logger logging.Logger
}

func NewAuthService(c client.Client, guard *session.Guard, logger logging.Logger) AuthService {
	return &authService{client: c, guard: guard, logger: logger.With("module", "auth_service")}
}

// Login authenticates and stores the issued token.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	token, err := a.client.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := a.guard.Begin(ctx, token); err != nil {
		return err
	}
	a.logger.Info(ctx, "logged in", "email", email)
	return nil
}

// Signup creates the account and stores the issued token.
func (a *authService) Signup(ctx context.Context, name, email string, password []byte) error {
	token, err := a.client.Signup(ctx, strings.TrimSpace(name), strings.TrimSpace(email), password)
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	if err := a.guard.Begin(ctx, token); err != nil {
		return err
	}
	a.logger.Info(ctx, "signed up", "email", email)
	return nil
}

func (a *authService) SendOTP(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}
	return a.client.SendOTP(ctx, email)
}

func (a *authService) VerifyOTP(ctx context.Context, email, otp string) (string, error) {
	email, otp = strings.TrimSpace(email), strings.TrimSpace(otp)
	if email == "" {
		return "", ErrEmailRequired
	}
	if otp == "" {
		return "", ErrOTPRequired
	}
	return a.client.VerifyOTP(ctx, email, otp)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.guard.Logout(ctx)
}

func (a *authService) LoggedIn(ctx context.Context) bool {
	return a.guard.HasSession(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
