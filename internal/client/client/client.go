package client

import (
	"context"

	"github.com/dmitrijs2005/textfix/internal/client/models"
)

// Client is the backend API surface used by the client services.
// Protected calls take the bearer token explicitly; the caller decides
// where it comes from.
type Client interface {
	Login(ctx context.Context, email string, password []byte) (string, error)
	Signup(ctx context.Context, name, email string, password []byte) (string, error)
	SendOTP(ctx context.Context, email string) (string, error)
	VerifyOTP(ctx context.Context, email, otp string) (string, error)

	Analyze(ctx context.Context, token, text string, userID int64) (*models.Exchange, error)
	ListHistory(ctx context.Context, token string) ([]models.Exchange, error)
	DeleteHistory(ctx context.Context, token string, id int64) error
	GetProfile(ctx context.Context, token string) (*models.Profile, error)

	Ping(ctx context.Context) error
}
