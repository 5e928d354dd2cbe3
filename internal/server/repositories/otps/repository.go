package otps

import (
	"context"
	"time"

	"github.com/dmitrijs2005/textfix/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, otp *models.OTP) error
	Get(ctx context.Context, email string) (*models.OTP, error)
	MarkVerified(ctx context.Context, email string, at time.Time) error
	Delete(ctx context.Context, email string) error
}
