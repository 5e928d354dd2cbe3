package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/textfix/internal/common"
	"github.com/dmitrijs2005/textfix/internal/logging"
	"github.com/dmitrijs2005/textfix/internal/server/config"
	"github.com/dmitrijs2005/textfix/internal/server/models"
	"github.com/dmitrijs2005/textfix/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"golang.org/x/time/rate"
)

const otpIssuer = "textfix"

// Sender delivers a verification code to an address and returns a delivery id.
type Sender interface {
	Send(ctx context.Context, email, code string) (string, error)
}

// LogSender writes codes to the log. It stands in for a mail gateway.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(logger logging.Logger) *LogSender {
	return &LogSender{logger: logger.With("module", "otp_sender")}
}

func (s *LogSender) Send(ctx context.Context, email, code string) (string, error) {
	id := uuid.NewString()
	s.logger.Info(ctx, "verification code issued", "message_id", id, "email", email, "code", code)
	return id, nil
}

// sendLimiter keeps one token bucket per email.
type sendLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	every    rate.Limit
	burst    int
}

func newSendLimiter(interval time.Duration, burst int) *sendLimiter {
	every := rate.Inf
	if interval > 0 {
		every = rate.Every(interval)
	}
	return &sendLimiter{limiters: make(map[string]*rate.Limiter), every: every, burst: burst}
}

func (l *sendLimiter) Allow(email string) bool {
	l.mu.Lock()
	lim, ok := l.limiters[email]
	if !ok {
		lim = rate.NewLimiter(l.every, l.burst)
		l.limiters[email] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

// OTPService issues six-digit email verification codes. Each address gets a
// fresh TOTP secret per request; the code is valid until the stored expiry
// and may be accepted once.
type OTPService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	sender      Sender
	limiter     *sendLimiter
	validity    time.Duration
	now         func() time.Time
}

func NewOTPService(db *sql.DB, m repomanager.RepositoryManager, sender Sender, cfg *config.Config) *OTPService {
	return &OTPService{
		db:          db,
		repomanager: m,
		sender:      sender,
		limiter:     newSendLimiter(cfg.OTPSendInterval, cfg.OTPSendBurst),
		validity:    cfg.OTPValidity,
		now:         time.Now,
	}
}

func (s *OTPService) validateOpts() totp.ValidateOpts {
	period := uint(s.validity / time.Second)
	if period == 0 {
		period = 1
	}
	return totp.ValidateOpts{
		Period:    period,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
}

// Send generates and stores a code for email and hands it to the sender.
func (s *OTPService) Send(ctx context.Context, email string) (string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}
	if !s.limiter.Allow(email) {
		return "", common.ErrOTPLimited
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      otpIssuer,
		AccountName: email,
		Period:      s.validateOpts().Period,
		Digits:      otp.DigitsSix,
	})
	if err != nil {
		return "", fmt.Errorf("error generating otp secret: %w", err)
	}

	now := s.now()
	code, err := totp.GenerateCodeCustom(key.Secret(), now, s.validateOpts())
	if err != nil {
		return "", fmt.Errorf("error generating otp code: %w", err)
	}

	rec := &models.OTP{Email: email, Secret: key.Secret(), ExpiresAt: now.Add(s.validity)}
	if err := s.repomanager.OTPs(s.db).Upsert(ctx, rec); err != nil {
		return "", err
	}

	if _, err := s.sender.Send(ctx, email, code); err != nil {
		return "", fmt.Errorf("error sending otp: %w", err)
	}
	return "OTP sent to " + email, nil
}

// Verify accepts code for email once. Unknown, expired, reused and wrong
// codes all yield common.ErrOTPInvalid.
func (s *OTPService) Verify(ctx context.Context, email, code string) (string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}

	repo := s.repomanager.OTPs(s.db)
	rec, err := repo.Get(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrOTPInvalid
		}
		return "", err
	}

	now := s.now()
	if rec.Verified() || rec.Expired(now) {
		return "", common.ErrOTPInvalid
	}
	ok, err := totp.ValidateCustom(code, rec.Secret, now, s.validateOpts())
	if err != nil || !ok {
		return "", common.ErrOTPInvalid
	}

	// a concurrent Verify may have consumed the code since Get
	if err := repo.MarkVerified(ctx, email, now); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrOTPInvalid
		}
		return "", err
	}
	return "OTP verified", nil
}
