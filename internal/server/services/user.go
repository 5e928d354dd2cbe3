// Package services contains server-side business logic. UserService handles
// signup, login and profile lookups; OTPService issues and checks email
// verification codes; HistoryService runs corrections and manages the
// per-user exchange history.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/textfix/internal/common"
	"github.com/dmitrijs2005/textfix/internal/cryptox"
	"github.com/dmitrijs2005/textfix/internal/dbx"
	"github.com/dmitrijs2005/textfix/internal/server/auth"
	"github.com/dmitrijs2005/textfix/internal/server/config"
	"github.com/dmitrijs2005/textfix/internal/server/models"
	"github.com/dmitrijs2005/textfix/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Signup: create users and mint an access token
// - Login: verify credentials and mint an access token
// - Profile: read the account record
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	requireVerifiedEmail        bool
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		requireVerifiedEmail:        cfg.RequireVerifiedEmail,
	}
}

// Signup validates the input, stores the user with an argon2id password hash
// and returns an access token. When verified emails are required the address
// must have passed VerifyOTP first; the verification record is consumed.
func (s *UserService) Signup(ctx context.Context, name, email, password string) (string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}
	if len(password) < common.MinPasswordLength {
		return "", common.ErrorPasswordTooShort
	}

	hash, err := cryptox.HashPassword([]byte(password))
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	user, err := dbx.WithTxValue(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*models.User, error) {
		otpRepo := s.repomanager.OTPs(tx)
		if s.requireVerifiedEmail {
			otp, err := otpRepo.Get(ctx, email)
			if errors.Is(err, common.ErrorNotFound) {
				return nil, common.ErrEmailNotVerified
			}
			if err != nil {
				return nil, err
			}
			if !otp.Verified() {
				return nil, common.ErrEmailNotVerified
			}
		}

		u, err := s.repomanager.Users(tx).Create(ctx, &models.User{
			Name:         strings.TrimSpace(name),
			Email:        email,
			PasswordHash: hash,
		})
		if err != nil {
			return nil, err
		}
		if err := otpRepo.Delete(ctx, email); err != nil {
			return nil, err
		}
		return u, nil
	})
	if err != nil {
		return "", err
	}

	return s.generateAccessToken(user)
}

// Login verifies the password. Unknown emails and wrong passwords both yield
// common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	ok, err := cryptox.VerifyPassword([]byte(password), user.PasswordHash)
	if err != nil {
		return "", common.ErrorInternal
	}
	if !ok {
		return "", common.ErrInvalidCredentials
	}

	return s.generateAccessToken(user)
}

// Profile returns the account behind userID.
func (s *UserService) Profile(ctx context.Context, userID int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, userID)
}

func (s *UserService) generateAccessToken(u *models.User) (string, error) {
	token, err := auth.GenerateToken(u.ID, u.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// normalizeEmail trims and lower-cases a bare address.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", common.ErrorEmailInvalid
	}
	return email, nil
}
