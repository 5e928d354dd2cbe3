package models

import "time"

// OTP is the pending email verification for one address. Secret seeds the
// TOTP generator; VerifiedAt is set once the code has been accepted.
type OTP struct {
	Email      string
	Secret     string
	ExpiresAt  time.Time
	VerifiedAt *time.Time
	CreatedAt  time.Time
}

// Expired reports whether the code can no longer be accepted at now.
func (o *OTP) Expired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}

// Verified reports whether the address has passed verification.
func (o *OTP) Verified() bool {
	return o.VerifiedAt != nil
}
