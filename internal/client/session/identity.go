package session

import (
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/textfix/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

// Identity decodes the user id and email carried by a credential. The
// signature is not checked here; the server does that on every request.
// A numeric subject is accepted as the user id when user_id is absent.
func Identity(token string) (int64, string, error) {
	var claims tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return 0, "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	email := claims.Email
	userID := claims.UserID
	subjectIsID := false
	if userID == 0 {
		if id, err := strconv.ParseInt(claims.Subject, 10, 64); err == nil {
			userID, subjectIsID = id, true
		}
	}
	if email == "" && !subjectIsID {
		email = claims.Subject
	}

	if userID == 0 {
		return 0, email, fmt.Errorf("%w: no user id claim", common.ErrInvalidToken)
	}
	return userID, email, nil
}
