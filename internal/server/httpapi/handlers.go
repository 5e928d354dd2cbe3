package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/textfix/internal/common"
)

const dateLayout = "2006-01-02"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type otpRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type profileResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type analyzeRequest struct {
	UserID    int64  `json:"user_id"`
	InputText string `json:"input_text"`
}

func (s *Server) health(http.ResponseWriter, *http.Request) (any, error) {
	return map[string]string{"status": "ok"}, nil
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) (any, error) {
	req, err := ParseRequest[loginRequest](r, w)
	if err != nil {
		return nil, err
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return tokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) (any, error) {
	req, err := ParseRequest[signupRequest](r, w)
	if err != nil {
		return nil, err
	}

	token, err := s.users.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return tokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *Server) sendOTP(w http.ResponseWriter, r *http.Request) (any, error) {
	req, err := ParseRequest[otpRequest](r, w)
	if err != nil {
		return nil, err
	}

	msg, err := s.otps.Send(r.Context(), req.Email)
	if err != nil {
		return nil, err
	}
	return messageResponse{Message: msg}, nil
}

func (s *Server) verifyOTP(w http.ResponseWriter, r *http.Request) (any, error) {
	req, err := ParseRequest[otpRequest](r, w)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.OTP) == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "Enter OTP")
	}

	msg, err := s.otps.Verify(r.Context(), req.Email, strings.TrimSpace(req.OTP))
	if err != nil {
		return nil, err
	}
	return messageResponse{Message: msg}, nil
}

func (s *Server) profile(_ http.ResponseWriter, r *http.Request) (any, error) {
	userID, _ := UserIDFromContext(r.Context())

	u, err := s.users.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, CodedErrorf(http.StatusNotFound, "User not found")
		}
		return nil, err
	}

	return profileResponse{Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt.Format(dateLayout)}, nil
}

// analyze corrects the input for the token's user. A body user_id of 0 means
// the caller did not send one; any other value must match the token.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) (any, error) {
	req, err := ParseRequest[analyzeRequest](r, w)
	if err != nil {
		return nil, err
	}

	userID, _ := UserIDFromContext(r.Context())
	if req.UserID != 0 && req.UserID != userID {
		return nil, CodedErrorf(http.StatusForbidden, "Not allowed to analyze for another user")
	}

	return s.history.Analyze(r.Context(), userID, req.InputText)
}

func (s *Server) listHistory(_ http.ResponseWriter, r *http.Request) (any, error) {
	userID, _ := UserIDFromContext(r.Context())
	return s.history.List(r.Context(), userID)
}

func (s *Server) deleteHistory(_ http.ResponseWriter, r *http.Request) (any, error) {
	id, err := URLParamInt64(r, "id")
	if err != nil {
		return nil, err
	}

	userID, _ := UserIDFromContext(r.Context())
	if err := s.history.Delete(r.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return nil, CodedErrorf(http.StatusNotFound, "History item not found")
		case errors.Is(err, common.ErrorForbidden):
			return nil, CodedErrorf(http.StatusForbidden, "Not allowed to delete this item")
		}
		return nil, err
	}
	return noContent{}, nil
}
