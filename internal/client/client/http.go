package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/textfix/internal/client/models"
	"github.com/dmitrijs2005/textfix/internal/common"
	"github.com/dmitrijs2005/textfix/internal/logging"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// maxBodyTextRunes caps how much of a non-JSON error body is kept.
const maxBodyTextRunes = 200

// RequestIDHeader is echoed by the server's request-id middleware.
const RequestIDHeader = "X-Request-Id"

// HTTPClient implements Client over go-resty.
type HTTPClient struct {
	rc      *resty.Client
	timeout time.Duration
	logger  logging.Logger
}

// NewHTTPClient returns a client for the server at baseURL. Each request is
// bounded by timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) *HTTPClient {
	c := &HTTPClient{
		timeout: timeout,
		logger:  logger.With("module", "api_client"),
	}

	c.rc = resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			r.SetHeader(RequestIDHeader, uuid.NewString())
			return nil
		}).
		OnAfterResponse(func(_ *resty.Client, r *resty.Response) error {
			c.logger.Debug(r.Request.Context(), "api response",
				"method", r.Request.Method,
				"url", r.Request.URL,
				"status", r.StatusCode(),
				"duration", r.Time(),
				"request_id", r.Request.Header.Get(RequestIDHeader))
			return nil
		})

	return c
}

type credentialsRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token"`
}

type otpRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type analyzeRequest struct {
	UserID    int64  `json:"user_id"`
	InputText string `json:"input_text"`
}

type analyzeResponse struct {
	ID            int64  `json:"id"`
	InputText     string `json:"input_text"`
	CorrectedText string `json:"corrected_text"`
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (string, error) {
	return c.obtainToken(ctx, "/auth/login", credentialsRequest{Email: email, Password: string(password)})
}

// Signup rejects passwords shorter than common.MinPasswordLength locally,
// without contacting the server.
func (c *HTTPClient) Signup(ctx context.Context, name, email string, password []byte) (string, error) {
	if utf8.RuneCount(password) < common.MinPasswordLength {
		return "", &ValidationError{Message: common.ErrorPasswordTooShort.Error()}
	}
	return c.obtainToken(ctx, "/auth/signup", credentialsRequest{Name: name, Email: email, Password: string(password)})
}

func (c *HTTPClient) obtainToken(ctx context.Context, path string, body credentialsRequest) (string, error) {
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, path, "", body, &out, http.StatusOK, http.StatusCreated); err != nil {
		return "", err
	}

	token := out.AccessToken
	if token == "" {
		token = out.Token
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (c *HTTPClient) SendOTP(ctx context.Context, email string) (string, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/send-otp", "", otpRequest{Email: email}, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, email, otp string) (string, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/verify-otp", "", otpRequest{Email: email, OTP: otp}, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Analyze submits text for correction. The returned exchange always carries
// the submitted text; CorrectedText may be empty if the server sent none.
func (c *HTTPClient) Analyze(ctx context.Context, token, text string, userID int64) (*models.Exchange, error) {
	var out analyzeResponse
	if err := c.do(ctx, http.MethodPost, "/analyze", token, analyzeRequest{UserID: userID, InputText: text}, &out, http.StatusOK, http.StatusCreated); err != nil {
		return nil, err
	}
	return &models.Exchange{ID: out.ID, InputText: text, CorrectedText: out.CorrectedText}, nil
}

func (c *HTTPClient) ListHistory(ctx context.Context, token string) ([]models.Exchange, error) {
	var out []models.Exchange
	if err := c.do(ctx, http.MethodGet, "/history", token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Exchange{}
	}
	return out, nil
}

// DeleteHistory succeeds only on 204 No Content.
func (c *HTTPClient) DeleteHistory(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, "/history/"+strconv.FormatInt(id, 10), token, nil, nil, http.StatusNoContent)
}

func (c *HTTPClient) GetProfile(ctx context.Context, token string) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodGet, "/auth/profile", token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "", nil, nil, http.StatusOK)
}

// do issues one request. A status outside accepted becomes *HTTPError;
// transport failures wrap ErrUnavailable. out, when non-nil, receives the
// decoded JSON body of an accepted response.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any, accepted ...int) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := c.rc.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	res, err := req.Execute(method, path)
	if err != nil {
		if ctx.Err() != nil && ctx.Err() != context.DeadlineExceeded {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if !statusIn(res.StatusCode(), accepted) {
		he := &HTTPError{Status: res.StatusCode(), Detail: parseDetail(res.Body())}
		if he.Detail == "" {
			he.Body = bodyText(res.Body())
		}
		return he
	}

	if out == nil || len(res.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(res.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func statusIn(status int, accepted []int) bool {
	for _, s := range accepted {
		if s == status {
			return true
		}
	}
	return false
}

// bodyText is the whitespace-collapsed body, cut to maxBodyTextRunes.
func bodyText(body []byte) string {
	s := strings.Join(strings.Fields(string(body)), " ")
	if r := []rune(s); len(r) > maxBodyTextRunes {
		s = string(r[:maxBodyTextRunes]) + "…"
	}
	return s
}

// parseDetail extracts the "detail" field of an error body. Validation
// errors may carry a list of objects with "msg"; those are joined.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
