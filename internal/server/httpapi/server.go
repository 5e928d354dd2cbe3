// Package httpapi serves the textfix JSON API: authentication, email
// verification codes, corrections, history and profile.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/textfix/internal/logging"
	"github.com/dmitrijs2005/textfix/internal/server/config"
	"github.com/dmitrijs2005/textfix/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const shutdownTimeout = 10 * time.Second

type UserService interface {
	Signup(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID int64) (*models.User, error)
}

type OTPService interface {
	Send(ctx context.Context, email string) (string, error)
	Verify(ctx context.Context, email, code string) (string, error)
}

type HistoryService interface {
	Analyze(ctx context.Context, userID int64, text string) (*models.Exchange, error)
	List(ctx context.Context, userID int64) ([]models.Exchange, error)
	Delete(ctx context.Context, userID, id int64) error
}

type Server struct {
	address        string
	allowedOrigins []string
	requestTimeout time.Duration
	jwtSecret      []byte
	users          UserService
	otps           OTPService
	history        HistoryService
	logger         logging.Logger
}

func NewServer(cfg *config.Config, l logging.Logger, us UserService, ots OTPService, hs HistoryService) *Server {
	return &Server{
		address:        cfg.EndpointAddrHTTP,
		allowedOrigins: cfg.AllowedOrigins,
		requestTimeout: cfg.RequestTimeout,
		jwtSecret:      []byte(cfg.SecretKey),
		users:          us,
		otps:           ots,
		history:        hs,
		logger:         l.With("module", "http_server"),
	}
}

// Handler builds the router with its middleware stack.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	if s.requestTimeout > 0 {
		r.Use(middleware.Timeout(s.requestTimeout))
	}

	s.AddRoutes(r)
	return r
}

func (s *Server) AddRoutes(r chi.Router) {
	r.Get("/health", s.rest(s.health))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.rest(s.login))
		r.Post("/signup", s.rest(s.signup))
		r.Post("/send-otp", s.rest(s.sendOTP))
		r.Post("/verify-otp", s.rest(s.verifyOTP))
		r.With(s.accessToken).Get("/profile", s.rest(s.profile))
	})

	r.Group(func(r chi.Router) {
		r.Use(s.accessToken)
		r.Post("/analyze", s.rest(s.analyze))
		r.Get("/history", s.rest(s.listHistory))
		r.Delete("/history/{id}", s.rest(s.deleteHistory))
	})
}

func (s *Server) rest(h func(w http.ResponseWriter, r *http.Request) (any, error)) http.HandlerFunc {
	return RestHandler(s.logger, h)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
