package main

import (
	"context"
	"net/http"
	"time"

	"bookshop/internal/auth"
	"bookshop/internal/book"
	"bookshop/internal/config"
	"bookshop/internal/httpx"
	"bookshop/internal/platform/logger"
	"bookshop/internal/user"
)

// Pinger is implemented by user stores that live outside the process.
type Pinger interface {
	Ping(ctx context.Context) error
}

type app struct {
	cfg   config.Config
	log   *logger.Logger
	books *book.HTTPHandler
	users *user.HTTPHandler
	auth  *auth.HTTPHandler
	ready Pinger
	limit *httpx.RateLimitMiddleware
}

func newApp(cfg config.Config, log *logger.Logger, books *book.Service, users *user.Service, authSvc *auth.Service, ready Pinger) *app {
	return &app{
		cfg:   cfg,
		log:   log,
		books: book.NewHTTPHandler(books, log),
		users: user.NewHTTPHandler(users, log),
		auth:  auth.NewHTTPHandler(authSvc, log),
		ready: ready,
		limit: httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}
}

// NewRouter registers every route and wraps the mux in the middleware chain.
func (a *app) NewRouter() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONSuccess(w, r, map[string]string{"status": "ok"}, nil)
	})
	mux.HandleFunc("GET /readyz", a.readyz)

	mux.HandleFunc("GET /{$}", a.books.ListAll)
	mux.HandleFunc("GET /isbn/{isbn}", a.books.GetByISBN)
	mux.HandleFunc("GET /author/{author}", a.books.GetByAuthor)
	mux.HandleFunc("GET /title/{title}", a.books.GetByTitle)
	mux.HandleFunc("GET /review/{isbn}", a.books.GetReviews)

	mux.HandleFunc("POST /register", a.users.Register)
	mux.HandleFunc("POST /customer/login", a.auth.Login)
	mux.Handle("GET /customer/me", httpx.AuthMiddleware(a.cfg.JWTSecret)(http.HandlerFunc(a.auth.Me)))

	return httpx.Chain(mux,
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware(a.log),
		httpx.AccessLogMiddleware(a.log),
		httpx.SecurityHeadersMiddleware(a.cfg.EnableHSTS),
		httpx.CORSMiddleware(a.cfg.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(a.cfg.MaxBodyBytes),
		a.limit.Middleware,
	)
}

func (a *app) readyz(w http.ResponseWriter, r *http.Request) {
	if a.ready != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := a.ready.Ping(ctx); err != nil {
			a.log.Warn("readiness check failed", "error", err)
			httpx.JSONError(w, r, http.StatusServiceUnavailable, "NOT_READY", "User store not ready", nil)
			return
		}
	}
	httpx.JSONSuccess(w, r, map[string]string{"status": "ready"}, nil)
}

func (a *app) Close() {
	a.limit.Stop()
}
