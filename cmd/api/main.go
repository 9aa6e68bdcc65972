// Package main boots the bookshop catalog HTTP server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"bookshop/internal/auth"
	"bookshop/internal/book"
	"bookshop/internal/config"
	"bookshop/internal/platform/crypto"
	"bookshop/internal/platform/logger"
	"bookshop/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	store, err := book.LoadSeedFile(cfg.CatalogFile)
	if err != nil {
		log.Fatal("cannot load catalog", "file", cfg.CatalogFile, "error", err)
	}
	log.Info("catalog loaded", "books", store.Len())

	registry, ready, closeRegistry := mustOpenRegistry(cfg, log)
	defer closeRegistry()

	hasher, err := crypto.NewHasher(cfg.PasswordHashing)
	if err != nil {
		log.Fatal("invalid password hashing", "error", err)
	}

	bookService := book.NewService(store)
	userService := user.NewService(registry, hasher)
	authService := auth.NewService(cfg.JWTSecret, cfg.TokenTTL, userService)

	a := newApp(cfg, log, bookService, userService, authService, ready)
	defer a.Close()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           a.NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("http listen", "addr", cfg.HTTPAddr, "user_store", cfg.UserStore)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server error", "error", err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	log.Info("shutdown signal", "signal", s.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("http shutdown error", "error", err)
	}
	log.Info("server stopped")
}

// mustOpenRegistry picks the user store backend. The returned Pinger is nil for
// the in-memory store.
func mustOpenRegistry(cfg config.Config, log *logger.Logger) (user.Registry, Pinger, func()) {
	switch cfg.UserStore {
	case config.UserStorePostgres:
		pool := mustOpenDB(cfg.DatabaseDSN, log)
		repo := user.NewPostgresRepo(pool, cfg.DBTimeout)
		return repo, repo, pool.Close
	case config.UserStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			log.Fatal("cannot ping redis", "addr", cfg.RedisAddr, "error", err)
		}
		log.Info("redis connection OK", "addr", cfg.RedisAddr)
		reg := user.NewRedisRegistry(client, cfg.RedisUsersKey)
		return reg, reg, func() { _ = client.Close() }
	default:
		return user.NewMemoryRegistry(), nil, func() {}
	}
}

func mustOpenDB(dsn string, log *logger.Logger) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatal("cannot create db pool", "error", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Fatal("cannot ping database", "db", redactDSN(dsn), "error", err)
	}
	log.Info("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
