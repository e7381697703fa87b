package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/config"
	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/core"
	httpapi "github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/http"
	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/id"
	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/rate"
	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/store/memory"
	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/store/postgres"
	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/store/sqlite"
)

// App wires config, storage, code generation, the core service, rate
// limiting, and the HTTP router.
type App struct {
	Cfg     config.Config
	Store   core.Store
	Service *core.Service
	Limiter *rate.Limiter
	Router  *gin.Engine
}

// New builds a fully-wired application instance.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	gen := id.NewGenerator(nil, id.CryptoEntropy{}, cfg.SuffixLength, cfg.MaxAttempts)
	svc := core.NewService(store, gen)

	// In-memory rate limiter for POST /api/shorten
	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	router := httpapi.NewRouter(svc, httpapi.Options{
		BaseURL:     cfg.BaseURL,
		RateLimiter: limiter,
	})

	return &App{
		Cfg:     cfg,
		Store:   store,
		Service: svc,
		Limiter: limiter,
		Router:  router,
	}, nil
}

func openStore(cfg config.Config) (core.Store, error) {
	switch cfg.Store {
	case "", "memory":
		return memory.New(), nil
	case "sqlite":
		s, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return s, nil
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres store requires DATABASE_URL")
		}
		s, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// Addr returns the HTTP listen address, e.g. ":8080".
func (a *App) Addr() string {
	return fmt.Sprintf(":%d", a.Cfg.Port)
}

// Start runs the HTTP server (blocking).
func (a *App) Start() error {
	return a.Router.Run(a.Addr())
}

// Close releases resources (call on shutdown if you wire graceful stop).
func (a *App) Close() error {
	return a.Store.Close()
}
