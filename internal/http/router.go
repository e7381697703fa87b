package http

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/core"
	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/http/middleware"
	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/rate"
)

type Options struct {
	BaseURL     string
	RateLimiter *rate.Limiter // used for POST /api/shorten only
}

// NewRouter sets up all routes and middleware.
func NewRouter(svc *core.Service, opts Options) *gin.Engine {
	r := gin.New()
	// Treat all upstreams as untrusted.
	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("SetTrustedProxies: %v", err)
	}

	r.Use(middleware.Logger())
	r.Use(middleware.Recover())

	h := NewHandlers(svc, opts.BaseURL)

	// Health
	r.GET("/health", h.Health)

	// Tiny demo UI (inline HTML)
	RegisterStatic(r)

	// API
	api := r.Group("/api")
	if opts.RateLimiter != nil {
		api.POST("/shorten", middleware.RateLimit(opts.RateLimiter), h.Shorten)
	} else {
		api.POST("/shorten", h.Shorten)
	}
	api.GET("/expand", h.Expand)

	// Redirect by short code
	r.GET("/:code", h.Redirect)

	return r
}
