package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/core"
)

type Handlers struct {
	svc     *core.Service
	baseURL string
}

func NewHandlers(svc *core.Service, baseURL string) *Handlers {
	return &Handlers{svc: svc, baseURL: baseURL}
}

// ---- endpoints ----

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type shortenRequest struct {
	URL string `json:"url"`
}

func (h *Handlers) Shorten(c *gin.Context) {
	var in shortenRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid json body")
		return
	}
	rec, err := h.svc.Shorten(c.Request.Context(), in.URL)
	if err != nil {
		switch {
		case core.IsConflict(err):
			jsonError(c, http.StatusConflict, err.Error())
		case core.IsExhausted(err):
			// The generator ran out of attempts; a later request draws fresh
			// entropy and may well succeed.
			jsonError(c, http.StatusServiceUnavailable, "could not allocate a short code, retry")
		case err == core.ErrInvalidURL:
			jsonError(c, http.StatusBadRequest, err.Error())
		default:
			jsonError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"short_code":      rec.ShortCode,
		"compressed_code": rec.Compressed,
		"short_url":       h.baseURL + "/" + rec.ShortCode,
	})
}

// Expand maps a compressed code back to its original URL.
func (h *Handlers) Expand(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		jsonError(c, http.StatusBadRequest, "missing code parameter")
		return
	}
	rec, err := h.svc.Expand(c.Request.Context(), code)
	if err != nil {
		if core.IsNotFound(err) {
			jsonError(c, http.StatusNotFound, "not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"url":             rec.LongURL,
		"short_code":      rec.ShortCode,
		"compressed_code": rec.Compressed,
	})
}

func (h *Handlers) Redirect(c *gin.Context) {
	code := c.Param("code")
	rec, err := h.svc.Resolve(c.Request.Context(), code)
	if err != nil {
		if core.IsNotFound(err) {
			jsonError(c, http.StatusNotFound, "not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusMovedPermanently, rec.LongURL)
}

// ---- helpers ----

func jsonError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
