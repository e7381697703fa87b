package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds runtime configuration with sensible defaults for local dev.
type Config struct {
	Port           int    // HTTP port (default 8080)
	BaseURL        string // e.g. http://localhost:8080 (no trailing slash)
	Store          string // "memory", "sqlite", or "postgres" (default memory)
	DBPath         string // sqlite file path (default ./data/links.db)
	DatabaseURL    string // postgres DSN, required when Store=postgres
	SuffixLength   int    // random lowercase letters per short code (default 4)
	MaxAttempts    int    // collision retry bound for code generation (default 10)
	RateLimitRPS   int    // requests per second for POST /api/shorten (default 10)
	RateLimitBurst int    // burst tokens (default = RateLimitRPS)
}

// FromEnv loads configuration from environment variables, falling back to
// defaults. Recognized: PORT, BASE_URL, STORE, DB_PATH, DATABASE_URL,
// SUFFIX_LENGTH, MAX_ATTEMPTS, RATE_LIMIT. Also (best-effort) loads a local
// ".env" file first if present.
func FromEnv() Config {
	loadDotEnv()

	cfg := Config{
		Port:           getEnvInt("PORT", 8080),
		BaseURL:        sanitizeBaseURL(getEnv("BASE_URL", "http://localhost:8080")),
		Store:          strings.ToLower(getEnv("STORE", "memory")),
		DBPath:         getDBPath(getEnv("DB_PATH", "./data/links.db")),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		SuffixLength:   getEnvInt("SUFFIX_LENGTH", 4),
		MaxAttempts:    getEnvInt("MAX_ATTEMPTS", 10),
		RateLimitRPS:   10,
		RateLimitBurst: 10,
	}

	if rl := strings.TrimSpace(os.Getenv("RATE_LIMIT")); rl != "" {
		rps, burst := parseRateLimit(rl)
		if rps > 0 {
			cfg.RateLimitRPS = rps
		}
		if burst > 0 {
			cfg.RateLimitBurst = burst
		} else {
			cfg.RateLimitBurst = cfg.RateLimitRPS
		}
	}
	if cfg.RateLimitBurst < cfg.RateLimitRPS {
		cfg.RateLimitBurst = cfg.RateLimitRPS
	}
	if cfg.SuffixLength <= 0 {
		cfg.SuffixLength = 4
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 10
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func sanitizeBaseURL(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "/")
	if s == "" {
		return "http://localhost:8080"
	}
	return s
}

func getDBPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		p = "./data/links.db"
	}
	p = filepath.Clean(p)
	if dir := filepath.Dir(p); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	return p
}

// parseRateLimit accepts "10", "10rps", or "10:20" (rps:burst).
func parseRateLimit(s string) (rps, burst int) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "rps")
	if i := strings.Index(s, ":"); i >= 0 {
		rps, _ = strconv.Atoi(strings.TrimSpace(s[:i]))
		burst, _ = strconv.Atoi(strings.TrimSpace(s[i+1:]))
		return rps, burst
	}
	rps, _ = strconv.Atoi(strings.TrimSpace(s))
	return rps, rps
}

// loadDotEnv loads KEY=VALUE pairs from a local ".env" file if present.
// It never overrides variables already set in the environment.
func loadDotEnv() {
	f, err := os.Open(".env")
	if err != nil {
		return // no .env; silently skip
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		i := strings.Index(line, "=")
		if i <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:i])
		val := strings.Trim(strings.TrimSpace(line[i+1:]), `"'`)
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		_ = os.Setenv(key, val)
	}
}
