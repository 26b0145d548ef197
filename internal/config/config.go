package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config wellsure-api 설정
type Config struct {
	HTTP struct {
		Addr string
	}
	AllowedOrigins []string
	RequiredFields []string
	RiskTablePath  string
	DatabasePath   string
	AdminJWTSecret string
	RateLimit      struct {
		RPS   float64
		Burst int
	}
	Log struct {
		Level  string
		Format string
	}
	GinMode string
}

// Load reads .env (if present) and then the environment. Variables already set win over the file;
// empty variables count as unset.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":"+getEnv("PORT", "3000"))

	cfg.AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"))
	cfg.RequiredFields = splitList(getEnv("REQUIRED_FIELDS", "age"))
	cfg.RiskTablePath = getEnv("RISK_TABLE_PATH", "")
	cfg.DatabasePath = getEnv("ASSESSMENT_DB_PATH", "")
	cfg.AdminJWTSecret = getEnv("ADMIN_JWT_SECRET", "")

	cfg.RateLimit.RPS = parseFloat(getEnv("RATE_LIMIT_RPS", "5"), 5)
	cfg.RateLimit.Burst = parseInt(getEnv("RATE_LIMIT_BURST", "20"), 20)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")
	cfg.GinMode = getEnv("GIN_MODE", "release")
	return cfg
}

// AllowAllOrigins reports whether ALLOWED_ORIGINS contains "*".
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func (c *Config) LedgerEnabled() bool {
	return c.DatabasePath != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return def
	}
	return n
}

func parseFloat(s string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return def
	}
	return f
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
