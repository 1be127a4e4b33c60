// Package config reads the service settings from the process environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/avstrong/stayhotel/internal/blog"
)

type HTTP struct {
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
}

type CMS struct {
	UseMock     bool
	APIURL      string
	APIKey      string
	Timeout     time.Duration
	MockLatency bool
	SeedDemo    bool
}

type Blog struct {
	NaverID         string
	FeedURL         string
	CacheTTL        time.Duration
	RefreshSchedule string
}

type Redis struct {
	Addr     string
	Username string
	Password string
}

type Config struct {
	HTTP                 HTTP
	CMS                  CMS
	Blog                 Blog
	Redis                Redis
	BackendProbeSchedule string
}

// LoadDotEnv merges a .env file into the environment when one exists.
// Variables already set win.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}

type reader struct {
	invalid []string
}

func (r *reader) str(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}

func (r *reader) boolean(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		r.invalid = append(r.invalid, key)

		return fallback
	}

	return b
}

func (r *reader) duration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		r.invalid = append(r.invalid, key)

		return fallback
	}

	return d
}

func (r *reader) port(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	p, err := strconv.Atoi(v)
	if err != nil || p <= 0 || p > 65535 {
		r.invalid = append(r.invalid, key)

		return fallback
	}

	return v
}

// Load applies defaults for everything and reports all malformed values in a
// single error.
func Load() (Config, error) {
	r := &reader{}

	cfg := Config{
		HTTP: HTTP{
			Host:              r.str("HTTP_HOST", "localhost"),
			Port:              r.port("HTTP_PORT", "8092"),
			ReadHeaderTimeout: r.duration("HTTP_READ_HEADER_TIMEOUT", 20*time.Second), //nolint:gomnd
		},
		CMS: CMS{
			UseMock:     r.boolean("CMS_USE_MOCK", true),
			APIURL:      r.str("CMS_API_URL", ""),
			APIKey:      r.str("CMS_API_KEY", ""),
			Timeout:     r.duration("CMS_API_TIMEOUT", 10*time.Second), //nolint:gomnd
			MockLatency: r.boolean("CMS_MOCK_LATENCY", true),
			SeedDemo:    r.boolean("CMS_SEED_DEMO_BOOKINGS", false),
		},
		Blog: Blog{
			NaverID:         r.str("BLOG_NAVER_ID", ""),
			FeedURL:         r.str("BLOG_FEED_URL", blog.DefaultFeedURL),
			CacheTTL:        r.duration("BLOG_CACHE_TTL", 10*time.Minute), //nolint:gomnd
			RefreshSchedule: r.str("BLOG_REFRESH_SCHEDULE", "@every 30m"),
		},
		Redis: Redis{
			Addr:     r.str("REDIS_ADDR", ""),
			Username: r.str("REDIS_USERNAME", ""),
			Password: r.str("REDIS_PASSWORD", ""),
		},
		BackendProbeSchedule: r.str("BACKEND_PROBE_SCHEDULE", "@every 5m"),
	}

	if cfg.Blog.FeedURL != "" && strings.Count(cfg.Blog.FeedURL, "%s") != 1 {
		r.invalid = append(r.invalid, "BLOG_FEED_URL")
	}

	if len(r.invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment values: %s", strings.Join(r.invalid, ", "))
	}

	return cfg, nil
}
