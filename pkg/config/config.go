package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
)

const (
	defaultAPIURL      = "https://wikimedia.org/api/rest_v1/metrics/pageviews"
	defaultParallelism = 10
)

type Config struct {
	ListenAddr   string
	LogLevel     string
	APIURL       string
	Parallelism  int
	HTTPTimeout  time.Duration // 0 = no timeout
	UserAgent    string
	MaxCPU       int
	MaxRangeDays int // 0 = unlimited
	ShutdownWait time.Duration
}

// Parse reads the environment. Variables from an optional .env file in the
// working directory are loaded first and never override the real environment.
func Parse() (*Config, error) {
	return ParseFiles(".env")
}

func ParseFiles(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var errs error
	c := &Config{}
	c.ListenAddr = getenv("LISTEN_ADDR", ":3000")
	c.LogLevel = getenv("LOG_LEVEL", "info")
	c.APIURL = getenv("PAGEVIEWS_API_URL", defaultAPIURL)
	c.UserAgent = getenv("USER_AGENT", "")
	c.Parallelism = mustInt(getenv("PARALLELISM", strconv.Itoa(defaultParallelism)))
	c.HTTPTimeout = optionalDuration(getenv("HTTP_TIMEOUT", "0"))
	c.MaxCPU = mustInt(getenv("MAX_CPU", "0"))
	c.MaxRangeDays = mustInt(getenv("MAX_RANGE_DAYS", "366"))
	c.ShutdownWait = mustDuration(getenv("SHUTDOWN_WAIT", "5s"))

	if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = multierr.Append(errs, fmt.Errorf("PAGEVIEWS_API_URL must be an absolute URL"))
	}
	if c.Parallelism <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("PARALLELISM must be > 0"))
	}
	if c.HTTPTimeout < 0 {
		errs = multierr.Append(errs, fmt.Errorf("HTTP_TIMEOUT must be >= 0"))
	}
	if c.MaxRangeDays < 0 {
		errs = multierr.Append(errs, fmt.Errorf("MAX_RANGE_DAYS must be >= 0"))
	}
	if errs != nil {
		return nil, errs
	}
	return c, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// mustInt maps garbage to 0, which the validation above rejects where it matters.
func mustInt(s string) int { n, _ := strconv.Atoi(s); return n }

func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	if d <= 0 {
		return time.Second
	}
	return d
}

func optionalDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return -1
	}
	return d
}
