package config

import (
	"legacy-http/http"
	"legacy-http/http/query"
	"io/fs"
	sliceutil "legacy-http/lib/slice"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds the request defaults and logging settings of reqplan.
type Config struct {
	// Request defaults
	Method          string
	Headers         string // "Name: value; Name2: value"
	Params          string // raw query, e.g. "a=1&b=2"
	WithCredentials *bool

	// Logging
	LogLevel string
	LogFile  string
}

// Load reads configuration from environment variables.
// Variables found in envFiles (".env" when none is given) fill in the ones not already set.
// Missing env files are skipped; unreadable or malformed ones are an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "loading env file")
	}

	cfg := &Config{
		Method:   getEnvOrDefault("REQPLAN_METHOD", ""),
		Headers:  getEnvOrDefault("REQPLAN_HEADERS", ""),
		Params:   getEnvOrDefault("REQPLAN_PARAMS", ""),
		LogLevel: strings.ToLower(getEnvOrDefault("REQPLAN_LOG_LEVEL", "info")),
		LogFile:  getEnvOrDefault("REQPLAN_LOG_FILE", ""),
	}

	var err error
	if cfg.WithCredentials, err = getEnvBool("REQPLAN_WITH_CREDENTIALS"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RequestOptions converts the configured defaults. Fields left empty stay unset.
func (c *Config) RequestOptions() (http.RequestOptions, error) {
	var opts http.RequestOptions

	if c.Method != "" {
		m, err := http.ParseRequestMethod(c.Method)
		if err != nil {
			return http.RequestOptions{}, errors.Wrap(err, "REQPLAN_METHOD")
		}
		opts.Method = &m
	}

	if c.Headers != "" {
		h, err := ParseHeaderList(c.Headers)
		if err != nil {
			return http.RequestOptions{}, errors.Wrap(err, "REQPLAN_HEADERS")
		}
		opts.Headers = h
	}

	if c.Params != "" {
		p, err := query.ParseStrict(c.Params, nil)
		if err != nil {
			return http.RequestOptions{}, errors.Wrap(err, "REQPLAN_PARAMS")
		}
		opts.Params = p
	}

	if c.WithCredentials != nil {
		v := *c.WithCredentials
		opts.WithCredentials = &v
	}

	return opts, nil
}

// ParseHeaderList parses "Name: value" pairs separated by ';'.
func ParseHeaderList(raw string) (*http.Headers, error) {
	h := http.NewHeaders(nil)

	parts := sliceutil.Filter(
		sliceutil.Map(strings.Split(raw, ";"), strings.TrimSpace),
		func(s string) bool { return s != "" },
	)
	for _, part := range parts {
		if err := AddHeader(h, part); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// AddHeader appends a single "Name: value" pair to h.
func AddHeader(h *http.Headers, pair string) error {
	name, value, found := strings.Cut(pair, ":")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return errors.Errorf("malformed header %q, expected \"Name: value\"", pair)
	}
	h.Append(name, strings.TrimSpace(value))
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string) (*bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", key)
	}
	return &b, nil
}
