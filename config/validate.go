package config

import (
	"net/url"

	"github.com/teranos/aocget/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	u, err := url.Parse(c.HTTP.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.NewInvalidRequestError("http.base_url must be an absolute http(s) URL, got %q", c.HTTP.BaseURL)
	}

	if c.HTTP.TimeoutSeconds <= 0 {
		return errors.NewInvalidRequestError("http.timeout_seconds must be > 0, got %d", c.HTTP.TimeoutSeconds)
	}

	// 0 = unlimited, negative = invalid
	if c.HTTP.RequestsPerMinute < 0 {
		return errors.NewInvalidRequestError("http.requests_per_minute must be >= 0, got %d", c.HTTP.RequestsPerMinute)
	}

	if c.Cache.Enabled && c.Cache.Dir == "" {
		return errors.NewInvalidRequestError("cache.dir cannot be empty when cache is enabled")
	}

	if c.Output.Root == "" {
		return errors.NewInvalidRequestError("output.root cannot be empty")
	}

	switch c.Output.Layout {
	case LayoutTOML, LayoutText:
	default:
		return errors.NewInvalidRequestError("output.layout must be %q or %q, got %q", LayoutTOML, LayoutText, c.Output.Layout)
	}

	switch c.Output.InputMode {
	case InputModeTokens, InputModeRaw:
	default:
		return errors.NewInvalidRequestError("output.input_mode must be %q or %q, got %q", InputModeTokens, InputModeRaw, c.Output.InputMode)
	}

	return nil
}
