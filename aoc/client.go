// Package aoc fetches puzzle input and examples from adventofcode.com.
//
// Requests carry the user's session cookie and are throttled through
// internal/httpclient. Inputs and finished puzzle pages are cached on disk
// per session token.
package aoc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/aocget/config"
	"github.com/teranos/aocget/errors"
	"github.com/teranos/aocget/internal/httpclient"
	"github.com/teranos/aocget/logger"
	"github.com/teranos/aocget/puzzle"
)

// maxBodyBytes bounds a single response body
var maxBodyBytes int64 = 4 << 20

// Client is a puzzle.Fetcher backed by adventofcode.com
type Client struct {
	baseURL string
	token   string
	http    *httpclient.Client
	cache   *Cache
	now     func() time.Time
	logger  *zap.SugaredLogger
}

// Options configures a Client. HTTP is required; Cache may be nil; Now defaults to time.Now.
type Options struct {
	BaseURL string
	Token   string
	HTTP    *httpclient.Client
	Cache   *Cache
	Now     func() time.Time
}

var _ puzzle.Fetcher = (*Client)(nil)

// NewClient creates a Client from explicit options
func NewClient(opts Options, log *zap.SugaredLogger) *Client {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		token:   opts.Token,
		http:    opts.HTTP,
		cache:   opts.Cache,
		now:     now,
		logger:  log,
	}
}

// NewClientFromConfig builds the HTTP client, cache and Client from configuration.
// Requests are restricted to the base URL's host.
func NewClientFromConfig(cfg *config.Config, token string, log *zap.SugaredLogger) (*Client, error) {
	base, err := url.Parse(cfg.HTTP.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid http.base_url %q", cfg.HTTP.BaseURL)
	}

	hc := httpclient.New(time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second, httpclient.Options{
		UserAgent:         cfg.HTTP.UserAgent,
		RequestsPerMinute: cfg.HTTP.RequestsPerMinute,
		AllowedHosts:      []string{base.Hostname()},
	})

	var cache *Cache
	if cfg.Cache.Enabled {
		cache = NewCache(cfg.Cache.Dir, token)
	}

	return NewClient(Options{
		BaseURL: cfg.HTTP.BaseURL,
		Token:   token,
		HTTP:    hc,
		Cache:   cache,
	}, log), nil
}

// PuzzleURL returns the puzzle page URL
func (c *Client) PuzzleURL(id puzzle.ID) string {
	return fmt.Sprintf("%s/%d/day/%d", c.baseURL, id.Year, id.Day)
}

// InputURL returns the personal input URL
func (c *Client) InputURL(id puzzle.ID) string {
	return c.PuzzleURL(id) + "/input"
}

// Fetch downloads input and puzzle page and extracts the examples
func (c *Client) Fetch(ctx context.Context, id puzzle.ID) (*puzzle.Data, error) {
	if err := c.checkAvailable(id); err != nil {
		return nil, err
	}

	input, err := c.Input(ctx, id)
	if err != nil {
		return nil, err
	}

	page, err := c.Page(ctx, id)
	if err != nil {
		return nil, err
	}

	return &puzzle.Data{
		ID:       id,
		Title:    page.Title,
		URL:      c.PuzzleURL(id),
		Input:    input,
		Examples: page.Examples(),
	}, nil
}

// Input returns the personal puzzle input, from cache when possible
func (c *Client) Input(ctx context.Context, id puzzle.ID) (string, error) {
	if err := c.checkAvailable(id); err != nil {
		return "", err
	}
	log := logger.PuzzleLogger(c.logger, id.Year, id.Day)

	if c.cache != nil {
		if cached, ok, err := c.cache.LoadInput(id); err != nil {
			log.Warnw("Ignoring unreadable cached input", logger.FieldError, err)
		} else if ok {
			log.Infow("Using cached input", logger.FieldPath, c.cache.InputPath(id))
			return cached, nil
		}
	}

	body, err := c.get(ctx, c.InputURL(id))
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch input for %s", id)
	}
	log.Infow("Fetched input", logger.FieldBytes, len(body))

	if c.cache != nil {
		if err := c.cache.StoreInput(id, body); err != nil {
			log.Warnw("Failed to cache input", logger.FieldError, err)
		}
	}
	return body, nil
}

// Page returns the parsed puzzle page. Pages showing both parts no longer
// change and are cached; earlier pages are always refetched.
func (c *Client) Page(ctx context.Context, id puzzle.ID) (*Page, error) {
	if err := c.checkAvailable(id); err != nil {
		return nil, err
	}
	log := logger.PuzzleLogger(c.logger, id.Year, id.Day)

	if c.cache != nil {
		if cached, ok, err := c.cache.LoadProse(id); err != nil {
			log.Warnw("Ignoring unreadable cached puzzle page", logger.FieldError, err)
		} else if ok {
			page, err := ParsePage(strings.NewReader(cached))
			if err == nil {
				log.Infow("Using cached puzzle page", logger.FieldPath, c.cache.ProsePath(id))
				return page, nil
			}
			log.Warnw("Ignoring unparsable cached puzzle page", logger.FieldError, err)
		}
	}

	body, err := c.get(ctx, c.PuzzleURL(id))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch puzzle page for %s", id)
	}

	page, err := ParsePage(strings.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse puzzle page for %s", id)
	}
	log.Infow("Fetched puzzle page", logger.FieldBytes, len(body), "parts", len(page.Parts))

	if c.cache != nil && page.Complete() {
		if err := c.cache.StoreProse(id, body); err != nil {
			log.Warnw("Failed to cache puzzle page", logger.FieldError, err)
		}
	}
	return page, nil
}

// checkAvailable rejects invalid and unreleased puzzles before any network access
func (c *Client) checkAvailable(id puzzle.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !id.Unlocked(c.now()) {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrPuzzleLocked, "%s", id),
			"it unlocks at %s", id.UnlockTime().UTC().Format(time.RFC3339),
		)
	}
	return nil
}

// get performs an authenticated GET and maps adventofcode.com status codes to sentinels
func (c *Client) get(ctx context.Context, urlStr string) (string, error) {
	if c.token == "" {
		return "", errors.WithHint(errors.Wrap(errors.ErrUnauthorized, "no session token"),
			"set AOC_SESSION to your adventofcode.com session cookie")
	}

	start := time.Now()
	resp, err := c.http.Get(ctx, urlStr, http.Header{
		"Cookie": {"session=" + c.token},
	})
	if err != nil {
		return "", errors.Wrapf(err, "GET %s", urlStr)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return "", errors.Wrapf(err, "failed to read response from %s", urlStr)
	}
	if int64(len(body)) > maxBodyBytes {
		return "", errors.Newf("response from %s exceeds %d bytes", urlStr, maxBodyBytes)
	}

	c.logger.Debugw("HTTP GET",
		logger.FieldURL, urlStr,
		logger.FieldStatus, resp.StatusCode,
		logger.FieldBytes, len(body),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	switch {
	case resp.StatusCode == http.StatusOK:
		return string(body), nil
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden:
		return "", errors.WithHint(
			errors.Wrapf(errors.ErrUnauthorized, "status %d from %s", resp.StatusCode, urlStr),
			"the session token is missing or expired; copy a fresh session cookie from the browser",
		)
	case resp.StatusCode == http.StatusNotFound:
		return "", errors.NewNotFoundError("status 404 from %s", urlStr)
	default:
		return "", errors.Newf("unexpected status %d from %s: %s", resp.StatusCode, urlStr, snippet(body))
	}
}

// snippet returns the start of a response body on a single line for error messages
func snippet(body []byte) string {
	s := strings.Join(strings.Fields(string(body)), " ")
	if len(s) > 120 {
		return s[:120] + "..."
	}
	return s
}
