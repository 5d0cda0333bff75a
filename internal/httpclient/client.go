package httpclient

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/teranos/aocget/errors"
)

// Client wraps http.Client with host allowlisting, a fixed User-Agent and
// request throttling.
type Client struct {
	*http.Client
	userAgent      string
	limiter        *rate.Limiter
	allowedSchemes []string
	allowedHosts   []string
	maxRedirects   int
}

// Options customizes a Client. Zero values select defaults.
type Options struct {
	UserAgent         string   // Sent on every request
	RequestsPerMinute int      // 0 = unlimited
	AllowedHosts      []string // Empty = any host
	AllowedSchemes    []string // Default: ["http", "https"]
	MaxRedirects      *int     // Default: 10
}

// New creates a Client with its own http.Client
func New(timeout time.Duration, opts Options) *Client {
	return WrapClient(&http.Client{Timeout: timeout}, opts)
}

// WrapClient builds a Client around an existing http.Client (e.g. httptest's).
// The redirect policy of the wrapped client is replaced.
func WrapClient(client *http.Client, opts Options) *Client {
	c := &Client{
		Client:         client,
		userAgent:      opts.UserAgent,
		limiter:        newLimiter(opts.RequestsPerMinute),
		allowedSchemes: []string{"http", "https"},
		maxRedirects:   10,
	}
	if opts.AllowedSchemes != nil {
		c.allowedSchemes = opts.AllowedSchemes
	}
	if opts.MaxRedirects != nil {
		c.maxRedirects = *opts.MaxRedirects
	}
	for _, host := range opts.AllowedHosts {
		c.allowedHosts = append(c.allowedHosts, strings.ToLower(host))
	}

	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= c.maxRedirects {
			return errors.Newf("stopped after %d redirects", c.maxRedirects)
		}
		if err := c.validateURL(req.URL); err != nil {
			return errors.Wrap(err, "redirect blocked")
		}
		return nil
	}

	return c
}

// newLimiter spreads requestsPerMinute evenly with a burst of one.
// Nil means unlimited.
func newLimiter(requestsPerMinute int) *rate.Limiter {
	if requestsPerMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1)
}

// validateURL checks scheme and host against the allowlists
func (c *Client) validateURL(u *url.URL) error {
	scheme := strings.ToLower(u.Scheme)
	if !slices.Contains(c.allowedSchemes, scheme) {
		return errors.Newf("scheme %q not allowed (allowed: %v)", scheme, c.allowedSchemes)
	}

	// http://evil.example@adventofcode.com/ style confusion
	if u.User != nil {
		return errors.New("URL contains userinfo")
	}

	hostname := strings.ToLower(u.Hostname())
	if hostname == "" {
		return errors.New("URL missing hostname")
	}

	if len(c.allowedHosts) > 0 && !slices.Contains(c.allowedHosts, hostname) {
		return errors.Newf("host %q not allowed (allowed: %v)", hostname, c.allowedHosts)
	}

	return nil
}

// ValidateURL validates a URL string before creating a request
func (c *Client) ValidateURL(urlStr string) (*url.URL, error) {
	u, err := url.Parse(urlStr)
	if err != nil {
		return nil, errors.Wrap(err, "invalid URL")
	}
	if err := c.validateURL(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Get issues a GET request with the given extra headers
func (c *Client) Get(ctx context.Context, urlStr string, header http.Header) (*http.Response, error) {
	if _, err := c.ValidateURL(urlStr); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	return c.Do(req)
}

// Do validates the request, waits for the limiter, sets the User-Agent and executes it
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if err := c.validateURL(req.URL); err != nil {
		return nil, errors.Wrap(err, "request blocked")
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, errors.Wrap(err, "rate limiter")
		}
	}

	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return c.Client.Do(req)
}
