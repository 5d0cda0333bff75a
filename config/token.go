package config

import (
	"os"
	"strings"

	"github.com/teranos/aocget/errors"
)

// SessionToken resolves the session cookie: session.token first, then the
// first line of session.token_file. A missing file is not an error; both
// sources empty yields ErrUnauthorized with a hint.
func (c *Config) SessionToken() (string, error) {
	if token := strings.TrimSpace(c.Session.Token); token != "" {
		return token, nil
	}

	if c.Session.TokenFile != "" {
		data, err := os.ReadFile(c.Session.TokenFile)
		if err != nil && !os.IsNotExist(err) {
			return "", errors.Wrapf(err, "failed to read token file %s", c.Session.TokenFile)
		}
		if token := firstLine(string(data)); token != "" {
			return token, nil
		}
	}

	return "", errors.WithHint(
		errors.Wrap(errors.ErrUnauthorized, "no session token configured"),
		"set AOC_SESSION or write the session cookie to "+c.Session.TokenFile,
	)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
