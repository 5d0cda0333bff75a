package aoc

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/teranos/aocget/config"
	"github.com/teranos/aocget/errors"
	"github.com/teranos/aocget/puzzle"
)

// Cache stores inputs and puzzle pages under <root>/<token-id>/ so that
// different accounts never share data.
type Cache struct {
	dir string
}

// NewCache creates a cache for the given session token
func NewCache(root, token string) *Cache {
	return &Cache{dir: filepath.Join(root, TokenID(token))}
}

// TokenID returns a short stable identifier for a session token
func TokenID(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])[:12]
}

// Dir returns the per-token cache directory
func (c *Cache) Dir() string {
	return c.dir
}

// InputPath returns where the input of id is cached
func (c *Cache) InputPath(id puzzle.ID) string {
	return filepath.Join(c.dir, fmt.Sprintf("%d_%02d_input.txt", id.Year, id.Day))
}

// ProsePath returns where the puzzle page of id is cached
func (c *Cache) ProsePath(id puzzle.ID) string {
	return filepath.Join(c.dir, fmt.Sprintf("%d_%02d_prose.html", id.Year, id.Day))
}

// LoadInput returns the cached input and whether it was present
func (c *Cache) LoadInput(id puzzle.ID) (string, bool, error) {
	return c.load(c.InputPath(id))
}

// StoreInput caches input
func (c *Cache) StoreInput(id puzzle.ID, input string) error {
	return c.store(c.InputPath(id), input)
}

// LoadProse returns the cached puzzle page and whether it was present
func (c *Cache) LoadProse(id puzzle.ID) (string, bool, error) {
	return c.load(c.ProsePath(id))
}

// StoreProse caches a puzzle page
func (c *Cache) StoreProse(id puzzle.ID, page string) error {
	return c.store(c.ProsePath(id), page)
}

func (c *Cache) load(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to read cache file %s", path)
	}
	return string(data), true, nil
}

func (c *Cache) store(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), config.DefaultDirPermissions); err != nil {
		return errors.Wrap(err, "failed to create cache directory")
	}
	if err := os.WriteFile(path, []byte(content), config.DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write cache file %s", path)
	}
	return nil
}
