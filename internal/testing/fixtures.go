// Package testing holds fixtures shared by aocget tests.
package testing

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/teranos/aocget/config"
)

// CreateDayDir creates <root>/<year>/<name> and returns its path.
func CreateDayDir(t *testing.T, root string, year int, name string) string {
	t.Helper()

	dir := filepath.Join(root, strconv.Itoa(year), name)
	if err := os.MkdirAll(dir, config.DefaultDirPermissions); err != nil {
		t.Fatalf("Failed to create day directory: %v", err)
	}
	return dir
}

// IsolateConfig points configuration at an empty home directory, clears the
// AOC_* variables that would leak in from the developer's shell and disables
// the download cache. The loaded configuration is reset before and after the test.
func IsolateConfig(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, name := range []string{"AOC_SESSION", "AOC_OUTPUT_ROOT", "AOC_OUTPUT_LAYOUT", "AOC_OUTPUT_INPUT_MODE"} {
		t.Setenv(name, "")
	}
	t.Setenv("AOC_CACHE_ENABLED", "false")

	config.Reset()
	t.Cleanup(config.Reset)
	return home
}

// WriteTokenFile writes token to the default aocd token location under home.
func WriteTokenFile(t *testing.T, home, token string) string {
	t.Helper()

	path := filepath.Join(home, ".config", "aocd", "token")
	if err := os.MkdirAll(filepath.Dir(path), config.DefaultDirPermissions); err != nil {
		t.Fatalf("Failed to create token directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0600); err != nil {
		t.Fatalf("Failed to write token file: %v", err)
	}
	return path
}
