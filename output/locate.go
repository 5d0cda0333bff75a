package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/teranos/aocget/errors"
	"github.com/teranos/aocget/puzzle"
)

// DayPrefix returns the zero-padded day that day directories start with
func DayPrefix(day int) string {
	return fmt.Sprintf("%02d", day)
}

// Locate returns the first directory under <root>/<year>/ whose name starts
// with the zero-padded day, following symlinks. Entries are considered in
// lexical order.
func Locate(root string, id puzzle.ID) (string, error) {
	yearDir := filepath.Join(root, strconv.Itoa(id.Year))
	prefix := DayPrefix(id.Day)

	entries, err := os.ReadDir(yearDir)
	if err != nil && !os.IsNotExist(err) {
		return "", errors.Wrapf(err, "failed to list %s", yearDir)
	}

	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		candidate := filepath.Join(yearDir, entry.Name())
		if entry.IsDir() {
			return candidate, nil
		}
		// Symlinks to day directories count; os.Stat follows them
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.WithHintf(
		errors.NewNotFoundError("no directory matching %s* in %s", prefix, yearDir),
		"create the day directory first, e.g. %s", filepath.Join(yearDir, prefix+"-name"),
	)
}
