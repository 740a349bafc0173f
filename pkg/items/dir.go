package items

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/moby/patternmatcher"

	"github.com/grovetools/gridnav/errors"
	"github.com/grovetools/gridnav/tui/gridnav"
)

// Entry is the typed form of a directory record.
type Entry struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label"`
	Path  string `json:"path"`
	Dir   bool   `json:"dir"`
	Size  int64  `json:"size"`
}

// Record converts the entry to the record FromDir produces.
func (e Entry) Record() gridnav.Record {
	return gridnav.Record{
		"id":    e.ID,
		"name":  e.Name,
		"label": e.Label,
		"path":  e.Path,
		"dir":   e.Dir,
		"size":  e.Size,
	}
}

// EntryOf reads a directory record back into an Entry. It reports false for
// records that did not come from a directory listing.
func EntryOf(rec gridnav.Record) (Entry, bool) {
	if _, ok := rec["path"]; !ok {
		return Entry{}, false
	}
	var e Entry
	if err := Decode(rec, &e); err != nil || e.Path == "" {
		return Entry{}, false
	}
	return e, true
}

// FromDir lists dir as records, one per entry, in name order. Entries
// matching any of the dockerignore-style exclude patterns are skipped.
func FromDir(dir string, excludes []string) ([]gridnav.Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ItemsNotFound(dir)
		}
		return nil, errors.Wrap(err, errors.ErrCodeItemsInvalid, fmt.Sprintf("failed to read %s", dir))
	}

	var pm *patternmatcher.PatternMatcher
	if len(excludes) > 0 {
		pm, err = patternmatcher.New(excludes)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid exclude pattern").
				WithDetail("patterns", excludes)
		}
	}

	records := make([]gridnav.Record, 0, len(entries))
	for _, entry := range entries {
		if pm != nil {
			excluded, err := pm.MatchesOrParentMatches(entry.Name())
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid exclude pattern")
			}
			if excluded {
				continue
			}
		}

		var size int64
		if info, err := entry.Info(); err == nil && !entry.IsDir() {
			size = info.Size()
		}

		label := entry.Name()
		if entry.IsDir() {
			label += string(filepath.Separator)
		}

		records = append(records, Entry{
			ID:    len(records),
			Name:  entry.Name(),
			Label: label,
			Path:  filepath.Join(dir, entry.Name()),
			Dir:   entry.IsDir(),
			Size:  size,
		}.Record())
	}
	return records, nil
}

// Load reads items from path, listing it when it is a directory.
func Load(path string, excludes []string) ([]gridnav.Record, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ItemsNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeItemsInvalid, fmt.Sprintf("failed to stat %s", path))
	}
	if info.IsDir() {
		return FromDir(path, excludes)
	}
	return LoadFile(path)
}
