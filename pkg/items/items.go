// Package items loads the record lists that gridnav lays out: item files in
// JSON, JSON Lines, YAML or TOML, directory listings, and live sources that
// reload when a file changes.
package items

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/gridnav/errors"
	"github.com/grovetools/gridnav/tui/gridnav"
)

// Format is an item file encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

// tomlItemsKey is the table array holding records in a TOML item file.
const tomlItemsKey = "items"

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".jsonl", ".ndjson":
		return FormatJSONL, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.UnsupportedFormat(path, ext)
}

// LoadFile reads the records stored in path.
func LoadFile(path string) ([]gridnav.Record, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ItemsNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeItemsInvalid, fmt.Sprintf("failed to read %s", path))
	}

	records, err := Parse(data, format)
	if err != nil {
		return nil, errors.ItemsInvalid(path, err)
	}
	return records, nil
}

// Parse decodes data as a list of records in the given format.
func Parse(data []byte, format Format) ([]gridnav.Record, error) {
	switch format {
	case FormatJSON:
		var raw []map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return toRecords(raw), nil

	case FormatJSONL:
		return parseJSONL(data)

	case FormatYAML:
		var raw []map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return toRecords(raw), nil

	case FormatTOML:
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		list, ok := doc[tomlItemsKey]
		if !ok {
			return []gridnav.Record{}, nil
		}
		tables, ok := list.([]any)
		if !ok {
			return nil, fmt.Errorf("%q must be an array of tables", tomlItemsKey)
		}
		records := make([]gridnav.Record, 0, len(tables))
		for i, t := range tables {
			m, ok := t.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s[%d] is not a table", tomlItemsKey, i)
			}
			records = append(records, gridnav.Record(m))
		}
		return records, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// ParseLine decodes one JSON Lines record. Blank lines yield nil.
func ParseLine(line string) (gridnav.Record, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		return nil, err
	}
	return gridnav.Record(rec), nil
}

func parseJSONL(data []byte) ([]gridnav.Record, error) {
	records := []gridnav.Record{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		rec, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if rec != nil {
			records = append(records, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func toRecords(raw []map[string]any) []gridnav.Record {
	records := make([]gridnav.Record, len(raw))
	for i, m := range raw {
		if m == nil {
			m = map[string]any{}
		}
		records[i] = gridnav.Record(m)
	}
	return records
}

// Decode copies a record into a typed value. Field names follow `json` tags
// and scalar types are converted where it is unambiguous.
//
// Example:
//
//	var entry struct {
//		Name string `json:"name"`
//		Size int64  `json:"size"`
//	}
//	err := items.Decode(rec, &entry)
func Decode(rec gridnav.Record, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	if err := decoder.Decode(map[string]any(rec)); err != nil {
		return errors.Wrap(err, errors.ErrCodeItemsInvalid, "failed to decode record")
	}
	return nil
}
