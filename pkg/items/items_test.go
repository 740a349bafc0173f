package items

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/gridnav/errors"
	"github.com/grovetools/gridnav/tui/gridnav"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_Formats(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"items.json", `[{"id": 1, "label": "a"}, {"id": 2, "label": "b"}]`},
		{"items.jsonl", "{\"id\": 1, \"label\": \"a\"}\n\n{\"id\": 2, \"label\": \"b\"}\n"},
		{"items.yaml", "- id: 1\n  label: a\n- id: 2\n  label: b\n"},
		{"items.yml", "- {id: 1, label: a}\n- {id: 2, label: b}\n"},
		{"items.toml", "[[items]]\nid = 1\nlabel = \"a\"\n\n[[items]]\nid = 2\nlabel = \"b\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := LoadFile(writeFile(t, dir, tt.name, tt.content))
			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Equal(t, "a", records[0]["label"])
			assert.Equal(t, "b", records[1]["label"])

			var typed struct {
				ID    int    `json:"id"`
				Label string `json:"label"`
			}
			require.NoError(t, Decode(records[1], &typed))
			assert.Equal(t, 2, typed.ID)
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.Is(err, errors.ErrCodeItemsNotFound))

	_, err = LoadFile(writeFile(t, dir, "items.csv", "a,b"))
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupportedFormat))

	_, err = LoadFile(writeFile(t, dir, "bad.json", `{"not": "a list"}`))
	assert.True(t, errors.Is(err, errors.ErrCodeItemsInvalid))

	_, err = LoadFile(writeFile(t, dir, "bad.jsonl", "{\"id\": 1}\nnope\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = LoadFile(writeFile(t, dir, "bad.toml", "items = 3\n"))
	assert.True(t, errors.Is(err, errors.ErrCodeItemsInvalid))
}

func TestParse_TOMLWithoutItems(t *testing.T) {
	records, err := Parse([]byte("title = \"x\"\n"), FormatTOML)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParse_NullEntry(t *testing.T) {
	records, err := Parse([]byte(`[null, {"id": 1}]`), FormatJSON)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.NotNil(t, records[0])
}

func TestFormatFor(t *testing.T) {
	f, err := FormatFor("x/Items.YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = FormatFor("feed.ndjson")
	require.NoError(t, err)
	assert.Equal(t, FormatJSONL, f)

	_, err = FormatFor("noext")
	assert.Error(t, err)
}

func TestDecode_WeakTypes(t *testing.T) {
	var out struct {
		Size int64 `json:"size"`
		Dir  bool  `json:"dir"`
	}
	require.NoError(t, Decode(map[string]any{"size": "42", "dir": 1}, &out))
	assert.Equal(t, int64(42), out.Size)
	assert.True(t, out.Dir)
}

func TestFromDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "hello")
	writeFile(t, dir, "a.log", "x")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "node_modules"), 0o755))

	records, err := FromDir(dir, nil)
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "a.log", records[0]["name"])

	records, err = FromDir(dir, []string{"*.log", "node_modules"})
	require.NoError(t, err)
	require.Len(t, records, 2)

	var first, second Entry
	require.NoError(t, Decode(records[0], &first))
	require.NoError(t, Decode(records[1], &second))
	assert.Equal(t, "b.txt", first.Name)
	assert.Equal(t, int64(5), first.Size)
	assert.Equal(t, 0, first.ID)
	assert.True(t, second.Dir)
	assert.Equal(t, "sub"+string(filepath.Separator), second.Label)
	assert.Equal(t, 1, second.ID)

	_, err = FromDir(dir, []string{"["})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = FromDir(filepath.Join(dir, "missing"), nil)
	assert.True(t, errors.Is(err, errors.ErrCodeItemsNotFound))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "items.json", `[{"id": 1}]`)

	records, err := Load(path, nil)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = Load(dir, nil)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "items.json", records[0]["name"])

	_, err = Load(filepath.Join(dir, "nope"), nil)
	assert.True(t, errors.Is(err, errors.ErrCodeItemsNotFound))
}

func TestEntryOf(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.md", "abc")

	records, err := FromDir(dir, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)

	e, ok := EntryOf(records[0])
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "notes.md"), e.Path)
	assert.Equal(t, int64(3), e.Size)
	assert.Equal(t, records[0], e.Record(), "record round-trips through Entry")

	_, ok = EntryOf(gridnav.Record{"id": 1, "label": "alpha"})
	assert.False(t, ok, "file records are not directory entries")
}
