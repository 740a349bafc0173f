package state

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/grovetools/gridnav/tui/gridnav"
)

// positionsKey holds the last grid position per item source.
const positionsKey = "positions"

// State represents the local gridnav state as a generic map of key-value
// pairs.
type State map[string]interface{}

// Store reads and writes a state file.
type Store struct {
	Path string
}

// NewStore returns a store for .gridnav/state.yml under dir.
func NewStore(dir string) *Store {
	return &Store{Path: filepath.Join(dir, ".gridnav", "state.yml")}
}

// DefaultStore returns the store of the current working directory, so each
// checkout keeps its own state.
func DefaultStore() (*Store, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get current directory: %w", err)
	}
	return NewStore(cwd), nil
}

// Load loads the state. A missing file yields an empty state.
func (s *Store) Load() (State, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(State), nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var state State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}
	if state == nil {
		state = make(State)
	}
	return state, nil
}

// Save writes the state, creating the directory as needed.
func (s *Store) Save(state State) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// Get retrieves a value by key.
func (s *Store) Get(key string) (interface{}, bool, error) {
	state, err := s.Load()
	if err != nil {
		return nil, false, err
	}
	val, ok := state[key]
	return val, ok, nil
}

// Set stores a value under key.
func (s *Store) Set(key string, value interface{}) error {
	state, err := s.Load()
	if err != nil {
		return err
	}
	state[key] = value
	return s.Save(state)
}

// Delete removes a key.
func (s *Store) Delete(key string) error {
	state, err := s.Load()
	if err != nil {
		return err
	}
	delete(state, key)
	return s.Save(state)
}

// Position returns the remembered grid position for an item source.
func (s *Store) Position(source string) (gridnav.Position, bool, error) {
	val, ok, err := s.Get(positionsKey)
	if err != nil || !ok {
		return gridnav.Position{}, false, err
	}

	positions, ok := val.(map[string]interface{})
	if !ok {
		return gridnav.Position{}, false, nil
	}
	entry, ok := positions[sourceKey(source)].(map[string]interface{})
	if !ok {
		return gridnav.Position{}, false, nil
	}

	row, rowOK := entry["row"].(int)
	col, colOK := entry["col"].(int)
	if !rowOK || !colOK {
		return gridnav.Position{}, false, nil
	}
	return gridnav.Position{Row: row, Col: col}, true, nil
}

// SetPosition remembers the grid position for an item source.
func (s *Store) SetPosition(source string, pos gridnav.Position) error {
	state, err := s.Load()
	if err != nil {
		return err
	}

	positions, ok := state[positionsKey].(map[string]interface{})
	if !ok {
		positions = map[string]interface{}{}
	}
	positions[sourceKey(source)] = map[string]interface{}{
		"row": pos.Row,
		"col": pos.Col,
	}
	state[positionsKey] = positions
	return s.Save(state)
}

func sourceKey(source string) string {
	if abs, err := filepath.Abs(source); err == nil {
		return abs
	}
	return source
}
