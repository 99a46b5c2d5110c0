// Package store is the persistence gateway: a versioned JSON save-file
// holding balance, round history and presentation preferences. Loads are
// tolerant of missing or malformed data and saves are atomic, so a bad
// save-file costs a fresh profile, never a crash.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/game"
)

// SchemaVersion identifies the save-file layout
const SchemaVersion = 1

// Preferences is the presentation-owned blob persisted alongside game state
type Preferences struct {
	Theme  string `json:"theme"`
	Avatar string `json:"avatar"`
}

// SaveData is the full persisted state
type SaveData struct {
	Version int                 `json:"version"`
	Balance int                 `json:"balance"`
	History []game.HistoryEntry `json:"history"`
	Prefs   Preferences         `json:"preferences"`
}

func defaults() SaveData {
	return SaveData{
		Version: SchemaVersion,
		Balance: game.StartingBalance,
		History: []game.HistoryEntry{},
		Prefs:   Preferences{Theme: "dark", Avatar: "♠"},
	}
}

// Store reads and writes the save-file. It keeps the last-known state in
// memory so the game-facing Save only needs balance and history.
type Store struct {
	path   string
	logger *log.Logger
	data   SaveData
}

// New creates a store for the given save-file path
func New(path string, logger *log.Logger) *Store {
	return &Store{path: path, logger: logger, data: defaults()}
}

// Load reads the save-file, defaulting anything absent or malformed. The
// returned error is advisory: the store always comes back usable.
func (s *Store) Load() (SaveData, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.data = defaults()
		return s.data, nil
	}
	if err != nil {
		s.data = defaults()
		return s.data, fmt.Errorf("failed to read save file: %w", err)
	}

	// Balance is a pointer here so an absent field (as opposed to a legal
	// zero) falls back to the starting bankroll.
	var onDisk struct {
		Version int                 `json:"version"`
		Balance *int                `json:"balance"`
		History []game.HistoryEntry `json:"history"`
		Prefs   Preferences         `json:"preferences"`
	}
	if err := json.Unmarshal(raw, &onDisk); err != nil {
		s.data = defaults()
		return s.data, fmt.Errorf("save file corrupt, starting fresh: %w", err)
	}

	loaded := SaveData{
		Version: onDisk.Version,
		Balance: game.StartingBalance,
		History: onDisk.History,
		Prefs:   onDisk.Prefs,
	}
	if onDisk.Balance != nil && *onDisk.Balance >= 0 {
		loaded.Balance = *onDisk.Balance
	}
	if loaded.Version == 0 {
		loaded.Version = SchemaVersion
	}
	if loaded.History == nil {
		loaded.History = []game.HistoryEntry{}
	}
	if len(loaded.History) > game.MaxHistoryRounds {
		loaded.History = loaded.History[:game.MaxHistoryRounds]
	}
	if loaded.Prefs.Theme != "light" && loaded.Prefs.Theme != "dark" {
		loaded.Prefs.Theme = "dark"
	}
	if loaded.Prefs.Avatar == "" {
		loaded.Prefs.Avatar = "♠"
	}

	s.data = loaded
	return s.data, nil
}

// Data returns the last loaded or saved state
func (s *Store) Data() SaveData {
	return s.data
}

// Save implements game.Saver: called by the table after every balance or
// history mutation.
func (s *Store) Save(balance int, history []game.HistoryEntry) error {
	s.data.Balance = balance
	s.data.History = history
	return s.flush()
}

// SavePrefs persists updated presentation preferences
func (s *Store) SavePrefs(prefs Preferences) error {
	s.data.Prefs = prefs
	return s.flush()
}

// Reset discards all saved state and writes a fresh profile
func (s *Store) Reset() error {
	s.data = defaults()
	return s.flush()
}

func (s *Store) flush() error {
	s.data.Version = SchemaVersion
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode save data: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create save directory: %w", err)
		}
	}
	if err := fileutil.WriteFileAtomic(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	s.logger.Debug("saved progress", "path", s.path, "balance", s.data.Balance)
	return nil
}

// DefaultPath returns the conventional save-file location under the
// user's home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "blackjack.json"
	}
	return filepath.Join(home, ".blackjack", "save.json")
}
