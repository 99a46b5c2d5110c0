package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "save.json"), log.New(os.Stderr))
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Parallel()
	st := testStore(t)
	data, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, game.StartingBalance, data.Balance)
	assert.Empty(t, data.History)
	assert.Equal(t, "dark", data.Prefs.Theme)
	assert.Equal(t, "♠", data.Prefs.Avatar)
	assert.Equal(t, SchemaVersion, data.Version)
}

func TestLoadCorruptFileGivesDefaultsWithError(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	st := New(path, log.New(os.Stderr))
	data, err := st.Load()
	assert.Error(t, err)
	assert.Equal(t, game.StartingBalance, data.Balance)
}

func TestLoadDefaultsMissingFieldsOnly(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":1}`), 0o644))

	st := New(path, log.New(os.Stderr))
	data, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, game.StartingBalance, data.Balance)
	assert.NotNil(t, data.History)
	assert.Equal(t, "dark", data.Prefs.Theme)
}

func TestLoadKeepsLegitimateZeroBalance(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":1,"balance":0}`), 0o644))

	st := New(path, log.New(os.Stderr))
	data, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, data.Balance, "an honest zero balance must survive a reload")
}

func TestLoadRejectsNegativeBalance(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":1,"balance":-500}`), 0o644))

	st := New(path, log.New(os.Stderr))
	data, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, game.StartingBalance, data.Balance)
}

func TestLoadTrimsOversizedHistory(t *testing.T) {
	t.Parallel()
	entries := make([]game.HistoryEntry, game.MaxHistoryRounds+4)
	for i := range entries {
		entries[i] = game.HistoryEntry{Timestamp: time.Now(), Result: "win"}
	}
	raw, err := json.Marshal(SaveData{Version: 1, Balance: 5000, History: entries})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	st := New(path, log.New(os.Stderr))
	data, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, data.History, game.MaxHistoryRounds)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "dir", "save.json")
	st := New(path, log.New(os.Stderr))

	history := []game.HistoryEntry{{
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		PlayerHands: []game.HandSummary{
			{Cards: []string{"A♠", "K♥"}, Score: 21, Bet: 100, Outcome: "blackjack_win"},
		},
		Dealer: game.DealerSummary{Cards: []string{"9♦", "8♣"}, Score: 17},
		Result: "Blackjack! Paid 3:2.",
	}}
	require.NoError(t, st.Save(10150, history))

	reloaded := New(path, log.New(os.Stderr))
	data, err := reloaded.Load()
	require.NoError(t, err)
	assert.Equal(t, 10150, data.Balance)
	require.Len(t, data.History, 1)
	assert.Equal(t, history[0].Result, data.History[0].Result)
	assert.Equal(t, history[0].PlayerHands[0].Cards, data.History[0].PlayerHands[0].Cards)
	assert.True(t, history[0].Timestamp.Equal(data.History[0].Timestamp))
}

func TestSavePrefsPreservesGameState(t *testing.T) {
	t.Parallel()
	st := testStore(t)
	require.NoError(t, st.Save(7777, nil))
	require.NoError(t, st.SavePrefs(Preferences{Theme: "light", Avatar: "♥"}))

	data, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, 7777, data.Balance)
	assert.Equal(t, "light", data.Prefs.Theme)
	assert.Equal(t, "♥", data.Prefs.Avatar)
}

func TestReset(t *testing.T) {
	t.Parallel()
	st := testStore(t)
	require.NoError(t, st.Save(42, []game.HistoryEntry{{Result: "loss"}}))
	require.NoError(t, st.Reset())

	data, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, game.StartingBalance, data.Balance)
	assert.Empty(t, data.History)
}

func TestLoadNormalizesUnknownTheme(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"version":1,"balance":100,"preferences":{"theme":"neon","avatar":""}}`), 0o644))

	st := New(path, log.New(os.Stderr))
	data, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", data.Prefs.Theme)
	assert.Equal(t, "♠", data.Prefs.Avatar)
}
