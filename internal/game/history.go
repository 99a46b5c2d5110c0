package game

import "time"

// MaxHistoryRounds bounds the round history ring
const MaxHistoryRounds = 10

// HandSummary is the frozen per-hand record inside a HistoryEntry
type HandSummary struct {
	Cards   []string `json:"cards"`
	Score   int      `json:"score"`
	Bet     int      `json:"bet"`
	Outcome string   `json:"outcome"`
}

// DealerSummary is the frozen dealer record inside a HistoryEntry
type DealerSummary struct {
	Cards []string `json:"cards"`
	Score int      `json:"score"`
}

// HistoryEntry is an immutable snapshot of a completed round. Result is a
// derived convenience summary; per-hand outcomes are authoritative.
type HistoryEntry struct {
	Timestamp   time.Time     `json:"timestamp"`
	PlayerHands []HandSummary `json:"player_hands"`
	Dealer      DealerSummary `json:"dealer"`
	Result      string        `json:"result"`
}

// History is an append-only bounded log of completed rounds, newest first.
// Appending the eleventh round evicts the oldest.
type History struct {
	entries []HistoryEntry
}

// NewHistory creates a history pre-populated with saved entries, trimming
// to the ring bound if the save-file carried more.
func NewHistory(saved []HistoryEntry) *History {
	entries := make([]HistoryEntry, 0, MaxHistoryRounds)
	entries = append(entries, saved...)
	if len(entries) > MaxHistoryRounds {
		entries = entries[:MaxHistoryRounds]
	}
	return &History{entries: entries}
}

// Add prepends an entry, evicting the oldest past the bound
func (h *History) Add(entry HistoryEntry) {
	h.entries = append([]HistoryEntry{entry}, h.entries...)
	if len(h.entries) > MaxHistoryRounds {
		h.entries = h.entries[:MaxHistoryRounds]
	}
}

// Entries returns a copy of the entries, newest first
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded rounds
func (h *History) Len() int {
	return len(h.entries)
}
