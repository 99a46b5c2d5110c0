package game

import (
	"fmt"
	"testing"
	"time"
)

func entryWithResult(result string) HistoryEntry {
	return HistoryEntry{
		Timestamp: time.Now(),
		PlayerHands: []HandSummary{
			{Cards: []string{"10♠", "9♥"}, Score: 19, Bet: 100, Outcome: "win"},
		},
		Dealer: DealerSummary{Cards: []string{"K♦", "7♣"}, Score: 17},
		Result: result,
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	t.Parallel()
	h := NewHistory(nil)
	h.Add(entryWithResult("first"))
	h.Add(entryWithResult("second"))
	h.Add(entryWithResult("third"))

	entries := h.Entries()
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	if entries[0].Result != "third" || entries[2].Result != "first" {
		t.Errorf("entries not newest first: %s ... %s", entries[0].Result, entries[2].Result)
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	t.Parallel()
	h := NewHistory(nil)
	for i := 1; i <= MaxHistoryRounds+2; i++ {
		h.Add(entryWithResult(fmt.Sprintf("round %d", i)))
	}
	if h.Len() != MaxHistoryRounds {
		t.Fatalf("len = %d, want %d", h.Len(), MaxHistoryRounds)
	}
	entries := h.Entries()
	if entries[0].Result != fmt.Sprintf("round %d", MaxHistoryRounds+2) {
		t.Errorf("newest = %s", entries[0].Result)
	}
	if entries[len(entries)-1].Result != "round 3" {
		t.Errorf("oldest kept = %s, want round 3", entries[len(entries)-1].Result)
	}
}

func TestHistoryTrimsSeedEntries(t *testing.T) {
	t.Parallel()
	seed := make([]HistoryEntry, MaxHistoryRounds+5)
	for i := range seed {
		seed[i] = entryWithResult(fmt.Sprintf("saved %d", i))
	}
	h := NewHistory(seed)
	if h.Len() != MaxHistoryRounds {
		t.Errorf("seeded len = %d, want %d", h.Len(), MaxHistoryRounds)
	}
	if got := h.Entries()[0].Result; got != "saved 0" {
		t.Errorf("seed order should be preserved, newest = %s", got)
	}
}

func TestHistoryEntriesIsACopy(t *testing.T) {
	t.Parallel()
	h := NewHistory(nil)
	h.Add(entryWithResult("only"))
	entries := h.Entries()
	entries[0].Result = "mutated"
	if h.Entries()[0].Result != "only" {
		t.Error("Entries must return a copy")
	}
}
