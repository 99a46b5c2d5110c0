package game

import (
	"github.com/lox/blackjack/internal/deck"
)

// HandStatus represents the lifecycle state of a single hand
type HandStatus int

const (
	StatusActive HandStatus = iota
	StatusStood
	StatusBusted
	StatusBlackjack // natural two-card 21, not yet settled against the dealer
	StatusBlackjackWin
	StatusPush
)

// String returns the string representation of a hand status
func (s HandStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusStood:
		return "stood"
	case StatusBusted:
		return "busted"
	case StatusBlackjack:
		return "blackjack"
	case StatusBlackjackWin:
		return "blackjack_win"
	case StatusPush:
		return "push"
	default:
		return "unknown"
	}
}

// Hand is a mutable collection of cards belonging to the dealer or one of
// the player's seats. Created empty at deal time, frozen at round end.
type Hand struct {
	Cards     []deck.Card
	Bet       int
	Status    HandStatus
	CanDouble bool
	SplitAces bool // hand created by splitting aces: one card, then forced stand
}

func newHand(bet int) *Hand {
	return &Hand{
		Cards:     make([]deck.Card, 0, 6),
		Bet:       bet,
		Status:    StatusActive,
		CanDouble: true,
	}
}

// addCard appends a card with the given orientation
func (h *Hand) addCard(card deck.Card, faceUp bool) {
	card.FaceUp = faceUp
	h.Cards = append(h.Cards, card)
}

// reveal flips every card face up
func (h *Hand) reveal() {
	for i := range h.Cards {
		h.Cards[i].FaceUp = true
	}
}

// Score computes the hand's blackjack score over its face-up cards: aces
// count 11, then drop to 1 one at a time while the total exceeds 21.
// Face-down cards are excluded, which is how the dealer's hole card stays
// out of bust/blackjack checks until it is revealed.
func (h *Hand) Score() int {
	score, aces := 0, 0
	for _, c := range h.Cards {
		if !c.FaceUp {
			continue
		}
		score += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}
	return score
}

// IsSoft returns true if the hand counts an ace as 11
func (h *Hand) IsSoft() bool {
	score, aces := 0, 0
	for _, c := range h.Cards {
		if !c.FaceUp {
			continue
		}
		score += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}
	return aces > 0
}

// IsNatural returns true for a two-card 21 dealt at round start
func (h *Hand) IsNatural() bool {
	return len(h.Cards) == 2 && h.Score() == 21 && !h.SplitAces
}

// hasHoleCard returns true while any card is still face down
func (h *Hand) hasHoleCard() bool {
	for _, c := range h.Cards {
		if !c.FaceUp {
			return true
		}
	}
	return false
}
