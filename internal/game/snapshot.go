package game

import "github.com/lox/blackjack/internal/deck"

// HandView is the render-ready view of one hand
type HandView struct {
	Cards     []deck.Card
	Score     int
	Bet       int
	Status    HandStatus
	SplitAces bool
	CanDouble bool
}

// DealerView is the render-ready view of the dealer's hand. Score covers
// face-up cards only while HoleDown is true.
type DealerView struct {
	Cards    []deck.Card
	Score    int
	HoleDown bool
}

// TableState is an immutable snapshot of the table for rendering. It is
// rebuilt after every mutation and carried on StateChangedEvent.
type TableState struct {
	Phase       Phase
	Balance     int
	Hands       []HandView
	Dealer      DealerView
	CurrentHand int
	Message     string
}

// snapshot builds a TableState from the live table
func (t *Table) snapshot() TableState {
	state := TableState{
		Phase:       t.phase,
		Balance:     t.balance,
		CurrentHand: t.current,
		Message:     t.message,
	}
	for _, h := range t.hands {
		cards := make([]deck.Card, len(h.Cards))
		copy(cards, h.Cards)
		state.Hands = append(state.Hands, HandView{
			Cards:     cards,
			Score:     h.Score(),
			Bet:       h.Bet,
			Status:    h.Status,
			SplitAces: h.SplitAces,
			CanDouble: h.CanDouble,
		})
	}
	if t.dealer != nil {
		cards := make([]deck.Card, len(t.dealer.Cards))
		copy(cards, t.dealer.Cards)
		state.Dealer = DealerView{
			Cards:    cards,
			Score:    t.dealer.Score(),
			HoleDown: t.dealer.hasHoleCard(),
		}
	}
	return state
}

// State returns the current table snapshot
func (t *Table) State() TableState {
	return t.snapshot()
}
