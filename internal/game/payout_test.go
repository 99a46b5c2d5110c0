package game

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
)

func settledHand(status HandStatus, bet int, cards ...deck.Card) *Hand {
	h := newHand(bet)
	for _, c := range cards {
		h.addCard(c, true)
	}
	h.Status = status
	return h
}

func TestSettle(t *testing.T) {
	t.Parallel()
	nineteen := []deck.Card{deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Nine)}
	seventeen := []deck.Card{deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Seven)}

	tests := []struct {
		name          string
		hand          *Hand
		dealerScore   int
		dealerNatural bool
		wantOutcome   Outcome
		wantPayout    int
	}{
		{
			name:        "natural pays three to two",
			hand:        settledHand(StatusBlackjack, 100, deck.NewCard(deck.Spades, deck.Ace), deck.NewCard(deck.Hearts, deck.King)),
			dealerScore: 20,
			wantOutcome: OutcomeBlackjackWin,
			wantPayout:  250,
		},
		{
			name:          "natural against natural pushes",
			hand:          settledHand(StatusBlackjack, 100, deck.NewCard(deck.Spades, deck.Ace), deck.NewCard(deck.Hearts, deck.King)),
			dealerScore:   21,
			dealerNatural: true,
			wantOutcome:   OutcomePush,
			wantPayout:    100,
		},
		{
			name:        "bust forfeits even against a dealer bust",
			hand:        settledHand(StatusBusted, 100, nineteen...),
			dealerScore: 22,
			wantOutcome: OutcomeBusted,
			wantPayout:  0,
		},
		{
			name:          "dealer natural beats a stood hand",
			hand:          settledHand(StatusStood, 100, nineteen...),
			dealerScore:   21,
			dealerNatural: true,
			wantOutcome:   OutcomeLossDealerNatural,
			wantPayout:    0,
		},
		{
			name:        "dealer bust pays even money",
			hand:        settledHand(StatusStood, 100, nineteen...),
			dealerScore: 23,
			wantOutcome: OutcomeWinDealerBusted,
			wantPayout:  200,
		},
		{
			name:        "higher score wins even money",
			hand:        settledHand(StatusStood, 100, nineteen...),
			dealerScore: 18,
			wantOutcome: OutcomeWin,
			wantPayout:  200,
		},
		{
			name:        "equal scores push",
			hand:        settledHand(StatusStood, 100, seventeen...),
			dealerScore: 17,
			wantOutcome: OutcomePush,
			wantPayout:  100,
		},
		{
			name:        "lower score loses",
			hand:        settledHand(StatusStood, 100, seventeen...),
			dealerScore: 19,
			wantOutcome: OutcomeLoss,
			wantPayout:  0,
		},
		{
			name:        "odd bet natural rounds down",
			hand:        settledHand(StatusBlackjack, 25, deck.NewCard(deck.Spades, deck.Ace), deck.NewCard(deck.Hearts, deck.King)),
			dealerScore: 18,
			wantOutcome: OutcomeBlackjackWin,
			wantPayout:  62,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			outcome, payout := settle(tt.hand, tt.dealerScore, tt.dealerNatural)
			if outcome != tt.wantOutcome {
				t.Errorf("outcome = %s, want %s", outcome, tt.wantOutcome)
			}
			if payout != tt.wantPayout {
				t.Errorf("payout = %d, want %d", payout, tt.wantPayout)
			}
		})
	}
}

func TestSettleSplitAces(t *testing.T) {
	t.Parallel()
	twentyOne := settledHand(StatusStood, 100,
		deck.NewCard(deck.Spades, deck.Ace), deck.NewCard(deck.Hearts, deck.King))
	twentyOne.SplitAces = true

	outcome, payout := settle(twentyOne, 19, false)
	if outcome != OutcomeWinSplitAce21 || payout != 200 {
		t.Errorf("split ace 21 vs 19: got %s/%d, want %s/200", outcome, payout, OutcomeWinSplitAce21)
	}

	// The distinct tag does not apply against a dealer 21
	outcome, payout = settle(twentyOne, 21, false)
	if outcome != OutcomePush || payout != 100 {
		t.Errorf("split ace 21 vs 21: got %s/%d, want push/100", outcome, payout)
	}

	outcome, payout = settle(twentyOne, 21, true)
	if outcome != OutcomeLossDealerNaturalSplitAce || payout != 0 {
		t.Errorf("split ace vs dealer natural: got %s/%d, want %s/0",
			outcome, payout, OutcomeLossDealerNaturalSplitAce)
	}
}

func TestFinalStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		outcome Outcome
		want    HandStatus
	}{
		{OutcomeBlackjackWin, StatusBlackjackWin},
		{OutcomePush, StatusPush},
		{OutcomeBusted, StatusBusted},
		{OutcomeWin, StatusStood},
		{OutcomeLoss, StatusStood},
	}
	for _, tt := range tests {
		if got := finalStatus(tt.outcome); got != tt.want {
			t.Errorf("finalStatus(%s) = %s, want %s", tt.outcome, got, tt.want)
		}
	}
}
