package game

// Outcome tags how a single hand settled against the dealer
type Outcome string

const (
	OutcomeBlackjackWin      Outcome = "blackjack_win"
	OutcomeLossDealerNatural Outcome = "loss_dealer_blackjack"
	// A split-ace hand losing to a dealer natural settles identically to
	// loss_dealer_blackjack; the distinct tag survives in history only.
	OutcomeLossDealerNaturalSplitAce Outcome = "loss_dealer_blackjack_vs_split_ace"
	OutcomeBusted                    Outcome = "busted"
	OutcomePush                      Outcome = "push"
	OutcomeWinDealerBusted           Outcome = "win_dealer_busted"
	OutcomeWin                       Outcome = "win"
	OutcomeWinSplitAce21             Outcome = "win_split_ace_21"
	OutcomeLoss                      Outcome = "loss"
)

// settle evaluates one player hand against the dealer's final score and
// returns the outcome tag plus the amount returned to the balance (stake
// included; 0 means the bet is forfeited). Naturals pay 3:2, ordinary
// wins pay 1:1, pushes return the stake.
func settle(h *Hand, dealerScore int, dealerNatural bool) (Outcome, int) {
	switch {
	case h.Status == StatusBlackjack:
		if dealerNatural {
			return OutcomePush, h.Bet
		}
		return OutcomeBlackjackWin, h.Bet + h.Bet*3/2

	case h.Status == StatusBusted:
		return OutcomeBusted, 0

	case dealerNatural:
		if h.SplitAces {
			return OutcomeLossDealerNaturalSplitAce, 0
		}
		return OutcomeLossDealerNatural, 0

	case dealerScore > 21:
		return OutcomeWinDealerBusted, h.Bet * 2

	case h.SplitAces && h.Score() == 21 && dealerScore != 21:
		return OutcomeWinSplitAce21, h.Bet * 2

	case h.Score() > dealerScore:
		return OutcomeWin, h.Bet * 2

	case h.Score() == dealerScore:
		return OutcomePush, h.Bet

	default:
		return OutcomeLoss, 0
	}
}

// finalStatus maps a settled outcome back onto the hand status recorded
// at round end.
func finalStatus(o Outcome) HandStatus {
	switch o {
	case OutcomeBlackjackWin:
		return StatusBlackjackWin
	case OutcomePush:
		return StatusPush
	case OutcomeBusted:
		return StatusBusted
	default:
		return StatusStood
	}
}
