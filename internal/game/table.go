package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/deck"
)

// Phase represents the round state machine position
type Phase int

const (
	PhaseBetting Phase = iota
	PhaseDealing
	PhasePlayerTurn
	PhaseDealerReveal
	PhaseDealerTurn
	PhaseResolving
	PhaseRoundOver
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseBetting:
		return "betting"
	case PhaseDealing:
		return "dealing"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseDealerReveal:
		return "dealer_reveal"
	case PhaseDealerTurn:
		return "dealer_turn"
	case PhaseResolving:
		return "resolving"
	case PhaseRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

// StartingBalance is the bankroll granted to a fresh profile
const StartingBalance = 10000

// Saver persists the balance and round history after every mutation.
// Failures are reported to the table's logger and never block play.
type Saver interface {
	Save(balance int, history []HistoryEntry) error
}

// Table owns all round state: the shoe, the player's hands, the dealer
// hand and the balance. All mutation goes through its command methods;
// operations are synchronous and presentation pacing is the caller's
// concern.
type Table struct {
	shoe    *deck.Shoe
	balance int
	phase   Phase
	hands   []*Hand
	dealer  *Hand
	current int
	bet     int // pending bet between PlaceBet and Deal
	message string

	history *History
	bus     EventBus
	logger  *log.Logger
	clock   quartz.Clock
	saver   Saver
}

// TableOption configures a Table during creation
type TableOption func(*Table)

// WithBalance sets the starting balance
func WithBalance(balance int) TableOption {
	return func(t *Table) { t.balance = balance }
}

// WithShoe replaces the shoe, typically with a stacked one for tests
func WithShoe(shoe *deck.Shoe) TableOption {
	return func(t *Table) { t.shoe = shoe }
}

// WithClock injects the clock used for history timestamps
func WithClock(clock quartz.Clock) TableOption {
	return func(t *Table) { t.clock = clock }
}

// WithSaver attaches the persistence gateway
func WithSaver(saver Saver) TableOption {
	return func(t *Table) { t.saver = saver }
}

// WithHistory seeds the round history from a previous session
func WithHistory(entries []HistoryEntry) TableOption {
	return func(t *Table) { t.history = NewHistory(entries) }
}

// WithLogger sets the table logger
func WithLogger(logger *log.Logger) TableOption {
	return func(t *Table) { t.logger = logger }
}

// NewTable creates a table in the Betting phase. The RNG is required so
// shuffles are reproducible under test.
func NewTable(rng *rand.Rand, opts ...TableOption) *Table {
	if rng == nil {
		panic("rng is required for table creation")
	}
	t := &Table{
		balance: StartingBalance,
		phase:   PhaseBetting,
		history: NewHistory(nil),
		bus:     NewEventBus(),
		logger:  log.Default(),
		clock:   quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.shoe == nil {
		t.shoe = deck.NewShoe(rng)
	}
	return t
}

// EventBus returns the bus presentation layers subscribe to
func (t *Table) EventBus() EventBus { return t.bus }

// Balance returns the current bankroll
func (t *Table) Balance() int { return t.balance }

// Phase returns the current state machine phase
func (t *Table) Phase() Phase { return t.phase }

// CurrentHand returns the index of the hand awaiting action
func (t *Table) CurrentHand() int { return t.current }

// History returns the recorded rounds, newest first
func (t *Table) History() []HistoryEntry { return t.history.Entries() }

// PlaceBet deducts the stake and opens a new round. Valid from Betting or
// RoundOver; the previous round's hands are discarded.
func (t *Table) PlaceBet(amount int) error {
	if t.phase != PhaseBetting && t.phase != PhaseRoundOver {
		return fmt.Errorf("%w: cannot bet during %s", ErrInvalidCommand, t.phase)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: bet must be positive", ErrInvalidCommand)
	}
	if amount > t.balance {
		return fmt.Errorf("%w: bet %d exceeds balance %d", ErrInsufficientFunds, amount, t.balance)
	}

	t.balance -= amount
	t.bet = amount
	t.hands = nil
	t.dealer = nil
	t.current = 0
	t.phase = PhaseDealing
	t.message = fmt.Sprintf("Bet $%d placed. Dealing...", amount)
	t.persist()
	t.cue(CueClick, "bet")
	t.emitState()
	return nil
}

// Deal runs the initial two-round deal: player, dealer (hole card face
// down), player, dealer (face up). A natural two-card 21 short-circuits
// past the player turn straight to the dealer reveal.
func (t *Table) Deal() error {
	if t.phase != PhaseDealing {
		return fmt.Errorf("%w: cannot deal during %s", ErrInvalidCommand, t.phase)
	}

	t.hands = []*Hand{newHand(t.bet)}
	t.dealer = newHand(0)

	t.dealTo(t.hands[0], true)
	t.dealTo(t.dealer, false)
	t.dealTo(t.hands[0], true)
	t.dealTo(t.dealer, true)

	if t.hands[0].IsNatural() {
		t.hands[0].Status = StatusBlackjack
		t.message = "Blackjack!"
		t.dealerReveal()
		return nil
	}

	t.phase = PhasePlayerTurn
	t.message = "Your turn. Hit, stand, double or split?"
	t.emitState()
	return nil
}

// Hit draws one card into the current hand. Split-ace hands cannot hit.
func (t *Table) Hit() error {
	h, err := t.actingHand("hit")
	if err != nil {
		return err
	}
	if h.SplitAces {
		return fmt.Errorf("%w: split aces receive exactly one card", ErrInvalidCommand)
	}

	t.cue(CueClick, "hit")
	h.CanDouble = false
	t.dealTo(h, true)

	switch score := h.Score(); {
	case score > 21:
		h.Status = StatusBusted
		t.message = fmt.Sprintf("Hand %d busts with %d!", t.current+1, score)
		t.cue(CueLose, "bust")
		t.advance()
	case score == 21:
		h.Status = StatusStood
		t.message = fmt.Sprintf("Hand %d has 21.", t.current+1)
		t.advance()
	default:
		t.message = fmt.Sprintf("Hand %d has %d.", t.current+1, score)
		t.emitState()
	}
	return nil
}

// Stand finalizes the current hand and moves on
func (t *Table) Stand() error {
	h, err := t.actingHand("stand")
	if err != nil {
		return err
	}

	t.cue(CueClick, "stand")
	h.Status = StatusStood
	h.CanDouble = false
	t.message = fmt.Sprintf("Hand %d stands on %d.", t.current+1, h.Score())
	t.advance()
	return nil
}

// DoubleDown doubles the stake on a two-card hand, draws exactly one card
// and finalizes the hand.
func (t *Table) DoubleDown() error {
	h, err := t.actingHand("double")
	if err != nil {
		return err
	}
	if !h.CanDouble || len(h.Cards) != 2 || h.SplitAces {
		return fmt.Errorf("%w: cannot double this hand", ErrInvalidCommand)
	}
	if t.balance < h.Bet {
		return fmt.Errorf("%w: need %d to double", ErrInsufficientFunds, h.Bet)
	}

	t.cue(CueClick, "double")
	t.balance -= h.Bet
	h.Bet *= 2
	h.CanDouble = false
	t.persist()
	t.dealTo(h, true)

	if score := h.Score(); score > 21 {
		h.Status = StatusBusted
		t.message = fmt.Sprintf("Hand %d doubled and busts with %d!", t.current+1, score)
		t.cue(CueLose, "bust")
	} else {
		h.Status = StatusStood
		t.message = fmt.Sprintf("Hand %d doubled, stands on %d.", t.current+1, score)
	}
	t.advance()
	return nil
}

// Split divides a matched pair into two hands, each staked at the original
// bet. Both hands receive their second card immediately. Split aces each
// take exactly one card and are forced to stand.
func (t *Table) Split() error {
	h, err := t.actingHand("split")
	if err != nil {
		return err
	}
	if len(h.Cards) != 2 || h.Cards[0].Value() != h.Cards[1].Value() || h.SplitAces {
		return fmt.Errorf("%w: cannot split this hand", ErrInvalidCommand)
	}
	if t.balance < h.Bet {
		return fmt.Errorf("%w: need %d to split", ErrInsufficientFunds, h.Bet)
	}

	t.cue(CueClick, "split")
	t.balance -= h.Bet
	t.persist()

	aces := h.Cards[0].IsAce()
	moved := h.Cards[1]
	h.Cards = h.Cards[:1]
	h.CanDouble = !aces
	h.SplitAces = aces

	split := newHand(h.Bet)
	split.CanDouble = !aces
	split.SplitAces = aces
	split.addCard(moved, true)

	// Insert the new hand immediately after the current one
	t.hands = append(t.hands, nil)
	copy(t.hands[t.current+2:], t.hands[t.current+1:])
	t.hands[t.current+1] = split

	t.dealTo(h, true)
	t.dealTo(split, true)

	if aces {
		h.Status = StatusStood
		split.Status = StatusStood
		t.message = "Split aces: one card each, both stand."
		t.advance()
		return nil
	}

	t.message = fmt.Sprintf("Hands split. Playing hand %d.", t.current+1)
	t.emitState()
	return nil
}

// ResetBalance restores the starting bankroll. Only valid between rounds.
func (t *Table) ResetBalance() error {
	if t.phase != PhaseBetting && t.phase != PhaseRoundOver {
		return fmt.Errorf("%w: cannot reset mid-round", ErrInvalidCommand)
	}
	t.cue(CueClick, "reset")
	t.balance = StartingBalance
	t.message = fmt.Sprintf("Balance reset to $%d.", StartingBalance)
	t.persist()
	t.emitState()
	return nil
}

// actingHand validates that a player command targets an actionable hand
func (t *Table) actingHand(cmd string) (*Hand, error) {
	if t.phase != PhasePlayerTurn {
		return nil, fmt.Errorf("%w: cannot %s during %s", ErrInvalidCommand, cmd, t.phase)
	}
	h := t.hands[t.current]
	if h.Status != StatusActive {
		return nil, fmt.Errorf("%w: hand %d is %s", ErrInvalidCommand, t.current+1, h.Status)
	}
	return h, nil
}

// dealTo draws from the shoe into a hand, surfacing reshuffles
func (t *Table) dealTo(h *Hand, faceUp bool) {
	card, reshuffled := t.shoe.Draw()
	if reshuffled {
		t.logger.Info("shoe exhausted, reshuffling fresh deck")
		t.cue(CueShuffle, "reshuffle")
		t.bus.Publish(ReshuffleEvent{Remaining: t.shoe.Remaining(), timestamp: t.clock.Now()})
	}
	h.addCard(card, faceUp)
	t.cue(CueDeal, "deal")
}

// advance moves to the next hand still awaiting action, or on to the
// dealer once every hand is finalized.
func (t *Table) advance() {
	for i := t.current + 1; i < len(t.hands); i++ {
		if t.hands[i].Status == StatusActive {
			t.current = i
			t.message = fmt.Sprintf("Playing hand %d.", i+1)
			t.emitState()
			return
		}
	}
	t.dealerReveal()
}

// dealerReveal flips the hole card and decides whether the dealer plays.
// With every player hand busted the house has already won; with a dealer
// natural there is nothing left to draw for.
func (t *Table) dealerReveal() {
	t.phase = PhaseDealerReveal
	t.dealer.reveal()
	t.cue(CueDeal, "reveal")
	t.emitState()

	contender := false
	for _, h := range t.hands {
		if h.Status == StatusStood || h.Status == StatusBlackjack {
			contender = true
			break
		}
	}
	if !contender || t.dealer.IsNatural() {
		t.resolve()
		return
	}
	if t.hands[0].Status == StatusBlackjack {
		// Natural round: dealer only checks for a matching natural
		t.resolve()
		return
	}
	t.dealerTurn()
}

// dealerTurn draws until 17 or better; the dealer stands on all 17s,
// soft included.
func (t *Table) dealerTurn() {
	t.phase = PhaseDealerTurn
	for t.dealer.Score() < 17 {
		t.dealTo(t.dealer, true)
		t.emitState()
	}
	t.resolve()
}

// resolve settles every hand against the dealer, credits payouts, records
// the round and parks the table in RoundOver.
func (t *Table) resolve() {
	t.phase = PhaseResolving
	dealerScore := t.dealer.Score()
	dealerNatural := t.dealer.IsNatural()

	summaries := make([]HandSummary, 0, len(t.hands))
	outcomes := make([]Outcome, 0, len(t.hands))
	for i, h := range t.hands {
		outcome, payout := settle(h, dealerScore, dealerNatural)
		t.balance += payout
		h.Status = finalStatus(outcome)
		outcomes = append(outcomes, outcome)
		summaries = append(summaries, HandSummary{
			Cards:   formatCards(h.Cards),
			Score:   h.Score(),
			Bet:     h.Bet,
			Outcome: string(outcome),
		})
		t.logger.Debug("hand settled",
			"hand", i+1, "outcome", outcome, "payout", payout, "score", h.Score())
		if payout > h.Bet {
			t.cue(CueWin, string(outcome))
		} else if payout == 0 {
			t.cue(CueLose, string(outcome))
		}
	}

	entry := HistoryEntry{
		Timestamp:   t.clock.Now(),
		PlayerHands: summaries,
		Dealer: DealerSummary{
			Cards: formatCards(t.dealer.Cards),
			Score: dealerScore,
		},
		Result: resultText(outcomes, dealerScore, dealerNatural),
	}
	t.history.Add(entry)
	t.persist()

	t.phase = PhaseRoundOver
	t.message = entry.Result
	t.bus.Publish(RoundEndedEvent{Entry: entry, timestamp: t.clock.Now()})
	t.emitState()
}

// resultText derives the convenience round summary. Per-hand outcomes are
// authoritative; with splits this is deliberately coarse.
func resultText(outcomes []Outcome, dealerScore int, dealerNatural bool) string {
	if len(outcomes) == 1 {
		switch outcomes[0] {
		case OutcomeBlackjackWin:
			return "Blackjack! Paid 3:2."
		case OutcomePush:
			if dealerNatural {
				return "Both have blackjack. Push."
			}
			return "Push."
		case OutcomeBusted:
			return "Busted."
		case OutcomeWinDealerBusted:
			return fmt.Sprintf("Dealer busts with %d. You win!", dealerScore)
		case OutcomeWin, OutcomeWinSplitAce21:
			return "You win!"
		case OutcomeLossDealerNatural:
			return "Dealer has blackjack."
		default:
			return "Dealer wins."
		}
	}

	won, pushed := false, true
	for _, o := range outcomes {
		switch o {
		case OutcomeBlackjackWin, OutcomeWin, OutcomeWinDealerBusted, OutcomeWinSplitAce21:
			won = true
			pushed = false
		case OutcomePush:
		default:
			pushed = false
		}
	}
	switch {
	case won:
		return "Won at least one hand."
	case pushed:
		return "Push across all hands."
	default:
		return "Lost this round."
	}
}

func formatCards(cards []deck.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

// cue publishes a sound cue tagged with its cause
func (t *Table) cue(cue SoundCue, cause string) {
	t.bus.Publish(SoundCueEvent{Cue: cue, Cause: cause, timestamp: t.clock.Now()})
}

// emitState publishes a fresh snapshot
func (t *Table) emitState() {
	t.bus.Publish(StateChangedEvent{State: t.snapshot(), timestamp: t.clock.Now()})
}

// persist saves balance and history; failures warn and play continues
func (t *Table) persist() {
	if t.saver == nil {
		return
	}
	if err := t.saver.Save(t.balance, t.history.Entries()); err != nil {
		t.logger.Warn("failed to save progress, continuing in memory", "error", err)
	}
}
