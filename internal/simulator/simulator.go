// Package simulator plays automated blackjack rounds against the engine
// using a fixed basic-strategy policy. It exists to probe the house edge
// and to exercise the full state machine at volume.
package simulator

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds  int
	Bet     int
	Seed    int64
	Workers int
	Logger  *log.Logger
}

// Simulator runs blackjack round simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Bet <= 0 {
		config.Bet = 100
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run executes the simulation across parallel workers and returns the
// merged statistics. Each round gets an independent deterministic seed so
// results are reproducible regardless of worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	results := make([]*statistics.Statistics, s.config.Workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < s.config.Workers; w++ {
		g.Go(func() error {
			stats := &statistics.Statistics{}
			results[w] = stats
			for round := w; round < s.config.Rounds; round += s.config.Workers {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				result, err := s.playRound(s.config.Seed + int64(round))
				if err != nil {
					return fmt.Errorf("round %d: %w", round+1, err)
				}
				stats.Add(result)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &statistics.Statistics{}
	for _, r := range results {
		merged.Merge(r)
	}
	s.config.Logger.Info("simulation complete",
		"rounds", merged.Rounds, "mean_units", fmt.Sprintf("%+.4f", merged.Mean()))
	return merged, nil
}

// playRound runs one full round on a fresh table with a seeded shoe
func (s *Simulator) playRound(seed int64) (statistics.RoundResult, error) {
	bet := s.config.Bet
	// Enough bankroll for re-splits and doubles on every hand
	table := game.NewTable(randutil.New(seed),
		game.WithBalance(bet*16),
		game.WithLogger(log.New(io.Discard)),
	)
	before := table.Balance()

	if err := table.PlaceBet(bet); err != nil {
		return statistics.RoundResult{}, err
	}
	if err := table.Deal(); err != nil {
		return statistics.RoundResult{}, err
	}

	// A round can't take anywhere near this many decisions; the guard
	// turns a policy bug into an error instead of a spin.
	for i := 0; i < 64 && table.Phase() == game.PhasePlayerTurn; i++ {
		if err := s.act(table); err != nil {
			return statistics.RoundResult{}, err
		}
	}
	if table.Phase() != game.PhaseRoundOver {
		return statistics.RoundResult{}, fmt.Errorf("round stuck in %s", table.Phase())
	}

	history := table.History()
	entry := history[0]
	wins, losses, pushes, blackjacks := 0, 0, 0, 0
	for _, h := range entry.PlayerHands {
		switch {
		case h.Outcome == string(game.OutcomeBlackjackWin):
			blackjacks++
			wins++
		case strings.HasPrefix(h.Outcome, "win"):
			wins++
		case h.Outcome == string(game.OutcomePush):
			pushes++
		default:
			losses++
		}
	}

	net := float64(table.Balance()-before) / float64(bet)
	return statistics.NewRoundResult(net, len(entry.PlayerHands), wins, losses, pushes, blackjacks), nil
}

// act applies one basic-strategy decision to the current hand
func (s *Simulator) act(table *game.Table) error {
	state := table.State()
	hand := state.Hands[state.CurrentHand]
	up := dealerUpcard(state)

	// Always split aces and eights
	if len(hand.Cards) == 2 && !hand.SplitAces &&
		hand.Cards[0].Value() == hand.Cards[1].Value() &&
		(hand.Cards[0].IsAce() || hand.Cards[0].Value() == 8) {
		if err := table.Split(); err == nil {
			return nil
		}
		// Can't afford the split; fall through to hit/stand
	}

	score := hand.Score
	soft := isSoft(hand)

	// Double hard 10 or 11 against a weak upcard
	if hand.CanDouble && len(hand.Cards) == 2 && !soft &&
		(score == 10 || score == 11) && up <= 9 {
		if err := table.DoubleDown(); err == nil {
			return nil
		}
	}

	switch {
	case soft && score < 18:
		return table.Hit()
	case !soft && score < 12:
		return table.Hit()
	case !soft && score < 17 && up >= 7:
		return table.Hit()
	default:
		return table.Stand()
	}
}

func dealerUpcard(state game.TableState) int {
	for _, c := range state.Dealer.Cards {
		if c.FaceUp {
			return c.Value()
		}
	}
	return 10
}

func isSoft(h game.HandView) bool {
	total, aces := 0, 0
	for _, c := range h.Cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return aces > 0
}
