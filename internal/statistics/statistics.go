// Package statistics aggregates simulated round results into the usual
// sample statistics so house-edge estimates come with error bars.
package statistics

import (
	"fmt"
	"math"
)

// RoundResult represents the outcome of a single simulated round
type RoundResult struct {
	NetUnits   float64 // net win/loss in units of the base bet
	Hands      int     // player hands settled (>1 after splits)
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
}

// NewRoundResult builds a result from the raw per-round numbers
func NewRoundResult(netUnits float64, hands, wins, losses, pushes, blackjacks int) RoundResult {
	return RoundResult{
		NetUnits:   netUnits,
		Hands:      hands,
		Wins:       wins,
		Losses:     losses,
		Pushes:     pushes,
		Blackjacks: blackjacks,
	}
}

// Statistics tracks aggregate results across simulated rounds
type Statistics struct {
	Rounds     int
	HandsDealt int

	SumUnits  float64
	SumUnits2 float64 // sum of squares for variance

	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
}

// Add incorporates a round result
func (s *Statistics) Add(r RoundResult) {
	s.Rounds++
	s.HandsDealt += r.Hands
	s.SumUnits += r.NetUnits
	s.SumUnits2 += r.NetUnits * r.NetUnits
	s.Wins += r.Wins
	s.Losses += r.Losses
	s.Pushes += r.Pushes
	s.Blackjacks += r.Blackjacks
}

// Merge folds another accumulator into this one (for parallel workers)
func (s *Statistics) Merge(o *Statistics) {
	s.Rounds += o.Rounds
	s.HandsDealt += o.HandsDealt
	s.SumUnits += o.SumUnits
	s.SumUnits2 += o.SumUnits2
	s.Wins += o.Wins
	s.Losses += o.Losses
	s.Pushes += o.Pushes
	s.Blackjacks += o.Blackjacks
}

// Mean returns the mean net units per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumUnits / float64(s.Rounds)
}

// Variance returns the sample variance of net units per round
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumUnits2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Summary renders a human-readable report
func (s *Statistics) Summary() string {
	lo, hi := s.ConfidenceInterval95()
	return fmt.Sprintf(
		"rounds=%d hands=%d win=%d loss=%d push=%d blackjack=%d\n"+
			"net: %+.4f units/round (95%% CI %+.4f to %+.4f, σ=%.3f)",
		s.Rounds, s.HandsDealt, s.Wins, s.Losses, s.Pushes, s.Blackjacks,
		s.Mean(), lo, hi, s.StdDev(),
	)
}
