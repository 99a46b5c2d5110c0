package statistics

import (
	"math"
	"strings"
	"testing"
)

func TestMeanAndStdDev(t *testing.T) {
	t.Parallel()
	var s Statistics
	for _, units := range []float64{1, -1, 1, -1} {
		s.Add(NewRoundResult(units, 1, 0, 0, 0, 0))
	}
	if got := s.Mean(); got != 0 {
		t.Errorf("mean = %f, want 0", got)
	}
	// Sample variance of {1,-1,1,-1} is 4/3
	want := math.Sqrt(4.0 / 3.0)
	if got := s.StdDev(); math.Abs(got-want) > 1e-12 {
		t.Errorf("stddev = %f, want %f", got, want)
	}
}

func TestVarianceNeedsTwoSamples(t *testing.T) {
	t.Parallel()
	var s Statistics
	if s.Variance() != 0 || s.Mean() != 0 || s.StdError() != 0 {
		t.Error("empty accumulator should report zeros")
	}
	s.Add(NewRoundResult(2.5, 1, 1, 0, 0, 0))
	if s.Variance() != 0 {
		t.Error("single sample has no variance")
	}
	if s.Mean() != 2.5 {
		t.Errorf("mean = %f, want 2.5", s.Mean())
	}
}

func TestMergeMatchesSequentialAdd(t *testing.T) {
	t.Parallel()
	results := []RoundResult{
		NewRoundResult(1, 1, 1, 0, 0, 0),
		NewRoundResult(-1, 1, 0, 1, 0, 0),
		NewRoundResult(1.5, 1, 1, 0, 0, 1),
		NewRoundResult(0, 2, 1, 0, 1, 0),
		NewRoundResult(-2, 2, 0, 2, 0, 0),
	}

	var sequential Statistics
	for _, r := range results {
		sequential.Add(r)
	}

	var a, b, merged Statistics
	for i, r := range results {
		if i%2 == 0 {
			a.Add(r)
		} else {
			b.Add(r)
		}
	}
	merged.Merge(&a)
	merged.Merge(&b)

	if merged.Rounds != sequential.Rounds || merged.HandsDealt != sequential.HandsDealt {
		t.Errorf("counts diverge: %+v vs %+v", merged, sequential)
	}
	if math.Abs(merged.Mean()-sequential.Mean()) > 1e-12 {
		t.Errorf("mean diverges: %f vs %f", merged.Mean(), sequential.Mean())
	}
	if math.Abs(merged.Variance()-sequential.Variance()) > 1e-12 {
		t.Errorf("variance diverges: %f vs %f", merged.Variance(), sequential.Variance())
	}
	if merged.Wins != 4 || merged.Losses != 3 || merged.Pushes != 1 || merged.Blackjacks != 1 {
		t.Errorf("outcome tallies wrong: %+v", merged)
	}
}

func TestConfidenceIntervalBracketsMean(t *testing.T) {
	t.Parallel()
	var s Statistics
	for i := range 100 {
		s.Add(NewRoundResult(float64(i%3)-1, 1, 0, 0, 0, 0))
	}
	lo, hi := s.ConfidenceInterval95()
	mean := s.Mean()
	if lo > mean || hi < mean {
		t.Errorf("interval [%f, %f] should bracket mean %f", lo, hi, mean)
	}
	if lo >= hi {
		t.Errorf("interval [%f, %f] should be non-degenerate", lo, hi)
	}
}

func TestSummaryMentionsKeyFigures(t *testing.T) {
	t.Parallel()
	var s Statistics
	s.Add(NewRoundResult(1.5, 1, 1, 0, 0, 1))
	s.Add(NewRoundResult(-1, 1, 0, 1, 0, 0))
	out := s.Summary()
	for _, want := range []string{"rounds=2", "blackjack=1", "units/round", "95% CI"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
