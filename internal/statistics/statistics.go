package statistics

import (
	"fmt"
	"math"

	"github.com/lox/handsim/internal/hand"
)

// Tally counts how many dealt hands fell into each category
type Tally struct {
	Hands  int
	Counts [hand.NumCategories]int
}

// Add records one classified hand
func (t *Tally) Add(c hand.Category) {
	t.Hands++
	if c >= 0 && c < hand.NumCategories {
		t.Counts[c]++
	}
}

// Merge folds another worker's tally into t
func (t *Tally) Merge(other Tally) {
	t.Hands += other.Hands
	for i, n := range other.Counts {
		t.Counts[i] += n
	}
}

// Count returns the number of hands recorded for c
func (t *Tally) Count(c hand.Category) int {
	if c < 0 || c >= hand.NumCategories {
		return 0
	}
	return t.Counts[c]
}

// Frequency returns the observed share of hands in c
func (t *Tally) Frequency(c hand.Category) float64 {
	if t.Hands == 0 {
		return 0
	}
	return float64(t.Count(c)) / float64(t.Hands)
}

// Probabilities divides each category count by denominator. A denominator of
// zero or less uses the number of hands recorded. Only observed categories
// appear in the map.
func (t *Tally) Probabilities(denominator int) map[hand.Category]float64 {
	if denominator <= 0 {
		denominator = t.Hands
	}
	probs := make(map[hand.Category]float64, hand.NumCategories)
	if denominator == 0 {
		return probs
	}
	for i, n := range t.Counts {
		if n > 0 {
			probs[hand.Category(i)] = float64(n) / float64(denominator)
		}
	}
	return probs
}

// StdError returns the binomial standard error of the frequency of c
func (t *Tally) StdError(c hand.Category) float64 {
	if t.Hands == 0 {
		return 0
	}
	p := t.Frequency(c)
	return math.Sqrt(p * (1 - p) / float64(t.Hands))
}

// ConfidenceInterval95 returns the 95% normal-approximation interval for the frequency of c
func (t *Tally) ConfidenceInterval95(c hand.Category) (float64, float64) {
	p := t.Frequency(c)
	margin := 1.96 * t.StdError(c)
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// ZScore measures how many standard errors the observed frequency of c lies
// from an expected probability.
func (t *Tally) ZScore(c hand.Category, expected float64) float64 {
	if t.Hands == 0 || expected <= 0 || expected >= 1 {
		return 0
	}
	se := math.Sqrt(expected * (1 - expected) / float64(t.Hands))
	return (t.Frequency(c) - expected) / se
}

// Validate checks that category counts add up to the hands recorded
func (t *Tally) Validate() error {
	if t.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", t.Hands)
	}

	total := 0
	for i, n := range t.Counts {
		if n < 0 {
			return fmt.Errorf("negative count %d for %s", n, hand.Category(i))
		}
		total += n
	}
	if total != t.Hands {
		return fmt.Errorf("category total (%d) does not match hands count (%d)", total, t.Hands)
	}

	return nil
}
