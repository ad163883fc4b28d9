package hand

// TotalHands is C(52,5), the number of distinct five-card hands
const TotalHands = 2598960

// exactCounts holds the number of distinct hands in each category under the
// standard resolver.
var exactCounts = [NumCategories]int{
	Bust:          1302540,
	Pair:          1098240,
	TwoPair:       123552,
	ThreeOfAKind:  54912,
	Straight:      10200,
	Flush:         5108,
	FullHouse:     3744,
	FourOfAKind:   624,
	StraightFlush: 36,
	RoyalFlush:    4,
}

// ExactCount returns how many of the TotalHands hands resolve to c under r
func ExactCount(c Category, r Resolver) int {
	if c < 0 || c >= NumCategories {
		return 0
	}
	if r == ResolverLegacy {
		switch c {
		case FourOfAKind:
			return 0
		case ThreeOfAKind:
			return exactCounts[ThreeOfAKind] + exactCounts[FourOfAKind]
		}
	}
	return exactCounts[c]
}

// ExactProbability returns the probability that a random hand resolves to c under r
func ExactProbability(c Category, r Resolver) float64 {
	return float64(ExactCount(c, r)) / TotalHands
}
