package hand

import (
	"fmt"

	"github.com/lox/handsim/internal/deck"
)

// CountRanks returns how many cards of each rank the hand holds
func CountRanks(h Hand) map[deck.Rank]int {
	return countRanks(h)
}

func countRanks(cards []deck.Card) map[deck.Rank]int {
	counts := make(map[deck.Rank]int, len(cards))
	for _, c := range cards {
		counts[c.Rank]++
	}
	return counts
}

// ranksWithAtLeast counts the distinct ranks appearing n or more times
func ranksWithAtLeast(counts map[deck.Rank]int, n int) int {
	found := 0
	for _, count := range counts {
		if count >= n {
			found++
		}
	}
	return found
}

func hasPair(cards []deck.Card) bool {
	return ranksWithAtLeast(countRanks(cards), 2) >= 1
}

// ContainsPair reports whether any rank appears at least twice.
// Two pair, trips and quads all contain a pair.
func ContainsPair(h Hand) bool {
	return h.Valid() && hasPair(h)
}

// ContainsTwoPair reports whether at least two ranks appear twice or more
func ContainsTwoPair(h Hand) bool {
	return h.Valid() && ranksWithAtLeast(countRanks(h), 2) >= 2
}

// ContainsThreeOfAKind reports whether any rank appears at least three times
func ContainsThreeOfAKind(h Hand) bool {
	return h.Valid() && ranksWithAtLeast(countRanks(h), 3) >= 1
}

// ContainsFourOfAKind reports whether any rank appears four times
func ContainsFourOfAKind(h Hand) bool {
	return h.Valid() && ranksWithAtLeast(countRanks(h), 4) >= 1
}

// ContainsFullHouse reports whether the rank counts include both a three and a two
func ContainsFullHouse(h Hand) bool {
	if !h.Valid() {
		return false
	}
	var three, two bool
	for _, count := range countRanks(h) {
		switch count {
		case 3:
			three = true
		case 2:
			two = true
		}
	}
	return three && two
}

// ContainsFlush reports whether every card shares the first card's suit
func ContainsFlush(h Hand) bool {
	if !h.Valid() {
		return false
	}
	for _, c := range h[1:] {
		if c.Suit != h[0].Suit {
			return false
		}
	}
	return true
}

// ContainsStraight reports whether the hand is five consecutive ranks.
// Ace plays high, except in the wheel A-2-3-4-5 where it plays low.
func ContainsStraight(h Hand) bool {
	if !h.Valid() {
		return false
	}

	if !hasPair(h) && highest(h).Rank-lowest(h).Rank == 4 {
		return true
	}

	nonAces := make([]deck.Card, 0, Size)
	for _, c := range h {
		if c.Rank != deck.Ace {
			nonAces = append(nonAces, c)
		}
	}
	return len(nonAces) == Size-1 &&
		!hasPair(nonAces) &&
		highest(nonAces).Rank == deck.Five &&
		lowest(nonAces).Rank == deck.Two
}

// ContainsStraightFlush reports whether the hand is both a straight and a flush
func ContainsStraightFlush(h Hand) bool {
	return ContainsFlush(h) && ContainsStraight(h)
}

// ContainsRoyalFlush reports whether the hand is the ten-to-ace straight flush
func ContainsRoyalFlush(h Hand) bool {
	return ContainsStraightFlush(h) && lowest(h).Rank == deck.Ten
}

// HighestRank returns the strongest category the hand satisfies, or Bust.
func HighestRank(h Hand) Category {
	switch {
	case ContainsRoyalFlush(h):
		return RoyalFlush
	case ContainsStraightFlush(h):
		return StraightFlush
	case ContainsFourOfAKind(h):
		return FourOfAKind
	case ContainsFullHouse(h):
		return FullHouse
	case ContainsFlush(h):
		return Flush
	case ContainsStraight(h):
		return Straight
	case ContainsThreeOfAKind(h):
		return ThreeOfAKind
	case ContainsTwoPair(h):
		return TwoPair
	case ContainsPair(h):
		return Pair
	default:
		return Bust
	}
}

// LegacyHighestRank resolves categories without consulting four of a kind,
// so quads report as three of a kind. Use it to reproduce older tables that
// never listed four of a kind.
func LegacyHighestRank(h Hand) Category {
	switch {
	case ContainsRoyalFlush(h):
		return RoyalFlush
	case ContainsStraightFlush(h):
		return StraightFlush
	case ContainsFullHouse(h):
		return FullHouse
	case ContainsFlush(h):
		return Flush
	case ContainsStraight(h):
		return Straight
	case ContainsThreeOfAKind(h):
		return ThreeOfAKind
	case ContainsTwoPair(h):
		return TwoPair
	case ContainsPair(h):
		return Pair
	default:
		return Bust
	}
}

// Classify validates the hand and returns its category under the standard resolver
func Classify(h Hand) (Category, error) {
	if !h.Valid() {
		return Bust, fmt.Errorf("%w: %d cards", ErrInvalidHand, len(h))
	}
	return HighestRank(h), nil
}

// Resolver selects how a hand's category is chosen
type Resolver int

const (
	// ResolverStandard ranks every category, including four of a kind
	ResolverStandard Resolver = iota
	// ResolverLegacy skips four of a kind, see LegacyHighestRank
	ResolverLegacy
)

// Resolve returns the hand's category under r
func (r Resolver) Resolve(h Hand) Category {
	if r == ResolverLegacy {
		return LegacyHighestRank(h)
	}
	return HighestRank(h)
}

// String returns the resolver name used in config files and flags
func (r Resolver) String() string {
	if r == ResolverLegacy {
		return "legacy"
	}
	return "standard"
}

// ParseResolver converts "standard" or "legacy" into a Resolver
func ParseResolver(s string) (Resolver, error) {
	switch s {
	case "", "standard":
		return ResolverStandard, nil
	case "legacy":
		return ResolverLegacy, nil
	default:
		return ResolverStandard, fmt.Errorf("unknown resolver %q (want standard or legacy)", s)
	}
}
