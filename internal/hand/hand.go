// Package hand models five-card poker hands and classifies them into categories.
package hand

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/lox/handsim/internal/deck"
)

// Size is the number of cards in a hand
const Size = 5

// ErrInvalidHand is returned when a value is not five valid cards
var ErrInvalidHand = errors.New("invalid hand")

// Hand is an ordered sequence of five cards
type Hand []deck.Card

// New builds a hand from exactly five valid cards
func New(cards ...deck.Card) (Hand, error) {
	if !IsHand(cards) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHand, cards)
	}
	h := make(Hand, Size)
	copy(h, cards)
	return h, nil
}

// Parse builds a hand from shorthand notation such as "Th Jh Qh Kh Ah"
func Parse(s string) (Hand, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHand, err)
	}
	return New(cards...)
}

// MustParse parses a hand and panics on error (for tests)
func MustParse(s string) Hand {
	h, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

// IsHand reports whether cards holds exactly five valid cards.
// Duplicates are not rejected; a hand dealt from one deck cannot contain any.
func IsHand(cards []deck.Card) bool {
	if len(cards) != Size {
		return false
	}
	for _, c := range cards {
		if !c.Valid() {
			return false
		}
	}
	return true
}

// Valid reports whether h is a well formed hand
func (h Hand) Valid() bool {
	return IsHand(h)
}

// String returns the short form of the hand, e.g. "T♥ J♥ Q♥ K♥ A♥"
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Deal shuffles a fresh deck and returns its first five cards
func Deal(rng *rand.Rand) Hand {
	d, err := deck.Shuffle(deck.New(), rng)
	if err != nil {
		// deck.New always yields a valid deck
		panic(err)
	}
	h := make(Hand, Size)
	copy(h, d[:Size])
	return h
}

// HighCard returns the highest card of the hand by rank, then suit
func HighCard(h Hand) (deck.Card, error) {
	if !h.Valid() {
		return deck.Card{}, fmt.Errorf("%w: %d cards", ErrInvalidHand, len(h))
	}
	return highest(h), nil
}

// LowCard returns the lowest card of the hand by rank, then suit
func LowCard(h Hand) (deck.Card, error) {
	if !h.Valid() {
		return deck.Card{}, fmt.Errorf("%w: %d cards", ErrInvalidHand, len(h))
	}
	return lowest(h), nil
}

// highest folds over cards that are already known to be valid
func highest(cards []deck.Card) deck.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Compare(best) > 0 {
			best = c
		}
	}
	return best
}

func lowest(cards []deck.Card) deck.Card {
	low := cards[0]
	for _, c := range cards[1:] {
		if c.Compare(low) < 0 {
			low = c
		}
	}
	return low
}
