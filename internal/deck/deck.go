package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// Size is the number of cards in a complete deck
const Size = NumSuits * NumRanks

// Deck is an ordered sequence of cards
type Deck []Card

// New creates the canonical unshuffled 52-card deck, suit-major and rank-minor.
func New() Deck {
	d := make(Deck, 0, Size)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d = append(d, Card{Rank: rank, Suit: suit})
		}
	}
	return d
}

// IsDeck reports whether cards holds exactly 52 valid, pairwise distinct cards
func IsDeck(cards []Card) bool {
	if len(cards) != Size {
		return false
	}
	var seen [Size]bool
	for _, c := range cards {
		if !c.Valid() {
			return false
		}
		idx := index(c)
		if seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}

// Valid reports whether d is a complete deck
func (d Deck) Valid() bool {
	return IsDeck(d)
}

// Shuffle permutes d in place with a forward Fisher-Yates pass and returns it.
// A nil rng uses the global source.
func Shuffle(d Deck, rng *rand.Rand) (Deck, error) {
	if !IsDeck(d) {
		return nil, fmt.Errorf("%w: %d cards", ErrInvalidDeck, len(d))
	}

	n := len(d)
	for i := 0; i < n; i++ {
		var j int
		if rng != nil {
			j = i + rng.IntN(n-i)
		} else {
			j = i + rand.IntN(n-i)
		}
		d[i], d[j] = d[j], d[i]
	}
	return d, nil
}

// Shuffle permutes the deck in place
func (d Deck) Shuffle(rng *rand.Rand) error {
	_, err := Shuffle(d, rng)
	return err
}

// index maps a valid card to 0-51 in canonical deck order
func index(c Card) int {
	return int(c.Suit)*NumRanks + int(c.Rank)
}
