package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. Suits only break ties between cards of equal rank.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in a standard deck
const NumSuits = 4

var suitNames = [NumSuits]string{"clubs", "diamonds", "hearts", "spades"}

// String returns the symbol for a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Name returns the lower-case suit name, e.g. "hearts"
func (s Suit) Name() string {
	if !s.Valid() {
		return "unknown"
	}
	return suitNames[s]
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// Rank represents a card rank, ordered two (lowest) to ace (highest)
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of ranks in a standard deck
const NumRanks = 13

var rankNames = [NumRanks]string{
	"two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "jack", "queen", "king", "ace",
}

const rankChars = "23456789TJQKA"

// String returns the single character form of a rank
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rankChars[r])
}

// Name returns the lower-case rank name, e.g. "queen"
func (r Rank) Name() string {
	if !r.Valid() {
		return "unknown"
	}
	return rankNames[r]
}

// Valid reports whether r is one of the thirteen ranks
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card, rejecting out of range ranks and suits
func NewCard(rank Rank, suit Suit) (Card, error) {
	c := Card{Rank: rank, Suit: suit}
	if !c.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d, suit %d", ErrInvalidCard, rank, suit)
	}
	return c, nil
}

// ParseCard builds a card from rank and suit names such as ("ace", "Spades")
func ParseCard(rank, suit string) (Card, error) {
	r, err := ParseRank(rank)
	if err != nil {
		return Card{}, err
	}
	s, err := ParseSuit(suit)
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: r, Suit: s}, nil
}

// String returns the short form of a card (e.g., "A♠")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Name returns the long form of a card (e.g., "ace of spades")
func (c Card) Name() string {
	return c.Rank.Name() + " of " + c.Suit.Name()
}

// Valid reports whether both rank and suit are in range
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// Compare orders cards by rank, then suit. It returns -1, 0 or 1.
func (c Card) Compare(other Card) int {
	switch {
	case c.Rank > other.Rank:
		return 1
	case c.Rank < other.Rank:
		return -1
	case c.Suit > other.Suit:
		return 1
	case c.Suit < other.Suit:
		return -1
	default:
		return 0
	}
}

// IsSuit reports whether s names a suit, ignoring case
func IsSuit(s string) bool {
	_, err := ParseSuit(s)
	return err == nil
}

// IsRank reports whether s names a rank, ignoring case
func IsRank(s string) bool {
	_, err := ParseRank(s)
	return err == nil
}

// IsCard reports whether c holds a valid rank and suit
func IsCard(c Card) bool {
	return c.Valid()
}

// ParseSuit converts a suit name to a Suit, ignoring case
func ParseSuit(s string) (Suit, error) {
	name := strings.ToLower(s)
	for i, n := range suitNames {
		if n == name {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, s)
}

// ParseRank converts a rank name to a Rank, ignoring case
func ParseRank(s string) (Rank, error) {
	name := strings.ToLower(s)
	for i, n := range rankNames {
		if n == name {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, s)
}

// IsHigherThan reports whether a outranks b. Rank decides first; on equal rank
// the higher suit wins. Equal cards are not higher than each other.
func IsHigherThan(a, b Card) (bool, error) {
	if err := validatePair(a, b); err != nil {
		return false, err
	}
	return a.Compare(b) > 0, nil
}

// IsLowerThan reports whether a is below b: not higher and not the same card.
func IsLowerThan(a, b Card) (bool, error) {
	higher, err := IsHigherThan(a, b)
	if err != nil {
		return false, err
	}
	return !higher && a != b, nil
}

func validatePair(a, b Card) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %+v", ErrInvalidCard, a)
	}
	if !b.Valid() {
		return fmt.Errorf("%w: %+v", ErrInvalidCard, b)
	}
	return nil
}
