package hand

import (
	"fmt"

	"github.com/paulhankin/poker"

	"github.com/lox/handsim/internal/deck"
)

// Strength scores a hand with the paulhankin/poker evaluator. Higher scores
// win; kickers are taken into account, unlike Category.
func Strength(h Hand) (int16, error) {
	if !h.Valid() {
		return 0, fmt.Errorf("%w: %d cards", ErrInvalidHand, len(h))
	}

	var cards [Size]poker.Card
	for i, c := range h {
		pc, err := toEvalCard(c)
		if err != nil {
			return 0, err
		}
		cards[i] = pc
	}
	return poker.Eval5(&cards), nil
}

// Compare returns 1 if a beats b at showdown, -1 if b beats a and 0 on a split.
func Compare(a, b Hand) (int, error) {
	sa, err := Strength(a)
	if err != nil {
		return 0, err
	}
	sb, err := Strength(b)
	if err != nil {
		return 0, err
	}

	switch {
	case sa > sb:
		return 1, nil
	case sa < sb:
		return -1, nil
	default:
		return 0, nil
	}
}

// toEvalCard converts to the evaluator's encoding: suits clubs..spades as 0-3,
// ranks ace=1 through king=13.
func toEvalCard(c deck.Card) (poker.Card, error) {
	rank := poker.Rank(int(c.Rank) + 2)
	if c.Rank == deck.Ace {
		rank = poker.Rank(1)
	}
	card, err := poker.MakeCard(poker.Suit(c.Suit), rank)
	if err != nil {
		return card, fmt.Errorf("%w: %s: %w", deck.ErrInvalidCard, c.Name(), err)
	}
	return card, nil
}
