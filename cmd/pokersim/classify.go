package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lox/handsim/internal/deck"
	"github.com/lox/handsim/internal/hand"
)

// ClassifyCmd classifies hands given in shorthand notation
type ClassifyCmd struct {
	Hands []string `arg:"" help:"Hands in format 'Th Jh Qh Kh Ah' (quoted, one argument per hand)" required:"true"`
}

func (c *ClassifyCmd) Run(globals *Globals) error {
	configureColor(!globals.NoColor)

	hands, err := parseHands(c.Hands)
	if err != nil {
		return err
	}
	return renderHands(os.Stdout, hands)
}

func parseHands(handStrings []string) ([]hand.Hand, error) {
	var hands []hand.Hand

	for i, handStr := range handStrings {
		h, err := hand.Parse(strings.TrimSpace(handStr))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands = append(hands, h)
	}

	if err := validateNoDuplicates(hands); err != nil {
		return nil, err
	}
	return hands, nil
}

func validateNoDuplicates(hands []hand.Hand) error {
	seen := make(map[deck.Card]int)

	for i, h := range hands {
		for _, card := range h {
			if prev, ok := seen[card]; ok {
				if prev == i {
					return fmt.Errorf("duplicate card found in hand %d: %s", i+1, card)
				}
				return fmt.Errorf("card %s appears in hands %d and %d", card, prev+1, i+1)
			}
			seen[card] = i
		}
	}

	return nil
}
