package main

import (
	"fmt"
	"os"

	"github.com/lox/handsim/internal/hand"
	"github.com/lox/handsim/internal/randutil"
)

// DealCmd deals hands from freshly shuffled decks
type DealCmd struct {
	Count int    `short:"n" default:"1" help:"Number of hands to deal, each from its own deck"`
	Seed  *int64 `help:"Random seed for reproducible results"`
}

func (c *DealCmd) Run(globals *Globals) error {
	configureColor(!globals.NoColor)
	logger := setupLogger(os.Stderr, globals.Verbose)

	if c.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	}
	seed = randutil.Seed(seed)
	logger.Debug("Dealing", "count", c.Count, "seed", seed)

	return renderHands(os.Stdout, dealHands(c.Count, seed))
}

func dealHands(count int, seed int64) []hand.Hand {
	rng := randutil.New(seed)
	hands := make([]hand.Hand, count)
	for i := range hands {
		hands[i] = hand.Deal(rng)
	}
	return hands
}
