package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/handsim/internal/deck"
	"github.com/lox/handsim/internal/hand"
	"github.com/lox/handsim/internal/simulator"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

// configureColor forces plain output when colour is disabled
func configureColor(enabled bool) {
	if !enabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// renderResult prints the probability table of a simulation run
func renderResult(out io.Writer, res *simulator.Result) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("category"),
		headerStyle.Render("count"),
		headerStyle.Render("probability"),
		headerStyle.Render("exact"))

	for _, c := range hand.Categories() {
		count := res.Tally.Count(c)
		exact := hand.ExactProbability(c, res.Resolver)
		if count == 0 && exact == 0 {
			continue
		}

		prob := "."
		if count > 0 {
			prob = fmt.Sprintf("%.6f", res.Probabilities[c])
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			categoryStyle.Render(c.String()),
			count,
			percentStyle.Render(prob),
			fmt.Sprintf("%.6f", exact))
	}
	w.Flush()

	fmt.Fprintf(out, "\n%d hands, %s resolver, denominator %d, sum %.4f, seed %d\n",
		res.Tally.Hands, res.Resolver, res.Denominator, res.Sum(), res.Seed)
	fmt.Fprintf(out, "%d workers in %v\n", res.Workers, res.Elapsed.Truncate(time.Millisecond))
}

// renderHands prints each hand with its category, marking the winners when
// more than one hand is shown.
func renderHands(out io.Writer, hands []hand.Hand) error {
	winners, err := bestHands(hands)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("hand"), headerStyle.Render("category"))
	for i, h := range hands {
		line := fmt.Sprintf("%s\t%s", handStyle.Render(formatCards(h)), categoryStyle.Render(hand.HighestRank(h).String()))
		if len(hands) > 1 && winners[i] {
			line += "\t" + winStyle.Render("wins")
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

// bestHands reports which hands share the best showdown strength
func bestHands(hands []hand.Hand) ([]bool, error) {
	winners := make([]bool, len(hands))
	if len(hands) == 0 {
		return winners, nil
	}

	best := 0
	for i := 1; i < len(hands); i++ {
		cmp, err := hand.Compare(hands[i], hands[best])
		if err != nil {
			return nil, err
		}
		if cmp > 0 {
			best = i
		}
	}
	for i, h := range hands {
		cmp, err := hand.Compare(h, hands[best])
		if err != nil {
			return nil, err
		}
		winners[i] = cmp == 0
	}
	return winners, nil
}

func formatCards(cards []deck.Card) string {
	var parts []string
	for _, card := range cards {
		parts = append(parts, card.String())
	}
	return strings.Join(parts, " ")
}
