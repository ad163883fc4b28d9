package hand

import "fmt"

// Category is a poker hand class, ordered weakest to strongest
type Category int

const (
	Bust Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// NumCategories is the number of hand categories
const NumCategories = 10

var categoryNames = [NumCategories]string{
	"bust",
	"pair",
	"two pair",
	"three of a kind",
	"straight",
	"flush",
	"full house",
	"four of a kind",
	"straight flush",
	"royal flush",
}

// String returns the lower-case category label, e.g. "full house"
func (c Category) String() string {
	if c < 0 || c >= NumCategories {
		return "unknown"
	}
	return categoryNames[c]
}

// Categories returns all categories from strongest to weakest
func Categories() []Category {
	out := make([]Category, 0, NumCategories)
	for c := RoyalFlush; c >= Bust; c-- {
		out = append(out, c)
	}
	return out
}

// ParseCategory converts a label produced by String back into a Category
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown hand category %q", s)
}
