package deck

import "errors"

var (
	// ErrInvalidCard is returned when a rank or suit is out of range or unknown
	ErrInvalidCard = errors.New("invalid card")

	// ErrInvalidDeck is returned when a deck is not 52 distinct valid cards
	ErrInvalidDeck = errors.New("invalid deck")
)
