package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSuit(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"hearts", true},
		{"Spades", true},
		{"CLUBS", true},
		{"diamonds", true},
		{"coins", false},
		{"", false},
		{"heart", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsSuit(tt.input), "input: %q", tt.input)
	}
}

func TestIsRank(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"ace", true},
		{"Ten", true},
		{"QUEEN", true},
		{"two", true},
		{"one", false},
		{"fifty", false},
		{"10", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsRank(tt.input), "input: %q", tt.input)
	}
}

func TestIsCard(t *testing.T) {
	assert.True(t, IsCard(Card{Rank: Ten, Suit: Clubs}))
	assert.True(t, IsCard(Card{Rank: Ace, Suit: Hearts}))
	assert.False(t, IsCard(Card{Rank: Ace, Suit: Suit(7)}))
	assert.False(t, IsCard(Card{Rank: Rank(-1), Suit: Spades}))
	assert.False(t, IsCard(Card{Rank: Rank(13), Suit: Spades}))
}

func TestParseCard(t *testing.T) {
	c, err := ParseCard("Ace", "spades")
	require.NoError(t, err)
	assert.Equal(t, Card{Rank: Ace, Suit: Spades}, c)
	assert.Equal(t, "ace of spades", c.Name())
	assert.Equal(t, "A♠", c.String())

	_, err = ParseCard("ace", "coins")
	assert.True(t, errors.Is(err, ErrInvalidCard))

	_, err = ParseCard("one", "hearts")
	assert.True(t, errors.Is(err, ErrInvalidCard))
}

func TestNewCard(t *testing.T) {
	c, err := NewCard(Queen, Diamonds)
	require.NoError(t, err)
	assert.Equal(t, "Q♦", c.String())

	_, err = NewCard(Rank(20), Diamonds)
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestIsHigherThan(t *testing.T) {
	fiveSpades := Card{Rank: Five, Suit: Spades}
	sixHearts := Card{Rank: Six, Suit: Hearts}
	fiveHearts := Card{Rank: Five, Suit: Hearts}

	tests := []struct {
		name   string
		a, b   Card
		higher bool
		lower  bool
	}{
		{"lower rank", fiveSpades, sixHearts, false, true},
		{"suit breaks tie", fiveSpades, fiveHearts, true, false},
		{"higher rank", sixHearts, fiveSpades, true, false},
		{"equal cards", fiveSpades, fiveSpades, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			higher, err := IsHigherThan(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.higher, higher)

			lower, err := IsLowerThan(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.lower, lower)
		})
	}
}

func TestIsHigherThanInvalid(t *testing.T) {
	valid := Card{Rank: Two, Suit: Clubs}
	invalid := Card{Rank: Two, Suit: Suit(9)}

	_, err := IsHigherThan(valid, invalid)
	assert.ErrorIs(t, err, ErrInvalidCard)

	_, err = IsLowerThan(invalid, valid)
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestOrderingIsTotal(t *testing.T) {
	d := New()
	for _, a := range d {
		for _, b := range d {
			ab, err := IsHigherThan(a, b)
			require.NoError(t, err)
			ba, err := IsHigherThan(b, a)
			require.NoError(t, err)
			lower, err := IsLowerThan(a, b)
			require.NoError(t, err)

			if a == b {
				assert.False(t, ab)
				assert.False(t, ba)
				assert.False(t, lower)
				continue
			}
			assert.NotEqual(t, ab, ba, "%s vs %s", a, b)
			assert.Equal(t, !ab, lower, "%s vs %s", a, b)
			assert.Equal(t, -a.Compare(b), b.Compare(a))
		}
	}
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "royal flush",
			input: "AsKsQsJsTs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
				{Suit: Spades, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Ten},
			},
		},
		{
			name:  "spaced",
			input: "4c 9s 3d",
			expected: []Card{
				{Suit: Clubs, Rank: Four},
				{Suit: Spades, Rank: Nine},
				{Suit: Diamonds, Rank: Three},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseCards(t *testing.T) {
	assert.Equal(t, []Card{{Rank: Ace, Suit: Spades}, {Rank: King, Suit: Spades}}, MustParseCards("AsKs"))
	assert.Panics(t, func() { MustParseCards("invalid") })
}
