package poker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Suit symbols as they appear in the text encoding.
const (
	Heart   = 'H'
	Spade   = 'S'
	Diamond = 'D'
	Club    = 'C'
)

// Rank symbols for ten, face cards and ace.
const (
	Ten   = 'T'
	Jack  = 'J'
	Queen = 'Q'
	King  = 'K'
	Ace   = 'A'
)

// ErrInvalidCard is wrapped by every error returned from ParseCard.
var ErrInvalidCard = errors.New("invalid card")

const rankSymbols = "23456789TJQKA"

const suitSymbols = "HSDC"

var rankValues = map[byte]uint8{
	'2': 2, '3': 3, '4': 4, '5': 5, '6': 6,
	'7': 7, '8': 8, '9': 9, Ten: 10,
	Jack: 11, Queen: 12, King: 13, Ace: 14,
}

// Card is a single playing card. The zero value is not a valid card;
// obtain cards through ParseCard.
type Card struct {
	rank  byte  // one of 23456789TJQKA
	suit  byte  // one of HSDC
	value uint8 // 2-14, ace high
}

// ParseCard parses a two character token such as "AH", "th" or "2D".
// Case is ignored; the returned card always holds upper-case symbols.
func ParseCard(token string) (Card, error) {
	symbols := []rune(token)
	if len(symbols) != 2 {
		return Card{}, fmt.Errorf("%w: must be a 2-character string, got %q", ErrInvalidCard, token)
	}

	rank := strings.ToUpper(string(symbols[0]))
	suit := strings.ToUpper(string(symbols[1]))

	if len(rank) != 1 || !strings.Contains(rankSymbols, rank) {
		return Card{}, fmt.Errorf("%w: invalid rank %q in %q, valid: %s", ErrInvalidCard, rank, token, rankSymbols)
	}
	if len(suit) != 1 || !strings.Contains(suitSymbols, suit) {
		return Card{}, fmt.Errorf("%w: invalid suit %q in %q, valid: %s", ErrInvalidCard, suit, token, suitSymbols)
	}

	return Card{
		rank:  rank[0],
		suit:  suit[0],
		value: rankValues[rank[0]],
	}, nil
}

// Ranks returns the valid rank symbols from lowest to highest.
func Ranks() []byte {
	return []byte(rankSymbols)
}

// Suits returns the valid suit symbols.
func Suits() []byte {
	return []byte(suitSymbols)
}

// RankValue reports the numeric value of a rank symbol (ace = 14).
func RankValue(rank byte) (uint8, bool) {
	v, ok := rankValues[rank]
	return v, ok
}

// Rank returns the upper-case rank symbol.
func (c Card) Rank() byte {
	return c.rank
}

// Suit returns the upper-case suit symbol.
func (c Card) Suit() byte {
	return c.suit
}

// Value returns the rank strength, 2 through 14.
func (c Card) Value() uint8 {
	return c.value
}

// String returns the canonical two character form, e.g. "AH".
func (c Card) String() string {
	return string([]byte{c.rank, c.suit})
}

// GoString is the debug form, surfacing the numeric value.
func (c Card) GoString() string {
	return fmt.Sprintf("Card(%s, value=%d)", c, c.value)
}

// Pretty renders the card for a terminal using suit glyphs
// (♥ and ♦ in red, ♠ and ♣ in black).
func (c Card) Pretty() string {
	var suit string
	switch c.suit {
	case Heart:
		suit = pterm.LightRed("♥")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Spade:
		suit = pterm.Black("♠")
	case Club:
		suit = pterm.Black("♣")
	default:
		suit = "?"
	}
	return string(c.rank) + suit
}
