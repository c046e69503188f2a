package poker

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

var (
	// ErrInvalidHand is wrapped by every error returned from ParseHand.
	ErrInvalidHand   = errors.New("invalid hand")
	ErrCardCount     = fmt.Errorf("%w: hand must contain exactly %d cards", ErrInvalidHand, HandSize)
	ErrDuplicateCard = fmt.Errorf("%w: hand contains duplicate cards", ErrInvalidHand)
)

// ValueCount is one bucket of the rank histogram of a hand.
type ValueCount struct {
	Value uint8
	Count int
}

// Hand is an immutable set of five distinct cards. All aggregates used by
// Evaluate are computed once by ParseHand.
type Hand struct {
	cards        [HandSize]Card
	values       [HandSize]uint8
	suits        [HandSize]byte
	sortedValues [HandSize]uint8
	valueCounts  []ValueCount // count desc, then value desc
}

// ParseHand parses five whitespace separated card tokens, e.g.
// "AH KH QH JH TH". Any run of whitespace separates tokens.
func ParseHand(s string) (Hand, error) {
	tokens := strings.Fields(s)
	if len(tokens) != HandSize {
		return Hand{}, fmt.Errorf("%w, got %d", ErrCardCount, len(tokens))
	}

	seen := make(map[string]struct{}, HandSize)
	for _, token := range tokens {
		normalized := strings.ToUpper(token)
		if _, exists := seen[normalized]; exists {
			return Hand{}, fmt.Errorf("%w: %s in %q", ErrDuplicateCard, normalized, s)
		}
		seen[normalized] = struct{}{}
	}

	var h Hand
	for i, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return Hand{}, fmt.Errorf("%w: card %d: %w", ErrInvalidHand, i+1, err)
		}
		h.cards[i] = card
	}
	h.derive()
	return h, nil
}

func (h *Hand) derive() {
	counts := make(map[uint8]int, HandSize)
	for i, c := range h.cards {
		h.values[i] = c.value
		h.suits[i] = c.suit
		counts[c.value]++
	}

	h.sortedValues = h.values
	sort.Slice(h.sortedValues[:], func(i, j int) bool { return h.sortedValues[i] < h.sortedValues[j] })

	h.valueCounts = make([]ValueCount, 0, len(counts))
	for v, n := range counts {
		h.valueCounts = append(h.valueCounts, ValueCount{Value: v, Count: n})
	}
	sort.Slice(h.valueCounts, func(i, j int) bool {
		if h.valueCounts[i].Count == h.valueCounts[j].Count {
			return h.valueCounts[i].Value > h.valueCounts[j].Value
		}
		return h.valueCounts[i].Count > h.valueCounts[j].Count
	})
}

// Cards returns the cards in input order.
func (h Hand) Cards() []Card {
	return append([]Card(nil), h.cards[:]...)
}

// Values returns the card values in input order.
func (h Hand) Values() []uint8 {
	return append([]uint8(nil), h.values[:]...)
}

// Suits returns the suit symbols in input order.
func (h Hand) Suits() []byte {
	return append([]byte(nil), h.suits[:]...)
}

// SortedValues returns the card values in ascending order.
func (h Hand) SortedValues() []uint8 {
	return append([]uint8(nil), h.sortedValues[:]...)
}

// ValueCounts returns the rank histogram ordered by count, then value,
// both descending.
func (h Hand) ValueCounts() []ValueCount {
	return append([]ValueCount(nil), h.valueCounts...)
}

// String joins the canonical card forms with single spaces, in input order.
func (h Hand) String() string {
	parts := make([]string, 0, HandSize)
	for _, c := range h.cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

// Pretty is String with terminal suit glyphs.
func (h Hand) Pretty() string {
	parts := make([]string, 0, HandSize)
	for _, c := range h.cards {
		parts = append(parts, c.Pretty())
	}
	return strings.Join(parts, " ")
}
