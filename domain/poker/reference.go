package poker

import (
	"fmt"

	ref "github.com/paulhankin/poker"
)

// Suit order used by the reference evaluator.
var referenceSuits = map[byte]uint8{
	Club:    0,
	Diamond: 1,
	Heart:   2,
	Spade:   3,
}

// ReferenceCard converts c to the card type of github.com/paulhankin/poker,
// which numbers ranks 1 (ace) through 13 (king).
func (c Card) ReferenceCard() (ref.Card, error) {
	suit, ok := referenceSuits[c.suit]
	if !ok {
		var zero ref.Card
		return zero, fmt.Errorf("%w: %#v", ErrInvalidCard, c)
	}
	rank := c.value
	if rank == 14 {
		rank = 1
	}
	return ref.MakeCard(ref.Suit(suit), ref.Rank(rank))
}

// ReferenceCards converts the hand, preserving input order.
func (h Hand) ReferenceCards() ([HandSize]ref.Card, error) {
	var cards [HandSize]ref.Card
	for i, c := range h.cards {
		rc, err := c.ReferenceCard()
		if err != nil {
			return [HandSize]ref.Card{}, fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		cards[i] = rc
	}
	return cards, nil
}

// Strength scores the hand with the reference evaluator. Higher is better;
// unlike Evaluate it breaks ties inside a category.
func (h Hand) Strength() (int16, error) {
	cards, err := h.ReferenceCards()
	if err != nil {
		return 0, err
	}
	return ref.Eval5(&cards), nil
}

// Describe returns the reference evaluator's description of the hand,
// e.g. which pair or which straight it holds.
func (h Hand) Describe() (string, error) {
	cards, err := h.ReferenceCards()
	if err != nil {
		return "", err
	}
	return ref.Describe(cards[:])
}
