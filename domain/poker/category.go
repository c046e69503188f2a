package poker

import "fmt"

// Category is the class a five card hand falls into. Higher values are
// stronger hands.
type Category uint8

const (
	HighCard Category = iota + 1
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

var categoryLabels = map[Category]string{
	HighCard:      "high_card",
	Pair:          "pair",
	TwoPair:       "two_pair",
	ThreeOfAKind:  "three_of_a_kind",
	Straight:      "straight",
	Flush:         "flush",
	FullHouse:     "full_house",
	FourOfAKind:   "four_of_a_kind",
	StraightFlush: "straight_flush",
	RoyalFlush:    "royal_flush",
}

var categoryTitles = map[Category]string{
	HighCard:      "High card",
	Pair:          "Pair",
	TwoPair:       "Two pair",
	ThreeOfAKind:  "Three of a kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full house",
	FourOfAKind:   "Four of a kind",
	StraightFlush: "Straight flush",
	RoyalFlush:    "Royal flush",
}

// Categories returns every category in evaluation order, strongest first.
func Categories() []Category {
	return []Category{
		RoyalFlush,
		StraightFlush,
		FourOfAKind,
		FullHouse,
		Flush,
		Straight,
		ThreeOfAKind,
		TwoPair,
		Pair,
		HighCard,
	}
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(label string) (Category, error) {
	for c, l := range categoryLabels {
		if l == label {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown hand category %q", label)
}

// String returns the snake_case label, e.g. "full_house".
func (c Category) String() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Title returns a label suitable for people, e.g. "Full house".
func (c Category) Title() string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}
	return c.String()
}

func (c Category) MarshalText() ([]byte, error) {
	if _, ok := categoryLabels[c]; !ok {
		return nil, fmt.Errorf("unknown hand category %d", uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
