package poker

import "sort"

var (
	broadway  = [HandSize]uint8{10, 11, 12, 13, 14}
	wheel     = [HandSize]uint8{2, 3, 4, 5, 14}
	fullHouse = []int{2, 3}
)

// Evaluate classifies the hand. Categories are tried strongest first and
// the first one that holds is returned, so predicates that overlap (a full
// house also contains three of a kind) resolve to the stronger category.
func (h Hand) Evaluate() Category {
	switch {
	case h.IsRoyalFlush():
		return RoyalFlush
	case h.IsStraightFlush():
		return StraightFlush
	case h.IsFourOfAKind():
		return FourOfAKind
	case h.IsFullHouse():
		return FullHouse
	case h.IsFlush():
		return Flush
	case h.IsStraight():
		return Straight
	case h.IsThreeOfAKind():
		return ThreeOfAKind
	case h.IsTwoPair():
		return TwoPair
	case h.IsPair():
		return Pair
	}
	return HighCard
}

// EvaluateString parses s with ParseHand and classifies it.
func EvaluateString(s string) (Category, error) {
	h, err := ParseHand(s)
	if err != nil {
		return 0, err
	}
	return h.Evaluate(), nil
}

// IsRoyalFlush reports a ten to ace straight flush.
func (h Hand) IsRoyalFlush() bool {
	return h.IsStraightFlush() && h.sortedValues == broadway
}

// IsStraightFlush includes the ace-low straight flush.
func (h Hand) IsStraightFlush() bool {
	return h.IsStraight() && h.IsFlush()
}

func (h Hand) IsFourOfAKind() bool {
	return h.countOf(4) > 0
}

// IsFullHouse reports exactly one triple and one pair.
func (h Hand) IsFullHouse() bool {
	counts := make([]int, 0, len(h.valueCounts))
	for _, vc := range h.valueCounts {
		counts = append(counts, vc.Count)
	}
	sort.Ints(counts)
	if len(counts) != len(fullHouse) {
		return false
	}
	for i := range counts {
		if counts[i] != fullHouse[i] {
			return false
		}
	}
	return true
}

// IsFlush reports whether all five suits are equal. It is also true for
// straight flushes.
func (h Hand) IsFlush() bool {
	for _, s := range h.suits[1:] {
		if s != h.suits[0] {
			return false
		}
	}
	return true
}

// IsStraight reports five consecutive values. The ace counts low only in
// A-2-3-4-5; no other wrap-around is recognized.
func (h Hand) IsStraight() bool {
	if h.sortedValues == wheel {
		return true
	}
	for i := 1; i < HandSize; i++ {
		if h.sortedValues[i] != h.sortedValues[i-1]+1 {
			return false
		}
	}
	return true
}

// IsThreeOfAKind excludes full houses.
func (h Hand) IsThreeOfAKind() bool {
	return h.countOf(3) > 0 && !h.IsFullHouse()
}

func (h Hand) IsTwoPair() bool {
	return h.countOf(2) == 2
}

// IsPair reports exactly one pair. It is also true for a full house;
// Evaluate checks the full house first.
func (h Hand) IsPair() bool {
	return h.countOf(2) == 1
}

// countOf returns how many distinct values occur exactly n times.
func (h Hand) countOf(n int) int {
	matches := 0
	for _, vc := range h.valueCounts {
		if vc.Count == n {
			matches++
		}
	}
	return matches
}
