package poker

import (
	"sort"
	"testing"

	ref "github.com/paulhankin/poker"
)

func TestReferenceCard(t *testing.T) {
	ace, err := ParseCard("AS")
	if err != nil {
		t.Fatal(err)
	}
	rc, err := ace.ReferenceCard()
	if err != nil {
		t.Fatal(err)
	}
	expected, err := ref.MakeCard(ref.Suit(3), ref.Rank(1))
	if err != nil {
		t.Fatal(err)
	}
	if rc != expected {
		t.Fatalf("expected %v, got %v", expected, rc)
	}

	if _, err := (Card{}).ReferenceCard(); err == nil {
		t.Fatal("expected error converting the zero card")
	}
}

func TestDescribe(t *testing.T) {
	h, err := ParseHand("AH KH QH JH TH")
	if err != nil {
		t.Fatal(err)
	}
	desc, err := h.Describe()
	if err != nil {
		t.Fatal(err)
	}
	if desc == "" {
		t.Fatal("expected a description")
	}
}

// Category order must agree with the reference evaluator's strength order.
func TestCategoryAgreesWithReferenceStrength(t *testing.T) {
	type scored struct {
		hand     string
		category Category
		strength int16
	}
	hands := randomHands(newTestStream(), 3000)
	for _, tt := range goldenHands {
		hands = append(hands, tt.hand)
	}

	all := make([]scored, 0, len(hands))
	for _, s := range hands {
		h, err := ParseHand(s)
		if err != nil {
			t.Fatal(err)
		}
		strength, err := h.Strength()
		if err != nil {
			t.Fatal(err)
		}
		all = append(all, scored{hand: s, category: h.Evaluate(), strength: strength})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].strength < all[j].strength })

	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if cur.category < prev.category {
			t.Fatalf("%s (%s, %d) scores above %s (%s, %d)",
				cur.hand, cur.category, cur.strength, prev.hand, prev.category, prev.strength)
		}
	}
}
