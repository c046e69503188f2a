package poker

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

var suite suites.Suite = suites.MustFind("Ed25519")

func newTestStream() cipher.Stream {
	return suite.RandomStream()
}

// permutation returns a uniformly random ordering of 0..n-1.
func permutation(stream cipher.Stream, n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// randomHands deals n hands of five distinct cards from a full deck.
func randomHands(stream cipher.Stream, n int) []string {
	deck := make([]string, 0, 52)
	for _, r := range Ranks() {
		for _, s := range Suits() {
			deck = append(deck, string([]byte{r, s}))
		}
	}
	hands := make([]string, 0, n)
	for k := 0; k < n; k++ {
		perm := permutation(stream, len(deck))
		hand := ""
		for i := 0; i < HandSize; i++ {
			if i > 0 {
				hand += " "
			}
			hand += deck[perm[i]]
		}
		hands = append(hands, hand)
	}
	return hands
}
