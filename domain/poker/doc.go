// Package poker classifies five card poker hands.
//
// # Core Types
//
// Card: a rank and suit parsed from a two character token such as "AH" or
// "td". Ranks are 2-9, T, J, Q, K, A (ace high, value 14); suits are H, S,
// D, C. Input case is ignored.
//
// Hand: five distinct cards parsed from a whitespace separated string. The
// values, suits, sorted values and rank histogram are computed once when the
// hand is parsed.
//
// Category: one of ten classes from RoyalFlush down to HighCard.
//
// # Evaluation
//
// Hand.Evaluate checks categories strongest first and returns the first
// that holds. The ace plays low only in A-2-3-4-5; Q-K-A-2-3 is not a
// straight.
//
// # Errors
//
// ParseCard failures wrap ErrInvalidCard. ParseHand failures wrap
// ErrInvalidHand; a bad card inside a hand wraps both, so errors.Is can
// tell it apart from ErrCardCount and ErrDuplicateCard.
//
// All values are immutable once built and safe for concurrent use.
package poker
