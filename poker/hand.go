package poker

import "sort"

// HandSize is the number of cards held in five-card draw.
const HandSize = 5

// Hand is the set of cards held by one player.
type Hand []Card

// Sort orders the hand for presentation: ascending rank, then suit.
func (h Hand) Sort() {
	sort.SliceStable(h, func(i, j int) bool {
		if h[i].Rank != h[j].Rank {
			return h[i].Rank < h[j].Rank
		}
		return h[i].Suit < h[j].Suit
	})
}

// Contains reports whether the hand holds the card.
func (h Hand) Contains(c Card) bool {
	return h.IndexOf(c) >= 0
}

// IndexOf returns the position of the card in the hand, or -1.
func (h Hand) IndexOf(c Card) int {
	for i, held := range h {
		if held == c {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy of the hand.
func (h Hand) Clone() Hand {
	out := make(Hand, len(h))
	copy(out, h)
	return out
}

// String renders the hand as space separated cards
func (h Hand) String() string {
	return FormatCards(h)
}
