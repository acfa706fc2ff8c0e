package bot

import (
	"cmp"
	"slices"

	"github.com/lox/drawpoker/poker"
)

// DrawBot plays textbook draw poker: stand on a straight or better, keep
// made sets and draw to the rest, chase four to a flush or an open-ended
// straight, and otherwise keep the two highest cards.
type DrawBot struct{}

func (DrawBot) Name() string { return Draw }

func (DrawBot) Discards(hand poker.Hand) []int {
	eval, err := poker.Evaluate(hand)
	if err != nil {
		return nil
	}

	switch eval.Category {
	case poker.HighCard:
		if idx, ok := flushDraw(hand); ok {
			return []int{idx}
		}
		if idx, ok := straightDraw(hand); ok {
			return []int{idx}
		}
		return lowest(hand, len(hand)-2)
	case poker.Pair, poker.TwoPairs, poker.ThreeOfAKind:
		keep := make(map[poker.Rank]bool)
		for _, r := range eval.Pairs {
			keep[r] = true
		}
		for _, r := range eval.Trips {
			keep[r] = true
		}
		var out []int
		for i, c := range hand {
			if !keep[c.Rank] {
				out = append(out, i)
			}
		}
		return out
	default:
		return nil
	}
}

// flushDraw returns the odd card out when four cards share a suit.
func flushDraw(hand poker.Hand) (int, bool) {
	counts := make(map[poker.Suit]int)
	for _, c := range hand {
		counts[c.Suit]++
	}
	for suit, n := range counts {
		if n != len(hand)-1 {
			continue
		}
		for i, c := range hand {
			if c.Suit != suit {
				return i, true
			}
		}
	}
	return 0, false
}

// straightDraw returns the odd card out when the other four are consecutive
// and open at both ends. The hand must hold five distinct ranks.
func straightDraw(hand poker.Hand) (int, bool) {
	for skip := range hand {
		lo, hi := poker.Ace, poker.Two
		for i, c := range hand {
			if i == skip {
				continue
			}
			lo, hi = min(lo, c.Rank), max(hi, c.Rank)
		}
		if hi-lo == poker.Rank(len(hand)-2) && lo > poker.Two && hi < poker.Ace {
			return skip, true
		}
	}
	return 0, false
}

// lowest returns the indexes of the n lowest ranked cards, in hand order.
func lowest(hand poker.Hand, n int) []int {
	idx := make([]int, len(hand))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(hand[a].Rank, hand[b].Rank)
	})
	idx = idx[:min(n, len(idx))]
	slices.Sort(idx)
	return idx
}
