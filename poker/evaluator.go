package poker

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidHandSize is returned when a hand without exactly five cards is evaluated.
var ErrInvalidHandSize = errors.New("invalid hand size")

// Category enumerates the hand categories ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalStraightFlush
)

// Categories lists every category from weakest to strongest.
var Categories = [...]Category{
	HighCard, Pair, TwoPairs, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalStraightFlush,
}

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPairs:
		return "Two Pairs"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalStraightFlush:
		return "Royal Straight Flush"
	default:
		return "Unknown"
	}
}

// Evaluation is the category of a five-card hand together with the rank keys
// used to break ties between hands of the same category.
type Evaluation struct {
	Category Category
	Ranks    []Rank // all five ranks, highest first
	Pairs    []Rank // ranks held exactly twice, highest first
	Trips    []Rank // rank held exactly three times
	Quads    []Rank // rank held exactly four times
}

// String describes the evaluation, e.g. "Pair [A A 10 9 3]".
func (e Evaluation) String() string {
	return fmt.Sprintf("%s %v", e.Category, e.Ranks)
}

// Evaluate classifies exactly five cards. The input is not modified.
func Evaluate(cards []Card) (Evaluation, error) {
	if len(cards) != HandSize {
		return Evaluation{}, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidHandSize, len(cards), HandSize)
	}

	ranks := make([]Rank, HandSize)
	counts := make(map[Rank]int, HandSize)
	flush := true
	for i, c := range cards {
		ranks[i] = c.Rank
		counts[c.Rank]++
		if c.Suit != cards[0].Suit {
			flush = false
		}
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	eval := Evaluation{
		Ranks: ranks,
		Pairs: []Rank{},
		Trips: []Rank{},
		Quads: []Rank{},
	}
	// ranks is sorted, so walking it yields each group highest first
	for i := 0; i < len(ranks); i += counts[ranks[i]] {
		switch counts[ranks[i]] {
		case 2:
			eval.Pairs = append(eval.Pairs, ranks[i])
		case 3:
			eval.Trips = append(eval.Trips, ranks[i])
		case 4:
			eval.Quads = append(eval.Quads, ranks[i])
		}
	}

	straight := isStraight(ranks, len(counts))

	switch {
	case straight && flush && ranks[0] == Ace:
		eval.Category = RoyalStraightFlush
	case straight && flush:
		eval.Category = StraightFlush
	case len(eval.Quads) == 1:
		eval.Category = FourOfAKind
	case len(eval.Trips) == 1 && len(eval.Pairs) == 1:
		eval.Category = FullHouse
	case flush:
		eval.Category = Flush
	case straight:
		eval.Category = Straight
	case len(eval.Trips) == 1:
		eval.Category = ThreeOfAKind
	case len(eval.Pairs) == 2:
		eval.Category = TwoPairs
	case len(eval.Pairs) == 1:
		eval.Category = Pair
	default:
		eval.Category = HighCard
	}

	return eval, nil
}

// isStraight reports whether descending ranks form a run of five. Ace only
// plays high.
func isStraight(desc []Rank, distinct int) bool {
	return distinct == HandSize && desc[0]-desc[HandSize-1] == HandSize-1
}
