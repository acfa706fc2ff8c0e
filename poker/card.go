package poker

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidCard is returned when a card string cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit. Suits carry no order.
type Suit uint8

const (
	Hearts Suit = iota
	Spades
	Clubs
	Diamonds
)

// Suits lists every suit in deck construction order.
var Suits = [...]Suit{Hearts, Spades, Clubs, Diamonds}

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Ace is always high.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank as printed on the card
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", uint8(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Card is an immutable (suit, rank) pair.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the card with the suit symbol first, e.g. "♥A" or "♣10".
func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// Valid reports whether the card is one of the 52 standard cards.
func (c Card) Valid() bool {
	return c.Suit <= Diamonds && c.Rank >= Two && c.Rank <= Ace
}

// ParseCard parses a single card such as "♥A", "♣10", "Ah" or "Tc".
func ParseCard(s string) (Card, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Card{}, err
	}
	if len(cards) != 1 {
		return Card{}, fmt.Errorf("%w: %q is not a single card", ErrInvalidCard, s)
	}
	return cards[0], nil
}

// ParseCards parses a run of cards. Two notations are accepted and may be mixed:
// suit symbol first ("♣4♥J♠Q♥K♥A") or rank first with a suit letter ("4c Jh Qs").
// Whitespace and commas between cards are ignored.
func ParseCards(s string) ([]Card, error) {
	runes := []rune(s)
	var cards []Card

	for i := 0; i < len(runes); {
		r := runes[i]
		if unicode.IsSpace(r) || r == ',' {
			i++
			continue
		}

		if suit, ok := suitFromSymbol(r); ok {
			rank, n, err := parseRank(runes[i+1:])
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
			}
			cards = append(cards, NewCard(suit, rank))
			i += 1 + n
			continue
		}

		rank, n, err := parseRank(runes[i:])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
		}
		i += n
		if i >= len(runes) {
			return nil, fmt.Errorf("%w: %q: missing suit after %s", ErrInvalidCard, s, rank)
		}
		suit, ok := suitFromSymbol(runes[i])
		if !ok {
			suit, ok = suitFromLetter(runes[i])
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q: unknown suit %q", ErrInvalidCard, s, runes[i])
		}
		cards = append(cards, NewCard(suit, rank))
		i++
	}

	return cards, nil
}

// FormatCards joins cards with single spaces
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func parseRank(runes []rune) (Rank, int, error) {
	if len(runes) == 0 {
		return 0, 0, errors.New("missing rank")
	}
	if runes[0] == '1' {
		if len(runes) > 1 && runes[1] == '0' {
			return Ten, 2, nil
		}
		return 0, 0, errors.New("rank 1 is not a card")
	}
	switch unicode.ToUpper(runes[0]) {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(runes[0] - '0'), 1, nil
	case 'T':
		return Ten, 1, nil
	case 'J':
		return Jack, 1, nil
	case 'Q':
		return Queen, 1, nil
	case 'K':
		return King, 1, nil
	case 'A':
		return Ace, 1, nil
	}
	return 0, 0, fmt.Errorf("unknown rank %q", runes[0])
}

func suitFromSymbol(r rune) (Suit, bool) {
	switch r {
	case '♥', '♡':
		return Hearts, true
	case '♠', '♤':
		return Spades, true
	case '♣', '♧':
		return Clubs, true
	case '♦', '♢':
		return Diamonds, true
	}
	return 0, false
}

func suitFromLetter(r rune) (Suit, bool) {
	switch unicode.ToLower(r) {
	case 'h':
		return Hearts, true
	case 's':
		return Spades, true
	case 'c':
		return Clubs, true
	case 'd':
		return Diamonds, true
	}
	return 0, false
}
