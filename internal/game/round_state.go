package game

// RoundState is a position in the round lifecycle
type RoundState int

const (
	AwaitingDeal RoundState = iota
	HandsDealt
	DiscardSelected
	HandsReplaced
	HandsRevealed
	Compared
)

// String returns the string representation of a round state
func (s RoundState) String() string {
	switch s {
	case AwaitingDeal:
		return "Awaiting Deal"
	case HandsDealt:
		return "Hands Dealt"
	case DiscardSelected:
		return "Discard Selected"
	case HandsReplaced:
		return "Hands Replaced"
	case HandsRevealed:
		return "Hands Revealed"
	case Compared:
		return "Compared"
	default:
		return "Unknown"
	}
}
