package game

// EventType represents a round event type with type safety
type EventType string

// EventType constants for the round lifecycle, in the order they occur.
const (
	EventTypeNewDeal             EventType = "new_deal"
	EventTypeSelectDiscards      EventType = "select_discards"
	EventTypeReplacementReceived EventType = "replacement_received"
	EventTypeShowAllHands        EventType = "show_all_hands"
	EventTypeWinner              EventType = "winner"
	EventTypeDraw                EventType = "draw"
	EventTypeRoundComplete       EventType = "round_complete"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}
