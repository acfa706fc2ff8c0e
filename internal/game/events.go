package game

import (
	"time"

	"github.com/lox/drawpoker/poker"
)

// GameEvent represents anything the Engine announces during a round
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
	Round() string
}

type roundEvent struct {
	roundID   string
	timestamp time.Time
}

func newRoundEvent(roundID string, at time.Time) roundEvent {
	return roundEvent{roundID: roundID, timestamp: at}
}

func (e roundEvent) Timestamp() time.Time { return e.timestamp }
func (e roundEvent) Round() string        { return e.roundID }

// NewDealEvent is published before any cards are dealt
type NewDealEvent struct {
	roundEvent
	Number int
}

func (e NewDealEvent) EventType() EventType { return EventTypeNewDeal }

// SelectDiscardsEvent asks subscribers to choose the cards a player throws
// away. Subscribers mark cards with Player.MarkDiscard before returning.
type SelectDiscardsEvent struct {
	roundEvent
	Player *Player
}

func (e SelectDiscardsEvent) EventType() EventType { return EventTypeSelectDiscards }

// ReplacementReceivedEvent is published once a player's hand is back to five cards
type ReplacementReceivedEvent struct {
	roundEvent
	Player    *Player
	Discarded []poker.Card
}

func (e ReplacementReceivedEvent) EventType() EventType { return EventTypeReplacementReceived }

// ShowAllHandsEvent is published when every hand has been drawn and evaluated
type ShowAllHandsEvent struct {
	roundEvent
	Players []*Player
}

func (e ShowAllHandsEvent) EventType() EventType { return EventTypeShowAllHands }

// WinnerEvent is published when one player wins the round outright
type WinnerEvent struct {
	roundEvent
	Player   *Player
	Category poker.Category
}

func (e WinnerEvent) EventType() EventType { return EventTypeWinner }

// DrawEvent is published when the best hands cannot be separated
type DrawEvent struct {
	roundEvent
	Players  []*Player
	Category poker.Category
}

func (e DrawEvent) EventType() EventType { return EventTypeDraw }

// RoundCompleteEvent is published after the discards are collected and the
// deck rebuilt. It marks the point where results are safe to persist.
type RoundCompleteEvent struct {
	roundEvent
	Result RoundResult
}

func (e RoundCompleteEvent) EventType() EventType { return EventTypeRoundComplete }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// SubscriberFunc adapts a function to EventSubscriber
type SubscriberFunc func(event GameEvent)

// OnEvent calls f(event)
func (f SubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus delivers events synchronously, in subscription order. Publish
// returns only after every subscriber has handled the event.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events. Function
// subscribers cannot be compared and are never removed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if _, ok := subscriber.(SubscriberFunc); ok {
		return
	}
	for i, sub := range bus.subscribers {
		if _, ok := sub.(SubscriberFunc); ok {
			continue
		}
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
