package game

import "time"

// EventType represents a table event type with type safety
type EventType string

const (
	EventTypeStateChanged EventType = "state_changed"
	EventTypeSoundCue     EventType = "sound_cue"
	EventTypeReshuffle    EventType = "reshuffle"
	EventTypeRoundEnded   EventType = "round_ended"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event represents anything the table reports to the presentation layer
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// SoundCue identifies which sound the presentation should play
type SoundCue string

const (
	CueDeal    SoundCue = "deal"
	CueWin     SoundCue = "win"
	CueLose    SoundCue = "lose"
	CueShuffle SoundCue = "shuffle"
	CueClick   SoundCue = "click"
)

// StateChangedEvent is published after every table mutation so the
// presentation can re-render from the snapshot.
type StateChangedEvent struct {
	State     TableState
	timestamp time.Time
}

func (e StateChangedEvent) EventType() EventType { return EventTypeStateChanged }
func (e StateChangedEvent) Timestamp() time.Time { return e.timestamp }

// SoundCueEvent is published for discrete audible moments, tagged by the
// action that caused them.
type SoundCueEvent struct {
	Cue       SoundCue
	Cause     string
	timestamp time.Time
}

func (e SoundCueEvent) EventType() EventType { return EventTypeSoundCue }
func (e SoundCueEvent) Timestamp() time.Time { return e.timestamp }

// ReshuffleEvent is published when the shoe replenished mid-round. Purely
// informational: the draw that triggered it still succeeded.
type ReshuffleEvent struct {
	Remaining int
	timestamp time.Time
}

func (e ReshuffleEvent) EventType() EventType { return EventTypeReshuffle }
func (e ReshuffleEvent) Timestamp() time.Time { return e.timestamp }

// RoundEndedEvent carries the immutable record of a completed round
type RoundEndedEvent struct {
	Entry     HistoryEntry
	timestamp time.Time
}

func (e RoundEndedEvent) EventType() EventType { return EventTypeRoundEnded }
func (e RoundEndedEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to table events
type EventSubscriber interface {
	OnEvent(event Event)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event Event)
}

// SimpleEventBus is a basic synchronous in-memory event bus
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{subscribers: make([]EventSubscriber, 0)}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers in subscription order
func (bus *SimpleEventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
