package sim

import "fmt"

// EventKind identifies a gameplay event. The set is closed.
type EventKind int

const (
	// EventItemCollected fires when the player consumes an item.
	// Payload: Player.
	EventItemCollected EventKind = iota

	// EventPlayerHit fires when the player's box overlaps an enemy.
	// Payload: Player, Enemy.
	EventPlayerHit

	eventKindCount
)

func (k EventKind) String() string {
	switch k {
	case EventItemCollected:
		return "itemCollected"
	case EventPlayerHit:
		return "playerHit"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is the payload handed to listeners.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Player *Player
	Enemy  *Enemy // nil unless Kind == EventPlayerHit
}

// Listener reacts to an event. A non-nil error stops the dispatch.
type Listener func(Event) error

// EventBus maps each event kind to its ordered listener list.
type EventBus struct {
	listeners [eventKindCount][]Listener
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Register appends a listener for the given kind. Registering the same
// listener twice makes it run twice.
func (b *EventBus) Register(kind EventKind, l Listener) {
	if kind < 0 || kind >= eventKindCount {
		panic(fmt.Sprintf("sim: register unknown event kind %d", int(kind)))
	}
	b.listeners[kind] = append(b.listeners[kind], l)
}

// Fire calls every listener registered for ev.Kind in registration order.
// The first listener error aborts the remaining calls and is returned.
func (b *EventBus) Fire(ev Event) error {
	if ev.Kind < 0 || ev.Kind >= eventKindCount {
		panic(fmt.Sprintf("sim: fire unknown event kind %d", int(ev.Kind)))
	}
	for i, l := range b.listeners[ev.Kind] {
		if err := l(ev); err != nil {
			return fmt.Errorf("sim: %s listener %d: %w", ev.Kind, i, err)
		}
	}
	return nil
}

// Listeners returns the number of listeners registered for kind.
func (b *EventBus) Listeners(kind EventKind) int {
	if kind < 0 || kind >= eventKindCount {
		return 0
	}
	return len(b.listeners[kind])
}
