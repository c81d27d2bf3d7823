package core

// Key identifies a keyboard key the game cares about.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Other"
	}
}

// Event is one input event delivered to the game. The concrete types below
// are the only implementations; consumers dispatch with a type switch.
type Event interface {
	isEvent()
}

// KeyEvent is a key-down event.
type KeyEvent struct {
	Key Key
}

// PointerMoveEvent reports the pointer position in screen cells.
type PointerMoveEvent struct {
	X, Y int
}

// PointerDownEvent is a primary-button press at the given screen cell.
type PointerDownEvent struct {
	X, Y int
}

// CloseEvent asks the game to end, like closing the window.
type CloseEvent struct{}

func (KeyEvent) isEvent()         {}
func (PointerMoveEvent) isEvent() {}
func (PointerDownEvent) isEvent() {}
func (CloseEvent) isEvent()       {}

// EventQueue buffers events between ticks, preserving arrival order.
type EventQueue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	events := q.events
	q.events = nil
	return events
}
