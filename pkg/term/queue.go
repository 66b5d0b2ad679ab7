package term

import (
	"github.com/mnafees/chopper/internal"
)

// eventQueue hands input events from the reader goroutine to the run loop
type eventQueue struct {
	events chan internal.Event
	stop   chan struct{}
}

func newEventQueue(size int) *eventQueue {
	return &eventQueue{
		events: make(chan internal.Event, size),
		stop:   make(chan struct{}),
	}
}

// key queues a key press. It is dropped when the run loop is not keeping up.
func (q *eventQueue) key(key uint8) {
	select {
	case q.events <- internal.Event{Type: internal.EventKeyPress, Key: key}:
	default:
	}
}

// quit waits until the run loop takes the event or the queue is closed
func (q *eventQueue) quit() {
	select {
	case q.events <- internal.Event{Type: internal.EventQuit}:
	case <-q.stop:
	}
}

func (q *eventQueue) poll() internal.Event {
	select {
	case event := <-q.events:
		return event
	default:
		return internal.Event{Type: internal.EventNone}
	}
}

// close releases a blocked quit
func (q *eventQueue) close() {
	close(q.stop)
}
