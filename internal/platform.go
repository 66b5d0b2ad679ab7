package internal

// EventType is the kind of a platform event
type EventType int

// Platform event types
const (
	EventNone EventType = iota
	EventKeyPress
	EventQuit
)

// Event is returned by Platform.PollEvent once per loop iteration
type Event struct {
	Type EventType
	Key  uint8 // keypad key 0x0-0xF for EventKeyPress
}

// Platform is the windowing, input and audio backend the machine runs on
type Platform interface {
	// PollEvent returns the next pending event without blocking
	PollEvent() Event
	// KeyboardState returns which keypad keys are currently held
	KeyboardState() [NumKeys]bool
	// DrawPixel lights the pixel at (x, y) in the frame being built
	DrawPixel(x, y uint8)
	// Clear starts a new blank frame
	Clear()
	// Present shows the frame
	Present()
	// Beep turns the tone on or off
	Beep(active bool)
}
