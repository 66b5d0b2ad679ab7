// Package headless provides a platform without window or audio. It replays
// scripted events and captures the presented frames, for tests and batch runs.
package headless

import (
	"strings"

	"github.com/mnafees/chopper/internal"
)

var _ internal.Platform = (*Platform)(nil)

// Platform is a scripted, in-memory platform
type Platform struct {
	events []internal.Event
	keys   [internal.NumKeys]bool

	building [internal.ScreenWidth][internal.ScreenHeight]bool
	frame    [internal.ScreenWidth][internal.ScreenHeight]bool

	Presents int  // number of presented frames
	Beeping  bool // last beep state
	Beeps    int  // number of beep calls with active set

	quitWhenDrained bool
}

// New returns a platform that reports EventNone once its script is used up
func New(events ...internal.Event) *Platform {
	return &Platform{events: events}
}

// QuitWhenDrained makes the platform report EventQuit after the script is used up
func (p *Platform) QuitWhenDrained() *Platform {
	p.quitWhenDrained = true
	return p
}

// Push appends events to the script
func (p *Platform) Push(events ...internal.Event) {
	p.events = append(p.events, events...)
}

// SetKey sets the held state of a keypad key
func (p *Platform) SetKey(key uint8, down bool) {
	p.keys[key&0xF] = down
}

// PollEvent implements internal.Platform
func (p *Platform) PollEvent() internal.Event {
	if len(p.events) == 0 {
		if p.quitWhenDrained {
			return internal.Event{Type: internal.EventQuit}
		}
		return internal.Event{Type: internal.EventNone}
	}
	event := p.events[0]
	p.events = p.events[1:]
	return event
}

// KeyboardState implements internal.Platform
func (p *Platform) KeyboardState() [internal.NumKeys]bool {
	return p.keys
}

// DrawPixel implements internal.Platform
func (p *Platform) DrawPixel(x, y uint8) {
	p.building[int(x)%internal.ScreenWidth][int(y)%internal.ScreenHeight] = true
}

// Clear implements internal.Platform
func (p *Platform) Clear() {
	p.building = [internal.ScreenWidth][internal.ScreenHeight]bool{}
}

// Present implements internal.Platform
func (p *Platform) Present() {
	p.frame = p.building
	p.Presents++
}

// Beep implements internal.Platform
func (p *Platform) Beep(active bool) {
	p.Beeping = active
	if active {
		p.Beeps++
	}
}

// Pixel reports whether (x, y) was lit in the last presented frame
func (p *Platform) Pixel(x, y int) bool {
	return p.frame[x][y]
}

// LitPixels counts the lit pixels of the last presented frame
func (p *Platform) LitPixels() int {
	n := 0
	for x := range p.frame {
		for y := range p.frame[x] {
			if p.frame[x][y] {
				n++
			}
		}
	}
	return n
}

// Frame renders the last presented frame as text, one line per row
func (p *Platform) Frame() string {
	var sb strings.Builder
	for y := 0; y < internal.ScreenHeight; y++ {
		for x := 0; x < internal.ScreenWidth; x++ {
			if p.frame[x][y] {
				sb.WriteRune('█')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
