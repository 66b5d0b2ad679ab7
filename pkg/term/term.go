// Package term runs the VM inside a text terminal. Two framebuffer rows share
// one character cell through half block glyphs.
package term

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mnafees/chopper/internal"
	"github.com/mnafees/chopper/pkg/keymap"
	"github.com/nsf/termbox-go"
	"golang.org/x/term"
)

const (
	// Terminals only report key presses, a key counts as held for this long after its last press
	defaultHold = 150 * time.Millisecond

	cellRows = internal.ScreenHeight / 2
)

var _ internal.Platform = (*Terminal)(nil)

// Beeper plays the buzzer tone
type Beeper interface {
	Beep(active bool)
}

// Terminal is a termbox based platform
type Terminal struct {
	queue *eventQueue
	done  chan struct{}

	mutex sync.Mutex
	keys  *keyState

	frame  [internal.ScreenWidth][internal.ScreenHeight]bool
	beeper Beeper // nil when muted or no audio device
}

// New checks the terminal, switches it to full screen mode and starts reading input
func New(beeper Beeper) (*Terminal, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("stdout is not a terminal")
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return nil, fmt.Errorf("getting terminal size: %w", err)
	}
	if width < internal.ScreenWidth || height < cellRows {
		return nil, fmt.Errorf("terminal is %dx%d, at least %dx%d is needed",
			width, height, internal.ScreenWidth, cellRows)
	}

	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("initialising termbox: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()

	t := &Terminal{
		queue:  newEventQueue(64),
		done:   make(chan struct{}),
		keys:   newKeyState(defaultHold, time.Now),
		beeper: beeper,
	}
	go t.readEvents()
	return t, nil
}

// Close stops the input reader and restores the terminal
func (t *Terminal) Close() {
	t.queue.close()
	termbox.Interrupt()
	<-t.done
	termbox.Close()
}

// readEvents runs until Close interrupts it
func (t *Terminal) readEvents() {
	defer close(t.done)

	failed := false
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt:
			return
		case termbox.EventError:
			if !failed {
				failed = true
				t.queue.quit()
			}
		case termbox.EventKey:
			if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC {
				t.queue.quit()
				continue
			}
			key, ok := keymap.FromRune(ev.Ch)
			if !ok {
				continue
			}
			t.mutex.Lock()
			t.keys.press(key)
			t.mutex.Unlock()
			t.queue.key(key)
		}
	}
}

// PollEvent implements internal.Platform
func (t *Terminal) PollEvent() internal.Event {
	return t.queue.poll()
}

// KeyboardState implements internal.Platform
func (t *Terminal) KeyboardState() [internal.NumKeys]bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.keys.held()
}

// Clear implements internal.Platform
func (t *Terminal) Clear() {
	t.frame = [internal.ScreenWidth][internal.ScreenHeight]bool{}
}

// DrawPixel implements internal.Platform
func (t *Terminal) DrawPixel(x, y uint8) {
	t.frame[int(x)%internal.ScreenWidth][int(y)%internal.ScreenHeight] = true
}

// Present implements internal.Platform
func (t *Terminal) Present() {
	for row := 0; row < cellRows; row++ {
		for x := 0; x < internal.ScreenWidth; x++ {
			ch := cellRune(t.frame[x][row*2], t.frame[x][row*2+1])
			termbox.SetCell(x, row, ch, termbox.ColorWhite, termbox.ColorDefault)
		}
	}
	_ = termbox.Flush()
}

// Beep implements internal.Platform
func (t *Terminal) Beep(active bool) {
	if t.beeper != nil {
		t.beeper.Beep(active)
	}
}

// cellRune returns the glyph showing two vertically stacked pixels
func cellRune(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}
