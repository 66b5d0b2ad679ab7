package sdl

import (
	"fmt"

	"github.com/mnafees/chopper/internal"
	"github.com/mnafees/chopper/pkg/keymap"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	screenColor = 0x1A237E
	spriteColor = 0x9FA8DA
)

var _ internal.Platform = (*IO)(nil)

// Beeper plays the buzzer tone
type Beeper interface {
	Beep(active bool)
}

// IO is the SDL window, keyboard and audio platform of the VM
type IO struct {
	window  *sdl.Window
	surface *sdl.Surface

	pixelSize int32
	beeper    Beeper // nil when muted or no audio device

	// Scancode of every keypad key, indexed by key
	scancodes [internal.NumKeys]sdl.Scancode
}

// NewIO returns a new I/O instance for the SDL frontend
func NewIO(pixelSize int, beeper Beeper) *IO {
	if pixelSize < 1 {
		pixelSize = 1
	}
	io := &IO{
		pixelSize: int32(pixelSize),
		beeper:    beeper,
	}
	for row := range keymap.Keypad {
		for col, key := range keymap.Keypad[row] {
			io.scancodes[key] = scancodeOf(keymap.QWERTY[row][col])
		}
	}
	return io
}

// SetupWindow initialises and sets up the main SDL window
func (io *IO) SetupWindow(title string) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("initialising SDL: %w", err)
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		internal.ScreenWidth*io.pixelSize, internal.ScreenHeight*io.pixelSize, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("creating window: %w", err)
	}
	io.window = window
	io.surface, err = window.GetSurface()
	if err != nil {
		io.Destroy()
		return fmt.Errorf("getting window surface: %w", err)
	}
	io.surface.FillRect(nil, screenColor)
	return nil
}

// Destroy should be called before quitting the application
func (io *IO) Destroy() {
	if io.window != nil {
		io.window.Destroy()
		io.window = nil
	}
	sdl.Quit()
}

// PollEvent implements internal.Platform. Only key presses of keypad keys
// are reported, key releases are picked up through KeyboardState.
func (io *IO) PollEvent() internal.Event {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.QuitEvent:
			return internal.Event{Type: internal.EventQuit}
		case *sdl.KeyboardEvent:
			if t.Type != sdl.KEYDOWN || t.Repeat != 0 {
				continue
			}
			if t.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				return internal.Event{Type: internal.EventQuit}
			}
			if key, ok := io.keymap(t.Keysym.Scancode); ok {
				return internal.Event{Type: internal.EventKeyPress, Key: key}
			}
		}
	}
	return internal.Event{Type: internal.EventNone}
}

// KeyboardState implements internal.Platform
func (io *IO) KeyboardState() [internal.NumKeys]bool {
	var keys [internal.NumKeys]bool
	state := sdl.GetKeyboardState()
	for key, code := range io.scancodes {
		if int(code) < len(state) && state[code] == 1 {
			keys[key] = true
		}
	}
	return keys
}

// Clear implements internal.Platform
func (io *IO) Clear() {
	io.surface.FillRect(nil, screenColor)
}

// DrawPixel implements internal.Platform
func (io *IO) DrawPixel(x, y uint8) {
	rect := &sdl.Rect{
		X: int32(x) * io.pixelSize,
		Y: int32(y) * io.pixelSize,
		W: io.pixelSize,
		H: io.pixelSize,
	}
	io.surface.FillRect(rect, spriteColor)
}

// Present implements internal.Platform
func (io *IO) Present() {
	io.window.UpdateSurface()
}

// Beep implements internal.Platform
func (io *IO) Beep(active bool) {
	if io.beeper != nil {
		io.beeper.Beep(active)
	}
}

// Maps a scancode back to the keypad key bound to it
func (io *IO) keymap(code sdl.Scancode) (uint8, bool) {
	for key, c := range io.scancodes {
		if c == code {
			return uint8(key), true
		}
	}
	return 0, false
}

func scancodeOf(r rune) sdl.Scancode {
	switch r {
	case '1':
		return sdl.SCANCODE_1
	case '2':
		return sdl.SCANCODE_2
	case '3':
		return sdl.SCANCODE_3
	case '4':
		return sdl.SCANCODE_4
	case 'q':
		return sdl.SCANCODE_Q
	case 'w':
		return sdl.SCANCODE_W
	case 'e':
		return sdl.SCANCODE_E
	case 'r':
		return sdl.SCANCODE_R
	case 'a':
		return sdl.SCANCODE_A
	case 's':
		return sdl.SCANCODE_S
	case 'd':
		return sdl.SCANCODE_D
	case 'f':
		return sdl.SCANCODE_F
	case 'z':
		return sdl.SCANCODE_Z
	case 'x':
		return sdl.SCANCODE_X
	case 'c':
		return sdl.SCANCODE_C
	case 'v':
		return sdl.SCANCODE_V
	default:
		return sdl.SCANCODE_UNKNOWN
	}
}
