package internal

import "strings"

// Display dimensions
const (
	ScreenWidth  = 64
	ScreenHeight = 32
)

// Display is the 64x32 monochrome framebuffer
type Display struct {
	pixels [ScreenWidth * ScreenHeight]bool
	dirty  bool
}

// NewDisplay returns a blank display. It starts dirty so the first frame gets presented.
func NewDisplay() *Display {
	return &Display{dirty: true}
}

// Clear turns every pixel off
func (d *Display) Clear() {
	d.pixels = [ScreenWidth * ScreenHeight]bool{}
	d.dirty = true
}

// SetPixel XORs p into the pixel at (x, y), wrapping both coordinates.
// It returns true when a lit pixel was turned off.
func (d *Display) SetPixel(x, y int, p bool) bool {
	addr := wrap(x, ScreenWidth) + wrap(y, ScreenHeight)*ScreenWidth
	if !p {
		return false
	}
	erased := d.pixels[addr]
	d.pixels[addr] = !erased
	d.dirty = true
	return erased
}

// Pixel returns the pixel at (x, y), wrapping both coordinates
func (d *Display) Pixel(x, y int) bool {
	return d.pixels[wrap(x, ScreenWidth)+wrap(y, ScreenHeight)*ScreenWidth]
}

// ConsumeDirty reports whether the display changed since the last call
func (d *Display) ConsumeDirty() bool {
	dirty := d.dirty
	d.dirty = false
	return dirty
}

// Draw presents the framebuffer through the platform
func (d *Display) Draw(p Platform) {
	p.Clear()
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			if d.pixels[x+y*ScreenWidth] {
				p.DrawPixel(uint8(x), uint8(y))
			}
		}
	}
	p.Present()
}

// String renders the framebuffer as text, one line per row
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow((ScreenWidth + 1) * ScreenHeight * 3)
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			if d.pixels[x+y*ScreenWidth] {
				sb.WriteRune('█')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}
