package internal

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// recordingPlatform counts the output calls made by Display.Draw
type recordingPlatform struct {
	clears   int
	presents int
	pixels   [][2]uint8
}

func (r *recordingPlatform) PollEvent() Event { return Event{} }
func (r *recordingPlatform) KeyboardState() [NumKeys]bool { return [NumKeys]bool{} }
func (r *recordingPlatform) DrawPixel(x, y uint8) { r.pixels = append(r.pixels, [2]uint8{x, y}) }
func (r *recordingPlatform) Clear() { r.clears++ }
func (r *recordingPlatform) Present() { r.presents++ }
func (r *recordingPlatform) Beep(bool) {}

func TestDisplaySetPixel(t *testing.T) {
	d := NewDisplay()
	assert.True(t, d.ConsumeDirty())

	assert.False(t, d.SetPixel(3, 4, true))
	assert.True(t, d.Pixel(3, 4))
	assert.True(t, d.ConsumeDirty())

	// an unset sprite bit changes nothing
	assert.False(t, d.SetPixel(3, 4, false))
	assert.True(t, d.Pixel(3, 4))
	assert.False(t, d.ConsumeDirty())

	assert.True(t, d.SetPixel(3, 4, true))
	assert.False(t, d.Pixel(3, 4))
	assert.True(t, d.ConsumeDirty())
}

func TestDisplayWrap(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		wx   int
		wy   int
	}{
		{"right edge", 66, 0, 2, 0},
		{"bottom edge", 0, 33, 0, 1},
		{"both", 64, 32, 0, 0},
		{"negative", -1, -1, 63, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDisplay()
			d.SetPixel(tt.x, tt.y, true)
			assert.True(t, d.Pixel(tt.wx, tt.wy))
		})
	}
}

func TestDisplayClear(t *testing.T) {
	d := NewDisplay()
	d.SetPixel(0, 0, true)
	d.ConsumeDirty()

	d.Clear()
	assert.False(t, d.Pixel(0, 0))
	assert.True(t, d.ConsumeDirty())
}

func TestDisplayDraw(t *testing.T) {
	d := NewDisplay()
	d.SetPixel(1, 2, true)
	d.SetPixel(63, 31, true)

	p := &recordingPlatform{}
	d.Draw(p)
	assert.Equal(t, 1, p.clears)
	assert.Equal(t, 1, p.presents)
	assert.Equal(t, 2, len(p.pixels))
	assert.Equal(t, [2]uint8{1, 2}, p.pixels[0])
	assert.Equal(t, [2]uint8{63, 31}, p.pixels[1])
}

func TestDisplayString(t *testing.T) {
	d := NewDisplay()
	d.SetPixel(0, 0, true)

	lines := strings.Split(strings.TrimSuffix(d.String(), "\n"), "\n")
	assert.Equal(t, ScreenHeight, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "█."))
	assert.Equal(t, strings.Repeat(".", ScreenWidth), lines[1])
}
