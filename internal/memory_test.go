package internal

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemoryFont(t *testing.T) {
	mem := NewMemory()

	// glyph 0
	assert.Equal(t, uint8(0xF0), mem.Read(0x000))
	assert.Equal(t, uint8(0x90), mem.Read(0x001))
	// glyph F
	assert.Equal(t, uint8(0xF0), mem.Read(0x04B))
	assert.Equal(t, uint8(0x80), mem.Read(0x04F))
	assert.Equal(t, uint8(0), mem.Read(0x050))
}

func TestMemoryFontAddress(t *testing.T) {
	mem := NewMemory()
	assert.Equal(t, uint16(0x00), mem.FontAddress(0x0))
	assert.Equal(t, uint16(0x05), mem.FontAddress(0x1))
	assert.Equal(t, uint16(0x4B), mem.FontAddress(0xF))
	assert.Equal(t, uint16(0x05), mem.FontAddress(0x21))
}

func TestMemoryWrap(t *testing.T) {
	mem := NewMemory()

	mem.Write(0x1200, 0xAB)
	assert.Equal(t, uint8(0xAB), mem.Read(0x200))

	mem.Load(0xFFF, []byte{0x11, 0x22})
	assert.Equal(t, uint8(0x11), mem.Read(0xFFF))
	assert.Equal(t, uint8(0x22), mem.Read(0x000))
}
