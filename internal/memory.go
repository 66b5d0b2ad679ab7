package internal

// Memory layout constants
const (
	totalMemory    = 0x1000
	addressMask    = totalMemory - 1
	pcStartAddr    = 0x200
	maxProgramSize = totalMemory - pcStartAddr

	fontStartAddr = 0x000
	glyphSize     = 5
)

var fontset = []uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the 4 KB address space of the machine. Addresses wrap modulo 4096.
type Memory struct {
	data [totalMemory]uint8
}

// NewMemory returns memory holding the built-in font
func NewMemory() *Memory {
	m := &Memory{}
	copy(m.data[fontStartAddr:], fontset)
	return m
}

// Read returns the byte at addr
func (m *Memory) Read(addr uint16) uint8 {
	return m.data[addr&addressMask]
}

// Write stores b at addr
func (m *Memory) Write(addr uint16, b uint8) {
	m.data[addr&addressMask] = b
}

// Load copies data starting at addr
func (m *Memory) Load(addr uint16, data []byte) {
	for i, b := range data {
		m.Write(addr+uint16(i), b)
	}
}

// FontAddress returns where the glyph of a hex digit starts
func (m *Memory) FontAddress(digit uint8) uint16 {
	return fontStartAddr + uint16(digit&0xF)*glyphSize
}
