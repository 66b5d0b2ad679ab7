package internal

const stackSize = 16

// CPU holds the register file and timers and executes one instruction per cycle
type CPU struct {
	regV       [16]uint8         // 16 general purpose 8-bit registers, VF doubles as the flag register
	regI       uint16            // 16-bit register that is generally used to store memory addresses
	delayTimer uint8             // Delay timer
	soundTimer uint8             // Sound timer
	pc         uint16            // Program counter
	sp         uint8             // Stack pointer
	stack      [stackSize]uint16 // A stack of 16 16-bit return addresses

	opAddr uint16      // address of the instruction being executed
	ins    Instruction // instruction being executed
}

// NewCPU returns a CPU with cleared registers and PC at 0x200
func NewCPU() *CPU {
	return &CPU{pc: pcStartAddr}
}

// machine bundles what a cycle operates on
type machine struct {
	mem      *Memory
	display  *Display
	keyboard *Keyboard
	rng      *RNG
	settings *Settings
}

// Cycle fetches, decodes and executes one instruction
func (c *CPU) Cycle(mem *Memory, display *Display, keyboard *Keyboard, rng *RNG, settings *Settings) error {
	c.opAddr = c.pc
	word := uint16(mem.Read(c.pc))<<8 | uint16(mem.Read(c.pc+1))
	c.pc += 2
	c.ins = Decode(word)

	return c.execute(c.ins, machine{
		mem:      mem,
		display:  display,
		keyboard: keyboard,
		rng:      rng,
		settings: settings,
	})
}

func (c *CPU) execute(ins Instruction, m machine) error {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpSYS:
	case OpCLS:
		m.display.Clear()
	case OpRET:
		return c.ret(m.settings)
	case OpJP:
		c.pc = ins.NNN
	case OpCALL:
		return c.call(ins.NNN, m.settings)
	case OpSE:
		c.skipIf(c.regV[x] == ins.KK)
	case OpSNE:
		c.skipIf(c.regV[x] != ins.KK)
	case OpSER:
		c.skipIf(c.regV[x] == c.regV[y])
	case OpLD:
		c.regV[x] = ins.KK
	case OpADD:
		c.regV[x] += ins.KK
	case OpLDR:
		c.regV[x] = c.regV[y]
	case OpOR:
		c.regV[x] |= c.regV[y]
	case OpAND:
		c.regV[x] &= c.regV[y]
	case OpXOR:
		c.regV[x] ^= c.regV[y]
	case OpADDR:
		sum := uint16(c.regV[x]) + uint16(c.regV[y])
		c.regV[x] = uint8(sum)
		c.regV[0xF] = flag(sum > 0xFF)
	case OpSUB:
		noBorrow := c.regV[x] >= c.regV[y]
		c.regV[x] -= c.regV[y]
		c.regV[0xF] = flag(noBorrow)
	case OpSUBN:
		noBorrow := c.regV[y] >= c.regV[x]
		c.regV[x] = c.regV[y] - c.regV[x]
		c.regV[0xF] = flag(noBorrow)
	case OpSHR:
		src := c.shiftSource(x, y, m.settings)
		lsb := src & 0x01
		c.regV[x] = src >> 1
		c.regV[0xF] = lsb
	case OpSHL:
		src := c.shiftSource(x, y, m.settings)
		msb := (src >> 7) & 0x01
		c.regV[x] = src << 1
		c.regV[0xF] = msb
	case OpSNER:
		c.skipIf(c.regV[x] != c.regV[y])
	case OpLDA:
		c.regI = ins.NNN
	case OpJPO:
		c.pc = ins.NNN + uint16(c.regV[0])
	case OpRND:
		c.regV[x] = m.rng.Next() & ins.KK
	case OpDRW:
		c.draw(x, y, ins.N, m)
	case OpSKP:
		c.skipIf(m.keyboard.IsDown(c.regV[x]))
	case OpSKNP:
		c.skipIf(!m.keyboard.IsDown(c.regV[x]))
	case OpLDDT:
		c.regV[x] = c.delayTimer
	case OpLDKP:
		key, ok := m.keyboard.PollWait()
		if !ok {
			c.pc -= 2 // run this instruction again next cycle
			return nil
		}
		c.regV[x] = key
	case OpSTDT:
		c.delayTimer = c.regV[x]
	case OpSTST:
		c.soundTimer = c.regV[x]
	case OpADDA:
		sum := uint32(c.regI) + uint32(c.regV[x])
		c.regI = uint16(sum)
		if m.settings.AddressOverflowQuirk && sum > 0xFFFF {
			c.regV[0xF] = 1
		}
	case OpLDSA:
		c.regI = m.mem.FontAddress(c.regV[x])
	case OpSTDR:
		v := c.regV[x]
		m.mem.Write(c.regI, v/100)
		m.mem.Write(c.regI+1, (v/10)%10)
		m.mem.Write(c.regI+2, v%10)
	case OpSTRR:
		for i := uint16(0); i <= uint16(x); i++ {
			m.mem.Write(c.regI+i, c.regV[i])
		}
		if m.settings.LoadStoreQuirk {
			c.regI += uint16(x) + 1
		}
	case OpLDRR:
		for i := uint16(0); i <= uint16(x); i++ {
			c.regV[i] = m.mem.Read(c.regI + i)
		}
		if m.settings.LoadStoreQuirk {
			c.regI += uint16(x) + 1
		}
	default:
		return &InvalidOpcodeError{Addr: c.opAddr, Opcode: ins.Word}
	}
	return nil
}

func (c *CPU) skipIf(cond bool) {
	if cond {
		c.pc += 2
	}
}

func (c *CPU) shiftSource(x, y uint8, settings *Settings) uint8 {
	if settings.ShiftQuirk {
		return c.regV[x]
	}
	return c.regV[y]
}

func (c *CPU) call(addr uint16, settings *Settings) error {
	if c.sp >= stackSize {
		if settings.Stack == StackFault {
			return &StackError{Addr: c.opAddr, Overflow: true}
		}
		c.sp %= stackSize
	}
	c.stack[c.sp] = c.pc
	c.sp++
	if settings.Stack == StackWrap {
		c.sp %= stackSize
	}
	c.pc = addr
	return nil
}

func (c *CPU) ret(settings *Settings) error {
	if c.sp == 0 {
		if settings.Stack == StackFault {
			return &StackError{Addr: c.opAddr}
		}
		c.sp = stackSize
	}
	c.sp--
	c.pc = c.stack[c.sp]
	return nil
}

// draw XORs an n-byte sprite read from I onto the display at (Vx, Vy)
func (c *CPU) draw(x, y, n uint8, m machine) {
	originX := int(c.regV[x])
	originY := int(c.regV[y]) % ScreenHeight

	erased := false
	for row := 0; row < int(n); row++ {
		py := originY + row
		if py >= ScreenHeight && !m.settings.VerticalWrap {
			break
		}
		spriteByte := m.mem.Read(c.regI + uint16(row))
		for col := 0; col < 8; col++ {
			bit := (spriteByte>>(7-col))&0x1 == 1
			if m.display.SetPixel(originX+col, py, bit) {
				erased = true
			}
		}
	}
	c.regV[0xF] = flag(erased)
}

// TickDelay decrements the delay timer toward zero
func (c *CPU) TickDelay() {
	if c.delayTimer > 0 {
		c.delayTimer--
	}
}

// TickSound reports whether the tone should play during this tick and
// decrements the sound timer toward zero
func (c *CPU) TickSound() bool {
	beep := c.soundTimer > 0
	if beep {
		c.soundTimer--
	}
	return beep
}

// PC returns the program counter
func (c *CPU) PC() uint16 {
	return c.pc
}

// I returns the address register
func (c *CPU) I() uint16 {
	return c.regI
}

// V returns general purpose register x
func (c *CPU) V(x uint8) uint8 {
	return c.regV[x&0xF]
}

// SP returns the stack pointer
func (c *CPU) SP() uint8 {
	return c.sp
}

// DelayTimer returns the value of DT
func (c *CPU) DelayTimer() uint8 {
	return c.delayTimer
}

// SoundTimer returns the value of ST
func (c *CPU) SoundTimer() uint8 {
	return c.soundTimer
}

// LastInstruction returns the most recently fetched instruction and its address
func (c *CPU) LastInstruction() (uint16, Instruction) {
	return c.opAddr, c.ins
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
