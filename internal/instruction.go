package internal

import "fmt"

// Op identifies a decoded instruction
type Op uint8

// CHIP-8 instruction set. Names follow the mnemonics of the disassembly listing.
const (
	OpInvalid Op = iota
	OpSYS        // 0nnn  no-op
	OpCLS        // 00E0
	OpRET        // 00EE
	OpJP         // 1nnn
	OpCALL       // 2nnn
	OpSE         // 3xkk  skip if Vx == kk
	OpSNE        // 4xkk  skip if Vx != kk
	OpSER        // 5xy0  skip if Vx == Vy
	OpLD         // 6xkk
	OpADD        // 7xkk
	OpLDR        // 8xy0
	OpOR         // 8xy1
	OpAND        // 8xy2
	OpXOR        // 8xy3
	OpADDR       // 8xy4
	OpSUB        // 8xy5
	OpSHR        // 8xy6
	OpSUBN       // 8xy7
	OpSHL        // 8xyE
	OpSNER       // 9xy0  skip if Vx != Vy
	OpLDA        // Annn  I = nnn
	OpJPO        // Bnnn  jump to nnn + V0
	OpRND        // Cxkk
	OpDRW        // Dxyn
	OpSKP        // Ex9E
	OpSKNP       // ExA1
	OpLDDT       // Fx07  Vx = DT
	OpLDKP       // Fx0A  wait for key
	OpSTDT       // Fx15  DT = Vx
	OpSTST       // Fx18  ST = Vx
	OpADDA       // Fx1E  I += Vx
	OpLDSA       // Fx29  I = glyph of Vx
	OpSTDR       // Fx33  BCD of Vx
	OpSTRR       // Fx55  store V0..Vx
	OpLDRR       // Fx65  load V0..Vx

	opCount
)

var opNames = [opCount]string{
	OpInvalid: "INV",
	OpSYS:     "SYS",
	OpCLS:     "CLS",
	OpRET:     "RET",
	OpJP:      "JP",
	OpCALL:    "CALL",
	OpSE:      "SE",
	OpSNE:     "SNE",
	OpSER:     "SER",
	OpLD:      "LD",
	OpADD:     "ADD",
	OpLDR:     "LDR",
	OpOR:      "OR",
	OpAND:     "AND",
	OpXOR:     "XOR",
	OpADDR:    "ADDR",
	OpSUB:     "SUB",
	OpSHR:     "SHR",
	OpSUBN:    "SUBN",
	OpSHL:     "SHL",
	OpSNER:    "SNER",
	OpLDA:     "LDA",
	OpJPO:     "JPO",
	OpRND:     "RND",
	OpDRW:     "DRW",
	OpSKP:     "SKP",
	OpSKNP:    "SKNP",
	OpLDDT:    "LDDT",
	OpLDKP:    "LDKP",
	OpSTDT:    "STDT",
	OpSTST:    "STST",
	OpADDA:    "ADDA",
	OpLDSA:    "LDSA",
	OpSTDR:    "STDR",
	OpSTRR:    "STRR",
	OpLDRR:    "LDRR",
}

// String returns the mnemonic of the op
func (o Op) String() string {
	if o >= opCount {
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
	return opNames[o]
}

// Instruction is one decoded 16-bit instruction word
type Instruction struct {
	Op   Op
	Word uint16 // raw instruction word
	X    uint8  // the lower 4 bits of the high byte
	Y    uint8  // the upper 4 bits of the low byte
	N    uint8  // the lowest 4 bits
	KK   uint8  // the lowest 8 bits
	NNN  uint16 // the lowest 12 bits
}

// Decode maps an instruction word to its instruction. Words outside the
// instruction set decode to OpInvalid.
func Decode(word uint16) Instruction {
	ins := Instruction{
		Word: word,
		X:    uint8((word >> 8) & 0x000F),
		Y:    uint8((word >> 4) & 0x000F),
		N:    uint8(word & 0x000F),
		KK:   uint8(word & 0x00FF),
		NNN:  word & 0x0FFF,
	}
	ins.Op = decodeOp(word, ins.N, ins.KK)
	return ins
}

func decodeOp(word uint16, n, kk uint8) Op {
	switch word & 0xF000 {
	case 0x0000:
		switch word {
		case 0x00E0:
			return OpCLS
		case 0x00EE:
			return OpRET
		default:
			return OpSYS
		}
	case 0x1000:
		return OpJP
	case 0x2000:
		return OpCALL
	case 0x3000:
		return OpSE
	case 0x4000:
		return OpSNE
	case 0x5000:
		if n == 0x0 {
			return OpSER
		}
	case 0x6000:
		return OpLD
	case 0x7000:
		return OpADD
	case 0x8000:
		switch n {
		case 0x0:
			return OpLDR
		case 0x1:
			return OpOR
		case 0x2:
			return OpAND
		case 0x3:
			return OpXOR
		case 0x4:
			return OpADDR
		case 0x5:
			return OpSUB
		case 0x6:
			return OpSHR
		case 0x7:
			return OpSUBN
		case 0xE:
			return OpSHL
		}
	case 0x9000:
		if n == 0x0 {
			return OpSNER
		}
	case 0xA000:
		return OpLDA
	case 0xB000:
		return OpJPO
	case 0xC000:
		return OpRND
	case 0xD000:
		return OpDRW
	case 0xE000:
		switch kk {
		case 0x9E:
			return OpSKP
		case 0xA1:
			return OpSKNP
		}
	case 0xF000:
		switch kk {
		case 0x07:
			return OpLDDT
		case 0x0A:
			return OpLDKP
		case 0x15:
			return OpSTDT
		case 0x18:
			return OpSTST
		case 0x1E:
			return OpADDA
		case 0x29:
			return OpLDSA
		case 0x33:
			return OpSTDR
		case 0x55:
			return OpSTRR
		case 0x65:
			return OpLDRR
		}
	}
	return OpInvalid
}

// Encode builds the instruction word back from the op and its operands
func (ins Instruction) Encode() uint16 {
	x := uint16(ins.X&0xF) << 8
	y := uint16(ins.Y&0xF) << 4
	n := uint16(ins.N & 0xF)
	kk := uint16(ins.KK)
	nnn := ins.NNN & 0x0FFF

	switch ins.Op {
	case OpCLS:
		return 0x00E0
	case OpRET:
		return 0x00EE
	case OpSYS:
		return nnn
	case OpJP:
		return 0x1000 | nnn
	case OpCALL:
		return 0x2000 | nnn
	case OpSE:
		return 0x3000 | x | kk
	case OpSNE:
		return 0x4000 | x | kk
	case OpSER:
		return 0x5000 | x | y
	case OpLD:
		return 0x6000 | x | kk
	case OpADD:
		return 0x7000 | x | kk
	case OpLDR:
		return 0x8000 | x | y
	case OpOR:
		return 0x8001 | x | y
	case OpAND:
		return 0x8002 | x | y
	case OpXOR:
		return 0x8003 | x | y
	case OpADDR:
		return 0x8004 | x | y
	case OpSUB:
		return 0x8005 | x | y
	case OpSHR:
		return 0x8006 | x | y
	case OpSUBN:
		return 0x8007 | x | y
	case OpSHL:
		return 0x800E | x | y
	case OpSNER:
		return 0x9000 | x | y
	case OpLDA:
		return 0xA000 | nnn
	case OpJPO:
		return 0xB000 | nnn
	case OpRND:
		return 0xC000 | x | kk
	case OpDRW:
		return 0xD000 | x | y | n
	case OpSKP:
		return 0xE09E | x
	case OpSKNP:
		return 0xE0A1 | x
	case OpLDDT:
		return 0xF007 | x
	case OpLDKP:
		return 0xF00A | x
	case OpSTDT:
		return 0xF015 | x
	case OpSTST:
		return 0xF018 | x
	case OpADDA:
		return 0xF01E | x
	case OpLDSA:
		return 0xF029 | x
	case OpSTDR:
		return 0xF033 | x
	case OpSTRR:
		return 0xF055 | x
	case OpLDRR:
		return 0xF065 | x
	default:
		return ins.Word
	}
}

// String returns the assembly form of the instruction, e.g. "DRW V0 V1 1"
func (ins Instruction) String() string {
	name := ins.Op.String()
	switch ins.Op {
	case OpCLS, OpRET:
		return name
	case OpSYS, OpJP, OpCALL, OpLDA, OpJPO:
		return fmt.Sprintf("%s 0x%03X", name, ins.NNN)
	case OpSE, OpSNE, OpLD, OpADD, OpRND:
		return fmt.Sprintf("%s V%X 0x%02X", name, ins.X, ins.KK)
	case OpSER, OpLDR, OpOR, OpAND, OpXOR, OpADDR, OpSUB, OpSHR, OpSUBN, OpSHL, OpSNER:
		return fmt.Sprintf("%s V%X V%X", name, ins.X, ins.Y)
	case OpDRW:
		return fmt.Sprintf("%s V%X V%X %X", name, ins.X, ins.Y, ins.N)
	case OpSKP, OpSKNP, OpLDDT, OpLDKP, OpSTDT, OpSTST, OpADDA, OpLDSA, OpSTDR, OpSTRR, OpLDRR:
		return fmt.Sprintf("%s V%X", name, ins.X)
	default:
		return fmt.Sprintf("%s 0x%04X", name, ins.Word)
	}
}
