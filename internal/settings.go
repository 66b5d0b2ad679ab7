package internal

import (
	"errors"
	"fmt"
)

// StackMode decides what happens when CALL and RET are not balanced
type StackMode int

const (
	// StackFault stops the machine with a StackError
	StackFault StackMode = iota
	// StackWrap moves the stack pointer modulo the stack size instead of failing
	StackWrap
)

// String returns the flag spelling of the mode
func (m StackMode) String() string {
	switch m {
	case StackFault:
		return "fault"
	case StackWrap:
		return "wrap"
	default:
		return fmt.Sprintf("StackMode(%d)", int(m))
	}
}

// ParseStackMode parses the flag spelling of a stack mode
func ParseStackMode(s string) (StackMode, error) {
	switch s {
	case "fault":
		return StackFault, nil
	case "wrap":
		return StackWrap, nil
	default:
		return StackFault, fmt.Errorf("unknown stack mode %q", s)
	}
}

// Settings holds the static configuration of a run. The machine only reads it.
type Settings struct {
	CPUFrequency        uint16 // CPU cycles per second
	DelayTimerFrequency uint16 // DT decrements per second
	SoundTimerFrequency uint16 // ST decrements per second

	RNGSeed uint32

	// Some games expect SHR (8xy6) and SHL (8xyE) to shift Vx in place and ignore Vy.
	ShiftQuirk bool
	// Some games expect STRR (Fx55) and LDRR (Fx65) to advance I by x+1.
	LoadStoreQuirk bool
	// Some games expect ADDA (Fx1E) to set VF when I overflows.
	AddressOverflowQuirk bool

	// Wrap sprites that run past the bottom edge back to the top
	VerticalWrap bool

	Mute  bool
	Stack StackMode

	TraceOpcodes bool // debug log every executed instruction, needs a debug level logger
	DumpROM      bool // hex dump the program when it is loaded
}

// DefaultSettings returns the settings most ROMs expect
func DefaultSettings() Settings {
	return Settings{
		CPUFrequency:        700,
		DelayTimerFrequency: 60,
		SoundTimerFrequency: 60,
		ShiftQuirk:          true,
		Stack:               StackFault,
	}
}

// Validate checks that the settings can drive a machine
func (s *Settings) Validate() error {
	if s.CPUFrequency == 0 {
		return errors.New("cpu frequency must be greater than zero")
	}
	if s.DelayTimerFrequency == 0 {
		return errors.New("delay timer frequency must be greater than zero")
	}
	if s.SoundTimerFrequency == 0 {
		return errors.New("sound timer frequency must be greater than zero")
	}
	if s.Stack != StackFault && s.Stack != StackWrap {
		return fmt.Errorf("invalid stack mode %d", int(s.Stack))
	}
	return nil
}
