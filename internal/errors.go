package internal

import (
	"errors"
	"fmt"
)

// ErrProgramTooLarge is returned when a program does not fit between 0x200 and the end of memory
var ErrProgramTooLarge = errors.New("program size exceeds the maximum size")

// InvalidOpcodeError stops the machine when it fetches a word outside the instruction set
type InvalidOpcodeError struct {
	Addr   uint16 // address the word was fetched from
	Opcode uint16
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode 0x%04X at 0x%03X", e.Opcode, e.Addr)
}

// StackError stops the machine on unbalanced CALL/RET when the stack mode is StackFault
type StackError struct {
	Addr     uint16
	Overflow bool // false means underflow
}

func (e *StackError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("stack overflow at 0x%03X", e.Addr)
	}
	return fmt.Sprintf("stack underflow at 0x%03X", e.Addr)
}

// ROMError reports a program that could not be loaded
type ROMError struct {
	Path string
	Err  error
}

func (e *ROMError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loading program: %v", e.Err)
	}
	return fmt.Sprintf("loading program '%s': %v", e.Path, e.Err)
}

func (e *ROMError) Unwrap() error {
	return e.Err
}
