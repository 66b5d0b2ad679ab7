package internal

import (
	"fmt"
	"io"
	"strings"
)

// HexDump formats program bytes 16 per line, grouped by 4, each line
// prefixed with the address the byte is loaded at
func HexDump(data []byte, base uint16) string {
	var sb strings.Builder
	for i, b := range data {
		if i%16 == 0 {
			if i > 0 {
				sb.WriteByte('\n')
			}
			fmt.Fprintf(&sb, "%03X:  ", int(base)+i)
		} else if i%4 == 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x ", b)
	}
	if len(data) > 0 {
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Disassemble writes one line per instruction word of a program loaded at base.
// A trailing odd byte is listed as data.
func Disassemble(w io.Writer, data []byte, base uint16) error {
	for i := 0; i+1 < len(data); i += 2 {
		word := uint16(data[i])<<8 | uint16(data[i+1])
		ins := Decode(word)
		if _, err := fmt.Fprintf(w, "0x%03X  %04X  %s\n", int(base)+i, word, ins); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}
	if len(data)%2 == 1 {
		last := len(data) - 1
		if _, err := fmt.Fprintf(w, "0x%03X  %02X    DB 0x%02X\n", int(base)+last, data[last], data[last]); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}
	return nil
}
