// Package keymap maps the left block of a QWERTY keyboard to the CHIP-8 hex keypad.
//
//	+--------+--------+--------+--------+
//	| 1 -> 1 | 2 -> 2 | 3 -> 3 | 4 -> C |
//	+--------+--------+--------+--------+
//	| Q -> 4 | W -> 5 | E -> 6 | R -> D |
//	+--------+--------+--------+--------+
//	| A -> 7 | S -> 8 | D -> 9 | F -> E |
//	+--------+--------+--------+--------+
//	| Z -> A | X -> 0 | C -> B | V -> F |
//	+--------+--------+--------+--------+
package keymap

import "unicode"

// Keypad is the CHIP-8 keypad, row by row
var Keypad = [4][4]uint8{
	{0x1, 0x2, 0x3, 0xC},
	{0x4, 0x5, 0x6, 0xD},
	{0x7, 0x8, 0x9, 0xE},
	{0xA, 0x0, 0xB, 0xF},
}

// QWERTY holds the physical keys at the keypad positions
var QWERTY = [4][4]rune{
	{'1', '2', '3', '4'},
	{'q', 'w', 'e', 'r'},
	{'a', 's', 'd', 'f'},
	{'z', 'x', 'c', 'v'},
}

// FromRune returns the keypad key for a physical key, ignoring case
func FromRune(r rune) (uint8, bool) {
	r = unicode.ToLower(r)
	for row := range QWERTY {
		for col, q := range QWERTY[row] {
			if q == r {
				return Keypad[row][col], true
			}
		}
	}
	return 0, false
}

// ToRune returns the physical key bound to a keypad key
func ToRune(key uint8) rune {
	for row := range Keypad {
		for col, k := range Keypad[row] {
			if k == key&0xF {
				return QWERTY[row][col]
			}
		}
	}
	return 0
}
