package internal

// NumKeys is the size of the hex keypad
const NumKeys = 16

// Keyboard tracks the keypad and the key-wait latch used by LDKP
type Keyboard struct {
	keys    [NumKeys]bool
	pending uint8 // key latched while waiting
	latched bool
	waiting bool
}

// NewKeyboard returns a keyboard with every key up
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// SetState overwrites all key states
func (k *Keyboard) SetState(keys [NumKeys]bool) {
	k.keys = keys
}

// IsDown reports whether key is held. Only the low nibble is used.
func (k *Keyboard) IsDown(key uint8) bool {
	return k.keys[key&0xF]
}

// PushEvent latches a key press. Presses are ignored unless a wait is armed.
func (k *Keyboard) PushEvent(key uint8) {
	if k.waiting {
		k.pending = key & 0xF
		k.latched = true
	}
}

// Waiting reports whether a key wait is armed
func (k *Keyboard) Waiting() bool {
	return k.waiting
}

// PollWait drives the key wait. The first call arms the wait and drops stale
// presses. Once armed, a latched press is returned and the wait is disarmed.
func (k *Keyboard) PollWait() (uint8, bool) {
	if !k.waiting {
		k.latched = false
		k.waiting = true
		return 0, false
	}
	if !k.latched {
		return 0, false
	}
	k.latched = false
	k.waiting = false
	return k.pending, true
}
