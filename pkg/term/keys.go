package term

import (
	"time"

	"github.com/mnafees/chopper/internal"
)

// keyState emulates held keys from a stream of key presses
type keyState struct {
	pressed [internal.NumKeys]time.Time
	hold    time.Duration
	now     func() time.Time
}

func newKeyState(hold time.Duration, now func() time.Time) *keyState {
	return &keyState{
		hold: hold,
		now:  now,
	}
}

func (k *keyState) press(key uint8) {
	k.pressed[key&0xF] = k.now()
}

func (k *keyState) held() [internal.NumKeys]bool {
	var keys [internal.NumKeys]bool
	now := k.now()
	for key, at := range k.pressed {
		if !at.IsZero() && now.Sub(at) < k.hold {
			keys[key] = true
		}
	}
	return keys
}
