package internal

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, uint16(700), s.CPUFrequency)
	assert.Equal(t, uint16(60), s.DelayTimerFrequency)
	assert.Equal(t, uint16(60), s.SoundTimerFrequency)
	assert.True(t, s.ShiftQuirk)
	assert.False(t, s.LoadStoreQuirk)
	assert.False(t, s.AddressOverflowQuirk)
	assert.False(t, s.VerticalWrap)
	assert.Equal(t, StackFault, s.Stack)
	assert.NoError(t, s.Validate())
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *Settings)
		errMsg string
	}{
		{"cpu frequency", func(s *Settings) { s.CPUFrequency = 0 }, "cpu frequency"},
		{"delay frequency", func(s *Settings) { s.DelayTimerFrequency = 0 }, "delay timer"},
		{"sound frequency", func(s *Settings) { s.SoundTimerFrequency = 0 }, "sound timer"},
		{"stack mode", func(s *Settings) { s.Stack = StackMode(7) }, "invalid stack mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			assert.ErrorContains(t, s.Validate(), tt.errMsg)
		})
	}
}

func TestParseStackMode(t *testing.T) {
	mode, err := ParseStackMode("wrap")
	assert.NoError(t, err)
	assert.Equal(t, StackWrap, mode)
	assert.Equal(t, "wrap", mode.String())

	mode, err = ParseStackMode("fault")
	assert.NoError(t, err)
	assert.Equal(t, StackFault, mode)
	assert.Equal(t, "fault", mode.String())

	_, err = ParseStackMode("ignore")
	assert.Error(t, err)
}
