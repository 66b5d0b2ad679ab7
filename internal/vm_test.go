package internal_test

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/mnafees/chopper/internal"
	"github.com/mnafees/chopper/pkg/headless"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newVM(t *testing.T, settings internal.Settings, program ...byte) *internal.C8VM {
	t.Helper()
	vm, err := internal.NewC8VM(settings, log.NewTestLogger(t))
	assert.NoError(t, err)
	assert.NoError(t, vm.LoadROM(bytes.NewReader(program)))
	return vm
}

func TestVMAddLoop(t *testing.T) {
	// CLS; LD V0 0x01; LD V1 0x02; ADDR V0 V1; JP 0x200
	vm := newVM(t, internal.DefaultSettings(),
		0x00, 0xE0, 0x60, 0x01, 0x61, 0x02, 0x80, 0x14, 0x12, 0x00)
	platform := headless.New()

	assert.NoError(t, vm.RunCycles(platform, 4))
	assert.Equal(t, uint8(3), vm.CPU().V(0))
	assert.Equal(t, uint16(0x208), vm.CPU().PC())

	assert.NoError(t, vm.RunCycles(platform, 1))
	assert.Equal(t, uint16(0x200), vm.CPU().PC())

	assert.NoError(t, vm.RunCycles(platform, 500))
	assert.Equal(t, uint8(3), vm.CPU().V(0))
	assert.Equal(t, uint8(0), vm.CPU().V(0xF))
	assert.Equal(t, uint16(0x200), vm.CPU().PC())
	assert.Equal(t, 0, platform.LitPixels())
	assert.True(t, platform.Presents > 0)
}

func TestVMDrawSprite(t *testing.T) {
	// LDA 0x206; DRW V0 V1 1; JP 0x204; sprite row
	vm := newVM(t, internal.DefaultSettings(),
		0xA2, 0x06, 0xD0, 0x11, 0x12, 0x04, 0xF0, 0x00)
	platform := headless.New()

	assert.NoError(t, vm.RunCycles(platform, 10))
	assert.Equal(t, 4, platform.LitPixels())
	for x := range 4 {
		assert.True(t, platform.Pixel(x, 0))
	}
	assert.Equal(t, uint8(0), vm.CPU().V(0xF))
	assert.Equal(t, 2, platform.Presents)
}

func TestVMTimersVirtualTime(t *testing.T) {
	// LD V0 0x78; STDT V0; JP 0x204
	vm := newVM(t, internal.DefaultSettings(), 0x60, 0x78, 0xF0, 0x15, 0x12, 0x04)
	platform := headless.New()

	assert.NoError(t, vm.RunCycles(platform, 700))
	assert.Equal(t, uint8(60), vm.CPU().DelayTimer())
}

func TestVMSound(t *testing.T) {
	// LD V0 0x03; STST V0; JP 0x204
	program := []byte{0x60, 0x03, 0xF0, 0x18, 0x12, 0x04}

	vm := newVM(t, internal.DefaultSettings(), program...)
	platform := headless.New()
	assert.NoError(t, vm.RunCycles(platform, 700))
	assert.Equal(t, 3, platform.Beeps)
	assert.False(t, platform.Beeping)
	assert.Equal(t, uint8(0), vm.CPU().SoundTimer())

	settings := internal.DefaultSettings()
	settings.Mute = true
	vm = newVM(t, settings, program...)
	platform = headless.New()
	assert.NoError(t, vm.RunCycles(platform, 700))
	assert.Equal(t, 0, platform.Beeps)
}

func TestVMWaitForKey(t *testing.T) {
	// LDKP V3; JP 0x202
	vm := newVM(t, internal.DefaultSettings(), 0xF3, 0x0A, 0x12, 0x02)
	platform := headless.New()

	assert.NoError(t, vm.RunCycles(platform, 3))
	assert.Equal(t, uint16(0x200), vm.CPU().PC())
	assert.True(t, vm.Keyboard().Waiting())

	vm.Keyboard().PushEvent(0x7)
	assert.NoError(t, vm.RunCycles(platform, 1))
	assert.Equal(t, uint8(0x7), vm.CPU().V(3))
	assert.Equal(t, uint16(0x202), vm.CPU().PC())
}

func TestVMKeyboardState(t *testing.T) {
	// LD V0 0x0A; SKP V0; JP 0x202; JP 0x206
	vm := newVM(t, internal.DefaultSettings(),
		0x60, 0x0A, 0xE0, 0x9E, 0x12, 0x02, 0x12, 0x06)
	platform := headless.New()

	assert.NoError(t, vm.RunCycles(platform, 3))
	assert.Equal(t, uint16(0x202), vm.CPU().PC())

	platform.SetKey(0xA, true)
	assert.NoError(t, vm.RunCycles(platform, 1))
	assert.Equal(t, uint16(0x206), vm.CPU().PC())
}

func TestVMLoadROM(t *testing.T) {
	vm, err := internal.NewC8VM(internal.DefaultSettings(), log.NewTestLogger(t))
	assert.NoError(t, err)

	assert.NoError(t, vm.LoadROM(bytes.NewReader(make([]byte, 0xE00))))

	err = vm.LoadROM(bytes.NewReader(make([]byte, 0xE01)))
	assert.True(t, errors.Is(err, internal.ErrProgramTooLarge))
	var romErr *internal.ROMError
	assert.True(t, errors.As(err, &romErr))
}

func TestVMLoadProgram(t *testing.T) {
	settings := internal.DefaultSettings()
	settings.DumpROM = true
	vm, err := internal.NewC8VM(settings, log.NewTestLogger(t))
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, []byte{0x12, 0x34}, 0o600))
	assert.NoError(t, vm.LoadProgram(path))
	assert.Equal(t, uint8(0x12), vm.Memory().Read(0x200))
	assert.Equal(t, uint8(0x34), vm.Memory().Read(0x201))

	missing := filepath.Join(t.TempDir(), "missing.ch8")
	err = vm.LoadProgram(missing)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	var romErr *internal.ROMError
	assert.True(t, errors.As(err, &romErr))
	assert.Equal(t, missing, romErr.Path)

	big := filepath.Join(t.TempDir(), "big.ch8")
	assert.NoError(t, os.WriteFile(big, make([]byte, 0x1000), 0o600))
	err = vm.LoadProgram(big)
	assert.True(t, errors.As(err, &romErr))
	assert.Equal(t, big, romErr.Path)
	assert.ErrorContains(t, err, "program size exceeds")
}

func TestVMInvalidSettings(t *testing.T) {
	settings := internal.DefaultSettings()
	settings.CPUFrequency = 0
	_, err := internal.NewC8VM(settings, log.NewTestLogger(t))
	assert.ErrorContains(t, err, "invalid settings")
}

func TestVMRunQuit(t *testing.T) {
	vm := newVM(t, internal.DefaultSettings(), 0x12, 0x00)
	platform := headless.New(internal.Event{Type: internal.EventKeyPress, Key: 1}).QuitWhenDrained()

	assert.NoError(t, vm.Run(context.Background(), platform))
}

func TestVMRunCancelled(t *testing.T) {
	vm := newVM(t, internal.DefaultSettings(), 0x12, 0x00)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := vm.Run(ctx, headless.New())
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestVMRunInvalidOpcode(t *testing.T) {
	vm := newVM(t, internal.DefaultSettings(), 0xFF, 0xFF)

	err := vm.Run(context.Background(), headless.New())
	var opErr *internal.InvalidOpcodeError
	assert.True(t, errors.As(err, &opErr))
	assert.Equal(t, uint16(0x200), opErr.Addr)
}

func TestVMTrace(t *testing.T) {
	settings := internal.DefaultSettings()
	settings.TraceOpcodes = true
	vm := newVM(t, settings, 0x60, 0x01, 0x12, 0x02)

	assert.NoError(t, vm.RunCycles(headless.New(), 3))
	assert.Equal(t, uint8(1), vm.CPU().V(0))
}
