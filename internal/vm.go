package internal

// Follows the CHIP-8 technical reference found at http://devernay.free.fr/hacks/chip8/C8TECH10.HTM

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// C8VM is an emulated CHIP-8 VM
type C8VM struct {
	settings Settings
	logger   *log.Logger

	cpu      *CPU
	memory   *Memory
	display  *Display
	keyboard *Keyboard
	rng      *RNG

	now   func() time.Time    // time source of the run loop clocks
	sleep func(time.Duration) // waits while no clock is due

	dtAcc, stAcc int // virtual time accumulators of RunCycles
}

// NewC8VM creates a new instance of an emulated CHIP-8 VM
func NewC8VM(settings Settings, logger *log.Logger) (*C8VM, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &C8VM{
		settings: settings,
		logger:   logger,
		cpu:      NewCPU(),
		memory:   NewMemory(),
		display:  NewDisplay(),
		keyboard: NewKeyboard(),
		rng:      NewRNG(settings.RNGSeed),
		now:      time.Now,
		sleep:    time.Sleep,
	}, nil
}

// LoadProgram loads a given CHIP-8 program file into the VM's memory
func (vm *C8VM) LoadProgram(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return &ROMError{Path: filename, Err: err}
	}
	defer func() { _ = file.Close() }()

	if err := vm.LoadROM(file); err != nil {
		var romErr *ROMError
		if errors.As(err, &romErr) {
			romErr.Path = filename
		}
		return err
	}
	return nil
}

// LoadROM reads a whole program image and copies it to 0x200. Memory is only
// touched once the complete image has been read.
func (vm *C8VM) LoadROM(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return &ROMError{Err: err}
	}
	if len(data) > maxProgramSize {
		return &ROMError{Err: fmt.Errorf("%w: %d bytes", ErrProgramTooLarge, len(data))}
	}

	vm.memory.Load(pcStartAddr, data)
	vm.logger.Info("Program loaded", log.Int("size", len(data)))
	if vm.settings.DumpROM {
		vm.logger.Info("Program data\n" + HexDump(data, pcStartAddr))
	}
	return nil
}

// Run drives the machine until the platform quits, the context is cancelled
// or the CPU stops with an error. Sound timer, delay timer and CPU are served
// in that order whenever their clocks are due. When none is due the loop
// sleeps until the nearest deadline.
func (vm *C8VM) Run(ctx context.Context, p Platform) error {
	cpuClock := NewClock(vm.settings.CPUFrequency, vm.now)
	dtClock := NewClock(vm.settings.DelayTimerFrequency, vm.now)
	stClock := NewClock(vm.settings.SoundTimerFrequency, vm.now)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		event := p.PollEvent()
		switch event.Type {
		case EventKeyPress:
			vm.keyboard.PushEvent(event.Key)
		case EventQuit:
			return nil
		default:
			ticked := false
			if stClock.Tick() {
				vm.tickSound(p)
				ticked = true
			}
			if dtClock.Tick() {
				vm.cpu.TickDelay()
				ticked = true
			}
			if cpuClock.Tick() {
				if err := vm.Step(p); err != nil {
					return err
				}
				ticked = true
			}
			if !ticked {
				if wait := min(stClock.Remaining(), dtClock.Remaining(), cpuClock.Remaining()); wait > 0 {
					vm.sleep(wait)
				}
			}
		}
	}
}

// RunCycles executes n CPU steps without waiting for wall clock time. The
// timers advance in virtual time at their configured rate relative to the CPU.
func (vm *C8VM) RunCycles(p Platform, n int) error {
	for i := 0; i < n; i++ {
		cpuHz := int(vm.settings.CPUFrequency)
		vm.stAcc += int(vm.settings.SoundTimerFrequency)
		for vm.stAcc >= cpuHz {
			vm.stAcc -= cpuHz
			vm.tickSound(p)
		}
		vm.dtAcc += int(vm.settings.DelayTimerFrequency)
		for vm.dtAcc >= cpuHz {
			vm.dtAcc -= cpuHz
			vm.cpu.TickDelay()
		}
		if err := vm.Step(p); err != nil {
			return err
		}
	}
	return nil
}

// Step refreshes the keyboard, executes one CPU cycle and redraws the
// display through the platform if it changed
func (vm *C8VM) Step(p Platform) error {
	vm.keyboard.SetState(p.KeyboardState())

	err := vm.cpu.Cycle(vm.memory, vm.display, vm.keyboard, vm.rng, &vm.settings)
	if vm.settings.TraceOpcodes {
		addr, ins := vm.cpu.LastInstruction()
		vm.logger.Debug("Executed",
			log.Hex("address", addr),
			log.Hex("opcode", ins.Word),
			log.String("instruction", ins.String()))
	}
	if err != nil {
		return err
	}

	if vm.display.ConsumeDirty() {
		vm.display.Draw(p)
	}
	return nil
}

func (vm *C8VM) tickSound(p Platform) {
	beep := vm.cpu.TickSound()
	p.Beep(beep && !vm.settings.Mute)
}

// CPU returns the processor of the VM
func (vm *C8VM) CPU() *CPU {
	return vm.cpu
}

// Memory returns the address space of the VM
func (vm *C8VM) Memory() *Memory {
	return vm.memory
}

// Display returns the framebuffer of the VM
func (vm *C8VM) Display() *Display {
	return vm.display
}

// Keyboard returns the keypad of the VM
func (vm *C8VM) Keyboard() *Keyboard {
	return vm.keyboard
}

// Settings returns the configuration the VM was created with
func (vm *C8VM) Settings() Settings {
	return vm.settings
}
