package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/mnafees/chopper/internal"
)

// Options of the emulator commands
type Options struct {
	ROM      string
	Settings internal.Settings

	Debug bool
	Quiet bool
	Scale int // pixel size of the SDL window

	// ROM tool only
	Disassemble bool
	Cycles      int // headless cycles to run before printing the display
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	usage string
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the command synopsis and all flags
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: %s\n\n", e.usage)
	e.flags.SetOutput(os.Stdout)
	e.flags.PrintDefaults()
	fmt.Println()
}

// Parse parses the arguments of an emulator command
func Parse(name string, args []string) (Options, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	opts := Options{Settings: internal.DefaultSettings()}
	settings := readSettingFlags(flags, &opts)
	flags.IntVar(&opts.Scale, "scale", 10, "size of a CHIP-8 pixel on screen")

	usage := name + " [options] <CHIP-8 program>"
	if err := parse(flags, usage, args, &opts, settings); err != nil {
		return opts, err
	}
	if opts.Scale < 1 {
		return opts, fmt.Errorf("invalid scale %d", opts.Scale)
	}
	return opts, nil
}

// ParseTool parses the arguments of the ROM tool
func ParseTool(name string, args []string) (Options, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	opts := Options{Settings: internal.DefaultSettings()}
	settings := readSettingFlags(flags, &opts)
	flags.BoolVar(&opts.Disassemble, "dis", false, "print a disassembly listing of the program")
	flags.IntVar(&opts.Cycles, "run", 0, "run the program headless for the given cycles and print the display")

	usage := name + " [options] <CHIP-8 program>"
	if err := parse(flags, usage, args, &opts, settings); err != nil {
		return opts, err
	}
	if opts.Cycles < 0 {
		return opts, fmt.Errorf("invalid cycle count %d", opts.Cycles)
	}
	return opts, nil
}

// settingFlags holds flag values that need conversion after parsing
type settingFlags struct {
	cpuHz uint
	seed  uint
	stack string
}

func readSettingFlags(flags *flag.FlagSet, opts *Options) *settingFlags {
	s := &settingFlags{}
	set := &opts.Settings

	flags.UintVar(&s.cpuHz, "cpu-hz", uint(set.CPUFrequency), "CPU cycles per second")
	flags.UintVar(&s.seed, "seed", uint(set.RNGSeed), "seed of the random number generator")
	flags.StringVar(&s.stack, "stack", set.Stack.String(), "behaviour on stack overflow and underflow (fault/wrap)")
	flags.BoolVar(&set.ShiftQuirk, "shift-quirk", set.ShiftQuirk, "SHR and SHL shift Vx in place and ignore Vy")
	flags.BoolVar(&set.LoadStoreQuirk, "load-store-quirk", set.LoadStoreQuirk, "STRR and LDRR advance I")
	flags.BoolVar(&set.AddressOverflowQuirk, "address-overflow-quirk", set.AddressOverflowQuirk, "ADDA sets VF when I overflows")
	flags.BoolVar(&set.VerticalWrap, "vertical-wrap", set.VerticalWrap, "wrap sprites past the bottom edge to the top")
	flags.BoolVar(&set.Mute, "mute", set.Mute, "disable the buzzer")
	flags.BoolVar(&set.TraceOpcodes, "trace", set.TraceOpcodes, "log every executed instruction, implies -debug")
	flags.BoolVar(&set.DumpROM, "dump", set.DumpROM, "print a hex dump of the program when it is loaded")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	return s
}

func parse(flags *flag.FlagSet, usage string, args []string, opts *Options, s *settingFlags) error {
	flags.SetOutput(io.Discard)

	err := flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return &UsageError{flags: flags, usage: usage}
	}
	if err != nil {
		return &UsageError{flags: flags, usage: usage, msg: err.Error()}
	}

	rest := flags.Args()
	if len(rest) != 1 {
		return &UsageError{flags: flags, usage: usage, msg: "expected exactly one program file as last argument"}
	}
	opts.ROM = rest[0]

	if s.cpuHz == 0 || s.cpuHz > math.MaxUint16 {
		return fmt.Errorf("cpu frequency %d out of range 1-%d", s.cpuHz, math.MaxUint16)
	}
	if s.seed > math.MaxUint32 {
		return fmt.Errorf("seed %d out of range", s.seed)
	}
	stack, err := internal.ParseStackMode(s.stack)
	if err != nil {
		return err
	}

	opts.Settings.CPUFrequency = uint16(s.cpuHz)
	opts.Settings.RNGSeed = uint32(s.seed)
	opts.Settings.Stack = stack
	if opts.Settings.TraceOpcodes {
		opts.Debug = true
		opts.Quiet = false
	}
	return opts.Settings.Validate()
}
