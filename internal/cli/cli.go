// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/options"
	retrocli "github.com/retroenv/retrogolib/cli"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	var opts options.Program
	flags := newFlagSet(&opts)

	args, err := flags.Parse(os.Args[1:])
	if err != nil {
		return opts, parseError(flags, err)
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = opts.File
	return opts, nil
}

func newFlagSet(opts *options.Program) *retrocli.FlagSet {
	flags := retrocli.NewFlagSet("retrochip8")
	flags.AddSection("Emulation", &opts.Flags)
	flags.AddSection("Display", &opts.Display)
	flags.AddSection("Files", &opts.Parameters)
	flags.AddSection("Quirks", &opts.Quirks)
	flags.AddSection("Disassembler", &opts.Disassembler)
	flags.AddPositional(&opts.Positional)
	return flags
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *retrocli.FlagSet
	msg   string
	shown bool // usage was already printed while parsing
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and all flags to stdout.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	if !e.shown {
		e.flags.ShowUsage()
	}
}

// parseError converts a flag parsing error to a usage error. Invalid flags
// and help requests print the usage already.
func parseError(flags *retrocli.FlagSet, err error) *UsageError {
	var missingArgs *retrocli.MissingArgsError
	if errors.As(err, &missingArgs) {
		return &UsageError{flags: flags}
	}
	if errors.Is(err, retrocli.ErrHelpRequested) {
		return &UsageError{flags: flags, shown: true}
	}
	return &UsageError{flags: flags, msg: err.Error(), shown: true}
}

// validateArgs checks that no arguments are left after the ROM file.
func validateArgs(flags *retrocli.FlagSet, args []string) error {
	for _, arg := range args {
		if arg != "" && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after the ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	if len(args) > 0 {
		return &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("Only one ROM file can be run, got %d", len(args)+1),
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if !slices.Contains(options.Frontends, opts.Frontend) {
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join(options.Frontends, ", "))
	}

	if opts.Speed < 1 {
		return fmt.Errorf("invalid speed %d: at least 1 instruction per tick is required", opts.Speed)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale %d: must be at least 1", opts.Scale)
	}
	if opts.Ticks < 0 {
		return fmt.Errorf("invalid tick limit %d", opts.Ticks)
	}

	var err error
	if opts.ForegroundColor, err = frontend.ParseColor(opts.Foreground); err != nil {
		return fmt.Errorf("parsing foreground color: %w", err)
	}
	if opts.BackgroundColor, err = frontend.ParseColor(opts.Background); err != nil {
		return fmt.Errorf("parsing background color: %w", err)
	}

	if opts.Trace {
		opts.Debug = true
	}
	return nil
}
