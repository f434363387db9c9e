// Package options contains the program options.
package options

import "image/color"

// Frontend names.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// Frontends lists all supported frontend names.
var Frontends = []string{FrontendWindow, FrontendTerminal, FrontendHeadless}

// Positional contains positional arguments.
type Positional struct {
	File string `arg:"positional" usage:"CHIP-8 ROM file to run" required:"true"`
}

// Parameters contains file path options.
type Parameters struct {
	Input      string
	Output     string `flag:"o" usage:"output file of the disassembly (default: stdout)"`
	Wav        string `flag:"wav" usage:"record the audio output to a .wav file"`
	Screenshot string `flag:"screenshot" usage:"save the last frame as .png file on exit"`
}

// Flags contains behavior options.
type Flags struct {
	Frontend string `flag:"frontend" usage:"frontend: window, terminal, headless" default:"window"`
	Speed    int    `flag:"speed" usage:"instructions executed per 60 Hz tick" default:"10"`
	Ticks    int    `flag:"ticks" usage:"number of ticks to run in headless mode, 0 runs until halt"`
	Seed     uint64 `flag:"seed" usage:"seed of the random number generator, 0 picks a random seed"`
	Mute     bool   `flag:"mute" usage:"disable audio output"`
	Hold     bool   `flag:"hold" usage:"keep the window or terminal open after the program halted"`
	Disasm   bool   `flag:"disasm" usage:"print a disassembly of the ROM and exit"`
	Trace    bool   `flag:"trace" usage:"log every executed instruction, implies -debug"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Display contains display options.
type Display struct {
	Scale      int    `flag:"scale" usage:"window and screenshot pixel scale" default:"10"`
	Foreground string `flag:"fg" usage:"foreground color as #RRGGBB" default:"#33FF66"`
	Background string `flag:"bg" usage:"background color as #RRGGBB" default:"#000000"`

	ForegroundColor color.RGBA
	BackgroundColor color.RGBA
}

// Quirks contains the compatibility toggles of the interpreter.
type Quirks struct {
	ShiftUsesVy          bool `flag:"quirk-shift" usage:"8xy6/8xyE shift Vy into Vx"`
	LoadStoreIncrementsI bool `flag:"quirk-loadstore" usage:"Fx55/Fx65 increment I"`
	LogicResetsVF        bool `flag:"quirk-vfreset" usage:"8xy1/8xy2/8xy3 reset VF"`
}

// Disassembler contains options of the disassembly output.
type Disassembler struct {
	ZeroBytes bool `flag:"z" usage:"include trailing zero bytes of the ROM in the disassembly"`
}

// Program options of the emulator.
type Program struct {
	Positional
	Parameters
	Flags
	Display
	Quirks
	Disassembler
}
