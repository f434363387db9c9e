// Package app provides the main application workflow of the emulator.
package app

import (
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))
}

// PrintInfo prints the information about the loaded ROM and the chosen
// emulation settings.
func PrintInfo(logger *log.Logger, opts options.Program, romSize int) {
	if opts.Quiet {
		return
	}

	if opts.Disasm {
		logger.Info("Disassembling CHIP-8 ROM",
			log.String("file", opts.Input),
			log.Int("size", romSize),
		)
		return
	}

	logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", romSize),
		log.String("frontend", opts.Frontend),
		log.Int("speed", opts.Speed),
		log.String("quirks", quirkNames(opts.Quirks)),
	)
}

func quirkNames(quirks options.Quirks) string {
	var names []string
	if quirks.ShiftUsesVy {
		names = append(names, "shift")
	}
	if quirks.LoadStoreIncrementsI {
		names = append(names, "loadstore")
	}
	if quirks.LogicResetsVF {
		names = append(names, "vfreset")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}
