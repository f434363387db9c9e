// Package main implements a CHIP-8 ROM disassembler
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	input  string
	output string

	quiet bool
	debug bool
}

func main() {
	options, disasmOptions := readArguments()

	if !options.quiet {
		printBanner(options)
	}

	if err := disasmFile(options, disasmOptions); err != nil {
		fmt.Println(fmt.Errorf("disassembling failed: %w", err))
		os.Exit(1)
	}
}

func readArguments() (optionFlags, disasm.Options) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	options := optionFlags{}
	var disasmOptions disasm.Options

	flags.StringVar(&options.output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.BoolVar(&options.quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&options.debug, "debug", false, "log references that point outside of the ROM")
	flags.BoolVar(&disasmOptions.ZeroBytes, "z", false, "output the trailing zero bytes of the ROM")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) != 1 {
		printBanner(options)
		fmt.Printf("usage: chip8disasm [options] <file to disassemble>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	options.input = args[0]

	return options, disasmOptions
}

func printBanner(options optionFlags) {
	if !options.quiet {
		fmt.Println("[----------------------------------------]")
		fmt.Println("[ chip8disasm - CHIP-8 ROM disassembler  ]")
		fmt.Printf("[----------------------------------------]\n\n")
		fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
	}
}

func disasmFile(options optionFlags, disasmOptions disasm.Options) error {
	rom, err := loader.New().Load(options.input)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	cfg := log.DefaultConfig()
	if options.debug {
		cfg.Level = log.DebugLevel
	}
	dis := disasm.New(log.NewWithConfig(cfg), rom, disasmOptions)

	if options.output == "" {
		if err = dis.Write(os.Stdout); err != nil {
			return fmt.Errorf("processing file: %w", err)
		}
		return nil
	}

	outputFile, err := os.Create(options.output)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", options.output, err)
	}
	if err = dis.Write(outputFile); err != nil {
		_ = outputFile.Close()
		return fmt.Errorf("processing file: %w", err)
	}
	if err = outputFile.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}
