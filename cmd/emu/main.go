// Command emu loads a ROM image produced by asm and executes it, printing
// the register file and optional bitmap display once per cycle.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hawkins-cpu/cpu16/internal/config"
	"github.com/hawkins-cpu/cpu16/internal/debug"
	"github.com/hawkins-cpu/cpu16/internal/presenter"
	"github.com/hawkins-cpu/cpu16/internal/vm"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "\temu -f <file-path> [-d <delay>] [-s] [-tui] [-debug] [-config <path>]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "\t -f : Input ROM file path")
	fmt.Fprintln(os.Stderr, "\t -d : Optional delay between emulator clock cycles, in ms")
	fmt.Fprintln(os.Stderr, "\t -s : Optional turn off emulator display")
	fmt.Fprintln(os.Stderr, "\t -tui : Render the live terminal panel view instead of scrolling text")
	fmt.Fprintln(os.Stderr, "\t -debug : Start the interactive step debugger instead of free-running")
	fmt.Fprintln(os.Stderr, "\t -config : Override the default config file path")
}

func main() {
	romPath := flag.String("f", "", "Input ROM file path (required)")
	delay := flag.Int("d", -1, "Delay between clock cycles, in ms")
	hideDisplay := flag.Bool("s", false, "Hide the emulator display")
	tuiMode := flag.Bool("tui", false, "Use the live terminal panel view")
	debugMode := flag.Bool("debug", false, "Start the interactive step debugger")
	configPath := flag.String("config", "", "Override the default config file path")
	flag.Parse()

	if *romPath == "" {
		usage()
		os.Exit(1)
	}

	logger := log.New(os.Stderr, "emu: ", log.LstdFlags)

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		logger.Printf("config error, using defaults: %v", err)
		cfg = config.Default()
	}

	delayMS := cfg.Execution.DefaultDelayMS
	if *delay >= 0 {
		delayMS = *delay
	}

	rom, err := os.ReadFile(*romPath)
	if err != nil {
		logger.Fatalf("failed to read ROM file %q: %v", *romPath, err)
	}

	machine := vm.NewMachine(rom)
	showDisplay := cfg.Display.ShowByDefault && !*hideDisplay
	glyphs := presenter.Glyphs{Set: cfg.Display.SetGlyph, Clear: cfg.Display.ClearGlyph}

	switch {
	case *debugMode:
		runDebugger(machine, os.Stdin, os.Stdout)
	case *tuiMode:
		runTUI(machine, showDisplay, glyphs, delayMS)
	default:
		runPlain(machine, showDisplay, glyphs, delayMS)
	}
}

func runPlain(m *vm.Machine, showDisplay bool, glyphs presenter.Glyphs, delayMS int) {
	for !m.Halted() {
		res, err := m.Step()
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL ERROR - %v\n", err)
			os.Exit(1)
		}
		presenter.RenderCycle(os.Stdout, m, m.Cycle, res)
		if showDisplay {
			presenter.RenderDisplay(os.Stdout, m, glyphs)
		}
		if !m.Halted() {
			time.Sleep(time.Duration(delayMS) * time.Millisecond)
		}
	}
}

func runTUI(m *vm.Machine, showDisplay bool, glyphs presenter.Glyphs, delayMS int) {
	ui := presenter.NewTUI(showDisplay, glyphs)
	go func() {
		for !m.Halted() {
			res, err := m.Step()
			if err != nil {
				ui.Stop()
				return
			}
			ui.Update(m, m.Cycle, res)
			if m.Halted() {
				return
			}
			time.Sleep(time.Duration(delayMS) * time.Millisecond)
		}
	}()
	if err := ui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		os.Exit(1)
	}
}

func runDebugger(m *vm.Machine, in *os.File, out *os.File) {
	d := debug.New(m)
	if err := d.RunREPL(in, out); err != nil {
		fmt.Fprintf(out, "FATAL ERROR - %v\n", err)
		os.Exit(1)
	}
}
