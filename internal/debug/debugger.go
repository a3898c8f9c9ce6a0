// Package debug implements a minimal breakpoint/single-step front end over
// a vm.Machine, split the way the teacher's debugger package separates
// headless run state from its presentation: Debugger holds breakpoints and
// drives Step/Continue, and RunREPL runs the command loop over a
// caller-supplied input reader and output writer.
package debug

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hawkins-cpu/cpu16/internal/presenter"
	"github.com/hawkins-cpu/cpu16/internal/vm"
)

// Debugger wraps a Machine with a breakpoint set keyed on instruction
// index (the value reg[15] holds before the breakpointed instruction
// executes).
type Debugger struct {
	Machine     *vm.Machine
	Breakpoints map[uint16]bool
}

// New wraps m for interactive stepping.
func New(m *vm.Machine) *Debugger {
	return &Debugger{Machine: m, Breakpoints: make(map[uint16]bool)}
}

// SetBreakpoint arms a breakpoint at the given instruction index.
func (d *Debugger) SetBreakpoint(addr uint16) {
	d.Breakpoints[addr] = true
}

// AtBreakpoint reports whether the machine's current PC has an armed
// breakpoint.
func (d *Debugger) AtBreakpoint() bool {
	return d.Breakpoints[d.Machine.Reg[15]]
}

// Step executes exactly one cycle and reports it to w in the plain text
// presenter's layout.
func (d *Debugger) Step(w io.Writer) error {
	res, err := d.Machine.Step()
	if err != nil {
		return err
	}
	presenter.RenderCycle(w, d.Machine, d.Machine.Cycle, res)
	return nil
}

// Continue always executes at least one cycle (so re-issuing "continue"
// from a just-hit breakpoint makes forward progress), then keeps stepping
// until the machine halts or an armed breakpoint is reached.
func (d *Debugger) Continue(w io.Writer) error {
	for {
		if err := d.Step(w); err != nil {
			return err
		}
		if d.Machine.Halted() {
			return nil
		}
		if d.AtBreakpoint() {
			fmt.Fprintf(w, "stopped at breakpoint, pc=%d\n", d.Machine.Reg[15])
			return nil
		}
	}
}

// RunREPL reads debugger commands from r, one per line, writing output and
// prompts to w, until "quit"/"q" or EOF.
func (d *Debugger) RunREPL(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "(cpu16-debug) ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "step", "s":
			if d.Machine.Halted() {
				fmt.Fprintln(w, "machine halted")
				continue
			}
			if err := d.Step(w); err != nil {
				return err
			}
		case "continue", "c":
			if err := d.Continue(w); err != nil {
				return err
			}
		case "break", "b":
			if len(fields) < 2 {
				fmt.Fprintln(w, "usage: break <addr>")
				continue
			}
			addr, err := strconv.ParseUint(fields[1], 10, 16)
			if err != nil {
				fmt.Fprintf(w, "bad address %q\n", fields[1])
				continue
			}
			d.SetBreakpoint(uint16(addr))
		case "regs":
			for i := 0; i < 16; i++ {
				fmt.Fprintf(w, "r%X = %04x\n", i, d.Machine.Reg[i])
			}
		case "quit", "q":
			return nil
		default:
			fmt.Fprintf(w, "unknown command %q\n", fields[0])
		}
	}
}
