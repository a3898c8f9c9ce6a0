// Package presenter renders a Machine's register file and display, either
// as the plain scrolling text the reference emulator prints each cycle, or
// as a live terminal panel layout built the way the teacher's debugger
// front end is built.
package presenter

import (
	"fmt"
	"io"

	"github.com/hawkins-cpu/cpu16/internal/vm"
)

// Glyphs selects the characters used to render a set/clear display pixel.
type Glyphs struct {
	Set   string
	Clear string
}

// DefaultGlyphs matches the reference emulator's "*"/" " rendering.
var DefaultGlyphs = Glyphs{Set: "*", Clear: " "}

// formatWord renders a 16-bit value as space-separated binary bytes, e.g.
// "00000000 00001010".
func formatWord(v uint16) string {
	b := make([]byte, 17)
	for i := 0; i < 16; i++ {
		bitPos := 15 - i
		pos := i
		if i >= 8 {
			pos++
		}
		if v&(1<<uint(bitPos)) != 0 {
			b[pos] = '1'
		} else {
			b[pos] = '0'
		}
	}
	b[8] = ' '
	return string(b)
}

// RenderCycle prints one cycle's status and register file in the reference
// emulator's text layout: clock cycle number, counter, instruction word,
// then the full register file in hex-labeled binary pairs.
func RenderCycle(w io.Writer, m *vm.Machine, cycle int, res vm.StepResult) {
	fmt.Fprintf(w, "CLOCK CYCLE: %d\n", cycle)
	fmt.Fprintf(w, "    COUNTER: %s\n", formatWord(res.PC))
	fmt.Fprintf(w, "INSTRUCTION: %s\n\n", formatWord(res.Instruction))
	fmt.Fprintln(w, "--------------- REGISTERS ---------------")
	fmt.Fprintln(w)
	for i := 0; i < 16; i += 2 {
		fmt.Fprintf(w, "%X %s - %s %X\n", i, formatWord(m.Reg[i]), formatWord(m.Reg[i+1]), i+1)
	}
}

// RenderDisplay prints the 16x8 bitmap display, column 15 leftmost, column
// 0 rightmost, bordered above/below with '-' and at each side with '|'.
func RenderDisplay(w io.Writer, m *vm.Machine, g Glyphs) {
	const cols = 16
	border := make([]byte, 2*cols+1)
	for i := range border {
		border[i] = '-'
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "---------------- SCREEN -----------------")
	fmt.Fprintln(w)
	fmt.Fprintln(w, string(border))
	for row := 0; row < 8; row++ {
		mask := byte(1 << uint(7-row))
		fmt.Fprint(w, "|")
		for col := cols - 1; col >= 0; col-- {
			if m.Mem.Display[col]&mask != 0 {
				fmt.Fprint(w, g.Set)
			} else {
				fmt.Fprint(w, g.Clear)
			}
			if col != 0 {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprintln(w, "|")
	}
	fmt.Fprintln(w, string(border))
}
