package presenter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hawkins-cpu/cpu16/internal/vm"
)

func TestFormatWordLayout(t *testing.T) {
	got := formatWord(0x000A)
	want := "00000000 00001010"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderCycleContainsRegisterRows(t *testing.T) {
	m := vm.NewMachine(nil)
	m.Reg[0] = 0x0A
	var buf bytes.Buffer
	RenderCycle(&buf, m, 1, vm.StepResult{PC: 0, Instruction: 0x8000})
	out := buf.String()
	for _, want := range []string{"CLOCK CYCLE: 1", "COUNTER:", "INSTRUCTION:", "0 00000000 00001010"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDisplayBorderAndGlyphs(t *testing.T) {
	m := vm.NewMachine(nil)
	m.Mem.Display[15] = 0x80 // top-left pixel set (column 15 leftmost, row 0 = bit7)
	var buf bytes.Buffer
	RenderDisplay(&buf, m, DefaultGlyphs)
	out := buf.String()
	if !strings.Contains(out, "|*") {
		t.Errorf("expected set pixel glyph at left edge:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	border := lines[len(lines)-1]
	if border != strings.Repeat("-", 2*16+1) {
		t.Errorf("unexpected border line %q", border)
	}
}
