package presenter

import (
	"bytes"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/hawkins-cpu/cpu16/internal/vm"
)

// TUI is a live, non-scrolling terminal view of a Machine, built the way
// the teacher's debugger front end composes tview panels over tcell: one
// pane for cycle/PC/instruction status, one for the register file, one for
// the bitmap display.
type TUI struct {
	App          *tview.Application
	statusView   *tview.TextView
	registerView *tview.TextView
	displayView  *tview.TextView

	glyphs      Glyphs
	showDisplay bool
}

// NewTUI builds the panel layout. Quitting ('q' or Ctrl-C) stops App.Run.
func NewTUI(showDisplay bool, glyphs Glyphs) *TUI {
	t := &TUI{
		App:          tview.NewApplication(),
		statusView:   tview.NewTextView().SetDynamicColors(true),
		registerView: tview.NewTextView().SetDynamicColors(true),
		displayView:  tview.NewTextView().SetDynamicColors(true),
		glyphs:       glyphs,
		showDisplay:  showDisplay,
	}
	t.statusView.SetBorder(true).SetTitle(" Cycle ")
	t.registerView.SetBorder(true).SetTitle(" Registers ")
	t.displayView.SetBorder(true).SetTitle(" Display ")

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.statusView, 5, 0, false).
		AddItem(t.registerView, 0, 1, false)

	layout := tview.NewFlex().
		AddItem(right, 0, 1, false)
	if showDisplay {
		layout.AddItem(t.displayView, 2*16+3, 0, false)
	}

	t.App.SetRoot(layout, true)
	t.App.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Rune() == 'q' || ev.Key() == tcell.KeyCtrlC {
			t.App.Stop()
			return nil
		}
		return ev
	})
	return t
}

// Update refreshes the panels with the given cycle's state. Safe to call
// from outside the tview goroutine via QueueUpdateDraw.
func (t *TUI) Update(m *vm.Machine, cycle int, res vm.StepResult) {
	t.App.QueueUpdateDraw(func() {
		var status bytes.Buffer
		fmt.Fprintf(&status, "cycle  %d\npc     %s\ninstr  %s", cycle, formatWord(res.PC), formatWord(res.Instruction))
		t.statusView.SetText(status.String())

		var regs bytes.Buffer
		for i := 0; i < 16; i += 2 {
			fmt.Fprintf(&regs, "%X %s - %s %X\n", i, formatWord(m.Reg[i]), formatWord(m.Reg[i+1]), i+1)
		}
		t.registerView.SetText(regs.String())

		if t.showDisplay {
			var disp bytes.Buffer
			for row := 0; row < 8; row++ {
				mask := byte(1 << uint(7-row))
				for col := 15; col >= 0; col-- {
					if m.Mem.Display[col]&mask != 0 {
						disp.WriteString(t.glyphs.Set)
					} else {
						disp.WriteString(t.glyphs.Clear)
					}
					if col != 0 {
						disp.WriteString(" ")
					}
				}
				disp.WriteString("\n")
			}
			t.displayView.SetText(disp.String())
		}
	})
}

// Run blocks until the user quits the TUI.
func (t *TUI) Run() error {
	return t.App.Run()
}

// Stop ends the TUI's event loop, e.g. once the machine halts.
func (t *TUI) Stop() {
	t.App.Stop()
}
