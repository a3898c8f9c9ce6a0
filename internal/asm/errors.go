package asm

import "fmt"

// Kind categorizes a diagnostic the way the assembler's error stream tags it.
type Kind int

const (
	KindSyntax Kind = iota
	KindAssembler
	KindOutOfMemory
	KindUnrecognized
	KindWarning
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "Syntax Error"
	case KindAssembler:
		return "Assembler Error"
	case KindOutOfMemory:
		return "Out of Memory Error"
	case KindUnrecognized:
		return "Unrecognized Command"
	case KindWarning:
		return "Warning"
	default:
		return "Error"
	}
}

// Diagnostic is a single line-tagged message emitted to the assembler's
// error stream, in the "line N - Category: detail" wire format.
type Diagnostic struct {
	Line    int
	Kind    Kind
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d - %s: %s", d.Line, d.Kind, d.Message)
}

// Diagnostics collects the diagnostics produced by one assembly pass and
// tells the emitter whether the pass may write its ROM bytes.
type Diagnostics struct {
	items []Diagnostic
}

func (d *Diagnostics) Add(line int, kind Kind, format string, args ...any) {
	d.items = append(d.items, Diagnostic{Line: line, Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// HasErrors reports whether any non-warning diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool {
	for _, it := range d.items {
		if it.Kind != KindWarning {
			return true
		}
	}
	return false
}

func (d *Diagnostics) Count() int {
	n := 0
	for _, it := range d.items {
		if it.Kind != KindWarning {
			n++
		}
	}
	return n
}

// All returns every recorded diagnostic in emission order.
func (d *Diagnostics) All() []Diagnostic {
	return d.items
}

// Merge appends another pass's diagnostics, used to aggregate errors from
// a nested include back into the parent pass.
func (d *Diagnostics) Merge(other *Diagnostics) {
	d.items = append(d.items, other.items...)
}
