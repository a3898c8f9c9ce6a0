// Package asm implements the line-oriented assembler: lexing, operand
// resolution, instruction encoding, and the include/includebin directives,
// all folded into one owned pass-state structure rather than process
// globals, per the translation unit design this toolchain follows.
package asm

import (
	"fmt"
	"os"

	"github.com/hawkins-cpu/cpu16/internal/isa"
)

// Reader abstracts the filesystem so include/includebin can be tested
// without touching disk, and so the CLI can wire in os.ReadFile directly.
type Reader interface {
	ReadFile(path string) ([]byte, error)
}

// OSReader reads files from the real filesystem.
type OSReader struct{}

func (OSReader) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// Pass is the owned state of one assembly run: the growing ROM buffer, its
// write index, and the accumulated diagnostics. It is passed explicitly to
// every step rather than kept in package-level variables, so a nested
// include can run its own pass and merge results back into its parent's.
type Pass struct {
	rom   []byte
	diags Diagnostics
	fs    Reader
}

// NewPass creates an assembly pass backed by the given file reader (used to
// resolve include/includebin paths).
func NewPass(fs Reader) *Pass {
	return &Pass{fs: fs}
}

// Diagnostics returns the diagnostics accumulated so far.
func (p *Pass) Diagnostics() *Diagnostics { return &p.diags }

// Bytes returns the ROM bytes written so far.
func (p *Pass) Bytes() []byte { return p.rom }

// appendByte writes one byte at the current index if it fits within
// ROMMaxAsm; otherwise it records an Out of Memory diagnostic and drops it.
// Processing always continues so every overflowing byte is reported.
func (p *Pass) appendByte(ln int, b byte) {
	if len(p.rom)+1 > isa.ROMMaxAsm {
		p.diags.Add(ln, KindOutOfMemory, "")
		return
	}
	p.rom = append(p.rom, b)
}

func (p *Pass) appendWord(ln int, w [2]byte) {
	p.appendByte(ln, w[0])
	p.appendByte(ln, w[1])
}

func (p *Pass) appendBytes(ln int, bs []byte) {
	for _, b := range bs {
		p.appendByte(ln, b)
	}
}

// Run assembles src line by line, advancing p's ROM and diagnostics.
func (p *Pass) Run(src string) {
	for i, line := range splitLines(src) {
		ln := i + 1
		toks := tokenize(line)
		if len(toks) == 0 {
			continue
		}
		mnemonic := toLowerASCII(toks[0])
		switch mnemonic {
		case "include":
			p.include(ln, toks)
		case "includebin":
			p.includeBin(ln, toks)
		default:
			toks[0] = mnemonic
			if word, ok := encodeLine(toks, ln, &p.diags); ok {
				p.appendWord(ln, word)
			}
		}
	}
}

func (p *Pass) include(ln int, toks []string) {
	if len(toks) < 2 {
		p.diags.Add(ln, KindAssembler, "include statement requires file pointer")
		return
	}
	data, err := p.fs.ReadFile(toks[1])
	if err != nil {
		p.diags.Add(ln, KindAssembler, "File pointer '%s' not valid", toks[1])
		return
	}
	child := NewPass(p.fs)
	child.Run(string(data))
	p.appendBytes(ln, child.Bytes())
	p.diags.Merge(child.Diagnostics())
}

func (p *Pass) includeBin(ln int, toks []string) {
	if len(toks) < 2 {
		p.diags.Add(ln, KindAssembler, "includebin statement requires file pointer")
		return
	}
	data, err := p.fs.ReadFile(toks[1])
	if err != nil {
		p.diags.Add(ln, KindAssembler, "File pointer '%s' not valid", toks[1])
		return
	}
	p.appendBytes(ln, data)
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}

// AssembleStream runs a full assembly pass over src and returns the
// resulting ROM bytes along with the diagnostics produced. It never
// returns an error itself — diagnostics are the error channel, per the
// spec's "never abort mid-pass" design.
func AssembleStream(src string, fs Reader) ([]byte, *Diagnostics) {
	p := NewPass(fs)
	p.Run(src)
	return p.Bytes(), p.Diagnostics()
}

// Summary formats the "Total Bytes Written: N" line the assembler writes
// to its error stream when emission succeeds.
func Summary(n int) string {
	return fmt.Sprintf("Total Bytes Written: %d", n)
}
