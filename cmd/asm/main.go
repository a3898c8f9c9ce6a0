// Command asm assembles CSC364-style source read from stdin into a ROM
// image written to stdout. Diagnostics and the final byte-count summary go
// to stderr; if any error was reported, stdout is left untouched.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hawkins-cpu/cpu16/internal/asm"
)

func main() {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "asm: failed to read stdin: %v\n", err)
		return
	}

	rom, diags := asm.AssembleStream(string(src), asm.OSReader{})

	for _, d := range diags.All() {
		fmt.Fprintln(os.Stderr, d.String())
	}

	if diags.HasErrors() {
		return
	}

	fmt.Fprintln(os.Stderr, asm.Summary(len(rom)))
	os.Stdout.Write(rom)
}
