package asm

import (
	"fmt"
	"strconv"
	"strings"
)

// registerAliases maps the mnemonic register names the source language
// accepts, beyond the plain r0..rf forms, to their register index.
var registerAliases = map[string]int{
	"pc":      15,
	"out0":    13,
	"output0": 13,
	"out1":    14,
	"output1": 14,
	"in":      6,
	"input":   6,
}

// parseRegister resolves a register token (case-insensitive) to its index
// in [0,15]. Accepted forms: the aliases above, and "r" followed by a
// single decimal or hex digit (r0..r9, ra..rf).
func parseRegister(tok string) (int, error) {
	s := strings.ToLower(tok)
	if reg, ok := registerAliases[s]; ok {
		return reg, nil
	}
	if len(s) == 2 && s[0] == 'r' {
		d := s[1]
		switch {
		case d >= '0' && d <= '9':
			return int(d - '0'), nil
		case d >= 'a' && d <= 'f':
			return int(d-'a') + 10, nil
		}
	}
	return -1, fmt.Errorf("not a register: %q", tok)
}

// parseLiteral parses a numeric literal. The first byte selects the base:
// 'x'/'X' for hex, 'b'/'B' for binary, anything else for decimal. Binary
// literals treat every byte after the prefix that isn't '1' as a 0 bit,
// matching the reference assembler; hex digits are case-insensitive.
// Negative values are always rejected — callers only ever want unsigned
// 4-bit or 8-bit immediates.
func parseLiteral(tok string) (int, error) {
	if tok == "" {
		return 0, fmt.Errorf("empty literal")
	}
	var v int
	switch tok[0] {
	case 'x', 'X':
		n, err := strconv.ParseInt(tok[1:], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("bad hex literal %q: %w", tok, err)
		}
		v = int(n)
	case 'b', 'B':
		for i := 1; i < len(tok); i++ {
			v <<= 1
			if tok[i] == '1' {
				v |= 1
			}
		}
	default:
		n, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("bad literal %q: %w", tok, err)
		}
		v = n
	}
	if v < 0 {
		return 0, fmt.Errorf("negative literal not allowed: %q", tok)
	}
	return v, nil
}
