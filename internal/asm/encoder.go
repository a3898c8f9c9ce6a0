package asm

import (
	"strings"

	"github.com/hawkins-cpu/cpu16/internal/isa"
)

// encodeLine parses and encodes the tokens of one non-directive, non-blank
// line. On success it returns the two-byte instruction word and true. On
// any validation failure it records a diagnostic against ln and returns
// false; the caller skips emission for that line but keeps assembling.
func encodeLine(toks []string, ln int, diags *Diagnostics) ([2]byte, bool) {
	mnemonic := strings.ToLower(toks[0])
	op, ok := isa.Lookup(mnemonic)
	if !ok {
		diags.Add(ln, KindUnrecognized, "'%s'", toks[0])
		return [2]byte{}, false
	}

	args := toks[1:]
	wantArity := op.Shape.Arity()
	if len(args) != wantArity {
		diags.Add(ln, KindSyntax, "%s command takes %d argument%s", op.DisplayName(), wantArity, plural(wantArity))
		return [2]byte{}, false
	}

	switch op.Shape {
	case isa.ShapeRDRA:
		rD, rA, ok := parseTwoRegisters(args)
		if !ok {
			diags.Add(ln, KindSyntax, "%s command takes %s", op.DisplayName(), op.ArgNoun)
			return [2]byte{}, false
		}
		return packRegs(op.Code, rD, rA, 0), true

	case isa.ShapeRDRARB:
		rD, rA, rB, ok := parseThreeRegisters(args)
		if !ok {
			diags.Add(ln, KindSyntax, "%s command takes %s", op.DisplayName(), op.ArgNoun)
			return [2]byte{}, false
		}
		return packRegs(op.Code, rD, rA, rB), true

	case isa.ShapeRDRAImm4:
		rD, ok1 := parseRegister(args[0])
		rA, ok2 := parseRegisterErr(args[1])
		imm, ok3 := parseImm(args[2], 15)
		if ok1 != nil || !ok2 || !ok3 || !inRange(rD, 0, 15) || !inRange(rA, 0, 15) {
			diags.Add(ln, KindSyntax, "%s command takes %s", op.DisplayName(), op.ArgNoun)
			return [2]byte{}, false
		}
		return packRegs(op.Code, rD, rA, imm), true

	case isa.ShapeRDImm4RB:
		rD, ok1 := parseRegisterErr(args[0])
		imm, ok2 := parseImm(args[1], 15)
		rB, ok3 := parseRegisterErr(args[2])
		if !ok1 || !ok2 || !ok3 {
			diags.Add(ln, KindSyntax, "%s command takes %s", op.DisplayName(), op.ArgNoun)
			return [2]byte{}, false
		}
		return packRegs(op.Code, rD, imm, rB), true

	case isa.ShapeRDImm8:
		rD, ok1 := parseRegisterErr(args[0])
		imm, ok2 := parseImm(args[1], 255)
		if !ok1 || !ok2 {
			diags.Add(ln, KindSyntax, "%s command takes %s", op.DisplayName(), op.ArgNoun)
			return [2]byte{}, false
		}
		return [2]byte{byte(op.Code<<4) | byte(rD), byte(imm)}, true
	}

	// unreachable: every isa.Shape is handled above
	diags.Add(ln, KindUnrecognized, "'%s'", toks[0])
	return [2]byte{}, false
}

func parseRegisterErr(tok string) (int, bool) {
	r, err := parseRegister(tok)
	if err != nil || r < 0 || r > 15 {
		return -1, false
	}
	return r, true
}

func parseTwoRegisters(args []string) (rD, rA int, ok bool) {
	rD, ok1 := parseRegisterErr(args[0])
	rA, ok2 := parseRegisterErr(args[1])
	return rD, rA, ok1 && ok2
}

func parseThreeRegisters(args []string) (rD, rA, rB int, ok bool) {
	rD, ok1 := parseRegisterErr(args[0])
	rA, ok2 := parseRegisterErr(args[1])
	rB, ok3 := parseRegisterErr(args[2])
	return rD, rA, rB, ok1 && ok2 && ok3
}

// parseImm parses a numeric literal and range-checks it against max
// (inclusive). Negative literals are already rejected by parseLiteral.
func parseImm(tok string, max int) (int, bool) {
	v, err := parseLiteral(tok)
	if err != nil || v > max {
		return 0, false
	}
	return v, true
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

// packRegs builds the two-byte word for the three-nibble-operand forms:
// high byte is opcode|rD, low byte is a<<4|b (b is the immediate for
// addi/subi, a is the immediate for inciz/decin, both are registers for
// the rest).
func packRegs(opcode byte, rD, a, b int) [2]byte {
	return [2]byte{
		byte(opcode<<4) | byte(rD&0xF),
		byte(a<<4) | byte(b&0xF),
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
