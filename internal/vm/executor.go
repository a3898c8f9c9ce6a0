package vm

import (
	"fmt"

	"github.com/hawkins-cpu/cpu16/internal/isa"
)

// Registers is the 16-entry register file.
type Registers [16]uint16

// execute applies the semantics of one decoded instruction to reg. It
// returns fired = true unless the instruction is one of the conditional-move
// family (opcodes 10-15) and its guard evaluated false — a guarded no-op.
// fired only matters to the caller when rD == isa.RegPC; the spec's
// PC-increment policy is computed from it there.
//
// Register 6 is read-only to the executor: any instruction targeting it is
// applied for guard-evaluation purposes only, never written.
func execute(reg *Registers, opcode, rD, rA, rB byte) (fired bool, err error) {
	writable := rD != isa.RegInput

	set := func(v uint16) {
		if writable {
			reg[rD] = v
		}
	}

	switch opcode {
	case 0: // MOVE
		set(reg[rA])
		return true, nil
	case 1: // NOT
		set(^reg[rA])
		return true, nil
	case 2: // AND
		set(reg[rA] & reg[rB])
		return true, nil
	case 3: // OR
		set(reg[rA] | reg[rB])
		return true, nil
	case 4: // ADD
		set(reg[rA] + reg[rB])
		return true, nil
	case 5: // SUB
		set(reg[rA] - reg[rB])
		return true, nil
	case 6: // ADDI
		set(reg[rA] + uint16(rB))
		return true, nil
	case 7: // SUBI
		set(reg[rA] - uint16(rB))
		return true, nil
	case 8: // SET
		set(uint16(rA)<<4 | uint16(rB))
		return true, nil
	case 9: // SETH
		if writable {
			reg[rD] = (reg[rD] & 0x00FF) | (uint16(rA)<<4|uint16(rB))<<8
		}
		return true, nil
	case 10: // INCIZ
		if reg[rB] == 0 {
			set(reg[rD] + uint16(rA))
			return true, nil
		}
		return false, nil
	case 11: // DECIN
		if reg[rB]&0x8000 != 0 {
			set(reg[rD] - uint16(rA))
			return true, nil
		}
		return false, nil
	case 12: // MOVEZ
		if reg[rB] == 0 {
			set(reg[rA])
			return true, nil
		}
		return false, nil
	case 13: // MOVEX
		if reg[rB] != 0 {
			set(reg[rA])
			return true, nil
		}
		return false, nil
	case 14: // MOVEP
		if reg[rB]&0x8000 == 0 {
			set(reg[rA])
			return true, nil
		}
		return false, nil
	case 15: // MOVEN
		if reg[rB]&0x8000 != 0 {
			set(reg[rA])
			return true, nil
		}
		return false, nil
	default:
		return false, fmt.Errorf("undefined opcode %#x", opcode)
	}
}
