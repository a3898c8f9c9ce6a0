// Package vm implements the executor half of the toolchain: decoding a ROM
// image's instruction words, applying the 16-opcode instruction set to a
// register file, and servicing the memory-mapped RAM/display port each
// cycle. It owns the register file, RAM, and display exclusively for the
// process lifetime — nothing outside Machine mutates them.
package vm

import "github.com/hawkins-cpu/cpu16/internal/isa"

// Machine is the complete emulated state: registers, memory, and the ROM
// the executor fetches from. The ROM is read-only once loaded.
type Machine struct {
	Reg Registers
	Mem *Memory
	rom [isa.ROMMaxLoad]byte

	Cycle int
}

// NewMachine loads rom (truncated to the machine's ROM capacity if
// oversized) and returns a freshly reset machine.
func NewMachine(rom []byte) *Machine {
	m := &Machine{Mem: NewMemory()}
	copy(m.rom[:], rom)
	return m
}

// Halted reports whether the program counter has crossed the ROM's
// instruction ceiling; the executor stops fetching once this is true.
func (m *Machine) Halted() bool {
	return m.Reg[isa.RegPC] >= isa.ROMMaxInstr
}

// fetch reads the instruction word at the current program counter.
func (m *Machine) fetch() uint16 {
	i := int(m.Reg[isa.RegPC]) * 2
	return uint16(m.rom[i])<<8 | uint16(m.rom[i+1])
}

// readPort services the pre-instruction memory-port read: when reg13's
// write-mode bit is clear, reg6's low byte is loaded from RAM or the
// display per reg13/reg14, leaving reg6's high byte untouched.
func (m *Machine) readPort() {
	cmd, addr := m.Reg[isa.RegOutCmd], m.Reg[isa.RegOutAdr]
	if cmd&0x8000 != 0 {
		return
	}
	m.Reg[isa.RegInput] = (m.Reg[isa.RegInput] & 0xFF00) | uint16(m.Mem.Read(cmd, addr))
}

// writePort services the post-instruction memory-port write: when reg13's
// write-mode bit is set, reg13's low byte is stored to RAM or the display
// per reg13/reg14 as they stand after the instruction ran.
func (m *Machine) writePort() {
	cmd, addr := m.Reg[isa.RegOutCmd], m.Reg[isa.RegOutAdr]
	if cmd&0x8000 == 0 {
		return
	}
	m.Mem.Write(cmd, addr, byte(cmd))
}

// StepResult captures the state of one cycle as it appeared at fetch time,
// for the presenter to render — by the time Step returns, the PC may
// already have moved on to the next instruction.
type StepResult struct {
	PC          uint16
	Instruction uint16
}

// Step executes exactly one cycle: fetch, memory-port read, instruction
// execution (with its PC-increment policy), memory-port write. It returns
// an error only for an undefined opcode, which cannot occur by
// construction since the opcode table is exhaustive over its 4 bits.
func (m *Machine) Step() (StepResult, error) {
	pc := m.Reg[isa.RegPC]
	word := m.fetch()
	opcode, rD, rA, rB := Decode(word)

	m.readPort()

	fired, err := execute(&m.Reg, opcode, rD, rA, rB)
	if err != nil {
		return StepResult{PC: pc, Instruction: word}, err
	}

	suppressIncrement := rD == isa.RegPC && fired
	if !suppressIncrement {
		m.Reg[isa.RegPC]++
	}

	m.writePort()

	m.Cycle++
	return StepResult{PC: pc, Instruction: word}, nil
}
