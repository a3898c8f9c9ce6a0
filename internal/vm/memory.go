package vm

import "github.com/hawkins-cpu/cpu16/internal/isa"

// Memory is the machine's RAM and the 16-byte bitmap display it shares one
// address-decode scheme with. Ownership is exclusive to the executor for
// the process lifetime.
type Memory struct {
	RAM     [isa.RAMSize]byte
	Display [isa.DisplayCols]byte
}

// NewMemory returns a zeroed RAM and display.
func NewMemory() *Memory {
	return &Memory{}
}

// decodeAddress picks the byte addressed by reg14 under the mode encoded in
// reg13's bit 14: the display (indexed mod 16) if set, RAM (indexed by the
// full 16-bit address) otherwise.
func (m *Memory) decodeAddress(cmd, addr uint16) (target *byte) {
	if cmd&0x4000 != 0 {
		return &m.Display[addr&0x0F]
	}
	return &m.RAM[addr]
}

// Read returns the byte addressed by cmd/addr, used for the pre-instruction
// memory-port read into the input register.
func (m *Memory) Read(cmd, addr uint16) byte {
	return *m.decodeAddress(cmd, addr)
}

// Write stores value at the byte addressed by cmd/addr, used for the
// post-instruction memory-port write.
func (m *Memory) Write(cmd, addr uint16, value byte) {
	*m.decodeAddress(cmd, addr) = value
}
