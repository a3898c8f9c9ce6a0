package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPortReadRAM(t *testing.T) {
	// mov r0 r0 (no-op on data, just advances pc) with reg13=read-mode/RAM,
	// reg14=addr 5, RAM[5]=0x7A preloaded: reg6 low byte should be updated
	// before the instruction executes.
	rom := romOf(Encode(0, 0, 0, 0))
	m := NewMachine(rom)
	m.Reg[13] = 0x0000 // bit15=0 (read), bit14=0 (RAM)
	m.Reg[14] = 5
	m.Mem.RAM[5] = 0x7A
	m.Reg[6] = 0xFFFF

	_, err := m.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xFF7A), m.Reg[6])
}

func TestMemoryPortReadDisplay(t *testing.T) {
	rom := romOf(Encode(0, 0, 0, 0))
	m := NewMachine(rom)
	m.Reg[13] = 0x4000 // bit15=0 (read), bit14=1 (display)
	m.Reg[14] = 0x13   // & 0x0F -> column 3
	m.Mem.Display[3] = 0x5A

	_, err := m.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x005A), m.Reg[6]&0x00FF)
}

func TestMemoryPortWriteRAM(t *testing.T) {
	rom := romOf(Encode(0, 0, 0, 0)) // mov r0 r0, no effect on out regs
	m := NewMachine(rom)
	m.Reg[13] = 0x80AB // bit15=1 (write), low byte 0xAB, bit14=0 (RAM)
	m.Reg[14] = 10

	_, err := m.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), m.Mem.RAM[10])
}

func TestMemoryPortWriteDisplay(t *testing.T) {
	rom := romOf(Encode(0, 0, 0, 0))
	m := NewMachine(rom)
	m.Reg[13] = 0xC03C // bit15=1 (write), bit14=1 (display), low byte 0x3C
	m.Reg[14] = 7

	_, err := m.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(0x3C), m.Mem.Display[7])
}

func TestMemoryPortNeverReadsAndWritesSameCycle(t *testing.T) {
	// reg13 bit15=0 selects read mode only; RAM must not be written even
	// if other bits happen to be set in a way write mode would use them.
	rom := romOf(Encode(0, 0, 0, 0))
	m := NewMachine(rom)
	m.Reg[13] = 0x00FF // bit15=0 (read), low byte a write would store
	m.Reg[14] = 2
	m.Mem.RAM[2] = 0x11

	before := m.Mem.RAM[2]
	_, err := m.Step()
	require.NoError(t, err)
	assert.Equal(t, before, m.Mem.RAM[2], "read-mode cycle must not mutate RAM")
}

func TestHaltedAtRomCeiling(t *testing.T) {
	m := NewMachine(nil)
	m.Reg[15] = 32767
	assert.True(t, m.Halted())
	m.Reg[15] = 32766
	assert.False(t, m.Halted())
}

func TestRomOversizeIsTruncatedNotPanicked(t *testing.T) {
	huge := make([]byte, 200000)
	m := NewMachine(huge)
	assert.NotNil(t, m)
}
