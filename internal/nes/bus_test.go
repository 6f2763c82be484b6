package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBus builds a machine around a 32KB flat cartridge whose reset
// vector points at $8000. prog, if given, is placed there.
func newTestBus(t *testing.T, prog ...uint8) *Bus {
	t.Helper()

	prg := make([]uint8, 2*prgBankSizeBytes)
	copy(prg, prog)
	prg[0x7ffc] = 0x00 // reset vector -> $8000
	prg[0x7ffd] = 0x80

	cart, err := NewCartFromBanks(2, prg)
	require.NoError(t, err)

	bus := NewBus()
	bus.LoadCart(cart)
	return bus
}

func Test_Bus_RAMMirroring(t *testing.T) {
	bus := newTestBus(t)
	mem := bus.cpu.mem

	mem.Write8(0x0042, 0xab)
	for _, mirror := range []uint16{0x0042, 0x0842, 0x1042, 0x1842} {
		assert.Equal(t, uint8(0xab), mem.Read8(mirror), "RAM mirror at %04X", mirror)
	}

	// a write through a mirror lands in the same cell
	mem.Write8(0x1fff, 0xcd)
	assert.Equal(t, uint8(0xcd), mem.Read8(0x07ff))
}

func Test_Bus_ROMWriteIgnored(t *testing.T) {
	bus := newTestBus(t)
	mem := bus.cpu.mem

	before := mem.Read8(0x8000)
	mem.Write8(0x8000, ^before)
	assert.Equal(t, before, mem.Read8(0x8000))
}

func Test_Bus_PPURegisterMirroring(t *testing.T) {
	bus := newTestBus(t)
	mem := bus.cpu.mem

	// OAMDATA sits at $2004 and repeats every 8 bytes up to $3FFF
	mem.Write8(0x2004, 0x5a)
	assert.Equal(t, uint8(0x5a), mem.Read8(0x2004))
	assert.Equal(t, uint8(0x5a), mem.Read8(0x200c))
	assert.Equal(t, uint8(0x5a), mem.Read8(0x3ffc))

	mem.Write8(0x3ffc, 0xa5)
	assert.Equal(t, uint8(0xa5), mem.Read8(0x2004))
}

func Test_Bus_PPUStatusReadClearsVBlank(t *testing.T) {
	bus := newTestBus(t)
	mem := bus.cpu.mem
	bus.ppu.ppustatus = 0x80

	assert.Equal(t, uint8(0x80), mem.Read8(0x2002))
	assert.Equal(t, uint8(0x00), mem.Read8(0x2002), "vblank bit clears on read")
}

func Test_Bus_APUAndDisabledWindow(t *testing.T) {
	bus := newTestBus(t)
	mem := bus.cpu.mem

	mem.Write8(0x4015, 0x1f)
	assert.Equal(t, uint8(0x1f), mem.Read8(0x4015))

	// write-only APU registers read back as open bus zero
	mem.Write8(0x4000, 0x77)
	assert.Equal(t, uint8(0x00), mem.Read8(0x4000))

	// the test-mode window is disabled
	mem.Write8(0x4018, 0xff)
	assert.Equal(t, uint8(0x00), mem.Read8(0x4018))
}

func Test_Bus_SRAM(t *testing.T) {
	bus := newTestBus(t)
	mem := bus.cpu.mem

	mem.Write8(0x6000, 0x11)
	mem.Write8(0x7fff, 0x22)
	assert.Equal(t, uint8(0x11), mem.Read8(0x6000))
	assert.Equal(t, uint8(0x22), mem.Read8(0x7fff))

	// expansion area below SRAM is unpopulated
	mem.Write8(0x5000, 0x33)
	assert.Equal(t, uint8(0x00), mem.Read8(0x5000))
}

func Test_Bus_ResetVector(t *testing.T) {
	bus := newTestBus(t)
	assert.Equal(t, uint16(0x8000), bus.cpu.pc)
}

func Test_Bus_Step(t *testing.T) {
	bus := newTestBus(t,
		0xa9, 0x05, // LDA #$05
		0x8d, 0x00, 0x02, // STA $0200
	)

	n, err := bus.Step()
	require.NoError(t, err)
	assert.Equal(t, uint8(2), n)

	n, err = bus.Step()
	require.NoError(t, err)
	assert.Equal(t, uint8(4), n)
	assert.Equal(t, uint8(0x05), bus.ram.Read8(0x0200))
}

func Test_Bus_NMI(t *testing.T) {
	bus := newTestBus(t, 0xea) // NOP
	// NMI vector -> $9000
	bus.cart.prgMem[0x7ffa] = 0x00
	bus.cart.prgMem[0x7ffb] = 0x90

	bus.RequestNMI()
	n, err := bus.Step()
	require.NoError(t, err)

	assert.Equal(t, uint8(7), n)
	assert.Equal(t, uint16(0x9000), bus.cpu.pc)
}

func Test_Bus_PauseAndSingleStep(t *testing.T) {
	bus := newTestBus(t, 0xea, 0xea) // NOP NOP

	bus.TogglePause()
	require.True(t, bus.Paused())
	for i := 0; i < 10; i++ {
		bus.Tic()
	}
	assert.Equal(t, uint16(0x8000), bus.cpu.pc, "paused bus does not advance")

	bus.StepInstruction()
	assert.Equal(t, uint16(0x8001), bus.cpu.pc)
}
