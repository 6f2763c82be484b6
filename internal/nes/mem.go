package nes

// ReadWriter is the CPU-facing bus contract. Every 16-bit address
// resolves to exactly one owning region; the routing below is total,
// so an unroutable access is impossible by construction.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

// CPU address space:
//
//	$0000-$07FF: 2 KB internal RAM
//	$0800-$1FFF: mirrors of the RAM, every $800
//	$2000-$2007: PPU registers
//	$2008-$3FFF: mirrors of the PPU registers, every 8 bytes
//	$4000-$4017: APU and I/O registers
//	$4018-$401F: test-mode registers, normally disabled
//	$4020-$FFFF: cartridge space
type cpuMemory struct {
	bus *Bus
}

func (b *Bus) newCPUMemory() *cpuMemory {
	return &cpuMemory{bus: b}
}

func (m cpuMemory) Read8(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return m.bus.ram.Read8(addr & 0x07ff)
	case addr < 0x4000:
		return m.bus.ppu.readRegister(addr & 0x7)
	case addr < 0x4018:
		return m.bus.apu.readRegister(addr - 0x4000)
	case addr < 0x4020:
		return 0 // disabled test registers
	default:
		return m.bus.cart.Read8(addr)
	}
}

func (m *cpuMemory) Write8(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		m.bus.ram.Write8(addr&0x07ff, data)
	case addr < 0x4000:
		m.bus.ppu.writeRegister(addr&0x7, data)
	case addr < 0x4018:
		m.bus.apu.writeRegister(addr-0x4000, data)
	case addr < 0x4020:
		// disabled test registers, dropped
	default:
		m.bus.cart.Write8(addr, data)
	}
}
