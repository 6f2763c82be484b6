package nes

// flatMem is a featureless 64KB array for tests that need a real
// address space without bus routing.
type flatMem struct {
	data [0x10000]uint8
}

func (m *flatMem) Read8(addr uint16) uint8 {
	return m.data[addr]
}

func (m *flatMem) Write8(addr uint16, data uint8) {
	m.data[addr] = data
}

func (m *flatMem) load(addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		m.data[addr+uint16(i)] = b
	}
}

func newTestCPU(mem *flatMem, pc uint16) *CPU {
	c := NewCPU(mem)
	c.p = flagU
	c.sp = 0xfd
	c.pc = pc
	return c
}
