package nes

const ramSizeBytes = 0x800

// RAM is the console's 2KB of work memory. The mirroring of the
// physical array across the $0000-$1FFF window happens in the bus
// routing, not here.
type RAM struct {
	data [ramSizeBytes]uint8
}

func NewRAM() *RAM {
	return &RAM{}
}

func (r *RAM) Read8(addr uint16) uint8 {
	return r.data[addr]
}

func (r *RAM) Write8(addr uint16, data uint8) {
	r.data[addr] = data
}

func (r *RAM) Reset() {
	r.data = [ramSizeBytes]uint8{}
}
