package nes

// PPU models the register window the CPU sees at $2000-$2007 and the
// frame timing that raises NMI. Rendering is an external concern;
// what matters to the core is that reads and writes route here and
// that vblank behaves.
type PPU struct {
	ppuctrl   uint8
	ppumask   uint8
	ppustatus uint8
	oamaddr   uint8
	oamdata   uint8
	ppuscroll uint8
	ppuaddr   uint8
	ppudata   uint8

	cycles   uint16
	scanLine uint16
	frame    uint64

	onVBlank func()
}

func NewPPU() *PPU {
	return &PPU{}
}

func (p *PPU) readRegister(reg uint16) uint8 {
	switch reg {
	case 0x2:
		// reading the status register clears the vblank bit
		v := p.ppustatus
		p.ppustatus &= 0x7f
		return v
	case 0x4:
		return p.oamdata
	case 0x7:
		return p.ppudata
	}
	// write-only latches
	return 0
}

func (p *PPU) writeRegister(reg uint16, data uint8) {
	switch reg {
	case 0x0:
		p.ppuctrl = data
	case 0x1:
		p.ppumask = data
	case 0x2:
		// status is read-only
	case 0x3:
		p.oamaddr = data
	case 0x4:
		p.oamdata = data
	case 0x5:
		p.ppuscroll = data
	case 0x6:
		p.ppuaddr = data
	case 0x7:
		p.ppudata = data
	}
}

// Tic advances one PPU cycle: 341 cycles per scanline, 262 scanlines
// per frame. Vblank starts on scanline 241 and ends on the pre-render
// line.
func (p *PPU) Tic() {
	p.cycles++
	if p.cycles < 341 {
		return
	}
	p.cycles = 0
	p.scanLine++

	switch {
	case p.scanLine == 241:
		p.ppustatus |= 0x80
		if p.ppuctrl&0x80 != 0 && p.onVBlank != nil {
			p.onVBlank()
		}
	case p.scanLine > 260:
		p.scanLine = 0
		p.ppustatus &= 0x7f
		p.frame++
	}
}
