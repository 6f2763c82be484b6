package nes

// APU models only the register window the CPU sees at $4000-$4017.
// Synthesis lives outside the core; the latches keep routing honest
// and give the status register something to answer with.
type APU struct {
	regs [0x18]uint8
}

func NewAPU() *APU {
	return &APU{}
}

func (a *APU) readRegister(reg uint16) uint8 {
	if reg == 0x15 {
		return a.regs[reg] // channel status
	}
	// the rest are write-only latches
	return 0
}

func (a *APU) writeRegister(reg uint16, data uint8) {
	a.regs[reg] = data
}
