package nes

import "log"

// Bus owns the devices sitting on the CPU's address space and clocks
// them. External device models are reached only through the memory
// routing; nothing pokes the register file directly.
type Bus struct {
	cpu  *CPU
	ppu  *PPU
	apu  *APU
	ram  *RAM
	cart *Cart

	ticCounter uint64
	paused     bool
}

func NewBus() *Bus {
	b := &Bus{}
	b.ram = NewRAM()
	b.ppu = NewPPU()
	b.apu = NewAPU()
	b.cpu = NewCPU(b.newCPUMemory())
	b.ppu.onVBlank = b.cpu.RequestNMI
	return b
}

// LoadCart installs a cartridge and brings the CPU to its reset state.
func (b *Bus) LoadCart(cart *Cart) {
	b.cart = cart
	b.cpu.Reset()
}

func (b *Bus) Reset() {
	b.ram.Reset()
	b.cpu.Reset()
	b.ticCounter = 0
}

// Tic advances the machine by one CPU clock. The PPU runs at three
// times the CPU rate.
func (b *Bus) Tic() {
	if b.paused {
		return
	}
	b.cpu.Tic()
	b.ppu.Tic()
	b.ppu.Tic()
	b.ppu.Tic()
	b.ticCounter++
}

// Step runs one full instruction, or services a pending interrupt, and
// returns its cycle cost. Peripherals are caught up afterwards, for
// callers that drive timing at instruction granularity.
func (b *Bus) Step() (uint8, error) {
	n, err := b.cpu.Step()
	for i := uint8(0); i < n; i++ {
		b.ppu.Tic()
		b.ppu.Tic()
		b.ppu.Tic()
		b.ticCounter++
	}
	return n, err
}

// StepInstruction runs the machine to the next instruction boundary,
// regardless of pause state. Used by the front end's single-step key.
func (b *Bus) StepInstruction() {
	for !b.cpu.halted && b.cpu.ticsLeft > 0 {
		b.cpu.Tic()
		b.ppu.Tic()
		b.ppu.Tic()
		b.ppu.Tic()
		b.ticCounter++
	}
	if _, err := b.Step(); err != nil {
		log.Printf("bus: %v\n", err)
	}
}

func (b *Bus) TogglePause() {
	b.paused = !b.paused
}

func (b Bus) Paused() bool {
	return b.paused
}

func (b Bus) Halted() bool {
	return b.cpu.Halted()
}

func (b *Bus) RequestIRQ() {
	b.cpu.RequestIRQ()
}

func (b *Bus) RequestNMI() {
	b.cpu.RequestNMI()
}

func (b *Bus) SetTracer(fn func(TraceInfo)) {
	b.cpu.SetTracer(fn)
}

func (b *Bus) DebugInfo() TraceInfo {
	return b.cpu.Snapshot()
}

func (b *Bus) Disassemble() map[uint16]string {
	return b.cpu.Disassemble()
}
