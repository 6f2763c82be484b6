package nes

import (
	"fmt"
	"log"
)

const stackBase = uint16(0x0100)

// Interrupt vectors.
const (
	vecNMI   = uint16(0xfffa)
	vecReset = uint16(0xfffc)
	vecIRQ   = uint16(0xfffe)
)

const (
	flagC = uint8(1 << iota) // Carry
	flagZ                    // Zero
	flagI                    // Interrupt Disable
	flagD                    // Decimal Mode, held but ignored by ADC/SBC as on the 2A03
	flagB                    // Break Command
	flagU                    // Unused, always reads back as 1
	flagV                    // Overflow
	flagN                    // Negative
)

// IllegalOpcodeError reports a fetched byte with no table entry.
// The CPU halts with PC left at the offending byte; the caller decides
// whether to log, stop or reset.
type IllegalOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode %02X at %04X", e.Opcode, e.PC)
}

type instr struct {
	name       string
	mode       addrMode
	fn         func()
	cycles     uint8
	unofficial bool
}

type CPU struct {
	a  uint8
	x  uint8
	y  uint8
	p  uint8
	sp uint8
	pc uint16

	mem    ReadWriter
	instrs [0x100]instr

	cycles      uint8 // cycles charged by the instruction in flight
	ticsLeft    uint8 // countdown for the cycle-granular Tic surface
	totalCycles uint64

	addrMode     addrMode
	operandAddr  uint16
	operandValue uint8
	pageCrossed  bool

	pendingIRQ bool
	pendingNMI bool
	halted     bool

	tracer func(TraceInfo)
}

func isSameSign(a, b uint8) bool {
	return (a^b)&0x80 == 0
}

func isDiffPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

func NewCPU(mem ReadWriter) *CPU {
	c := &CPU{
		mem: mem,
	}
	c.initInstructions()
	return c
}

func (c CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

func (c CPU) read16(addr uint16) uint16 {
	return uint16(c.read8(addr)) | uint16(c.read8(addr+1))<<8
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

func (c CPU) getFlag(flag uint8) bool {
	return c.p&flag > 0
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.p |= flag
		return
	}
	c.p &= ^flag
}

func (c *CPU) setFlagsZN(value uint8) {
	c.setFlag(flagZ, value == 0)
	c.setFlag(flagN, value&flagN > 0)
}

func (c *CPU) stackPop8() uint8 {
	c.sp++
	return c.read8(stackBase | uint16(c.sp))
}

func (c *CPU) stackPop16() uint16 {
	lo := uint16(c.stackPop8())
	hi := uint16(c.stackPop8())
	return lo | hi<<8
}

func (c *CPU) stackPush8(data uint8) {
	c.write8(stackBase|uint16(c.sp), data)
	c.sp--
}

func (c *CPU) stackPush16(data uint16) {
	lo := uint8(data & 0xff)
	hi := uint8(data >> 8)
	c.stackPush8(hi)
	c.stackPush8(lo)
}

// Reset loads the power-on state: registers cleared, SP at 0xFD and
// PC fetched from the reset vector.
func (c *CPU) Reset() {
	c.a = 0
	c.x = 0
	c.y = 0
	c.p = 0x00 | flagU | flagI
	c.sp = 0xfd
	c.pc = c.read16(vecReset)
	c.cycles = 0
	c.ticsLeft = 7
	c.totalCycles = 7
	c.pendingIRQ = false
	c.pendingNMI = false
	c.halted = false
}

// RequestIRQ latches a maskable interrupt request. It is serviced at
// the next instruction boundary unless the I flag is set; the latch
// stays up until serviced, like a level-held line.
func (c *CPU) RequestIRQ() {
	c.pendingIRQ = true
}

// RequestNMI latches a non-maskable interrupt request.
func (c *CPU) RequestNMI() {
	c.pendingNMI = true
}

func (c *CPU) interrupt(vector uint16) {
	c.stackPush16(c.pc)
	c.setFlag(flagB, false)
	c.setFlag(flagU, true)
	c.stackPush8(c.p)
	c.setFlag(flagI, true)
	c.pc = c.read16(vector)
	c.cycles += 7
}

// Halted reports whether the CPU stopped on an illegal opcode.
func (c CPU) Halted() bool {
	return c.halted
}

// SetTracer installs a per-step observer. Pass nil to disable.
// Tracing is a side channel: execution never depends on it.
func (c *CPU) SetTracer(fn func(TraceInfo)) {
	c.tracer = fn
}

// Step services a pending interrupt or executes exactly one
// instruction, and returns the number of cycles the work consumed.
func (c *CPU) Step() (uint8, error) {
	if c.halted {
		return 0, nil
	}

	if c.pendingNMI {
		c.pendingNMI = false
		c.interrupt(vecNMI)
		return c.settleCycles(), nil
	}
	if c.pendingIRQ && !c.getFlag(flagI) {
		c.pendingIRQ = false
		c.interrupt(vecIRQ)
		return c.settleCycles(), nil
	}

	at := c.pc
	opcode := c.read8(at)
	in := c.instrs[opcode]
	if in.fn == nil {
		c.halted = true
		return 0, IllegalOpcodeError{Opcode: opcode, PC: at}
	}
	c.pc++
	c.fetch(in.mode)
	in.fn()
	c.cycles += in.cycles

	if c.tracer != nil {
		c.tracer(c.snapshot(at, opcode, in))
	}

	c.addrMode = 0
	c.operandAddr = 0
	c.operandValue = 0
	c.pageCrossed = false
	return c.settleCycles(), nil
}

func (c *CPU) settleCycles() uint8 {
	n := c.cycles
	c.cycles = 0
	c.totalCycles += uint64(n)
	return n
}

// Tic burns one clock cycle, starting the next instruction only once
// the previous one has been fully paid for. It returns the cycles
// still owed for the instruction in flight.
func (c *CPU) Tic() uint8 {
	if c.halted {
		return 0
	}
	if c.ticsLeft > 0 {
		c.ticsLeft--
		return c.ticsLeft
	}

	n, err := c.Step()
	if err != nil {
		log.Printf("cpu: %v, halting\n", err)
		return 0
	}
	if n > 0 {
		c.ticsLeft = n - 1
	}
	return c.ticsLeft
}
