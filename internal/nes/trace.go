package nes

import "fmt"

// TraceInfo is a post-step snapshot of the processor, reported through
// the optional tracer and the debug overlay. Cycles counts from
// power-on, so consecutive snapshots give per-instruction costs.
type TraceInfo struct {
	PC     uint16 // address the instruction was fetched from
	Opcode uint8
	Name   string
	Mode   string

	A  uint8
	X  uint8
	Y  uint8
	P  uint8
	SP uint8

	Cycles uint64
}

// StatusString renders the P register in NV-BDIZC order, lowercase for
// cleared bits.
func (ti TraceInfo) StatusString() string {
	buf := []byte("nv-bdizc")
	bits := [8]uint8{flagN, flagV, 0, flagB, flagD, flagI, flagZ, flagC}
	for i, bit := range bits {
		if bit != 0 && ti.P&bit != 0 {
			buf[i] -= 'a' - 'A'
		}
	}
	return string(buf)
}

func (ti TraceInfo) String() string {
	return fmt.Sprintf("%04X  %02X  %s {%s}  A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		ti.PC, ti.Opcode, ti.Name, ti.Mode, ti.A, ti.X, ti.Y, ti.P, ti.SP, ti.Cycles)
}

// snapshot captures the state right after an instruction executed.
// Cycles reflects the count at the instruction's start, matching what
// a nestest-style log records per line.
func (c *CPU) snapshot(pc uint16, opcode uint8, in instr) TraceInfo {
	return TraceInfo{
		PC:     pc,
		Opcode: opcode,
		Name:   in.name,
		Mode:   in.mode.String(),
		A:      c.a,
		X:      c.x,
		Y:      c.y,
		P:      c.p,
		SP:     c.sp,
		Cycles: c.totalCycles,
	}
}

// Snapshot reports the current register file and the instruction about
// to execute, for debug overlays.
func (c *CPU) Snapshot() TraceInfo {
	opcode := c.read8(c.pc)
	in := c.instrs[opcode]
	name := in.name
	if in.fn == nil {
		name = "???"
	}
	return TraceInfo{
		PC:     c.pc,
		Opcode: opcode,
		Name:   name,
		Mode:   in.mode.String(),
		A:      c.a,
		X:      c.x,
		Y:      c.y,
		P:      c.p,
		SP:     c.sp,
		Cycles: c.totalCycles,
	}
}
