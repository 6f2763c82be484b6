package nes

func (c *CPU) set(opcode uint8, name string, mode addrMode, fn func(), cycles uint8) {
	c.instrs[opcode] = instr{name: name, mode: mode, fn: fn, cycles: cycles}
}

func (c *CPU) setU(opcode uint8, name string, mode addrMode, fn func(), cycles uint8) {
	c.instrs[opcode] = instr{name: name, mode: mode, fn: fn, cycles: cycles, unofficial: true}
}

// initInstructions builds the opcode table. Bytes without an entry
// have no instruction at all, legal or otherwise: fetching one raises
// IllegalOpcodeError. That covers the twelve jam opcodes ($02, $12,
// ...) and the unstable leftovers ($6B, $8B, $93, $9B, $9C, $9E, $9F,
// $AB, $CB). Entries registered through setU are unofficial but
// well-behaved and carried for cartridge compatibility.
func (c *CPU) initInstructions() {
	c.set(0x00, "BRK", addrModeIMP, c.brk, 7)
	c.set(0x01, "ORA", addrModeINDX, c.ora, 6)
	c.setU(0x03, "SLO", addrModeINDX, c.slo, 8)
	c.setU(0x04, "NOP", addrModeZP, c.nop, 3)
	c.set(0x05, "ORA", addrModeZP, c.ora, 3)
	c.set(0x06, "ASL", addrModeZP, c.asl, 5)
	c.setU(0x07, "SLO", addrModeZP, c.slo, 5)
	c.set(0x08, "PHP", addrModeIMP, c.php, 3)
	c.set(0x09, "ORA", addrModeIMM, c.ora, 2)
	c.set(0x0a, "ASL", addrModeACC, c.asl, 2)
	c.setU(0x0b, "ANC", addrModeIMM, c.anc, 2)
	c.setU(0x0c, "NOP", addrModeABS, c.nop, 4)
	c.set(0x0d, "ORA", addrModeABS, c.ora, 4)
	c.set(0x0e, "ASL", addrModeABS, c.asl, 6)
	c.setU(0x0f, "SLO", addrModeABS, c.slo, 6)
	c.set(0x10, "BPL", addrModeREL, c.bpl, 2)
	c.set(0x11, "ORA", addrModeINDY, c.ora, 5)
	c.setU(0x13, "SLO", addrModeINDY, c.slo, 8)
	c.setU(0x14, "NOP", addrModeZPX, c.nop, 4)
	c.set(0x15, "ORA", addrModeZPX, c.ora, 4)
	c.set(0x16, "ASL", addrModeZPX, c.asl, 6)
	c.setU(0x17, "SLO", addrModeZPX, c.slo, 6)
	c.set(0x18, "CLC", addrModeIMP, c.clc, 2)
	c.set(0x19, "ORA", addrModeABSY, c.ora, 4)
	c.setU(0x1a, "NOP", addrModeIMP, c.nop, 2)
	c.setU(0x1b, "SLO", addrModeABSY, c.slo, 7)
	c.setU(0x1c, "NOP", addrModeABSX, c.nop, 4)
	c.set(0x1d, "ORA", addrModeABSX, c.ora, 4)
	c.set(0x1e, "ASL", addrModeABSX, c.asl, 7)
	c.setU(0x1f, "SLO", addrModeABSX, c.slo, 7)
	c.set(0x20, "JSR", addrModeABS, c.jsr, 6)
	c.set(0x21, "AND", addrModeINDX, c.and, 6)
	c.setU(0x23, "RLA", addrModeINDX, c.rla, 8)
	c.set(0x24, "BIT", addrModeZP, c.bit, 3)
	c.set(0x25, "AND", addrModeZP, c.and, 3)
	c.set(0x26, "ROL", addrModeZP, c.rol, 5)
	c.setU(0x27, "RLA", addrModeZP, c.rla, 5)
	c.set(0x28, "PLP", addrModeIMP, c.plp, 4)
	c.set(0x29, "AND", addrModeIMM, c.and, 2)
	c.set(0x2a, "ROL", addrModeACC, c.rol, 2)
	c.setU(0x2b, "ANC", addrModeIMM, c.anc, 2)
	c.set(0x2c, "BIT", addrModeABS, c.bit, 4)
	c.set(0x2d, "AND", addrModeABS, c.and, 4)
	c.set(0x2e, "ROL", addrModeABS, c.rol, 6)
	c.setU(0x2f, "RLA", addrModeABS, c.rla, 6)
	c.set(0x30, "BMI", addrModeREL, c.bmi, 2)
	c.set(0x31, "AND", addrModeINDY, c.and, 5)
	c.setU(0x33, "RLA", addrModeINDY, c.rla, 8)
	c.setU(0x34, "NOP", addrModeZPX, c.nop, 4)
	c.set(0x35, "AND", addrModeZPX, c.and, 4)
	c.set(0x36, "ROL", addrModeZPX, c.rol, 6)
	c.setU(0x37, "RLA", addrModeZPX, c.rla, 6)
	c.set(0x38, "SEC", addrModeIMP, c.sec, 2)
	c.set(0x39, "AND", addrModeABSY, c.and, 4)
	c.setU(0x3a, "NOP", addrModeIMP, c.nop, 2)
	c.setU(0x3b, "RLA", addrModeABSY, c.rla, 7)
	c.setU(0x3c, "NOP", addrModeABSX, c.nop, 4)
	c.set(0x3d, "AND", addrModeABSX, c.and, 4)
	c.set(0x3e, "ROL", addrModeABSX, c.rol, 7)
	c.setU(0x3f, "RLA", addrModeABSX, c.rla, 7)
	c.set(0x40, "RTI", addrModeIMP, c.rti, 6)
	c.set(0x41, "EOR", addrModeINDX, c.eor, 6)
	c.setU(0x43, "SRE", addrModeINDX, c.sre, 8)
	c.setU(0x44, "NOP", addrModeZP, c.nop, 3)
	c.set(0x45, "EOR", addrModeZP, c.eor, 3)
	c.set(0x46, "LSR", addrModeZP, c.lsr, 5)
	c.setU(0x47, "SRE", addrModeZP, c.sre, 5)
	c.set(0x48, "PHA", addrModeIMP, c.pha, 3)
	c.set(0x49, "EOR", addrModeIMM, c.eor, 2)
	c.set(0x4a, "LSR", addrModeACC, c.lsr, 2)
	c.setU(0x4b, "ALR", addrModeIMM, c.alr, 2)
	c.set(0x4c, "JMP", addrModeABS, c.jmp, 3)
	c.set(0x4d, "EOR", addrModeABS, c.eor, 4)
	c.set(0x4e, "LSR", addrModeABS, c.lsr, 6)
	c.setU(0x4f, "SRE", addrModeABS, c.sre, 6)
	c.set(0x50, "BVC", addrModeREL, c.bvc, 2)
	c.set(0x51, "EOR", addrModeINDY, c.eor, 5)
	c.setU(0x53, "SRE", addrModeINDY, c.sre, 8)
	c.setU(0x54, "NOP", addrModeZPX, c.nop, 4)
	c.set(0x55, "EOR", addrModeZPX, c.eor, 4)
	c.set(0x56, "LSR", addrModeZPX, c.lsr, 6)
	c.setU(0x57, "SRE", addrModeZPX, c.sre, 6)
	c.set(0x58, "CLI", addrModeIMP, c.cli, 2)
	c.set(0x59, "EOR", addrModeABSY, c.eor, 4)
	c.setU(0x5a, "NOP", addrModeIMP, c.nop, 2)
	c.setU(0x5b, "SRE", addrModeABSY, c.sre, 7)
	c.setU(0x5c, "NOP", addrModeABSX, c.nop, 4)
	c.set(0x5d, "EOR", addrModeABSX, c.eor, 4)
	c.set(0x5e, "LSR", addrModeABSX, c.lsr, 7)
	c.setU(0x5f, "SRE", addrModeABSX, c.sre, 7)
	c.set(0x60, "RTS", addrModeIMP, c.rts, 6)
	c.set(0x61, "ADC", addrModeINDX, c.adc, 6)
	c.setU(0x63, "RRA", addrModeINDX, c.rra, 8)
	c.setU(0x64, "NOP", addrModeZP, c.nop, 3)
	c.set(0x65, "ADC", addrModeZP, c.adc, 3)
	c.set(0x66, "ROR", addrModeZP, c.ror, 5)
	c.setU(0x67, "RRA", addrModeZP, c.rra, 5)
	c.set(0x68, "PLA", addrModeIMP, c.pla, 4)
	c.set(0x69, "ADC", addrModeIMM, c.adc, 2)
	c.set(0x6a, "ROR", addrModeACC, c.ror, 2)
	c.set(0x6c, "JMP", addrModeIND, c.jmp, 5)
	c.set(0x6d, "ADC", addrModeABS, c.adc, 4)
	c.set(0x6e, "ROR", addrModeABS, c.ror, 6)
	c.setU(0x6f, "RRA", addrModeABS, c.rra, 6)
	c.set(0x70, "BVS", addrModeREL, c.bvs, 2)
	c.set(0x71, "ADC", addrModeINDY, c.adc, 5)
	c.setU(0x73, "RRA", addrModeINDY, c.rra, 8)
	c.setU(0x74, "NOP", addrModeZPX, c.nop, 4)
	c.set(0x75, "ADC", addrModeZPX, c.adc, 4)
	c.set(0x76, "ROR", addrModeZPX, c.ror, 6)
	c.setU(0x77, "RRA", addrModeZPX, c.rra, 6)
	c.set(0x78, "SEI", addrModeIMP, c.sei, 2)
	c.set(0x79, "ADC", addrModeABSY, c.adc, 4)
	c.setU(0x7a, "NOP", addrModeIMP, c.nop, 2)
	c.setU(0x7b, "RRA", addrModeABSY, c.rra, 7)
	c.setU(0x7c, "NOP", addrModeABSX, c.nop, 4)
	c.set(0x7d, "ADC", addrModeABSX, c.adc, 4)
	c.set(0x7e, "ROR", addrModeABSX, c.ror, 7)
	c.setU(0x7f, "RRA", addrModeABSX, c.rra, 7)
	c.setU(0x80, "NOP", addrModeIMM, c.nop, 2)
	c.set(0x81, "STA", addrModeINDX, c.sta, 6)
	c.setU(0x82, "NOP", addrModeIMM, c.nop, 2)
	c.setU(0x83, "SAX", addrModeINDX, c.sax, 6)
	c.set(0x84, "STY", addrModeZP, c.sty, 3)
	c.set(0x85, "STA", addrModeZP, c.sta, 3)
	c.set(0x86, "STX", addrModeZP, c.stx, 3)
	c.setU(0x87, "SAX", addrModeZP, c.sax, 3)
	c.set(0x88, "DEY", addrModeIMP, c.dey, 2)
	c.setU(0x89, "NOP", addrModeIMM, c.nop, 2)
	c.set(0x8a, "TXA", addrModeIMP, c.txa, 2)
	c.set(0x8c, "STY", addrModeABS, c.sty, 4)
	c.set(0x8d, "STA", addrModeABS, c.sta, 4)
	c.set(0x8e, "STX", addrModeABS, c.stx, 4)
	c.setU(0x8f, "SAX", addrModeABS, c.sax, 4)
	c.set(0x90, "BCC", addrModeREL, c.bcc, 2)
	c.set(0x91, "STA", addrModeINDY, c.sta, 6)
	c.set(0x94, "STY", addrModeZPX, c.sty, 4)
	c.set(0x95, "STA", addrModeZPX, c.sta, 4)
	c.set(0x96, "STX", addrModeZPY, c.stx, 4)
	c.setU(0x97, "SAX", addrModeZPY, c.sax, 4)
	c.set(0x98, "TYA", addrModeIMP, c.tya, 2)
	c.set(0x99, "STA", addrModeABSY, c.sta, 5)
	c.set(0x9a, "TXS", addrModeIMP, c.txs, 2)
	c.set(0x9d, "STA", addrModeABSX, c.sta, 5)
	c.set(0xa0, "LDY", addrModeIMM, c.ldy, 2)
	c.set(0xa1, "LDA", addrModeINDX, c.lda, 6)
	c.set(0xa2, "LDX", addrModeIMM, c.ldx, 2)
	c.setU(0xa3, "LAX", addrModeINDX, c.lax, 6)
	c.set(0xa4, "LDY", addrModeZP, c.ldy, 3)
	c.set(0xa5, "LDA", addrModeZP, c.lda, 3)
	c.set(0xa6, "LDX", addrModeZP, c.ldx, 3)
	c.setU(0xa7, "LAX", addrModeZP, c.lax, 3)
	c.set(0xa8, "TAY", addrModeIMP, c.tay, 2)
	c.set(0xa9, "LDA", addrModeIMM, c.lda, 2)
	c.set(0xaa, "TAX", addrModeIMP, c.tax, 2)
	c.set(0xac, "LDY", addrModeABS, c.ldy, 4)
	c.set(0xad, "LDA", addrModeABS, c.lda, 4)
	c.set(0xae, "LDX", addrModeABS, c.ldx, 4)
	c.setU(0xaf, "LAX", addrModeABS, c.lax, 4)
	c.set(0xb0, "BCS", addrModeREL, c.bcs, 2)
	c.set(0xb1, "LDA", addrModeINDY, c.lda, 5)
	c.setU(0xb3, "LAX", addrModeINDY, c.lax, 5)
	c.set(0xb4, "LDY", addrModeZPX, c.ldy, 4)
	c.set(0xb5, "LDA", addrModeZPX, c.lda, 4)
	c.set(0xb6, "LDX", addrModeZPY, c.ldx, 4)
	c.setU(0xb7, "LAX", addrModeZPY, c.lax, 4)
	c.set(0xb8, "CLV", addrModeIMP, c.clv, 2)
	c.set(0xb9, "LDA", addrModeABSY, c.lda, 4)
	c.set(0xba, "TSX", addrModeIMP, c.tsx, 2)
	c.setU(0xbb, "LAS", addrModeABSY, c.las, 4)
	c.set(0xbc, "LDY", addrModeABSX, c.ldy, 4)
	c.set(0xbd, "LDA", addrModeABSX, c.lda, 4)
	c.set(0xbe, "LDX", addrModeABSY, c.ldx, 4)
	c.setU(0xbf, "LAX", addrModeABSY, c.lax, 4)
	c.set(0xc0, "CPY", addrModeIMM, c.cpy, 2)
	c.set(0xc1, "CMP", addrModeINDX, c.cmp, 6)
	c.setU(0xc2, "NOP", addrModeIMM, c.nop, 2)
	c.setU(0xc3, "DCP", addrModeINDX, c.dcp, 8)
	c.set(0xc4, "CPY", addrModeZP, c.cpy, 3)
	c.set(0xc5, "CMP", addrModeZP, c.cmp, 3)
	c.set(0xc6, "DEC", addrModeZP, c.dec, 5)
	c.setU(0xc7, "DCP", addrModeZP, c.dcp, 5)
	c.set(0xc8, "INY", addrModeIMP, c.iny, 2)
	c.set(0xc9, "CMP", addrModeIMM, c.cmp, 2)
	c.set(0xca, "DEX", addrModeIMP, c.dex, 2)
	c.set(0xcc, "CPY", addrModeABS, c.cpy, 4)
	c.set(0xcd, "CMP", addrModeABS, c.cmp, 4)
	c.set(0xce, "DEC", addrModeABS, c.dec, 6)
	c.setU(0xcf, "DCP", addrModeABS, c.dcp, 6)
	c.set(0xd0, "BNE", addrModeREL, c.bne, 2)
	c.set(0xd1, "CMP", addrModeINDY, c.cmp, 5)
	c.setU(0xd3, "DCP", addrModeINDY, c.dcp, 8)
	c.setU(0xd4, "NOP", addrModeZPX, c.nop, 4)
	c.set(0xd5, "CMP", addrModeZPX, c.cmp, 4)
	c.set(0xd6, "DEC", addrModeZPX, c.dec, 6)
	c.setU(0xd7, "DCP", addrModeZPX, c.dcp, 6)
	c.set(0xd8, "CLD", addrModeIMP, c.cld, 2)
	c.set(0xd9, "CMP", addrModeABSY, c.cmp, 4)
	c.setU(0xda, "NOP", addrModeIMP, c.nop, 2)
	c.setU(0xdb, "DCP", addrModeABSY, c.dcp, 7)
	c.setU(0xdc, "NOP", addrModeABSX, c.nop, 4)
	c.set(0xdd, "CMP", addrModeABSX, c.cmp, 4)
	c.set(0xde, "DEC", addrModeABSX, c.dec, 7)
	c.setU(0xdf, "DCP", addrModeABSX, c.dcp, 7)
	c.set(0xe0, "CPX", addrModeIMM, c.cpx, 2)
	c.set(0xe1, "SBC", addrModeINDX, c.sbc, 6)
	c.setU(0xe2, "NOP", addrModeIMM, c.nop, 2)
	c.setU(0xe3, "ISC", addrModeINDX, c.isc, 8)
	c.set(0xe4, "CPX", addrModeZP, c.cpx, 3)
	c.set(0xe5, "SBC", addrModeZP, c.sbc, 3)
	c.set(0xe6, "INC", addrModeZP, c.inc, 5)
	c.setU(0xe7, "ISC", addrModeZP, c.isc, 5)
	c.set(0xe8, "INX", addrModeIMP, c.inx, 2)
	c.set(0xe9, "SBC", addrModeIMM, c.sbc, 2)
	c.set(0xea, "NOP", addrModeIMP, c.nop, 2)
	c.setU(0xeb, "SBC", addrModeIMM, c.sbc, 2)
	c.set(0xec, "CPX", addrModeABS, c.cpx, 4)
	c.set(0xed, "SBC", addrModeABS, c.sbc, 4)
	c.set(0xee, "INC", addrModeABS, c.inc, 6)
	c.setU(0xef, "ISC", addrModeABS, c.isc, 6)
	c.set(0xf0, "BEQ", addrModeREL, c.beq, 2)
	c.set(0xf1, "SBC", addrModeINDY, c.sbc, 5)
	c.setU(0xf3, "ISC", addrModeINDY, c.isc, 8)
	c.setU(0xf4, "NOP", addrModeZPX, c.nop, 4)
	c.set(0xf5, "SBC", addrModeZPX, c.sbc, 4)
	c.set(0xf6, "INC", addrModeZPX, c.inc, 6)
	c.setU(0xf7, "ISC", addrModeZPX, c.isc, 6)
	c.set(0xf8, "SED", addrModeIMP, c.sed, 2)
	c.set(0xf9, "SBC", addrModeABSY, c.sbc, 4)
	c.setU(0xfa, "NOP", addrModeIMP, c.nop, 2)
	c.setU(0xfb, "ISC", addrModeABSY, c.isc, 7)
	c.setU(0xfc, "NOP", addrModeABSX, c.nop, 4)
	c.set(0xfd, "SBC", addrModeABSX, c.sbc, 4)
	c.set(0xfe, "INC", addrModeABSX, c.inc, 7)
	c.setU(0xff, "ISC", addrModeABSX, c.isc, 7)
}

// decode looks up the table entry for an opcode byte. ok is false when
// the byte encodes no instruction.
func (c CPU) decode(opcode uint8) (instr, bool) {
	in := c.instrs[opcode]
	return in, in.fn != nil
}

func opcodeIsSupported(opcode uint8) bool {
	fake := NewCPU(nil)
	return fake.instrs[opcode].fn != nil
}

func opcodeIsUnofficial(opcode uint8) bool {
	fake := NewCPU(nil)
	return fake.instrs[opcode].unofficial
}
