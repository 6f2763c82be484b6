package nes

type addrMode uint8

const (
	addrModeIMM  addrMode = iota + 1 // Immediate
	addrModeZP                       // Zero Page
	addrModeZPX                      // Zero Page X
	addrModeZPY                      // Zero Page Y
	addrModeABS                      // Absolute
	addrModeABSX                     // Absolute X
	addrModeABSY                     // Absolute Y
	addrModeIND                      // Indirect
	addrModeINDX                     // Indexed Indirect X
	addrModeINDY                     // Indirect Indexed Y
	addrModeREL                      // Relative
	addrModeACC                      // Accumulator
	addrModeIMP                      // Implied
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMM:
		return "IMM"
	case addrModeZP:
		return "ZP"
	case addrModeZPX:
		return "ZPX"
	case addrModeZPY:
		return "ZPY"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeABSY:
		return "ABSY"
	case addrModeIND:
		return "IND"
	case addrModeINDX:
		return "INDX"
	case addrModeINDY:
		return "INDY"
	case addrModeREL:
		return "REL"
	case addrModeACC:
		return "ACC"
	case addrModeIMP:
		return "IMP"
	}
	return "???"
}

// operandSize reports how many instruction bytes the mode consumes
// after the opcode.
func (mode addrMode) operandSize() uint16 {
	switch mode {
	case addrModeABS, addrModeABSX, addrModeABSY, addrModeIND:
		return 2
	case addrModeACC, addrModeIMP:
		return 0
	}
	return 1
}

// fetch resolves the operand for mode, consuming trailing instruction
// bytes and advancing PC past them. The result lands in operandAddr
// and operandValue; pageCrossed marks the indexed reads that cost an
// extra cycle.
func (c *CPU) fetch(mode addrMode) {
	c.addrMode = mode
	c.pageCrossed = false
	c.operandAddr = 0
	c.operandValue = 0

	switch mode {
	case addrModeIMM:
		c.operandAddr = c.pc
		c.pc++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeZP:
		c.operandAddr = uint16(c.read8(c.pc))
		c.pc++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeZPX:
		// index addition wraps within the zero page, no carry into the
		// high byte
		c.operandAddr = uint16(c.read8(c.pc) + c.x)
		c.pc++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeZPY:
		c.operandAddr = uint16(c.read8(c.pc) + c.y)
		c.pc++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeABS:
		c.operandAddr = c.read16(c.pc)
		c.pc += 2
		c.operandValue = c.read8(c.operandAddr)

	case addrModeABSX:
		base := c.read16(c.pc)
		c.pc += 2
		c.operandAddr = base + uint16(c.x)
		c.operandValue = c.read8(c.operandAddr)
		c.pageCrossed = isDiffPage(base, c.operandAddr)

	case addrModeABSY:
		base := c.read16(c.pc)
		c.pc += 2
		c.operandAddr = base + uint16(c.y)
		c.operandValue = c.read8(c.operandAddr)
		c.pageCrossed = isDiffPage(base, c.operandAddr)

	case addrModeIND:
		ptr := c.read16(c.pc)
		c.pc += 2

		// hardware quirk: the pointer read never carries across a
		// page, ($xxFF) fetches its high byte from $xx00
		lo := ptr
		hi := ptr + 1
		if lo&0xff == 0xff {
			hi = lo & 0xff00
		}
		c.operandAddr = uint16(c.read8(lo)) | uint16(c.read8(hi))<<8
		c.operandValue = c.read8(c.operandAddr)

	case addrModeINDX:
		zp := uint16(c.read8(c.pc) + c.x)
		c.pc++
		lo := uint16(c.read8(zp & 0x00ff))
		hi := uint16(c.read8((zp + 1) & 0x00ff))
		c.operandAddr = lo | hi<<8
		c.operandValue = c.read8(c.operandAddr)

	case addrModeINDY:
		zp := uint16(c.read8(c.pc))
		c.pc++
		lo := uint16(c.read8(zp))
		hi := uint16(c.read8((zp + 1) & 0x00ff))
		base := lo | hi<<8
		// the Y addition may carry across a page, that is not a wrap
		c.operandAddr = base + uint16(c.y)
		c.operandValue = c.read8(c.operandAddr)
		c.pageCrossed = isDiffPage(base, c.operandAddr)

	case addrModeREL:
		// sign-extend the offset, branch resolves it against the PC
		// after the full instruction
		c.operandAddr = uint16(c.read8(c.pc))
		c.pc++
		if c.operandAddr&0x80 > 0 {
			c.operandAddr |= 0xff00
		}

	case addrModeACC:
		c.operandValue = c.a

	case addrModeIMP:
	}
}
