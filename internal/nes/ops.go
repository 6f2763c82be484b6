package nes

// Operation semantics. Each method reads the operand resolved by fetch
// and charges extra cycles for the page crossings that cost one on
// real hardware. The addressing mode only decides where the operand
// came from; storeResult writes back to the accumulator or memory
// accordingly.

func (c *CPU) storeResult(v uint8) {
	if c.addrMode == addrModeACC {
		c.a = v
	} else {
		c.write8(c.operandAddr, v)
	}
}

// branch adds the already sign-extended relative offset to PC when the
// condition holds. Taken branches cost one extra cycle, two when the
// target lands on a different page. PC is untouched otherwise.
func (c *CPU) branch(condition bool) {
	if !condition {
		return
	}
	c.cycles++
	target := c.pc + c.operandAddr
	if isDiffPage(c.pc, target) {
		c.cycles++
	}
	c.pc = target
}

// compare computes reg-M for the flags only, the difference itself is
// discarded.
func (c *CPU) compare(reg uint8) {
	c.setFlag(flagC, reg >= c.operandValue)
	c.setFlagsZN(reg - c.operandValue)
}

func (c *CPU) adc() {
	r16 := uint16(c.a) + uint16(c.operandValue)
	if c.getFlag(flagC) {
		r16++
	}
	r8 := uint8(r16)
	c.setFlag(flagC, r16 > 0xff)
	c.setFlagsZN(r8)
	c.setFlag(flagV, isSameSign(c.a, c.operandValue) && !isSameSign(c.a, r8))
	c.a = r8
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) and() {
	c.a &= c.operandValue
	c.setFlagsZN(c.a)
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) asl() {
	c.setFlag(flagC, c.operandValue&0x80 > 0)
	r := c.operandValue << 1
	c.setFlagsZN(r)
	c.storeResult(r)
}

func (c *CPU) bcc() {
	c.branch(!c.getFlag(flagC))
}

func (c *CPU) bcs() {
	c.branch(c.getFlag(flagC))
}

func (c *CPU) beq() {
	c.branch(c.getFlag(flagZ))
}

func (c *CPU) bit() {
	c.setFlag(flagZ, c.a&c.operandValue == 0)
	c.setFlag(flagN, c.operandValue&flagN > 0)
	c.setFlag(flagV, c.operandValue&flagV > 0)
}

func (c *CPU) bmi() {
	c.branch(c.getFlag(flagN))
}

func (c *CPU) bne() {
	c.branch(!c.getFlag(flagZ))
}

func (c *CPU) bpl() {
	c.branch(!c.getFlag(flagN))
}

// brk pushes the address past the padding byte and the status with B
// set, then jumps through the IRQ vector.
func (c *CPU) brk() {
	c.pc++
	c.stackPush16(c.pc)
	c.stackPush8(c.p | flagB)
	c.setFlag(flagI, true)
	c.pc = c.read16(vecIRQ)
}

func (c *CPU) bvc() {
	c.branch(!c.getFlag(flagV))
}

func (c *CPU) bvs() {
	c.branch(c.getFlag(flagV))
}

func (c *CPU) clc() {
	c.setFlag(flagC, false)
}

func (c *CPU) cld() {
	c.setFlag(flagD, false)
}

func (c *CPU) cli() {
	c.setFlag(flagI, false)
}

func (c *CPU) clv() {
	c.setFlag(flagV, false)
}

func (c *CPU) cmp() {
	c.compare(c.a)
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) cpx() {
	c.compare(c.x)
}

func (c *CPU) cpy() {
	c.compare(c.y)
}

func (c *CPU) dec() {
	r := c.operandValue - 1
	c.setFlagsZN(r)
	c.write8(c.operandAddr, r)
}

func (c *CPU) dex() {
	c.x--
	c.setFlagsZN(c.x)
}

func (c *CPU) dey() {
	c.y--
	c.setFlagsZN(c.y)
}

func (c *CPU) eor() {
	c.a ^= c.operandValue
	c.setFlagsZN(c.a)
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) inc() {
	r := c.operandValue + 1
	c.setFlagsZN(r)
	c.write8(c.operandAddr, r)
}

func (c *CPU) inx() {
	c.x++
	c.setFlagsZN(c.x)
}

func (c *CPU) iny() {
	c.y++
	c.setFlagsZN(c.y)
}

func (c *CPU) jmp() {
	c.pc = c.operandAddr
}

func (c *CPU) jsr() {
	// PC already points past the operand, the stacked address is the
	// last byte of this instruction. RTS pops and increments.
	c.pc--
	c.stackPush16(c.pc)
	c.pc = c.operandAddr
}

func (c *CPU) lda() {
	c.a = c.operandValue
	c.setFlagsZN(c.a)
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) ldx() {
	c.x = c.operandValue
	c.setFlagsZN(c.x)
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) ldy() {
	c.y = c.operandValue
	c.setFlagsZN(c.y)
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) lsr() {
	c.setFlag(flagC, c.operandValue&0x1 > 0)
	r := c.operandValue >> 1
	c.setFlagsZN(r)
	c.storeResult(r)
}

func (c *CPU) nop() {
	// the unofficial NOP variants still pay for indexed page crossings
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) ora() {
	c.a |= c.operandValue
	c.setFlagsZN(c.a)
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) pha() {
	c.stackPush8(c.a)
}

func (c *CPU) php() {
	c.stackPush8(c.p | flagB)
}

func (c *CPU) pla() {
	c.a = c.stackPop8()
	c.setFlagsZN(c.a)
}

func (c *CPU) plp() {
	c.p = (c.stackPop8() | flagU) & ^flagB
}

func (c *CPU) rol() {
	r := c.operandValue << 1
	if c.getFlag(flagC) {
		r |= 0x1
	}
	c.setFlag(flagC, c.operandValue&0x80 > 0)
	c.setFlagsZN(r)
	c.storeResult(r)
}

func (c *CPU) ror() {
	r := c.operandValue >> 1
	if c.getFlag(flagC) {
		r |= 0x80
	}
	c.setFlag(flagC, c.operandValue&0x1 > 0)
	c.setFlagsZN(r)
	c.storeResult(r)
}

func (c *CPU) rti() {
	c.p = (c.stackPop8() | flagU) & ^flagB
	c.pc = c.stackPop16()
}

func (c *CPU) rts() {
	c.pc = c.stackPop16()
	c.pc++
}

// sbc is adc on the complemented operand: A-M-(1-C) == A+^M+C.
func (c *CPU) sbc() {
	c.operandValue = ^c.operandValue
	c.adc()
}

func (c *CPU) sec() {
	c.setFlag(flagC, true)
}

func (c *CPU) sed() {
	c.setFlag(flagD, true)
}

func (c *CPU) sei() {
	c.setFlag(flagI, true)
}

func (c *CPU) sta() {
	c.write8(c.operandAddr, c.a)
}

func (c *CPU) stx() {
	c.write8(c.operandAddr, c.x)
}

func (c *CPU) sty() {
	c.write8(c.operandAddr, c.y)
}

func (c *CPU) tax() {
	c.x = c.a
	c.setFlagsZN(c.x)
}

func (c *CPU) tay() {
	c.y = c.a
	c.setFlagsZN(c.y)
}

func (c *CPU) tsx() {
	c.x = c.sp
	c.setFlagsZN(c.x)
}

func (c *CPU) txa() {
	c.a = c.x
	c.setFlagsZN(c.a)
}

func (c *CPU) txs() {
	c.sp = c.x
}

func (c *CPU) tya() {
	c.a = c.y
	c.setFlagsZN(c.a)
}

// Unofficial operations exercised by real cartridges and the nestest
// suite. Most fuse a read-modify-write with an ALU operation.

func (c *CPU) lax() {
	c.a = c.operandValue
	c.x = c.operandValue
	c.setFlagsZN(c.a)
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) sax() {
	c.write8(c.operandAddr, c.a&c.x)
}

func (c *CPU) dcp() {
	c.operandValue--
	c.write8(c.operandAddr, c.operandValue)
	c.pageCrossed = false
	c.cmp()
}

func (c *CPU) isc() {
	c.operandValue++
	c.write8(c.operandAddr, c.operandValue)
	c.pageCrossed = false
	c.sbc()
}

func (c *CPU) slo() {
	c.setFlag(flagC, c.operandValue&0x80 > 0)
	r := c.operandValue << 1
	c.write8(c.operandAddr, r)
	c.a |= r
	c.setFlagsZN(c.a)
}

func (c *CPU) rla() {
	carry := c.operandValue&0x80 > 0
	r := c.operandValue << 1
	if c.getFlag(flagC) {
		r |= 0x1
	}
	c.write8(c.operandAddr, r)
	c.a &= r
	c.setFlag(flagC, carry)
	c.setFlagsZN(c.a)
}

func (c *CPU) sre() {
	c.setFlag(flagC, c.operandValue&0x1 > 0)
	r := c.operandValue >> 1
	c.write8(c.operandAddr, r)
	c.a ^= r
	c.setFlagsZN(c.a)
}

func (c *CPU) rra() {
	r := c.operandValue >> 1
	if c.getFlag(flagC) {
		r |= 0x80
	}
	c.setFlag(flagC, c.operandValue&0x1 > 0)
	c.operandValue = r
	c.write8(c.operandAddr, c.operandValue)
	c.pageCrossed = false
	c.adc()
}

func (c *CPU) anc() {
	c.a &= c.operandValue
	c.setFlag(flagC, c.a&0x80 > 0)
	c.setFlagsZN(c.a)
}

func (c *CPU) alr() {
	c.a &= c.operandValue
	c.setFlag(flagC, c.a&0x1 > 0)
	c.a >>= 1
	c.setFlagsZN(c.a)
}

func (c *CPU) las() {
	r := c.operandValue & c.sp
	c.a = r
	c.x = r
	c.sp = r
	c.setFlagsZN(r)
	if c.pageCrossed {
		c.cycles++
	}
}
