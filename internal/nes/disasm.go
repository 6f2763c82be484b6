package nes

import "fmt"

// Disassemble decodes the whole address space into printable lines
// keyed by instruction address. Bytes with no table entry render as
// "???" and are skipped over one at a time.
func (c *CPU) Disassemble() map[uint16]string {
	disasm := make(map[uint16]string, 0x10000)

	addr := uint32(0)
	for addr <= 0xffff {
		pc := uint16(addr)
		opcode := c.read8(pc)
		in, ok := c.decode(opcode)
		if !ok {
			disasm[pc] = fmt.Sprintf("$%04X: ???", pc)
			addr++
			continue
		}

		operand := c.operandString(pc+1, in.mode)
		if operand == "" {
			disasm[pc] = fmt.Sprintf("$%04X: %s {%s}", pc, in.name, in.mode)
		} else {
			disasm[pc] = fmt.Sprintf("$%04X: %s %s {%s}", pc, in.name, operand, in.mode)
		}
		addr += 1 + uint32(in.mode.operandSize())
	}

	return disasm
}

func (c *CPU) operandString(addr uint16, mode addrMode) string {
	switch mode {
	case addrModeIMM:
		return fmt.Sprintf("#$%02X", c.read8(addr))
	case addrModeZP:
		return fmt.Sprintf("$%02X", c.read8(addr))
	case addrModeZPX:
		return fmt.Sprintf("$%02X,X", c.read8(addr))
	case addrModeZPY:
		return fmt.Sprintf("$%02X,Y", c.read8(addr))
	case addrModeABS:
		return fmt.Sprintf("$%04X", c.read16(addr))
	case addrModeABSX:
		return fmt.Sprintf("$%04X,X", c.read16(addr))
	case addrModeABSY:
		return fmt.Sprintf("$%04X,Y", c.read16(addr))
	case addrModeIND:
		return fmt.Sprintf("($%04X)", c.read16(addr))
	case addrModeINDX:
		return fmt.Sprintf("($%02X,X)", c.read8(addr))
	case addrModeINDY:
		return fmt.Sprintf("($%02X),Y", c.read8(addr))
	case addrModeREL:
		offset := uint16(c.read8(addr))
		if offset&0x80 > 0 {
			offset |= 0xff00
		}
		return fmt.Sprintf("$%04X", addr+1+offset)
	case addrModeACC:
		return "A"
	}
	return ""
}
