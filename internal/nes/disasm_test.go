package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Disassemble(t *testing.T) {
	mem := &flatMem{}
	mem.load(0x8000,
		0xa9, 0x05, // LDA #$05
		0x8d, 0x00, 0x02, // STA $0200
		0xd0, 0xfe, // BNE $8005
		0x0a,             // ASL A
		0x02,             // no instruction
		0x4c, 0x00, 0x80, // JMP $8000
	)
	cpu := newTestCPU(mem, 0x8000)

	disasm := cpu.Disassemble()

	assert.Equal(t, "$8000: LDA #$05 {IMM}", disasm[0x8000])
	assert.Equal(t, "$8002: STA $0200 {ABS}", disasm[0x8002])
	assert.Equal(t, "$8005: BNE $8005 {REL}", disasm[0x8005])
	assert.Equal(t, "$8007: ASL A {ACC}", disasm[0x8007])
	assert.Equal(t, "$8008: ???", disasm[0x8008])
	assert.Equal(t, "$8009: JMP $8000 {ABS}", disasm[0x8009])

	// operand bytes are not decoded as instructions
	assert.NotContains(t, disasm, uint16(0x8001))
	assert.NotContains(t, disasm, uint16(0x8003))
}
