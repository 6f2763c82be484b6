package nes

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Decode(t *testing.T) {
	cpu := NewCPU(nil)

	t.Run("0xEA is the official NOP", func(t *testing.T) {
		in, ok := cpu.decode(0xea)
		require.True(t, ok)
		assert.Equal(t, "NOP", in.name)
		assert.Equal(t, addrModeIMP, in.mode)
		assert.False(t, in.unofficial)
	})

	t.Run("0x02 encodes no instruction", func(t *testing.T) {
		_, ok := cpu.decode(0x02)
		assert.False(t, ok)
		assert.False(t, opcodeIsSupported(0x02))
	})

	t.Run("LDA appears under eight modes", func(t *testing.T) {
		modes := make(map[addrMode]bool)
		for op := 0; op <= 0xff; op++ {
			if in, ok := cpu.decode(uint8(op)); ok && in.name == "LDA" {
				modes[in.mode] = true
			}
		}
		assert.Len(t, modes, 8)
	})

	t.Run("unofficial opcodes are marked", func(t *testing.T) {
		assert.True(t, opcodeIsUnofficial(0xa3), "LAX (d,X)")
		assert.True(t, opcodeIsUnofficial(0xeb), "the duplicate SBC")
		assert.False(t, opcodeIsUnofficial(0xe9), "the real SBC")
		assert.False(t, opcodeIsUnofficial(0xea), "the real NOP")
	})
}

func Test_OpcodeMatrixCounts(t *testing.T) {
	cpu := NewCPU(nil)

	var official, unofficial, illegal int
	for op := 0; op <= 0xff; op++ {
		in, ok := cpu.decode(uint8(op))
		switch {
		case !ok:
			illegal++
		case in.unofficial:
			unofficial++
		default:
			official++
		}
	}

	assert.Equal(t, 151, official, "legal 6502 opcode matrix")
	assert.Equal(t, 84, unofficial, "supported unofficial set")
	assert.Equal(t, 21, illegal, "jam opcodes and unstable leftovers")
}

func Test_OpcodeOperandSizes(t *testing.T) {
	// every table entry consumes exactly the operand bytes its mode
	// declares
	for op := 0; op <= 0xff; op++ {
		opcode := uint8(op)
		if !opcodeIsSupported(opcode) {
			continue
		}
		t.Run(fmt.Sprintf("%02X", opcode), func(t *testing.T) {
			mem := &flatMem{}
			cpu := newTestCPU(mem, 0x8000)
			in, _ := cpu.decode(opcode)

			cpu.fetch(in.mode)

			assert.Equal(t, 0x8000+in.mode.operandSize(), cpu.pc)
		})
	}
}
