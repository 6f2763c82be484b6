package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_TraceInfo_StatusString(t *testing.T) {
	tests := []struct {
		p    uint8
		want string
	}{
		{0x00, "nv-bdizc"},
		{flagN | flagC, "Nv-bdizC"},
		{flagU, "nv-bdizc"}, // the unused bit has no letter
		{0xff, "NV-BDIZC"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TraceInfo{P: tt.p}.StatusString())
	}
}

func Test_Tracer(t *testing.T) {
	mem := &flatMem{}
	mem.load(0x8000, 0xa9, 0x80) // LDA #$80
	cpu := newTestCPU(mem, 0x8000)

	var got []TraceInfo
	cpu.SetTracer(func(ti TraceInfo) { got = append(got, ti) })

	_, err := cpu.Step()
	require.NoError(t, err)
	require.Len(t, got, 1)

	ti := got[0]
	assert.Equal(t, uint16(0x8000), ti.PC)
	assert.Equal(t, uint8(0xa9), ti.Opcode)
	assert.Equal(t, "LDA", ti.Name)
	assert.Equal(t, "IMM", ti.Mode)
	assert.Equal(t, uint8(0x80), ti.A, "registers reflect the post-execution state")
	assert.NotZero(t, ti.P&flagN)
	assert.Equal(t, uint64(0), ti.Cycles, "cycle count at the instruction's start")

	// disabled tracer stops reporting
	cpu.SetTracer(nil)
	_, err = cpu.Step()
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func Test_TraceInfo_String(t *testing.T) {
	ti := TraceInfo{
		PC: 0xc000, Opcode: 0x4c, Name: "JMP", Mode: "ABS",
		A: 0x00, X: 0x00, Y: 0x00, P: 0x24, SP: 0xfd, Cycles: 7,
	}
	assert.Equal(t,
		"C000  4C  JMP {ABS}  A:00 X:00 Y:00 P:24 SP:FD CYC:7",
		ti.String())
}
