package i4004

import (
	"testing"

	"github.com/retroenv/asm4004/internal/arch"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/set"
)

func TestCatalog_Instruction(t *testing.T) {
	c := New()

	tests := []struct {
		mnemonic string
		opcode   byte
		size     int
		operands int
	}{
		{"NOP", 0x00, 1, 0},
		{"JCN", 0x10, 2, 2},
		{"FIM", 0x20, 2, 2},
		{"SRC", 0x21, 1, 1},
		{"JUN", 0x40, 2, 1},
		{"JMS", 0x50, 2, 1},
		{"ISZ", 0x70, 2, 2},
		{"ADD", 0x80, 1, 1},
		{"LDM", 0xD0, 1, 1},
		{"WRM", 0xE0, 1, 0},
		{"DCL", 0xFD, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.mnemonic, func(t *testing.T) {
			ins, ok := c.Instruction(tt.mnemonic)
			assert.True(t, ok)
			assert.Equal(t, tt.opcode, ins.Opcode)
			assert.Equal(t, tt.size, ins.Size)
			assert.Equal(t, tt.operands, ins.OperandCount())
			assert.True(t, c.IsMnemonic(tt.mnemonic))
		})
	}
}

func TestCatalog_Unknown(t *testing.T) {
	c := New()

	_, ok := c.Instruction("MOV")
	assert.False(t, ok)
	// lookups are exact
	_, ok = c.Instruction("add")
	assert.False(t, ok)
	assert.False(t, c.IsMnemonic("R1"))
}

func TestInstructions_Consistent(t *testing.T) {
	names := set.New[string]()
	opcodes := set.New[byte]()

	for _, ins := range Instructions {
		assert.False(t, names.Contains(ins.Name), "duplicate mnemonic "+ins.Name)
		names.Add(ins.Name)
		assert.False(t, opcodes.Contains(ins.Opcode), "duplicate opcode of "+ins.Name)
		opcodes.Add(ins.Opcode)

		assert.True(t, ins.Size == 1 || ins.Size == 2, ins.Name)
		assert.True(t, len(ins.Operands) <= 2, ins.Name)

		for _, kind := range ins.Operands {
			if kind.Info().BitPosition >= 8 {
				assert.Equal(t, 2, ins.Size, ins.Name+" uses the second byte")
			}
		}
	}
	assert.Equal(t, 46, len(names))
}

func TestNewWithInstructions(t *testing.T) {
	c := NewWithInstructions([]*arch.Instruction{Nop, Add})

	assert.True(t, c.IsMnemonic("NOP"))
	assert.True(t, c.IsMnemonic("ADD"))
	assert.False(t, c.IsMnemonic("JUN"))
}
