package i4004

import "github.com/retroenv/asm4004/internal/arch"

// Compile-time check to ensure Catalog implements arch.Catalog.
var _ arch.Catalog = (*Catalog)(nil)

// MaxAddress is the highest ROM address reachable by a long address operand.
const MaxAddress = 0xFFF

// Catalog implements the arch.Catalog interface for a fixed instruction table.
type Catalog struct {
	instructions map[string]*arch.Instruction
}

// New returns the catalog of the complete instruction set.
func New() *Catalog {
	return NewWithInstructions(Instructions)
}

// NewWithInstructions returns a catalog for the given instructions.
// It allows tests to work with a reduced instruction set.
func NewWithInstructions(instructions []*arch.Instruction) *Catalog {
	c := &Catalog{
		instructions: make(map[string]*arch.Instruction, len(instructions)),
	}
	for _, ins := range instructions {
		c.instructions[ins.Name] = ins
	}
	return c
}

// Instruction returns the descriptor for the given mnemonic.
func (c *Catalog) Instruction(mnemonic string) (*arch.Instruction, bool) {
	ins, ok := c.instructions[mnemonic]
	return ins, ok
}

// IsMnemonic returns whether the given token names an instruction.
func (c *Catalog) IsMnemonic(token string) bool {
	_, ok := c.instructions[token]
	return ok
}
