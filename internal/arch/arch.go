// Package arch contains the types describing an instruction set for the assembler.
// It acts as a bridge between the assembler passes and the architecture specific
// instruction table.
package arch

// Catalog is a read-only lookup service for the instructions of an architecture.
type Catalog interface {
	// Instruction returns the descriptor for the given mnemonic.
	Instruction(mnemonic string) (*Instruction, bool)
	// IsMnemonic returns whether the given token names an instruction.
	IsMnemonic(token string) bool
}

// Instruction describes how a mnemonic is encoded.
type Instruction struct {
	Name   string // mnemonic as written in source
	Opcode byte   // opcode base, operands are ORed into it
	Size   int    // encoded size in bytes, 1 or 2

	// Operands lists the operand slots in source order, unused slots are OperandNone.
	Operands []OperandKind
}

// OperandCount returns the number of operand slots that take a source operand.
func (ins *Instruction) OperandCount() int {
	count := 0
	for _, kind := range ins.Operands {
		if kind != OperandNone {
			count++
		}
	}
	return count
}
