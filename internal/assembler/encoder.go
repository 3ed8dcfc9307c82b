package assembler

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/retroenv/asm4004/internal/arch"
	"github.com/retroenv/asm4004/internal/operand"
	"github.com/retroenv/asm4004/internal/source"
	"github.com/retroenv/retrogolib/log"
)

// Encode runs the second pass. Every instruction line is encoded using the
// labels collected by the first pass, passed either as *symbols.Table or as
// *symbols.Tracker. The binary is only returned if all lines were encoded
// successfully.
func (a *Assembler) Encode(ctx context.Context, reader io.Reader, labels operand.SymbolLookup) ([]byte, error) {
	var buf bytes.Buffer

	err := a.scanLines(ctx, reader, func(line source.Line) error {
		if line.Kind != source.Instruction {
			return nil
		}

		data, err := a.EncodeInstruction(line, labels)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Program encoded", log.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

// EncodeInstruction encodes a single instruction line into 1 or 2 bytes.
// Every operand is resolved, masked to its field width and shifted to its
// bit position. Labels can be nil if no labels are defined.
func (a *Assembler) EncodeInstruction(line source.Line, labels operand.SymbolLookup) ([]byte, error) {
	ins, ok := a.catalog.Instruction(line.Mnemonic)
	if !ok {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownMnemonic, line.Mnemonic)
	}
	if expected := ins.OperandCount(); len(line.Operands) != expected {
		return nil, fmt.Errorf("%w: %s expects %d, got %d", ErrOperandCount, ins.Name, expected, len(line.Operands))
	}

	opcode := ins.Opcode
	var second byte
	index := 0

	for _, kind := range ins.Operands {
		if kind == arch.OperandNone {
			continue
		}

		token := line.Operands[index]
		index++

		value, err := operand.Resolve(token, labels)
		if err != nil {
			return nil, fmt.Errorf("resolving %s operand: %w", kind, err)
		}

		masked := uint32(value) & kind.Mask()
		if masked != uint32(value) {
			a.logger.Warn("Operand value truncated to field width",
				log.Int("line", line.Number),
				log.String("operand", token),
				log.Hex("value", value),
				log.Hex("encoded", masked))
		}

		info := kind.Info()
		switch {
		case kind == arch.OperandLongAddress:
			opcode |= byte(masked>>8) & 0x0F
			second |= byte(masked)
		case info.BitPosition < 8:
			opcode |= byte(masked << info.BitPosition)
		default:
			second |= byte(masked << (info.BitPosition - 8))
		}
	}

	if ins.Size == 1 {
		return []byte{opcode}, nil
	}
	return []byte{opcode, second}, nil
}
