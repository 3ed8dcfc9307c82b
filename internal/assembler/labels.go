package assembler

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/asm4004/internal/source"
	"github.com/retroenv/asm4004/internal/symbols"
	"github.com/retroenv/retrogolib/log"
)

// addressSpace is the number of addressable program bytes.
const addressSpace = 0x10000

// CollectLabels runs the first pass. It advances a program counter by the
// size of every instruction and records the address of every label.
// Labels do not advance the program counter.
func (a *Assembler) CollectLabels(ctx context.Context, reader io.Reader) (*symbols.Table, error) {
	table := symbols.New(a.options.MaxSymbols, a.options.MaxLabelLength)
	pc := 0

	err := a.scanLines(ctx, reader, func(line source.Line) error {
		switch line.Kind {
		case source.Label:
			if pc >= addressSpace {
				return fmt.Errorf("%w: label '%s' is outside of the address space", ErrProgramTooLarge, line.Label)
			}
			if line.Legacy {
				a.warnLegacyLabel(line)
			}
			return table.Add(symbols.Symbol{
				Name:    line.Label,
				Address: uint16(pc),
				Line:    line.Number,
			})

		case source.Instruction:
			ins, ok := a.catalog.Instruction(line.Mnemonic)
			if !ok {
				return fmt.Errorf("%w '%s'", ErrUnknownMnemonic, line.Mnemonic)
			}
			if pc+ins.Size > addressSpace {
				return fmt.Errorf("%w: %d bytes exceed the address space", ErrProgramTooLarge, pc+ins.Size)
			}
			pc += ins.Size
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Labels collected",
		log.Int("labels", table.Len()),
		log.Int("size", pc))
	return table, nil
}

func (a *Assembler) warnLegacyLabel(line source.Line) {
	a.logger.Warn("Non-standard label syntax, use 'name:' on its own line",
		log.Int("line", line.Number),
		log.String("label", line.Label),
		log.String("text", line.Text))
}
