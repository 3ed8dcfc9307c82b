// Package assembler implements the two pass assembler: the label collector
// computes the address of every label, the encoder translates the instructions
// into their binary representation.
package assembler

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/asm4004/internal/arch"
	"github.com/retroenv/asm4004/internal/options"
	"github.com/retroenv/asm4004/internal/source"
	"github.com/retroenv/asm4004/internal/symbols"
	"github.com/retroenv/retrogolib/log"
)

// Assembler translates source code into a binary instruction stream.
type Assembler struct {
	logger  *log.Logger
	catalog arch.Catalog
	options options.Assembler
}

// New returns a new assembler for the instruction set of the catalog.
func New(logger *log.Logger, catalog arch.Catalog, opts options.Assembler) *Assembler {
	return &Assembler{
		logger:  logger,
		catalog: catalog,
		options: opts,
	}
}

// Assemble runs both passes over the source and returns the binary and the
// symbol table.
func (a *Assembler) Assemble(ctx context.Context, src []byte) ([]byte, *symbols.Table, error) {
	table, err := a.CollectLabels(ctx, bytes.NewReader(src))
	if err != nil {
		return nil, nil, fmt.Errorf("collecting labels: %w", err)
	}

	data, err := a.Encode(ctx, bytes.NewReader(src), table)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding: %w", err)
	}
	return data, table, nil
}

// lineHandler processes a classified source line.
type lineHandler func(line source.Line) error

// scanLines parses every line of the reader and calls the handler for all
// non blank lines. Errors are returned as *LineError.
func (a *Assembler) scanLines(ctx context.Context, reader io.Reader, handler lineHandler) error {
	scanner := bufio.NewScanner(reader)
	number := 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		number++
		raw := strings.TrimRight(scanner.Text(), "\r")

		line, err := source.Parse(number, raw, a.catalog)
		if err != nil {
			return &LineError{Line: number, Text: raw, Err: err}
		}
		if line.Kind == source.Blank {
			continue
		}
		if line.Kind == source.Label && line.Legacy && !a.options.AllowLegacyLabels {
			return &LineError{Line: number, Text: raw, Err: fmt.Errorf("%w '%s'", ErrLegacyLabel, line.Label)}
		}

		if err := handler(line); err != nil {
			return &LineError{Line: number, Text: raw, Err: err}
		}
	}

	if err := scanner.Err(); err != nil {
		// the failing line is the one after the last scanned line
		return &LineError{Line: number + 1, Err: fmt.Errorf("reading source: %w", err)}
	}
	return nil
}
