// Package pipeline orchestrates the assembly workflow stages.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/retroenv/asm4004/internal/arch"
	"github.com/retroenv/asm4004/internal/assembler"
	"github.com/retroenv/asm4004/internal/loader"
	"github.com/retroenv/asm4004/internal/options"
	"github.com/retroenv/asm4004/internal/symbols"
	"github.com/retroenv/retrogolib/log"
)

// Result contains the outcome of an assembler run.
type Result struct {
	Symbols *symbols.Table
	Size    int // number of bytes written
}

// Pipeline orchestrates the complete assembly workflow.
type Pipeline struct {
	logger    *log.Logger
	loader    *loader.Loader
	assembler *assembler.Assembler
}

// opener returns a new reader of the source for every pass.
type opener func() (io.ReadCloser, error)

// New creates a new assembly pipeline for the instruction set of the catalog.
func New(logger *log.Logger, catalog arch.Catalog, asmOpts options.Assembler) *Pipeline {
	return &Pipeline{
		logger:    logger,
		loader:    loader.New(),
		assembler: assembler.New(logger, catalog, asmOpts),
	}
}

// Execute runs the complete assembly pipeline for the input file of the options.
// The source file is opened once per pass. The binary is written to the writer
// only after both passes succeeded.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) (*Result, error) {
	open := func() (io.ReadCloser, error) {
		return p.loader.Open(opts.Input)
	}
	return p.run(ctx, opts, open, writer)
}

// ExecuteWithSource runs the assembly pipeline with source code that is already in memory.
// This is useful for testing and programmatic usage.
func (p *Pipeline) ExecuteWithSource(ctx context.Context, src []byte, opts options.Program, writer io.Writer) (*Result, error) {
	open := func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(src)), nil
	}
	return p.run(ctx, opts, open, writer)
}

func (p *Pipeline) run(ctx context.Context, opts options.Program, open opener, writer io.Writer) (*Result, error) {
	if !opts.Quiet {
		p.logger.Info("Assembling", log.String("file", opts.Input))
	}

	table, err := p.collectLabels(ctx, open)
	if err != nil {
		return nil, fmt.Errorf("collecting labels: %w", err)
	}

	tracker := symbols.NewTracker(table)
	data, err := p.encode(ctx, open, tracker)
	if err != nil {
		return nil, fmt.Errorf("encoding instructions: %w", err)
	}

	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}

	if opts.Symbols {
		p.printSymbols(table)
	}
	for _, sym := range tracker.Unreferenced() {
		p.logger.Debug("Label is never referenced",
			log.String("label", sym.Name),
			log.Int("line", sym.Line))
	}

	return &Result{
		Symbols: table,
		Size:    len(data),
	}, nil
}

// collectLabels runs the first pass over a fresh reader of the source.
func (p *Pipeline) collectLabels(ctx context.Context, open opener) (*symbols.Table, error) {
	reader, err := open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	return p.assembler.CollectLabels(ctx, reader)
}

// encode runs the second pass over a fresh reader of the source.
func (p *Pipeline) encode(ctx context.Context, open opener, tracker *symbols.Tracker) ([]byte, error) {
	reader, err := open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	return p.assembler.Encode(ctx, reader, tracker)
}

// printSymbols logs the symbol table sorted by address.
func (p *Pipeline) printSymbols(table *symbols.Table) {
	for _, sym := range table.SortedByAddress() {
		p.logger.Info("Symbol",
			log.String("label", sym.Name),
			log.Hex("address", sym.Address),
			log.Int("line", sym.Line))
	}
}
