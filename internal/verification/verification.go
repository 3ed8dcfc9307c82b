// Package verification verifies that the generated output file is reproducible.
package verification

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/asm4004/internal/arch"
	"github.com/retroenv/asm4004/internal/loader"
	"github.com/retroenv/asm4004/internal/options"
	"github.com/retroenv/asm4004/internal/pipeline"
	"github.com/retroenv/retrogolib/log"
)

// maxReportedMismatches limits the number of logged offset mismatches.
const maxReportedMismatches = 10

// VerifyOutput assembles the input file again and checks that the result
// matches the written output file byte for byte.
func VerifyOutput(ctx context.Context, logger *log.Logger, opts options.Program,
	catalog arch.Catalog, asmOpts options.Assembler) error {

	if opts.Output == "" {
		return errors.New("no output file to verify")
	}

	destination, err := loader.New().Read(opts.Output)
	if err != nil {
		return fmt.Errorf("reading output file for comparison: %w", err)
	}

	verifyOpts := opts
	verifyOpts.Quiet = true
	verifyOpts.Symbols = false

	var buf bytes.Buffer
	pipe := pipeline.New(logger, catalog, asmOpts)
	if _, err := pipe.Execute(ctx, verifyOpts, &buf); err != nil {
		return fmt.Errorf("reassembling: %w", err)
	}

	if err := checkBufferEqual(logger, buf.Bytes(), destination); err != nil {
		return fmt.Errorf("output mismatch: %w", err)
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs <= maxReportedMismatches {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
