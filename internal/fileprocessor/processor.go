// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/asm4004/internal/arch"
	"github.com/retroenv/asm4004/internal/options"
	"github.com/retroenv/asm4004/internal/pipeline"
	"github.com/retroenv/asm4004/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// OutputExtension is the file extension of generated binaries.
const OutputExtension = ".bin"

// ErrOutputIsInput is returned if the output file would overwrite the source file.
var ErrOutputIsInput = errors.New("output file is the input file")

// ProcessFile handles the complete file processing workflow. The output file
// is only created after both passes succeeded and is removed if writing it
// fails, so that no partial binary is left behind.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program,
	catalog arch.Catalog, asmOpts options.Assembler) error {

	if opts.Output == "" {
		return errors.New("no output file name given")
	}
	same, err := isSameFile(opts.Input, opts.Output)
	if err != nil {
		return err
	}
	if same {
		return fmt.Errorf("%w: %s", ErrOutputIsInput, opts.Output)
	}

	var buf bytes.Buffer
	pipe := pipeline.New(logger, catalog, asmOpts)
	result, err := pipe.Execute(ctx, opts, &buf)
	if err != nil {
		return fmt.Errorf("assembling: %w", err)
	}

	if err := writeOutput(opts.Output, buf.Bytes()); err != nil {
		if removeErr := os.Remove(opts.Output); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
			logger.Error("Removing incomplete output file failed",
				log.String("file", opts.Output),
				log.Err(removeErr))
		}
		return err
	}

	if !opts.Quiet {
		logger.Info("Binary written",
			log.String("file", opts.Output),
			log.Int("bytes", result.Size),
			log.Int("labels", result.Symbols.Len()))
	}

	if opts.Verify {
		if err := verification.VerifyOutput(ctx, logger, opts, catalog, asmOpts); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		logger.Info("Verification successful")
	}

	return nil
}

// writeOutput creates the output file and writes the binary to it.
func writeOutput(path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing output file %s: %w", path, err)
	}
	return nil
}

// isSameFile returns whether both paths name the same file. Paths of files
// that do not exist yet are compared by their absolute form.
func isSameFile(input, output string) (bool, error) {
	inputAbs, err := filepath.Abs(input)
	if err != nil {
		return false, fmt.Errorf("resolving input path %s: %w", input, err)
	}
	outputAbs, err := filepath.Abs(output)
	if err != nil {
		return false, fmt.Errorf("resolving output path %s: %w", output, err)
	}
	if inputAbs == outputAbs {
		return true, nil
	}

	// a missing input is reported by the loader, a missing output is created
	inputInfo, inputErr := os.Stat(input)
	outputInfo, outputErr := os.Stat(output)
	if inputErr != nil || outputErr != nil {
		return false, nil
	}
	return os.SameFile(inputInfo, outputInfo), nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
// by replacing its extension.
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + OutputExtension
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("asm4004", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
