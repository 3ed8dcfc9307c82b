// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/asm4004/internal/options"
)

// ParseFlags parses command line flags and returns program and assembler options
func ParseFlags() (options.Program, options.Assembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// parse errors are reported through UsageError, the usage is printed by ShowUsage
	flags.SetOutput(io.Discard)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	if err != nil {
		usageErr := &UsageError{flags: flags}
		if !errors.Is(err, flag.ErrHelp) {
			usageErr.msg = err.Error()
		}
		return opts, options.Assembler{}, usageErr
	}

	args := flags.Args()
	if len(args) == 0 && opts.Batch == "" {
		return opts, options.Assembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args, opts); err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			usageErr.flags = flags
		}
		return opts, options.Assembler{}, err
	}

	if err := validateOptions(opts); err != nil {
		return opts, options.Assembler{}, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}

	return opts, createAssemblerOptions(opts), nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage text and the flag defaults to stdout.
func (e *UsageError) ShowUsage() {
	e.showUsage(os.Stdout)
}

func (e *UsageError) showUsage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "usage: asm4004 [options] <file to assemble>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(w)
		e.flags.PrintDefaults()
	}
	_, _ = fmt.Fprintln(w)
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string, opts options.Program) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to assemble, please pass the file to assemble as last argument", arg),
			}
		}
	}
	if opts.Batch == "" && len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("only one file to assemble is supported, got %d", len(args)),
		}
	}
	return nil
}

// validateOptions validates option values and their combinations
func validateOptions(opts options.Program) error {
	if opts.MaxSymbols < 0 {
		return fmt.Errorf("invalid maximum number of labels %d", opts.MaxSymbols)
	}
	if opts.Batch != "" && opts.Output != "" {
		return fmt.Errorf("output file name can not be used with batch processing")
	}
	return nil
}

// createAssemblerOptions creates assembler options based on program options
func createAssemblerOptions(opts options.Program) options.Assembler {
	asmOptions := options.NewAssembler()
	asmOptions.MaxSymbols = opts.MaxSymbols
	asmOptions.AllowLegacyLabels = !opts.Strict
	return asmOptions
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output binary file, input name with .bin extension if not given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .bin file naming, for example *.asm")
	flags.IntVar(&opts.MaxSymbols, "maxsymbols", options.DefaultMaxSymbols, "maximum number of labels, 0 for no limit")
	flags.BoolVar(&opts.Strict, "strict", false, "reject non-standard label syntax instead of warning")
	flags.BoolVar(&opts.Symbols, "symbols", false, "print the symbol table after assembling")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the generated output by assembling again and comparing it")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
