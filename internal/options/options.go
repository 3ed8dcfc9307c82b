// Package options contains the program options.
package options

// Default limits of the assembler.
const (
	DefaultMaxSymbols     = 256
	DefaultMaxLabelLength = 31
)

// Parameters contains file path options.
type Parameters struct {
	Input  string `arg:"positional" usage:"source file to assemble"`
	Output string `flag:"o" usage:"output binary file (default: input with .bin extension)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.asm)"`
}

// Flags contains behavior options.
type Flags struct {
	MaxSymbols int  `flag:"maxsymbols" usage:"maximum number of labels" default:"256"`
	Strict     bool `flag:"strict" usage:"reject legacy label syntax"`
	Symbols    bool `flag:"symbols" usage:"log the symbol table"`
	Verify     bool `flag:"verify" usage:"verify output by reassembling and comparing"`
	Debug      bool `flag:"debug" usage:"enable debug logging"`
	Quiet      bool `flag:"q" usage:"quiet mode"`
}

// Program options of the assembler.
type Program struct {
	Parameters
	Flags
}

// Assembler defines options to control the assembler passes.
type Assembler struct {
	MaxSymbols        int  // symbol table capacity, 0 for unlimited
	MaxLabelLength    int  // maximum label name length, 0 for unlimited
	AllowLegacyLabels bool // accept bare and trailing text labels with a warning
}

// NewAssembler returns a new options instance with default options.
func NewAssembler() Assembler {
	return Assembler{
		MaxSymbols:        DefaultMaxSymbols,
		MaxLabelLength:    DefaultMaxLabelLength,
		AllowLegacyLabels: true,
	}
}
