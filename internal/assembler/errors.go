package assembler

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMnemonic is returned for instruction lines with a mnemonic missing in the catalog.
	ErrUnknownMnemonic = errors.New("unknown mnemonic")
	// ErrOperandCount is returned if the number of operands does not match the instruction.
	ErrOperandCount = errors.New("wrong number of operands")
	// ErrProgramTooLarge is returned if the program counter passes the end of the address space.
	ErrProgramTooLarge = errors.New("program too large")
	// ErrLegacyLabel is returned for legacy label syntax if it is not allowed.
	ErrLegacyLabel = errors.New("non-standard label syntax")
)

// LineError is a fatal error of a single source line.
type LineError struct {
	Line int    // 1 based line number
	Text string // raw line text
	Err  error
}

func (e *LineError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v: \"%s\"", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
