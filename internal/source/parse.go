package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/asm4004/internal/operand"
)

// LabelSuffix terminates a label definition.
const LabelSuffix = ':'

// ErrInvalidLabel is returned for label definitions that are not a valid identifier.
var ErrInvalidLabel = errors.New("invalid label")

// Kind is the kind of a source line.
type Kind int

// Line kinds.
const (
	Blank       Kind = iota // empty or comment only
	Label                   // label definition
	Instruction             // mnemonic with operands
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Label:
		return "label"
	case Instruction:
		return "instruction"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Mnemonics reports whether a token names an instruction.
type Mnemonics interface {
	IsMnemonic(token string) bool
}

// Line is a classified source line.
type Line struct {
	Number int    // 1 based line number
	Text   string // normalized text
	Kind   Kind

	Label  string // name of the defined label
	Legacy bool   // label uses a compatibility syntax, trailing text is ignored

	Mnemonic string
	Operands []string
}

// Parse normalizes and classifies a raw source line.
//
// A line whose text up to a colon is a single identifier defines that label;
// the standard form is the label followed by a colon and nothing else. Text
// after the colon is ignored and marks the label as legacy syntax. A first
// token that is neither a known mnemonic nor a register name defines a label
// in the legacy bare form. Any other line is an instruction.
func Parse(number int, raw string, mnemonics Mnemonics) (Line, error) {
	line := Line{
		Number: number,
		Text:   Normalize(raw),
	}
	if line.Text == "" {
		return line, nil
	}

	if i := strings.IndexByte(line.Text, LabelSuffix); i >= 0 {
		return parseColonLabel(line, i)
	}

	fields := strings.FieldsFunc(line.Text, isSeparator)
	if len(fields) == 0 {
		return line, nil
	}
	first := fields[0]

	if !mnemonics.IsMnemonic(first) && !operand.IsRegister(first) {
		if !operand.IsIdentifier(first) {
			return line, fmt.Errorf("%w '%s'", ErrInvalidLabel, first)
		}
		line.Kind = Label
		line.Label = first
		line.Legacy = true
		return line, nil
	}

	tokens, err := Tokenize(line.Text)
	if err != nil {
		return line, err
	}
	line.Kind = Instruction
	line.Mnemonic = first
	line.Operands = tokens[1:]
	return line, nil
}

func parseColonLabel(line Line, colon int) (Line, error) {
	definition := line.Text[:colon]
	name := strings.TrimRightFunc(definition, isSeparator)
	if !operand.IsIdentifier(name) {
		return line, fmt.Errorf("%w '%s'", ErrInvalidLabel, definition)
	}

	line.Kind = Label
	line.Label = name
	line.Legacy = len(name) != len(definition) || strings.TrimSpace(line.Text[colon+1:]) != ""
	return line, nil
}
