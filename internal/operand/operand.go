// Package operand resolves operand tokens of instruction lines into numeric values.
package operand

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxValue is the largest value an operand token can resolve to.
const MaxValue = 0xFFFF

var (
	// ErrInvalidOperand is returned for tokens that match no operand form.
	ErrInvalidOperand = errors.New("invalid operand")
	// ErrInvalidRegisterPair is returned for register pairs that are not an even/odd neighbour pair.
	ErrInvalidRegisterPair = errors.New("invalid register pair")
	// ErrOutOfRange is returned for integer literals outside of 0 to MaxValue.
	ErrOutOfRange = errors.New("value out of range")
	// ErrUndefinedLabel is returned for identifiers missing in the symbol table.
	ErrUndefinedLabel = errors.New("undefined label")
)

// SymbolLookup resolves label names to addresses.
type SymbolLookup interface {
	Lookup(name string) (uint16, bool)
}

// Resolve parses an operand token into its value. The token is tried as a
// register, a register pair and an integer literal, in that order. Any other
// token starting with a letter or underscore is looked up in symbols, which
// may be nil if no labels are known.
// The returned value is not masked to any field width.
func Resolve(token string, symbols SymbolLookup) (int, error) {
	if reg, ok := RegisterIndex(token); ok {
		return reg, nil
	}

	pair, ok, err := RegisterPairIndex(token)
	if err != nil {
		return 0, err
	}
	if ok {
		return pair, nil
	}

	if token != "" && isDigit(token[0]) {
		return ParseLiteral(token)
	}

	if !IsIdentifier(token) {
		return 0, fmt.Errorf("%w '%s'", ErrInvalidOperand, token)
	}
	if symbols != nil {
		if address, ok := symbols.Lookup(token); ok {
			return int(address), nil
		}
	}
	return 0, fmt.Errorf("%w '%s'", ErrUndefinedLabel, token)
}

// RegisterIndex returns the register number of a register token like R7.
// Only a single decimal digit is accepted.
func RegisterIndex(token string) (int, bool) {
	if len(token) != 2 || !isRegisterPrefix(token[0]) || !isDigit(token[1]) {
		return 0, false
	}
	return int(token[1] - '0'), true
}

// IsRegister returns whether the token is a register name.
func IsRegister(token string) bool {
	_, ok := RegisterIndex(token)
	return ok
}

// RegisterPairIndex returns the pair index of a register pair token like R2R3.
// The boolean result is false if the token does not have the form of a register
// pair, an error is returned if it has the form but names no valid pair.
func RegisterPairIndex(token string) (int, bool, error) {
	if len(token) != 4 ||
		!isRegisterPrefix(token[0]) || !isDigit(token[1]) ||
		!isRegisterPrefix(token[2]) || !isDigit(token[3]) {
		return 0, false, nil
	}

	first := int(token[1] - '0')
	second := int(token[3] - '0')
	if first%2 != 0 || second != first+1 {
		return 0, false, fmt.Errorf("%w '%s'", ErrInvalidRegisterPair, token)
	}
	return first / 2, true, nil
}

// ParseLiteral parses a decimal, 0x prefixed hexadecimal or 0 prefixed octal
// integer. The whole token has to be consumed.
func ParseLiteral(token string) (int, error) {
	digits, base := token, 10
	switch {
	case len(token) > 1 && (strings.HasPrefix(token, "0x") || strings.HasPrefix(token, "0X")):
		digits, base = token[2:], 16
	case len(token) > 1 && token[0] == '0':
		digits, base = token[1:], 8
	}

	// ParseUint accepts underscores and signs in some forms, the assembler does not.
	if digits == "" || strings.ContainsAny(digits, "_+-") {
		return 0, fmt.Errorf("%w '%s'", ErrInvalidOperand, token)
	}

	value, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w '%s'", ErrOutOfRange, token)
		}
		return 0, fmt.Errorf("%w '%s'", ErrInvalidOperand, token)
	}
	if value > MaxValue {
		return 0, fmt.Errorf("%w '%s'", ErrOutOfRange, token)
	}
	return int(value), nil
}

// IsIdentifier returns whether the token is a valid label name: a letter or
// underscore followed by letters, digits or underscores.
func IsIdentifier(token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && isDigit(c):
		default:
			return false
		}
	}
	return true
}

func isRegisterPrefix(c byte) bool {
	return c == 'R' || c == 'r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
