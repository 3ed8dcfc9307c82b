// Package symbols provides the symbol table that maps label names to addresses.
package symbols

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicate is returned when a label is defined more than once.
	ErrDuplicate = errors.New("duplicate label")
	// ErrCapacity is returned when the table is full.
	ErrCapacity = errors.New("too many labels")
	// ErrNameTooLong is returned for label names exceeding the maximum length.
	ErrNameTooLong = errors.New("label name too long")
)

// Symbol is a label and the program counter value it was defined at.
type Symbol struct {
	Name    string
	Address uint16
	Line    int // source line of the definition
}

// Table maps label names to addresses. It is filled by the label collector
// and only read afterwards, references are recorded by a Tracker.
type Table struct {
	capacity   int
	nameLength int

	symbols map[string]Symbol
	order   []string
}

// New creates a new symbol table that can hold up to capacity symbols with
// names of up to nameLength characters. A value of 0 disables the limit.
func New(capacity, nameLength int) *Table {
	return &Table{
		capacity:   capacity,
		nameLength: nameLength,
		symbols:    make(map[string]Symbol),
	}
}

// Add inserts a symbol. Names are unique, the first definition is kept.
func (t *Table) Add(sym Symbol) error {
	if existing, ok := t.symbols[sym.Name]; ok {
		return fmt.Errorf("%w '%s', first defined at line %d", ErrDuplicate, sym.Name, existing.Line)
	}
	if t.nameLength > 0 && len(sym.Name) > t.nameLength {
		return fmt.Errorf("%w '%s', at most %d characters supported", ErrNameTooLong, sym.Name, t.nameLength)
	}
	if t.capacity > 0 && len(t.symbols) >= t.capacity {
		return fmt.Errorf("%w, at most %d supported", ErrCapacity, t.capacity)
	}

	t.symbols[sym.Name] = sym
	t.order = append(t.order, sym.Name)
	return nil
}

// Get returns the symbol with the given name.
func (t *Table) Get(name string) (Symbol, bool) {
	sym, ok := t.symbols[name]
	return sym, ok
}

// Lookup returns the address of the label with the given name.
func (t *Table) Lookup(name string) (uint16, bool) {
	sym, ok := t.symbols[name]
	return sym.Address, ok
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return len(t.symbols)
}

// Symbols returns all symbols in definition order.
func (t *Table) Symbols() []Symbol {
	items := make([]Symbol, 0, len(t.order))
	for _, name := range t.order {
		items = append(items, t.symbols[name])
	}
	return items
}

// SortedByAddress returns all symbols sorted by address, symbols sharing an
// address keep their definition order.
func (t *Table) SortedByAddress() []Symbol {
	items := t.Symbols()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Address < items[j].Address
	})
	return items
}
