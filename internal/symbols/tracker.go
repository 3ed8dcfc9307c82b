package symbols

import "github.com/retroenv/retrogolib/set"

// Tracker resolves label names through a table and records which labels
// were resolved. The table itself is not modified.
type Tracker struct {
	table      *Table
	referenced set.Set[string]
}

// NewTracker returns a tracker for the given table.
func NewTracker(table *Table) *Tracker {
	return &Tracker{
		table:      table,
		referenced: set.New[string](),
	}
}

// Lookup returns the address of the label with the given name and marks
// the label as referenced.
func (t *Tracker) Lookup(name string) (uint16, bool) {
	address, ok := t.table.Lookup(name)
	if ok {
		t.referenced.Add(name)
	}
	return address, ok
}

// IsReferenced returns whether the label was resolved by Lookup.
func (t *Tracker) IsReferenced(name string) bool {
	return t.referenced.Contains(name)
}

// Unreferenced returns the symbols of the table that were never resolved
// by Lookup, in definition order.
func (t *Tracker) Unreferenced() []Symbol {
	var items []Symbol
	for _, sym := range t.table.Symbols() {
		if !t.referenced.Contains(sym.Name) {
			items = append(items, sym)
		}
	}
	return items
}
