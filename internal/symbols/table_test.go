package symbols

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // test functions can be long
func TestTable(t *testing.T) {
	t.Run("new table is empty", func(t *testing.T) {
		table := New(0, 0)

		assert.NotNil(t, table)
		assert.Equal(t, 0, table.Len())
		assert.Equal(t, 0, len(table.Symbols()))
	})

	t.Run("add and lookup", func(t *testing.T) {
		table := New(0, 0)
		assert.NoError(t, table.Add(Symbol{Name: "loop", Address: 0x123, Line: 3}))

		address, ok := table.Lookup("loop")
		assert.True(t, ok)
		assert.Equal(t, uint16(0x123), address)

		sym, ok := table.Get("loop")
		assert.True(t, ok)
		assert.Equal(t, 3, sym.Line)
	})

	t.Run("lookup is exact", func(t *testing.T) {
		table := New(0, 0)
		assert.NoError(t, table.Add(Symbol{Name: "loop"}))

		_, ok := table.Lookup("LOOP")
		assert.False(t, ok)
	})

	t.Run("duplicate keeps first definition", func(t *testing.T) {
		table := New(0, 0)
		assert.NoError(t, table.Add(Symbol{Name: "loop", Address: 1, Line: 1}))

		err := table.Add(Symbol{Name: "loop", Address: 2, Line: 5})
		assert.True(t, errors.Is(err, ErrDuplicate))
		assert.ErrorContains(t, err, "first defined at line 1")

		address, _ := table.Lookup("loop")
		assert.Equal(t, uint16(1), address)
		assert.Equal(t, 1, table.Len())
	})

	t.Run("capacity exceeded", func(t *testing.T) {
		table := New(2, 0)
		assert.NoError(t, table.Add(Symbol{Name: "a"}))
		assert.NoError(t, table.Add(Symbol{Name: "b"}))

		err := table.Add(Symbol{Name: "c"})
		assert.True(t, errors.Is(err, ErrCapacity))
		assert.Equal(t, 2, table.Len())
	})

	t.Run("name too long", func(t *testing.T) {
		table := New(0, 4)
		assert.NoError(t, table.Add(Symbol{Name: "four"}))

		err := table.Add(Symbol{Name: "fives"})
		assert.True(t, errors.Is(err, ErrNameTooLong))
	})

	t.Run("sorted by address keeps definition order", func(t *testing.T) {
		table := New(0, 0)
		assert.NoError(t, table.Add(Symbol{Name: "c", Address: 4}))
		assert.NoError(t, table.Add(Symbol{Name: "a", Address: 0}))
		assert.NoError(t, table.Add(Symbol{Name: "b", Address: 0}))

		sorted := table.SortedByAddress()
		assert.Equal(t, 3, len(sorted))
		assert.Equal(t, "a", sorted[0].Name)
		assert.Equal(t, "b", sorted[1].Name)
		assert.Equal(t, "c", sorted[2].Name)

		ordered := table.Symbols()
		assert.Equal(t, "c", ordered[0].Name)
	})
}

func TestTracker(t *testing.T) {
	table := New(0, 0)
	assert.NoError(t, table.Add(Symbol{Name: "used", Address: 4}))
	assert.NoError(t, table.Add(Symbol{Name: "unused"}))

	tracker := NewTracker(table)
	address, ok := tracker.Lookup("used")
	assert.True(t, ok)
	assert.Equal(t, uint16(4), address)
	_, ok = tracker.Lookup("missing")
	assert.False(t, ok)

	assert.True(t, tracker.IsReferenced("used"))
	assert.False(t, tracker.IsReferenced("unused"))
	assert.False(t, tracker.IsReferenced("missing"))

	unreferenced := tracker.Unreferenced()
	assert.Equal(t, 1, len(unreferenced))
	assert.Equal(t, "unused", unreferenced[0].Name)

	// lookups through the table are not tracked
	other := NewTracker(table)
	_, _ = table.Lookup("used")
	assert.False(t, other.IsReferenced("used"))
	assert.Equal(t, 2, len(other.Unreferenced()))
}
