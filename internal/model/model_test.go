//go:build unit

package model

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMatrix_Mark(t *testing.T) {
	t.Run("marks a cell and is idempotent", func(t *testing.T) {
		// Prepare
		var m Matrix

		// Execute
		m.Mark(2, 5)
		once := m
		m.Mark(2, 5)

		// Check
		assert.True(t, m.IsPresent(2, 5), "cell marked")
		assert.False(t, m.IsPresent(2, 4), "neighbour untouched")
		assert.Equal(t, once, m, "second mark changes nothing")
	})

	t.Run("marks first and last day of month", func(t *testing.T) {
		// Prepare
		var m Matrix

		// Execute
		m.Mark(0, 1)
		m.Mark(0, 31)

		// Check
		assert.True(t, m[0][0], "day 1 is column 0")
		assert.True(t, m[0][30], "day 31 is column 30")
	})
}

func TestMatrix_DayRange(t *testing.T) {
	t.Run("no marks gives no range", func(t *testing.T) {
		// Prepare
		var m Matrix

		// Execute
		_, _, ok := m.DayRange(0)

		// Check
		assert.False(t, ok, "no range")
	})

	t.Run("range spans first to last mark of the subject only", func(t *testing.T) {
		// Prepare
		var m Matrix
		m.Mark(1, 7)
		m.Mark(1, 3)
		m.Mark(1, 12)
		m.Mark(0, 1)

		// Execute
		minDay, maxDay, ok := m.DayRange(1)

		// Check
		assert.True(t, ok, "has range")
		assert.Equal(t, 3, minDay, "min day")
		assert.Equal(t, 12, maxDay, "max day")
	})
}

func TestStudent_Suffix(t *testing.T) {
	t.Run("returns last four digits", func(t *testing.T) {
		// Prepare
		s := Student{ID: 20231234}

		// Check
		assert.Equal(t, int64(1234), s.Suffix(), "last four digits")
	})
}
