//go:build unit

package utils

import (
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateName(t *testing.T) {
	t.Run("short names are kept", func(t *testing.T) {
		// Execute
		name := TruncateName("Alice", 49)

		// Check
		assert.Equal(t, "Alice", name, "name unchanged")
	})

	t.Run("long names are cut", func(t *testing.T) {
		// Prepare
		long := strings.Repeat("a", 60)

		// Execute
		name := TruncateName(long, 49)

		// Check
		assert.Equal(t, 49, len(name), "cut to max length")
	})

	t.Run("multibyte characters are not split", func(t *testing.T) {
		// Execute
		name := TruncateName("张三李四", 2)

		// Check
		assert.Equal(t, "张三", name, "cut on character boundary")
	})

	t.Run("zero length gives empty name", func(t *testing.T) {
		// Check
		assert.Equal(t, "", TruncateName("Alice", 0), "empty name")
	})
}

func TestPadRight(t *testing.T) {
	t.Run("pads to column width", func(t *testing.T) {
		// Execute
		s := PadRight("ID", 10)

		// Check
		assert.Equal(t, "ID        ", s, "padded with spaces")
	})

	t.Run("wide characters take two cells", func(t *testing.T) {
		// Execute
		s := PadRight("张三", 6)

		// Check
		assert.Equal(t, "张三  ", s, "two wide characters fill four cells")
	})

	t.Run("greek and cyrillic letters take one cell in any locale", func(t *testing.T) {
		// Prepare
		eastAsian := runewidth.DefaultCondition.EastAsianWidth
		runewidth.DefaultCondition.EastAsianWidth = true
		defer func() { runewidth.DefaultCondition.EastAsianWidth = eastAsian }()

		// Execute
		greek := PadRight("Ωmega Łukasz", 30)
		cyrillic := PadRight("Иван Петров", 30)

		// Check
		assert.Equal(t, "Ωmega Łukasz"+strings.Repeat(" ", 18), greek, "padded to 30 cells")
		assert.Equal(t, 30, utf8.RuneCountInString(greek), "30 characters")
		assert.Equal(t, "Иван Петров"+strings.Repeat(" ", 19), cyrillic, "padded to 30 cells")
		assert.Equal(t, 30, utf8.RuneCountInString(cyrillic), "30 characters")
	})

	t.Run("overlong strings are kept", func(t *testing.T) {
		// Execute
		s := PadRight("abcdef", 3)

		// Check
		assert.Equal(t, "abcdef", s, "not cut")
	})
}

func TestTrimLineEnd(t *testing.T) {
	t.Run("removes line endings", func(t *testing.T) {
		// Check
		assert.Equal(t, "1001,Alice", TrimLineEnd("1001,Alice\r\n"), "crlf removed")
		assert.Equal(t, "1001,Alice", TrimLineEnd("1001,Alice\n"), "lf removed")
		assert.Equal(t, "1001,Alice ", TrimLineEnd("1001,Alice "), "spaces kept")
	})
}
