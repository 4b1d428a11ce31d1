//go:build unit

package loader

import (
	"errors"
	"github.com/gostonefire/studentregister/internal/conf"
	"github.com/gostonefire/studentregister/regerr"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

type inserted struct {
	id   int64
	name string
}

func collect(into *[]inserted) InsertFunc {
	return func(id int64, name string) error {
		*into = append(*into, inserted{id: id, name: name})
		return nil
	}
}

func TestParseLine(t *testing.T) {
	t.Run("parses well-formed lines", func(t *testing.T) {
		tests := []struct {
			line string
			id   int64
			name string
		}{
			{line: "1001,Alice\n", id: 1001, name: "Alice"},
			{line: "1002,Bob Smith\r\n", id: 1002, name: "Bob Smith"},
			{line: "  42,Name, with comma", id: 42, name: "Name, with comma"},
			{line: "-7, leading space", id: -7, name: " leading space"},
		}

		for _, test := range tests {
			// Execute
			id, name, ok := ParseLine(test.line)

			// Check
			assert.Truef(t, ok, "line %q parses", test.line)
			assert.Equalf(t, test.id, id, "id of %q", test.line)
			assert.Equalf(t, test.name, name, "name of %q", test.line)
		}
	})

	t.Run("rejects malformed lines", func(t *testing.T) {
		for _, line := range []string{"", "\n", "Alice", "abc,Alice", "12abc,Alice", "1001 ,Alice", "1001,", "1001,\n", ",Alice"} {
			// Execute
			_, _, ok := ParseLine(line)

			// Check
			assert.Falsef(t, ok, "line %q rejected", line)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("one good and one bad line gives one insert and one warning", func(t *testing.T) {
		// Prepare
		var got []inserted
		input := "1001,Alice\nnot a student\n"

		// Execute
		count, warnings, err := Load(strings.NewReader(input), collect(&got))

		// Check
		assert.NoError(t, err, "load completes")
		assert.Equal(t, 1, count, "one inserted")
		assert.Equal(t, []inserted{{id: 1001, name: "Alice"}}, got, "Alice inserted")
		assert.Len(t, warnings, 1, "one warning")
		assert.ErrorIs(t, warnings[0], regerr.MalformedLine{}, "warning type")
		assert.Equal(t, regerr.MalformedLine{LineNo: 2, Line: "not a student"}, warnings[0], "warning names the line")
	})

	t.Run("continues past bad lines and reads a last line without newline", func(t *testing.T) {
		// Prepare
		var got []inserted
		input := "bad\n1,A\n\n2,B\nx,y\n3,C"

		// Execute
		count, warnings, err := Load(strings.NewReader(input), collect(&got))

		// Check
		assert.NoError(t, err, "load completes")
		assert.Equal(t, 3, count, "three inserted")
		assert.Equal(t, []inserted{{1, "A"}, {2, "B"}, {3, "C"}}, got, "in file order")
		assert.Len(t, warnings, 3, "three warnings")
	})

	t.Run("lines longer than the read buffer are read whole", func(t *testing.T) {
		// Prepare
		var got []inserted
		long := strings.Repeat("n", 3*conf.MaxLineLen)

		// Execute
		count, warnings, err := Load(strings.NewReader("1,"+long+"\n2,B\n"), collect(&got))

		// Check
		assert.NoError(t, err, "load completes")
		assert.Equal(t, 2, count, "both inserted")
		assert.Empty(t, warnings, "no warnings")
		assert.Equal(t, []inserted{{1, long}, {2, "B"}}, got, "long name kept whole")
	})

	t.Run("repeated ids are inserted every time", func(t *testing.T) {
		// Prepare
		var got []inserted

		// Execute
		count, _, err := Load(strings.NewReader("5,X\n5,Y\n"), collect(&got))

		// Check
		assert.NoError(t, err, "load completes")
		assert.Equal(t, 2, count, "both inserted")
	})

	t.Run("empty input loads nothing", func(t *testing.T) {
		// Execute
		count, warnings, err := Load(strings.NewReader(""), collect(new([]inserted)))

		// Check
		assert.NoError(t, err, "load completes")
		assert.Zero(t, count, "nothing inserted")
		assert.Empty(t, warnings, "no warnings")
	})

	t.Run("insert errors abort the load", func(t *testing.T) {
		// Prepare
		fail := func(id int64, name string) error { return errors.New("bad bucket") }

		// Execute
		count, _, err := Load(strings.NewReader("1,A\n2,B\n"), fail)

		// Check
		assert.EqualError(t, err, "error while inserting student from line 1: bad bucket", "error surfaces")
		assert.Zero(t, count, "nothing counted")
	})
}
