//go:build unit

package report

import (
	"bytes"
	"fmt"
	"github.com/gostonefire/studentregister/internal/model"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestBlocks(t *testing.T) {
	t.Run("splits the month into 10, 10 and 11 days", func(t *testing.T) {
		// Execute
		blocks := Blocks()

		// Check
		assert.Equal(t, [][2]int{{1, 10}, {11, 20}, {21, 31}}, blocks, "block ranges")
	})
}

func TestView_WritePaged(t *testing.T) {
	t.Run("renders all subjects over all days", func(t *testing.T) {
		// Prepare
		s := &model.Student{ID: 1001, Name: "Alice"}
		s.Attendance.Mark(1, 31)
		s.Attendance.Mark(0, 1)
		v := NewView(s, []string{"Math", "Physics"})
		var buf bytes.Buffer

		// Execute
		err := v.WritePaged(&buf)

		// Check
		assert.NoError(t, err, "write view")
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		assert.Equal(t, "Attendance for Alice (ID: 1001):", lines[0], "title")
		assert.Equal(t, strings.Repeat("=", 86), lines[1], "rule")
		// title + rule, then per block header + rule + 2 subjects + rule
		assert.Len(t, lines, 2+3*5, "line count")

		firstHeader := fmt.Sprintf("| %-20s", "Subject")
		for day := 1; day <= 10; day++ {
			firstHeader += fmt.Sprintf("| Day%-2d ", day)
		}
		assert.Equal(t, firstHeader+"|", lines[2], "first block header")
		assert.True(t, strings.HasPrefix(lines[4], fmt.Sprintf("| %-20s| P     | A     ", "Math")), "Math present on day 1")
		assert.True(t, strings.HasSuffix(lines[15], "| A     | P     |"), "Physics present on day 31")
		assert.Equal(t, 11, strings.Count(lines[12], "Day"), "last block has 11 days")
	})

	t.Run("renders a student with no marks", func(t *testing.T) {
		// Prepare
		v := NewView(&model.Student{ID: 5, Name: "Eve"}, []string{"Math"})
		var buf bytes.Buffer

		// Execute
		err := v.WritePaged(&buf)

		// Check
		assert.NoError(t, err, "write view")
		assert.Equal(t, 31, strings.Count(buf.String(), "| A     "), "all 31 days absent")
	})
}

func TestView_WriteWide(t *testing.T) {
	t.Run("renders one table with 31 days", func(t *testing.T) {
		// Prepare
		s := &model.Student{ID: 1001, Name: "Alice"}
		s.Attendance.Mark(0, 15)
		v := NewView(s, []string{"Math"})
		var buf bytes.Buffer

		// Execute
		err := v.WriteWide(&buf)

		// Check
		assert.NoError(t, err, "write view")
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		assert.Len(t, lines, 6, "title, rule, header, rule, one subject, rule")
		assert.Equal(t, 31, strings.Count(lines[2], "Day"), "all days in one header")
		assert.True(t, v.Present(0, 15), "day 15 present")
		assert.Equal(t, 1, strings.Count(lines[4], "| P     "), "one present mark")
	})
}
