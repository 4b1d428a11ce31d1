//go:build unit

package studentregister

import (
	"github.com/gostonefire/studentregister/regerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRegister_LoadBulk(t *testing.T) {
	t.Run("one well-formed and one malformed line", func(t *testing.T) {
		// Prepare
		r := newTestRegister(t)

		// Execute
		count, warnings, err := r.LoadBulk(strings.NewReader("1001,Alice\n1002;Bob\n"))

		// Check
		assert.NoError(t, err, "load")
		assert.Equal(t, 1, count, "one inserted")
		assert.Len(t, warnings, 1, "one warning")
		assert.ErrorIs(t, warnings[0], regerr.MalformedLine{}, "warning type")
		stat, _ := r.Stat(false)
		assert.Equal(t, int64(1), stat.Records, "exactly one student stored")
		s, err := r.FindExact(1001)
		assert.NoError(t, err, "Alice stored")
		assert.Equal(t, "Alice", s.Name, "name stored")
	})

	t.Run("repeated ids create shadowing nodes", func(t *testing.T) {
		// Prepare
		r := newTestRegister(t)

		// Execute
		count, _, err := r.LoadBulk(strings.NewReader("7,Old\n7,New\n"))

		// Check
		assert.NoError(t, err, "load")
		assert.Equal(t, 2, count, "both inserted")
		s, _ := r.FindExact(7)
		assert.Equal(t, "New", s.Name, "most recent insert found first")
		assert.NoError(t, r.DeleteStudentById(7), "delete newest")
		s, _ = r.FindExact(7)
		assert.Equal(t, "Old", s.Name, "older node exposed")
	})
}

func TestRegister_LoadBulkFile(t *testing.T) {
	t.Run("loads a file", func(t *testing.T) {
		// Prepare
		r := newTestRegister(t)
		fileName := filepath.Join(t.TempDir(), "students.txt")
		require.NoError(t, os.WriteFile(fileName, []byte("1001,Alice\n1002,Bob\n"), 0644), "write input")

		// Execute
		count, warnings, err := r.LoadBulkFile(fileName)

		// Check
		assert.NoError(t, err, "load")
		assert.Equal(t, 2, count, "two inserted")
		assert.Empty(t, warnings, "no warnings")
	})

	t.Run("fails when the file can't be opened", func(t *testing.T) {
		// Prepare
		r := newTestRegister(t)

		// Execute
		count, _, err := r.LoadBulkFile(filepath.Join(t.TempDir(), "missing.txt"))

		// Check
		assert.Error(t, err, "open fails")
		assert.Zero(t, count, "nothing inserted")
	})
}

func TestRegister_LoadExcelFile(t *testing.T) {
	t.Run("loads a workbook", func(t *testing.T) {
		// Prepare
		r := newTestRegister(t)
		fileName := filepath.Join(t.TempDir(), "students.xlsx")
		f := excelize.NewFile()
		require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"ID", "Name"}), "header")
		require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{1001, "Alice"}), "row")
		require.NoError(t, f.SaveAs(fileName), "save workbook")
		_ = f.Close()

		// Execute
		count, warnings, err := r.LoadExcelFile(fileName)

		// Check
		assert.NoError(t, err, "load")
		assert.Equal(t, 1, count, "one inserted")
		assert.Empty(t, warnings, "no warnings")
		_, err = r.FindExact(1001)
		assert.NoError(t, err, "Alice stored")
	})
}
