package studentregister

import (
	"fmt"
	"github.com/gostonefire/studentregister/internal/loader"
	"io"
	"os"
)

// LoadBulk - Inserts a student for every <id>,<name> line read from r. Ids are not checked for uniqueness,
// a repeated id adds another node that shadows the earlier ones for FindExact.
//
// It returns:
//   - count is the number of inserted students
//   - warnings holds a regerr.MalformedLine for every skipped line, loading continues past them
//   - err is a standard error if reading failed
func (R *Register) LoadBulk(r io.Reader) (count int, warnings []error, err error) {
	return loader.Load(r, R.insert)
}

// LoadBulkFile - Same as LoadBulk but reads the named file
//
// It returns:
//   - count is the number of inserted students
//   - warnings holds a regerr.MalformedLine for every skipped line
//   - err is a standard error if the file could not be opened or read, nothing is inserted if it can't be opened
func (R *Register) LoadBulkFile(fileName string) (count int, warnings []error, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		err = fmt.Errorf("could not open file %s: %s", fileName, err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	return R.LoadBulk(f)
}

// LoadExcel - Inserts a student for every row of the first sheet of a workbook, skipping the header row.
// Column A holds the id and column B the name.
//
// It returns:
//   - count is the number of inserted students
//   - warnings holds a regerr.MalformedLine for every skipped row
//   - err is a standard error if the workbook could not be read
func (R *Register) LoadExcel(r io.Reader) (count int, warnings []error, err error) {
	return loader.LoadExcel(r, R.insert)
}

// LoadExcelFile - Same as LoadExcel but reads the named workbook file
func (R *Register) LoadExcelFile(fileName string) (count int, warnings []error, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		err = fmt.Errorf("could not open file %s: %s", fileName, err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	return R.LoadExcel(f)
}

// insert - Adapts InsertStudent to the loader callback
func (R *Register) insert(id int64, name string) (err error) {
	_, err = R.InsertStudent(id, name)
	return
}
