package loader

import (
	"errors"
	"fmt"
	"github.com/gostonefire/studentregister/regerr"
	"github.com/xuri/excelize/v2"
	"io"
	"strconv"
	"strings"
)

// LoadExcel - Reads students from the first sheet of a workbook. The first row is a header and is skipped,
// column A holds the id and column B the name. Rows with a missing or non numeric id or a missing name are
// skipped and reported as regerr.MalformedLine warnings, LineNo being the 1 based row number.
//   - r is the workbook stream
//   - insert is called with every parsed id and name
//
// It returns:
//   - count is the number of inserted students
//   - warnings holds one regerr.MalformedLine per skipped row
//   - err is a standard error if the workbook could not be read or insert failed
func LoadExcel(r io.Reader, insert InsertFunc) (count int, warnings []error, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		err = fmt.Errorf("error while opening workbook: %s", err)
		return
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		err = errors.New("workbook does not contain any sheets")
		return
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		err = fmt.Errorf("error while getting rows from sheet %s: %s", sheetName, err)
		return
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}

		var idText, name string
		if len(row) > 0 {
			idText = strings.TrimSpace(row[0])
		}
		if len(row) > 1 {
			name = row[1]
		}

		id, parseErr := strconv.ParseInt(idText, 10, 64)
		if parseErr != nil || name == "" {
			warnings = append(warnings, regerr.MalformedLine{LineNo: i + 1, Line: strings.Join(row, ",")})
			continue
		}

		err = insert(id, name)
		if err != nil {
			err = fmt.Errorf("error while inserting student from row %d: %s", i+1, err)
			return
		}
		count++
	}

	return
}
