package report

import (
	"fmt"
	"github.com/gostonefire/studentregister/internal/model"
	"github.com/gostonefire/studentregister/internal/utils"
	"github.com/gostonefire/studentregister/regerr"
	"github.com/xuri/excelize/v2"
	"io"
	"strings"
)

// maxSheetNameLen - Longest sheet name a workbook accepts
const maxSheetNameLen = 31

// WriteExcel - Writes the attendance report for one subject as a workbook with a single sheet named after the
// subject. The sheet holds the title in A1, the column header in row 2 and one row per student from row 3,
// using the same day range and P/A marks as the text report.
//
// It returns:
//   - err is of type regerr.NoAttendanceData if nothing is marked for the subject (nothing is written), or a
//     standard error if building or writing the workbook failed
func WriteExcel(w io.Writer, src Source, subjectName string, subjectIndex int) (err error) {
	minDay, maxDay, ok, err := DayRange(src, subjectIndex)
	if err != nil {
		return
	}
	if !ok {
		err = regerr.NoAttendanceData{Subject: subjectName}
		return
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := SheetName(subjectName)
	err = f.SetSheetName("Sheet1", sheet)
	if err != nil {
		err = fmt.Errorf("error while naming sheet: %s", err)
		return
	}

	err = f.SetCellValue(sheet, "A1", fmt.Sprintf("%s Attendance Report", subjectName))
	if err != nil {
		err = fmt.Errorf("error while writing title: %s", err)
		return
	}

	header := []interface{}{"ID", "Name"}
	for day := minDay; day <= maxDay; day++ {
		header = append(header, fmt.Sprintf("Day%d", day))
	}
	err = f.SetSheetRow(sheet, "A2", &header)
	if err != nil {
		err = fmt.Errorf("error while writing header row: %s", err)
		return
	}

	row := 3
	err = src.Walk(func(student *model.Student) error {
		cells := []interface{}{student.ID, student.Name}
		for day := minDay; day <= maxDay; day++ {
			cells = append(cells, Mark(student.Attendance.IsPresent(subjectIndex, day)))
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		row++
		return f.SetSheetRow(sheet, cell, &cells)
	})
	if err != nil {
		err = fmt.Errorf("error while writing student rows: %s", err)
		return
	}

	err = f.Write(w)
	if err != nil {
		err = fmt.Errorf("error while writing workbook: %s", err)
	}

	return
}

// SheetName - Returns a valid sheet name for a subject
func SheetName(subjectName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, subjectName)
	name = strings.Trim(name, "'")

	name = utils.TruncateName(name, maxSheetNameLen)
	if name == "" {
		name = "Report"
	}

	return name
}
