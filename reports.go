package studentregister

import (
	"bytes"
	"fmt"
	"github.com/gostonefire/studentregister/internal/report"
	"io"
	"os"
)

// GenerateReport - Writes the fixed width attendance report for a subject to w. The subject is registered if
// it is new and the title uses the registered, possibly shortened, subject name. Day columns cover only the
// range from the first to the last day anyone is marked present, each cell reads P for present or A for absent.
//   - w is the sink to write to
//   - subjectName is the subject to report on
//
// It returns:
//   - err is of type regerr.RegistryFull if the subject is new and can't be registered, regerr.NoAttendanceData
//     if nobody is marked present for the subject, or a standard error if writing failed
func (R *Register) GenerateReport(w io.Writer, subjectName string) (err error) {
	subjectIndex, err := R.subjects.IndexOf(subjectName)
	if err != nil {
		return
	}
	registered, _ := R.subjects.Name(subjectIndex)

	return report.Write(w, R.table, registered, subjectIndex)
}

// GenerateReportFile - Same as GenerateReport but writes to the named file. The file is only created when
// there is a report to write.
func (R *Register) GenerateReportFile(fileName, subjectName string) (err error) {
	var buf bytes.Buffer
	err = R.GenerateReport(&buf, subjectName)
	if err != nil {
		return
	}

	return writeFile(fileName, buf.Bytes())
}

// GenerateReportExcel - Writes the attendance report for a subject as a workbook to w, using the same subject
// name, day range and P/A cells as GenerateReport.
//
// It returns:
//   - err is of type regerr.RegistryFull, regerr.NoAttendanceData or a standard error as for GenerateReport
func (R *Register) GenerateReportExcel(w io.Writer, subjectName string) (err error) {
	subjectIndex, err := R.subjects.IndexOf(subjectName)
	if err != nil {
		return
	}
	registered, _ := R.subjects.Name(subjectIndex)

	return report.WriteExcel(w, R.table, registered, subjectIndex)
}

// GenerateReportExcelFile - Same as GenerateReportExcel but writes to the named file
func (R *Register) GenerateReportExcelFile(fileName, subjectName string) (err error) {
	var buf bytes.Buffer
	err = R.GenerateReportExcel(&buf, subjectName)
	if err != nil {
		return
	}

	return writeFile(fileName, buf.Bytes())
}

// RenderView - Returns the attendance of the student with exactly the given id for all registered subjects
// and all days of the month.
//
// It returns:
//   - view is the attendance snapshot, render it with View.WritePaged or View.WriteWide
//   - err is either of type regerr.NoRecordFound or a standard error, if something went wrong
func (R *Register) RenderView(id int64) (view View, err error) {
	student, err := R.FindExact(id)
	if err != nil {
		return
	}

	view = report.NewView(student, R.Subjects())

	return
}

// writeFile - Creates or truncates the named file and writes data to it
func writeFile(fileName string, data []byte) (err error) {
	err = os.WriteFile(fileName, data, 0644)
	if err != nil {
		err = fmt.Errorf("could not open file %s for writing: %s", fileName, err)
	}

	return
}
