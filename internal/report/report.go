package report

import (
	"bufio"
	"fmt"
	"github.com/gostonefire/studentregister/internal/conf"
	"github.com/gostonefire/studentregister/internal/model"
	"github.com/gostonefire/studentregister/internal/utils"
	"github.com/gostonefire/studentregister/regerr"
	"io"
	"strconv"
	"strings"
)

// Source - Anything that can hand out every stored student in a deterministic order
type Source interface {
	Walk(fn func(student *model.Student) error) error
}

// DayRange - Scans all students for the first and last day any of them is marked present for a subject.
//   - src is the student source to scan
//   - subjectIndex is the registry index of the subject
//
// It returns:
//   - minDay and maxDay is the inclusive range of days, only valid if ok is true
//   - ok is false if no student has any mark for the subject
//   - err is a standard error, if the scan failed
func DayRange(src Source, subjectIndex int) (minDay, maxDay int, ok bool, err error) {
	minDay = conf.MaxDays + 1
	err = src.Walk(func(student *model.Student) error {
		lo, hi, found := student.Attendance.DayRange(subjectIndex)
		if found {
			minDay = min(minDay, lo)
			maxDay = max(maxDay, hi)
		}
		return nil
	})
	if err != nil {
		return
	}

	ok = minDay <= maxDay
	if !ok {
		minDay, maxDay = 0, 0
	}

	return
}

// Write - Writes a fixed width attendance report for one subject. Day columns run from the first to the
// last day any student is marked present, and there is one row per student in source order.
//   - w is the sink to write to
//   - src is the student source
//   - subjectName is the name used in the report title
//   - subjectIndex is the registry index of the subject
//
// It returns:
//   - err is of type regerr.NoAttendanceData if nothing is marked for the subject (nothing is written), or a
//     standard error if writing failed
func Write(w io.Writer, src Source, subjectName string, subjectIndex int) (err error) {
	minDay, maxDay, ok, err := DayRange(src, subjectIndex)
	if err != nil {
		return
	}
	if !ok {
		err = regerr.NoAttendanceData{Subject: subjectName}
		return
	}

	bw := bufio.NewWriter(w)

	_, _ = fmt.Fprintf(bw, "%s Attendance Report\n", subjectName)
	_, _ = bw.WriteString(utils.PadRight("ID", conf.ReportIDWidth) + " " + utils.PadRight("Name", conf.ReportNameWidth))
	for day := minDay; day <= maxDay; day++ {
		_, _ = fmt.Fprintf(bw, " Day%-2d", day)
	}
	_, _ = bw.WriteString("\n")
	_, _ = bw.WriteString(strings.Repeat("-", conf.RuleWidth) + "\n")

	err = src.Walk(func(student *model.Student) error {
		_, _ = bw.WriteString(utils.PadRight(strconv.FormatInt(student.ID, 10), conf.ReportIDWidth) + " " + utils.PadRight(student.Name, conf.ReportNameWidth))
		for day := minDay; day <= maxDay; day++ {
			_, _ = fmt.Fprintf(bw, " %-5s", Mark(student.Attendance.IsPresent(subjectIndex, day)))
		}
		_, err := bw.WriteString("\n")
		return err
	})
	if err != nil {
		err = fmt.Errorf("error while writing report rows: %s", err)
		return
	}

	err = bw.Flush()
	if err != nil {
		err = fmt.Errorf("error while writing report: %s", err)
	}

	return
}

// Mark - Returns the cell text for a present or absent mark
func Mark(present bool) string {
	if present {
		return "P"
	}
	return "A"
}
