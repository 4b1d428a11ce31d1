package report

import (
	"bufio"
	"fmt"
	"github.com/gostonefire/studentregister/internal/conf"
	"github.com/gostonefire/studentregister/internal/model"
	"github.com/gostonefire/studentregister/internal/utils"
	"io"
	"strings"
)

// View - Snapshot of one student's attendance for all registered subjects and all days of the month
type View struct {
	ID         int64
	Name       string
	Subjects   []string
	Attendance model.Matrix
}

// NewView - Returns a View of the student with the given subject names as rows
func NewView(student *model.Student, subjects []string) View {
	return View{
		ID:         student.ID,
		Name:       student.Name,
		Subjects:   subjects,
		Attendance: student.Attendance,
	}
}

// Present - Returns true if the student is marked present for the subject row and day (1 to conf.MaxDays)
func (V View) Present(subjectIndex, day int) bool {
	return V.Attendance.IsPresent(subjectIndex, day)
}

// Blocks - Returns the inclusive day ranges of the paged layout, three blocks of 10, 10 and 11 days
func Blocks() (blocks [][2]int) {
	for part := 0; part < conf.ViewBlocks; part++ {
		startDay := part*conf.ViewBlockDays + 1
		endDay := startDay + conf.ViewBlockDays - 1
		if part == conf.ViewBlocks-1 {
			endDay = conf.MaxDays
		}
		blocks = append(blocks, [2]int{startDay, endDay})
	}

	return
}

// WritePaged - Writes the view as three stacked tables, days 1-10, 11-20 and 21-31
func (V View) WritePaged(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)

	V.writeTitle(bw)
	for _, block := range Blocks() {
		V.writeBlock(bw, block[0], block[1])
	}

	err = bw.Flush()
	if err != nil {
		err = fmt.Errorf("error while writing attendance view: %s", err)
	}

	return
}

// WriteWide - Writes the view as one table covering all days of the month
func (V View) WriteWide(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)

	V.writeTitle(bw)
	V.writeBlock(bw, 1, conf.MaxDays)

	err = bw.Flush()
	if err != nil {
		err = fmt.Errorf("error while writing attendance view: %s", err)
	}

	return
}

// writeTitle - Writes the student line and the top rule
func (V View) writeTitle(bw *bufio.Writer) {
	_, _ = fmt.Fprintf(bw, "Attendance for %s (ID: %d):\n", V.Name, V.ID)
	_, _ = bw.WriteString(strings.Repeat("=", conf.RuleWidth) + "\n")
}

// writeBlock - Writes one table for the inclusive day range
func (V View) writeBlock(bw *bufio.Writer, startDay, endDay int) {
	_, _ = bw.WriteString("| " + utils.PadRight("Subject", conf.ViewSubjectWidth))
	for day := startDay; day <= endDay; day++ {
		_, _ = fmt.Fprintf(bw, "| Day%-2d ", day)
	}
	_, _ = bw.WriteString("|\n")
	_, _ = bw.WriteString(strings.Repeat("=", conf.RuleWidth) + "\n")

	for i, subject := range V.Subjects {
		_, _ = bw.WriteString("| " + utils.PadRight(subject, conf.ViewSubjectWidth))
		for day := startDay; day <= endDay; day++ {
			_, _ = fmt.Fprintf(bw, "| %-5s ", Mark(V.Present(i, day)))
		}
		_, _ = bw.WriteString("|\n")
	}
	_, _ = bw.WriteString(strings.Repeat("=", conf.RuleWidth) + "\n")
}
