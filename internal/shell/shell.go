package shell

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	studentregister "github.com/gostonefire/studentregister"
	"github.com/gostonefire/studentregister/internal/conf"
	"github.com/gostonefire/studentregister/regerr"
	"io"
	"log"
	"strings"
)

const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	cyan   = "\033[36m"
)

var menu = []string{
	"Load Students from File",
	"Generate Attendance Report",
	"Search Student by ID",
	"Delete Student by ID",
	"Insert New Student",
	"Mark Attendance",
	"View Attendance",
	"Exit",
	"Show Table Statistics",
	"Load Students from Spreadsheet",
	"Generate Spreadsheet Report",
}

const exitChoice = 8

// markRequest - The day part of a mark attendance session
type markRequest struct {
	Day int64 `validate:"min=1,max=31"`
}

// insertRequest - A new student entered at the prompt
type insertRequest struct {
	Name string `validate:"required"`
}

// Options - Presentation settings for a Shell
//   - Color turns ANSI colours on
//   - WideView renders student attendance as one table instead of three
//   - ReportPath maps a report file name entered by the user to the path written, nil keeps the name
//   - Logger receives operational notes, nil discards them
type Options struct {
	Color      bool
	WideView   bool
	ReportPath func(fileName string) string
	Logger     *log.Logger
}

// Shell - Menu driven front end to a studentregister.Register
type Shell struct {
	register *studentregister.Register
	in       *input
	out      io.Writer
	opts     Options
	logger   *log.Logger
	validate *validator.Validate
}

// New - Returns a Shell reading answers from in and writing prompts and results to out
func New(register *studentregister.Register, in io.Reader, out io.Writer, opts Options) *Shell {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if opts.ReportPath == nil {
		opts.ReportPath = func(fileName string) string { return fileName }
	}

	return &Shell{
		register: register,
		in:       newInput(in),
		out:      out,
		opts:     opts,
		logger:   logger,
		validate: validator.New(),
	}
}

// Run - Shows the menu and executes choices until the user exits or input ends. All students are released
// from the register before Run returns.
func (S *Shell) Run() (err error) {
	defer S.register.Clear()

	for {
		S.printMenu()
		choice, valid, ok := S.in.number()
		if !ok {
			S.logger.Printf("input closed, leaving")
			return
		}
		if !valid {
			S.message(red, "Error: Invalid input. Please enter a number.")
			S.in.pending = ""
			continue
		}
		if choice == exitChoice {
			S.message(green, "Exiting...")
			return
		}

		err = S.dispatch(choice)
		if err != nil {
			return
		}
	}
}

// dispatch - Executes one menu choice, only failures writing to the output are returned
func (S *Shell) dispatch(choice int64) (err error) {
	switch choice {
	case 1:
		S.loadFile(false)
	case 2:
		S.report(false)
	case 3:
		S.search()
	case 4:
		S.remove()
	case 5:
		S.insert()
	case 6:
		S.mark()
	case 7:
		err = S.view()
	case 9:
		S.stats()
	case 10:
		S.loadFile(true)
	case 11:
		S.report(true)
	default:
		S.message(red, "Invalid choice. Try again.")
	}

	return
}

func (S *Shell) printMenu() {
	_, _ = fmt.Fprintf(S.out, "\n%s\n", S.paint(bold+cyan, "Attendance Management System"))
	for i, item := range menu {
		_, _ = fmt.Fprintln(S.out, S.paint(blue, fmt.Sprintf("%d. %s", i+1, item)))
	}
	S.prompt("Enter your choice: ")
}

// loadFile - Bulk loads a delimited text file or a spreadsheet
func (S *Shell) loadFile(spreadsheet bool) {
	S.prompt("Enter input file name: ")
	fileName, ok := S.in.word()
	if !ok {
		return
	}

	var count int
	var warnings []error
	var err error
	if spreadsheet {
		count, warnings, err = S.register.LoadExcelFile(fileName)
	} else {
		count, warnings, err = S.register.LoadBulkFile(fileName)
	}
	for _, warning := range warnings {
		S.message(yellow, "Warning: "+warning.Error())
		S.logger.Printf("%s: %s", fileName, warning)
	}
	if err != nil {
		S.message(red, "Error: "+err.Error())
		S.logger.Printf("loading %s failed: %s", fileName, err)
		return
	}

	S.logger.Printf("loaded %d students from %s", count, fileName)
	S.message(green, fmt.Sprintf("Students loaded successfully from %s", fileName))
}

// report - Writes the attendance report of a subject to a text file or a workbook
func (S *Shell) report(spreadsheet bool) {
	S.prompt("Enter the subject name: ")
	subject, ok := S.in.word()
	if !ok {
		return
	}
	S.prompt("Enter report file name: ")
	fileName, ok := S.in.word()
	if !ok {
		return
	}

	path := S.opts.ReportPath(fileName)
	var err error
	if spreadsheet {
		err = S.register.GenerateReportExcelFile(path, subject)
	} else {
		err = S.register.GenerateReportFile(path, subject)
	}
	switch {
	case errors.Is(err, regerr.NoAttendanceData{}):
		S.message(red, fmt.Sprintf("No attendance data available for subject %s.", subject))
	case errors.Is(err, regerr.RegistryFull{}):
		S.message(red, "Error: Maximum number of subjects reached.")
	case err != nil:
		S.message(red, "Error: "+err.Error())
		S.logger.Printf("report for %s failed: %s", subject, err)
	default:
		S.logger.Printf("report for %s written to %s", subject, path)
		S.message(green, fmt.Sprintf("Attendance report for %s generated successfully in %s", subject, path))
	}
}

// search - Looks a student up by the last four digits of the entered id
func (S *Shell) search() {
	S.prompt("Enter student ID to search: ")
	id, valid, ok := S.readID()
	if !ok || !valid {
		return
	}

	student, err := S.register.FindBySuffix(id % conf.SuffixModulus)
	if err != nil {
		S.message(red, "Student with ID not found.")
		return
	}

	S.message(green, "Student found:")
	S.message(green, fmt.Sprintf("ID: %d", student.ID))
	S.message(green, fmt.Sprintf("Name: %s", student.Name))
}

// remove - Deletes the student with exactly the entered id
func (S *Shell) remove() {
	S.prompt("Enter student ID to delete: ")
	id, valid, ok := S.readID()
	if !ok || !valid {
		return
	}

	err := S.register.DeleteStudentById(id)
	if err != nil {
		S.message(red, fmt.Sprintf("Student with ID %d not found.", id))
		return
	}

	S.logger.Printf("deleted student %d", id)
	S.message(green, fmt.Sprintf("Student with ID %d deleted successfully.", id))
}

// insert - Adds a student unless one with the same last four id digits is already stored
func (S *Shell) insert() {
	S.prompt("Enter student ID: ")
	id, valid, ok := S.readID()
	if !ok || !valid {
		return
	}
	S.prompt("Enter student name: ")
	name, ok := S.in.line()
	if !ok {
		return
	}
	request := insertRequest{Name: name}
	if err := S.validate.Struct(request); err != nil {
		S.message(red, "Error: Invalid input for name.")
		return
	}

	if _, err := S.register.FindBySuffix(id % conf.SuffixModulus); err == nil {
		S.message(red, "Error: Student with ID already exists.")
		return
	}

	_, err := S.register.InsertStudent(id, request.Name)
	if err != nil {
		S.message(red, "Error: "+err.Error())
		return
	}

	S.logger.Printf("inserted student %d", id)
	S.message(green, "Student added successfully.")
}

// mark - Runs a marking session: one subject and day, then abbreviated ids until -1
func (S *Shell) mark() {
	S.prompt("Enter the subject name: ")
	subject, ok := S.in.word()
	if !ok {
		return
	}
	subjectIndex, err := S.register.RegisterOrLookupSubject(subject)
	if err != nil {
		S.message(red, "Error: Maximum number of subjects reached.")
		return
	}

	S.prompt("Enter the day of the month (1-31): ")
	day, valid, ok := S.in.number()
	if !ok {
		return
	}
	request := markRequest{Day: day}
	if !valid || S.validate.Struct(request) != nil {
		S.message(red, "Error: Invalid day.")
		return
	}

	S.prompt(fmt.Sprintf("Enter last 4 digits of student ID to mark attendance for %s on day %d (or -1 to stop): ", subject, day))
	for {
		last4, valid, ok := S.in.number()
		if !ok || !valid || last4 == -1 {
			return
		}

		student, err := S.register.MarkPresentBySuffix(last4, subjectIndex, int(request.Day))
		if err != nil {
			S.message(red, fmt.Sprintf("Student with last 4 digits of ID %d not found.", last4))
		} else {
			S.message(green, fmt.Sprintf("Marked %s (ID: %d) as present for %s on day %d.", student.Name, student.ID, subject, day))
		}
		S.prompt(fmt.Sprintf("Enter next last 4 digits of student ID to mark attendance for %s on day %d (or -1 to stop): ", subject, day))
	}
}

// view - Prints the attendance of the student with exactly the entered id
func (S *Shell) view() (err error) {
	S.prompt("Enter student ID to view attendance: ")
	id, valid, ok := S.readID()
	if !ok || !valid {
		return
	}

	v, err := S.register.RenderView(id)
	if err != nil {
		err = nil
		S.message(red, fmt.Sprintf("Student with ID %d not found.", id))
		return
	}

	_, _ = fmt.Fprintln(S.out)
	if S.opts.WideView {
		return v.WriteWide(S.out)
	}
	return v.WritePaged(S.out)
}

// stats - Prints table usage and the number of students per bucket
func (S *Shell) stats() {
	stat, err := S.register.Stat(true)
	if err != nil {
		S.message(red, "Error: "+err.Error())
		return
	}

	S.message(green, fmt.Sprintf("Students: %d, Subjects: %d, Free slots: %d", stat.Records, stat.Subjects, stat.FreeSlots))
	for bucketNo, n := range stat.BucketDistribution {
		_, _ = fmt.Fprintf(S.out, "Bucket %d: %s (%d)\n", bucketNo, strings.Repeat("#", int(n)), n)
	}
}

// readID - Reads an id, printing an error if the answer is not a number
func (S *Shell) readID() (id int64, valid, ok bool) {
	id, valid, ok = S.in.number()
	if ok && !valid {
		S.message(red, "Error: Invalid input for ID.")
	}

	return
}

func (S *Shell) prompt(text string) {
	_, _ = fmt.Fprint(S.out, S.paint(yellow, text))
}

func (S *Shell) message(color, text string) {
	_, _ = fmt.Fprintln(S.out, S.paint(color, text))
}

// paint - Wraps text in an ANSI colour when colours are on
func (S *Shell) paint(color, text string) string {
	if !S.opts.Color {
		return text
	}
	return color + text + reset
}
