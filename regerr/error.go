package regerr

import "fmt"

// NoRecordFound - Custom error to inform that no student record was found
type NoRecordFound struct {
	msg string
}

// NewNoRecordFound - Returns a NoRecordFound carrying a more specific message
func NewNoRecordFound(format string, a ...any) NoRecordFound {
	return NoRecordFound{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Makes errors.Is match any NoRecordFound regardless of message
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// RegistryFull - Custom error to inform that the subject registry is full and can't take more subjects
type RegistryFull struct {
	msg string
}

// NewRegistryFull - Returns a RegistryFull carrying a more specific message
func NewRegistryFull(format string, a ...any) RegistryFull {
	return RegistryFull{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that the subject registry is full
func (E RegistryFull) Error() string {
	if E.msg == "" {
		return "maximum number of subjects reached"
	}
	return E.msg
}

// Is - Makes errors.Is match any RegistryFull regardless of message
func (E RegistryFull) Is(target error) bool {
	_, ok := target.(RegistryFull)
	return ok
}

// NoAttendanceData - Custom error to inform that a subject has no attendance marks at all, hence no report
type NoAttendanceData struct {
	Subject string
}

// Error - Used to notify that there is nothing to report
func (E NoAttendanceData) Error() string {
	if E.Subject == "" {
		return "no attendance data available"
	}
	return fmt.Sprintf("no attendance data available for subject %s", E.Subject)
}

// Is - Makes errors.Is match any NoAttendanceData regardless of subject
func (E NoAttendanceData) Is(target error) bool {
	_, ok := target.(NoAttendanceData)
	return ok
}

// MalformedLine - Warning produced by the bulk loaders for every input line (or spreadsheet row) that
// could not be parsed into an id and a name. The line is skipped and loading continues.
type MalformedLine struct {
	LineNo int
	Line   string
}

// Error - Used to notify which line was skipped
func (M MalformedLine) Error() string {
	if M.LineNo == 0 {
		return "skipping invalid line"
	}
	return fmt.Sprintf("skipping invalid line %d: %s", M.LineNo, M.Line)
}

// Is - Makes errors.Is match any MalformedLine regardless of position
func (M MalformedLine) Is(target error) bool {
	_, ok := target.(MalformedLine)
	return ok
}

// InvalidDay - Custom error to inform that a day of month is outside 1 to 31
type InvalidDay struct {
	Day int
}

// Error - Used to notify an invalid day
func (I InvalidDay) Error() string {
	return fmt.Sprintf("invalid day %d", I.Day)
}

// Is - Makes errors.Is match any InvalidDay regardless of day
func (I InvalidDay) Is(target error) bool {
	_, ok := target.(InvalidDay)
	return ok
}

// InvalidSubject - Custom error to inform that a subject index does not refer to a registered subject
type InvalidSubject struct {
	Index int
}

// Error - Used to notify an invalid subject index
func (I InvalidSubject) Error() string {
	return fmt.Sprintf("invalid subject index %d", I.Index)
}

// Is - Makes errors.Is match any InvalidSubject regardless of index
func (I InvalidSubject) Is(target error) bool {
	_, ok := target.(InvalidSubject)
	return ok
}
