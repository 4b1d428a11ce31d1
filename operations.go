package studentregister

import (
	"github.com/gostonefire/studentregister/internal/conf"
	"github.com/gostonefire/studentregister/internal/model"
	"github.com/gostonefire/studentregister/internal/utils"
	"github.com/gostonefire/studentregister/regerr"
)

// InsertStudent - Adds a new student with an empty attendance matrix at the head of its bucket.
// There is no check for an existing student with the same id, callers needing unique ids check first
// with FindExact or FindBySuffix.
//   - id is the student id
//   - name is the display name, it is cut to RegisterInfo.MaxNameLength characters
//
// It returns:
//   - student is the stored student
//   - err is a standard error, only possible with a custom hash algorithm returning buckets out of range
func (R *Register) InsertStudent(id int64, name string) (student *Student, err error) {
	s := &model.Student{
		ID:   id,
		Name: utils.TruncateName(name, conf.MaxNameLen-1),
	}

	err = R.table.Insert(s)
	if err != nil {
		return
	}

	student = s

	return
}

// FindExact - Gets the student with exactly the given id, looking only in the bucket of the id.
//
// It returns:
//   - student is the matching student if found, if not found an error of type regerr.NoRecordFound is also returned.
//   - err is either of type regerr.NoRecordFound or a standard error, if something went wrong
func (R *Register) FindExact(id int64) (student *Student, err error) {
	record, err := R.table.Get(id)
	if err != nil {
		return
	}

	student = record.Student

	return
}

// FindBySuffix - Gets the first student whose id ends with the given last four digits, scanning all buckets
// in order and each chain head to tail.
//   - last4 is the abbreviated id, i.e. id mod 10000
//
// It returns:
//   - student is the matching student if found, if not found an error of type regerr.NoRecordFound is also returned.
//   - err is either of type regerr.NoRecordFound or a standard error, if something went wrong
func (R *Register) FindBySuffix(last4 int64) (student *Student, err error) {
	record, err := R.table.GetBySuffix(last4)
	if err != nil {
		return
	}

	student = record.Student

	return
}

// DeleteStudentById - Removes the student with exactly the given id. Unlike FindBySuffix it never matches
// on the last four digits.
//
// It returns:
//   - err is either of type regerr.NoRecordFound or a standard error, if something went wrong
func (R *Register) DeleteStudentById(id int64) (err error) {
	return R.table.Delete(id)
}

// RegisterOrLookupSubject - Returns the stable index of a subject, registering it if it is new.
//
// It returns:
//   - index is the subject index used to address attendance matrices
//   - err is of type regerr.RegistryFull if the subject is new and the registry has no room
func (R *Register) RegisterOrLookupSubject(name string) (index int, err error) {
	return R.subjects.IndexOf(name)
}

// Subjects - Returns all registered subject names in index order
func (R *Register) Subjects() []string {
	return R.subjects.Names()
}

// MarkPresent - Marks the student present for a subject on a day. Marking the same cell again changes nothing.
//   - student is a student returned by one of the find operations
//   - subjectIndex is an index returned by RegisterOrLookupSubject
//   - day is the day of month, 1 to 31
//
// It returns:
//   - err is of type regerr.InvalidSubject or regerr.InvalidDay if an argument is out of range
func (R *Register) MarkPresent(student *Student, subjectIndex, day int) (err error) {
	if _, ok := R.subjects.Name(subjectIndex); !ok {
		err = regerr.InvalidSubject{Index: subjectIndex}
		return
	}
	if day < 1 || day > conf.MaxDays {
		err = regerr.InvalidDay{Day: day}
		return
	}
	if student == nil {
		err = regerr.NewNoRecordFound("no student to mark")
		return
	}

	student.Attendance.Mark(subjectIndex, day)

	return
}

// MarkPresentById - Finds a student by exact id and marks it present.
//
// It returns:
//   - student is the marked student
//   - err is of type regerr.NoRecordFound, regerr.InvalidSubject or regerr.InvalidDay
func (R *Register) MarkPresentById(id int64, subjectIndex, day int) (student *Student, err error) {
	student, err = R.FindExact(id)
	if err != nil {
		return
	}

	err = R.MarkPresent(student, subjectIndex, day)

	return
}

// MarkPresentBySuffix - Finds a student by the last four digits of its id and marks it present.
//
// It returns:
//   - student is the marked student
//   - err is of type regerr.NoRecordFound, regerr.InvalidSubject or regerr.InvalidDay
func (R *Register) MarkPresentBySuffix(last4 int64, subjectIndex, day int) (student *Student, err error) {
	student, err = R.FindBySuffix(last4)
	if err != nil {
		return
	}

	err = R.MarkPresent(student, subjectIndex, day)

	return
}

// GetBucketNo - Returns which bucket number that the given id results in
func (R *Register) GetBucketNo(id int64) (bucketNo int64, err error) {
	return R.table.GetBucketNo(id)
}
