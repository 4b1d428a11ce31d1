package model

import (
	"github.com/gostonefire/studentregister/hashfunc"
	"github.com/gostonefire/studentregister/internal/conf"
)

// RecordOccupied - State indicating a node slot holding a live student
const RecordOccupied uint8 = 1

// RecordDeleted - State indicating a node slot that held a student which has been deleted, the slot can be reused
const RecordDeleted uint8 = 2

// Matrix - Attendance marks of one student, one row per registered subject and one column per day of month.
// A cell is true if the student was marked present, there is no difference between absent and never marked.
type Matrix [conf.MaxSubjects][conf.MaxDays]bool

// Mark - Marks presence for subject index and day (1 to conf.MaxDays). Bounds are the caller's responsibility.
func (M *Matrix) Mark(subjectIndex, day int) {
	M[subjectIndex][day-1] = true
}

// IsPresent - Returns true if presence is marked for subject index and day (1 to conf.MaxDays)
func (M *Matrix) IsPresent(subjectIndex, day int) bool {
	return M[subjectIndex][day-1]
}

// DayRange - Returns the first and last day (1 to conf.MaxDays) marked present for a subject.
// If no day is marked ok is false.
func (M *Matrix) DayRange(subjectIndex int) (minDay, maxDay int, ok bool) {
	for d, present := range M[subjectIndex] {
		if !present {
			continue
		}
		if !ok {
			minDay = d + 1
			ok = true
		}
		maxDay = d + 1
	}

	return
}

// Student - Represents one student with identity and attendance
type Student struct {
	ID         int64
	Name       string
	Attendance Matrix
}

// Suffix - Returns the abbreviated id, i.e. the last four decimal digits
func (S *Student) Suffix() int64 {
	return S.ID % conf.SuffixModulus
}

// Record - Represents one node in a bucket chain
type Record struct {
	State         uint8
	RecordAddress int64
	NextRecord    int64
	Student       *Student
}

// Bucket - Represents the head of one bucket chain
type Bucket struct {
	BucketNo    int64
	HeadAddress int64
}

// StorageParameters - Represents parameters of the storage holding the students
type StorageParameters struct {
	NumberOfBuckets   int64
	ArenaSize         int64
	FreeSlots         int64
	InternalAlgorithm bool
}

// TableConf - Is a struct to be passed in the call to NewTable and contains configuration for the table.
//   - NumberOfBuckets is the fixed number of buckets
//   - HashAlgorithm is the hash function to use, nil selects the internal modulo algorithm
type TableConf struct {
	NumberOfBuckets int64
	HashAlgorithm   hashfunc.HashAlgorithm
}
