package studentregister

import (
	"github.com/gostonefire/studentregister/hashfunc"
	"github.com/gostonefire/studentregister/internal/conf"
	"github.com/gostonefire/studentregister/internal/model"
	"github.com/gostonefire/studentregister/internal/report"
	"github.com/gostonefire/studentregister/internal/storage/chaining"
	"github.com/gostonefire/studentregister/internal/subject"
)

// Student - A stored student with its attendance matrix
type Student = model.Student

// View - One student's attendance over all registered subjects and all days, as returned by RenderView
type View = report.View

// RegisterInfo - Information structure containing the fixed dimensions of the register
//   - NumberOfBuckets is the number of buckets in the student table
//   - SubjectCapacity is the maximum number of subjects that can be registered
//   - DaysPerMonth is the number of day columns in each attendance matrix
//   - MaxNameLength is the number of characters kept of a name
type RegisterInfo struct {
	NumberOfBuckets int64
	SubjectCapacity int
	DaysPerMonth    int
	MaxNameLength   int
}

// RegisterStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of students stored
//   - Subjects is the number of registered subjects
//   - FreeSlots is the number of released node slots waiting for reuse
//   - BucketDistribution is the number of students stored in each bucket
type RegisterStat struct {
	Records            int64
	Subjects           int
	FreeSlots          int64
	BucketDistribution []int64
}

// Register - The attendance register engine. It owns the student table and the subject registry, all
// students are released together by Clear.
type Register struct {
	table    *chaining.Table
	subjects *subject.Registry
}

// NewRegister - Returns a new empty register with the fixed number of buckets.
//   - hashAlgorithm is an optional entry to provide a custom bucket algorithm following the hashfunc.HashAlgorithm
//     interface, nil selects the internal id mod table size algorithm.
//
// It returns:
//   - register is a pointer to a Register struct
//   - registerInfo is a RegisterInfo struct with the dimensions of the register
//   - err is a normal go Error which should be nil if everything went ok
func NewRegister(hashAlgorithm hashfunc.HashAlgorithm) (register *Register, registerInfo RegisterInfo, err error) {
	table, err := chaining.NewTable(model.TableConf{
		NumberOfBuckets: conf.TableSize,
		HashAlgorithm:   hashAlgorithm,
	})
	if err != nil {
		return
	}

	register = &Register{
		table:    table,
		subjects: subject.NewRegistry(conf.MaxSubjects, conf.MaxNameLen),
	}
	registerInfo = register.Info()

	return
}

// Info - Returns the fixed dimensions of the register
func (R *Register) Info() RegisterInfo {
	return RegisterInfo{
		NumberOfBuckets: R.table.GetStorageParameters().NumberOfBuckets,
		SubjectCapacity: R.subjects.Capacity(),
		DaysPerMonth:    conf.MaxDays,
		MaxNameLength:   conf.MaxNameLen - 1,
	}
}

// Stat - Walks through the entire set of buckets and produce a RegisterStat struct with information.
//   - includeDistribution set to true will include a slice with number of students per bucket, false will set RegisterStat.BucketDistribution to nil.
func (R *Register) Stat(includeDistribution bool) (registerStat *RegisterStat, err error) {
	sp := R.table.GetStorageParameters()
	rs := RegisterStat{
		Subjects:  R.subjects.Count(),
		FreeSlots: sp.FreeSlots,
	}

	if includeDistribution {
		rs.BucketDistribution = make([]int64, sp.NumberOfBuckets)
	}

	// Iterate over every available bucket
	var record model.Record
	for i := int64(0); i < sp.NumberOfBuckets; i++ {
		_, iter, err := R.table.GetBucket(i)
		if err != nil {
			return nil, err
		}

		for iter.HasNext() {
			record, err = iter.Next()
			if err != nil {
				return nil, err
			}
			if record.State == model.RecordOccupied {
				rs.Records++
				if includeDistribution {
					rs.BucketDistribution[i]++
				}
			}
		}
	}

	registerStat = &rs
	return
}

// Clear - Releases every student in every bucket and resets the table to empty. Registered subjects are kept,
// the registry only grows for the lifetime of the register.
func (R *Register) Clear() {
	R.table.Clear()
}
