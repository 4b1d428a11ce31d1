package chaining

import (
	"fmt"
	"github.com/gostonefire/studentregister/hashfunc"
	"github.com/gostonefire/studentregister/internal/chain"
	"github.com/gostonefire/studentregister/internal/hash"
	"github.com/gostonefire/studentregister/internal/model"
	"github.com/gostonefire/studentregister/regerr"
)

// Table - Represents an in memory implementation of the Separate Chaining Collision Resolution Technique.
// Every bucket holds the address of the head of a singly linked chain. Chain nodes live in one arena slice
// and link to each other by address, address 0 is reserved and marks the end of a chain. Slots of deleted
// nodes are kept on a free list and reused by later inserts.
type Table struct {
	heads             []int64
	arena             []model.Record
	free              []int64
	numberOfBuckets   int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewTable - Returns a pointer to a new instance of an empty chained table.
//   - tableConf is a model.TableConf struct providing configuration for the table
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewTable(tableConf model.TableConf) (table *Table, err error) {
	if tableConf.NumberOfBuckets <= 0 {
		err = fmt.Errorf("number of buckets must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if tableConf.HashAlgorithm == nil {
		tableConf.HashAlgorithm = hash.NewModuloHashAlgorithm(tableConf.NumberOfBuckets)
		internalAlg = true
	} else {
		tableConf.HashAlgorithm.SetTableSize(tableConf.NumberOfBuckets)
	}

	table = &Table{
		heads:             make([]int64, tableConf.NumberOfBuckets),
		arena:             make([]model.Record, 1),
		numberOfBuckets:   tableConf.NumberOfBuckets,
		hashAlgorithm:     tableConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from Table
func (T *Table) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		NumberOfBuckets:   T.numberOfBuckets,
		ArenaSize:         int64(len(T.arena) - 1),
		FreeSlots:         int64(len(T.free)),
		InternalAlgorithm: T.internalAlgorithm,
	}

	return
}

// GetBucketNo - Returns which bucket number that the given id results in
//   - id is the student id
func (T *Table) GetBucketNo(id int64) (bucketNo int64, err error) {
	bucketNo = T.hashAlgorithm.BucketNumber(id)
	if bucketNo < 0 || bucketNo >= T.numberOfBuckets {
		err = fmt.Errorf("recieved bucket number from bucket algorithm is outside permitted range")
		return
	}

	return
}

// GetBucket - Returns a bucket given the bucket number together with an iterator over its chain
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns:
//   - bucket is a model.Bucket struct holding the head address of the chain
//   - chainIterator is a chain.Records struct that iterates the chain head to tail.
//   - err is standard error
func (T *Table) GetBucket(bucketNo int64) (bucket model.Bucket, chainIterator *chain.Records, err error) {
	if bucketNo < 0 || bucketNo >= T.numberOfBuckets {
		err = fmt.Errorf("bucket number %d is outside permitted range", bucketNo)
		return
	}

	bucket = model.Bucket{BucketNo: bucketNo, HeadAddress: T.heads[bucketNo]}
	chainIterator = chain.NewRecords(T.getRecord, bucket.HeadAddress)

	return
}

// Insert - Pushes a new node holding the student at the head of its bucket chain.
// There is no check for an existing student with the same id, a duplicate simply shadows the older node.
//   - student is the student to store, the table takes ownership of it
//
// It returns:
//   - err is a standard error, if something went wrong
func (T *Table) Insert(student *model.Student) (err error) {
	if student == nil {
		err = fmt.Errorf("can not insert a nil student")
		return
	}

	bucketNo, err := T.GetBucketNo(student.ID)
	if err != nil {
		return
	}

	address := T.allocate()
	T.arena[address] = model.Record{
		State:         model.RecordOccupied,
		RecordAddress: address,
		NextRecord:    T.heads[bucketNo],
		Student:       student,
	}
	T.heads[bucketNo] = address

	return
}

// Get - Gets the first record in the bucket chain of the id that holds exactly that id.
//   - id is the student id
//
// It returns:
//   - record is the matching record if found, if not found an error of type regerr.NoRecordFound is also returned.
//   - err is either of type regerr.NoRecordFound or a standard error, if something went wrong
func (T *Table) Get(id int64) (record model.Record, err error) {
	bucketNo, err := T.GetBucketNo(id)
	if err != nil {
		return
	}
	_, iter, err := T.GetBucket(bucketNo)
	if err != nil {
		return
	}

	for iter.HasNext() {
		record, err = iter.Next()
		if err != nil {
			return
		}
		if record.State == model.RecordOccupied && record.Student.ID == id {
			return
		}
	}

	record = model.Record{}
	err = regerr.NewNoRecordFound("student with ID %d not found", id)

	return
}

// GetBySuffix - Scans all buckets in bucket number order, each chain head to tail, and returns the first
// record whose id ends with the given last four digits. If several ids share the suffix the first one
// encountered wins.
//   - suffix is the abbreviated id, i.e. id mod 10000
//
// It returns:
//   - record is the matching record if found, if not found an error of type regerr.NoRecordFound is also returned.
//   - err is either of type regerr.NoRecordFound or a standard error, if something went wrong
func (T *Table) GetBySuffix(suffix int64) (record model.Record, err error) {
	for i := int64(0); i < T.numberOfBuckets; i++ {
		iter := chain.NewRecords(T.getRecord, T.heads[i])
		for iter.HasNext() {
			record, err = iter.Next()
			if err != nil {
				return
			}
			if record.State == model.RecordOccupied && record.Student.Suffix() == suffix {
				return
			}
		}
	}

	record = model.Record{}
	err = regerr.NewNoRecordFound("student with last 4 digits of ID %d not found", suffix)

	return
}

// Delete - Unlinks the first node in the bucket chain of the id that holds exactly that id. The order of
// the remaining nodes is preserved and the slot is released for reuse.
//   - id is the student id
//
// It returns:
//   - err is either of type regerr.NoRecordFound or a standard error, if something went wrong
func (T *Table) Delete(id int64) (err error) {
	bucketNo, err := T.GetBucketNo(id)
	if err != nil {
		return
	}

	var prevAddress int64
	address := T.heads[bucketNo]
	for address != 0 {
		var record model.Record
		record, err = T.getRecord(address)
		if err != nil {
			return
		}
		if record.State == model.RecordOccupied && record.Student.ID == id {
			if prevAddress == 0 {
				T.heads[bucketNo] = record.NextRecord
			} else {
				T.arena[prevAddress].NextRecord = record.NextRecord
			}
			T.release(address)
			return
		}
		prevAddress = address
		address = record.NextRecord
	}

	err = regerr.NewNoRecordFound("student with ID %d not found", id)

	return
}

// Walk - Calls fn for every stored student, buckets in bucket number order and each chain head to tail.
// Walking stops at the first error returned by fn, and that error is returned.
func (T *Table) Walk(fn func(student *model.Student) error) (err error) {
	var record model.Record
	for i := int64(0); i < T.numberOfBuckets; i++ {
		iter := chain.NewRecords(T.getRecord, T.heads[i])
		for iter.HasNext() {
			record, err = iter.Next()
			if err != nil {
				return
			}
			if record.State != model.RecordOccupied {
				continue
			}
			err = fn(record.Student)
			if err != nil {
				return
			}
		}
	}

	return
}

// Clear - Releases every node in every bucket and resets all bucket heads to empty
func (T *Table) Clear() {
	for i := range T.heads {
		T.heads[i] = 0
	}
	T.arena = make([]model.Record, 1)
	T.free = nil
}

// getRecord - Returns the record stored at an arena address
func (T *Table) getRecord(address int64) (record model.Record, err error) {
	if address <= 0 || address >= int64(len(T.arena)) {
		err = fmt.Errorf("record address %d is outside the arena", address)
		return
	}

	record = T.arena[address]

	return
}

// allocate - Returns the address of a free slot, reusing deleted slots before growing the arena
func (T *Table) allocate() (address int64) {
	if n := len(T.free); n > 0 {
		address = T.free[n-1]
		T.free = T.free[:n-1]
		return
	}

	T.arena = append(T.arena, model.Record{})
	address = int64(len(T.arena) - 1)

	return
}

// release - Marks a slot as deleted and puts it on the free list
func (T *Table) release(address int64) {
	T.arena[address] = model.Record{
		State:         model.RecordDeleted,
		RecordAddress: address,
	}
	T.free = append(T.free, address)
}
