package hashfunc

// HashAlgorithm - Interface that permits a user of the register to supply a custom bucket selection
// algorithm for student ids. The same algorithm is used by insert, exact lookup and delete, so a record
// is always found in the bucket it was inserted into.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when the register is created, a custom algorithm that already has a table size
	// will have it overwritten by the fixed number of buckets of the register.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// BucketNumber - Given a student id it returns a bucket number between 0 and table size - 1
	// Any number returned outside that range will result in an error down stream.
	BucketNumber(id int64) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	GetTableSize() int64
}
