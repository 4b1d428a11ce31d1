package hash

// ModuloHashAlgorithm - The internally used bucket selection algorithm, bucket = id mod tableSize.
// Negative ids are folded into the range 0 to tableSize - 1 so that every id has exactly one bucket.
type ModuloHashAlgorithm struct {
	tableSize int64
}

// NewModuloHashAlgorithm - Returns a pointer to a new ModuloHashAlgorithm instance
func NewModuloHashAlgorithm(tableSize int64) *ModuloHashAlgorithm {
	ha := &ModuloHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the table will address
func (M *ModuloHashAlgorithm) SetTableSize(tableSize int64) {
	M.tableSize = tableSize
}

// BucketNumber - Given a student id it generates a bucket number between 0 and table size - 1
func (M *ModuloHashAlgorithm) BucketNumber(id int64) int64 {
	return ((id % M.tableSize) + M.tableSize) % M.tableSize
}

// GetTableSize - Returns the table size the hash function is supporting
func (M *ModuloHashAlgorithm) GetTableSize() int64 {
	return M.tableSize
}
