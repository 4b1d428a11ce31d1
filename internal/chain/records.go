package chain

import (
	"fmt"
	"github.com/gostonefire/studentregister/internal/model"
	"github.com/gostonefire/studentregister/regerr"
)

// Records - Is used to iterate over the records of one bucket chain, head to tail.
type Records struct {
	getRecordFunc func(int64) (model.Record, error)
	recordAddress int64
}

// NewRecords - Returns a pointer to a new Records struct starting at the given head address, where
// address 0 means an empty chain.
func NewRecords(getRecordFunc func(int64) (model.Record, error), headAddress int64) *Records {

	return &Records{
		getRecordFunc: getRecordFunc,
		recordAddress: headAddress,
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	return R.recordAddress != 0
}

// Next - Returns record.
// It returns:
//   - record is the next record in the chain.
//   - err is either a standard error or if there are no more records when calling this function an error of type regerr.NoRecordFound is returned.
func (R *Records) Next() (record model.Record, err error) {
	if R.recordAddress == 0 {
		err = regerr.NoRecordFound{}
		return
	}

	record, err = R.getRecordFunc(R.recordAddress)
	if err != nil {
		err = fmt.Errorf("error while retrieving record from bucket chain: %s", err)
		return
	}

	R.recordAddress = record.NextRecord

	return
}
