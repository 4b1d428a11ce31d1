package subject

import (
	"github.com/gostonefire/studentregister/internal/utils"
	"github.com/gostonefire/studentregister/regerr"
)

// Registry - Ordered, append only list of subject names. The position of a name is the row used for that
// subject in every attendance matrix, so names are never removed or reordered.
type Registry struct {
	names    []string
	capacity int
	nameLen  int
}

// NewRegistry - Returns a pointer to a new empty Registry
//   - capacity is the maximum number of subjects
//   - nameLen is the size of a name field, stored names hold at most nameLen - 1 characters
func NewRegistry(capacity, nameLen int) *Registry {
	return &Registry{
		names:    make([]string, 0, capacity),
		capacity: capacity,
		nameLen:  nameLen,
	}
}

// IndexOf - Returns the index of a subject, registering it first if it has not been seen before.
// Names are compared exactly and case sensitive.
//
// It returns:
//   - index is the stable index of the subject
//   - err is of type regerr.RegistryFull if the subject is new and there is no room for it
func (R *Registry) IndexOf(name string) (index int, err error) {
	name = utils.TruncateName(name, R.nameLen-1)

	index = R.Lookup(name)
	if index >= 0 {
		return
	}

	if len(R.names) >= R.capacity {
		err = regerr.NewRegistryFull("maximum number of subjects (%d) reached, can not add %s", R.capacity, name)
		return
	}

	R.names = append(R.names, name)
	index = len(R.names) - 1

	return
}

// Lookup - Returns the index of an already registered subject or -1, it never registers anything
func (R *Registry) Lookup(name string) int {
	for i, n := range R.names {
		if n == name {
			return i
		}
	}

	return -1
}

// Name - Returns the subject name for an index, ok is false for an unused index
func (R *Registry) Name(index int) (name string, ok bool) {
	if index < 0 || index >= len(R.names) {
		return
	}

	return R.names[index], true
}

// Names - Returns a copy of all registered subject names in index order
func (R *Registry) Names() []string {
	names := make([]string, len(R.names))
	copy(names, R.names)
	return names
}

// Count - Returns number of registered subjects
func (R *Registry) Count() int {
	return len(R.names)
}

// Capacity - Returns the maximum number of subjects
func (R *Registry) Capacity() int {
	return R.capacity
}
