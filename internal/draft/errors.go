package draft

import "fmt"

// InvariantViolationError indicates a removal that would leave a collection empty
type InvariantViolationError struct {
	Collection Collection
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("cannot remove the last %s entry", e.Collection)
}

// IndexOutOfRangeError indicates an entry index outside the collection bounds
type IndexOutOfRangeError struct {
	Collection Collection
	Index      int
	Length     int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range (length %d)", e.Collection, e.Index, e.Length)
}

// UnknownCollectionError indicates a collection name outside the fixed draft schema
type UnknownCollectionError struct {
	Collection Collection
}

func (e *UnknownCollectionError) Error() string {
	return fmt.Sprintf("unknown collection: %s", e.Collection)
}

// UnknownFieldError indicates a field key that does not exist on the entry type
type UnknownFieldError struct {
	Collection Collection
	Field      string
}

func (e *UnknownFieldError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("unknown scalar field: %s", e.Field)
	}
	return fmt.Sprintf("unknown field %q in %s", e.Field, e.Collection)
}
