package errors

import (
	"fmt"
)

var (
	// ErrValidation covers missing required fields and attempts to change
	// an immutable identifier.
	ErrValidation = fmt.Errorf("validation failed")
	// ErrConflict is returned when a unique field collides with an
	// existing record.
	ErrConflict = fmt.Errorf("unique value already in use")
	// ErrReference is returned when a reference field names a record that
	// does not exist.
	ErrReference = fmt.Errorf("referenced record does not exist")
	// ErrDependency blocks a delete while dependent records exist and
	// cascade was not requested.
	ErrDependency = fmt.Errorf("dependent records exist")
	ErrNotFound   = fmt.Errorf("not found")
)
