package gradebook

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned when a file extension maps to no
// supported document format.
var ErrUnknownFormat = errors.New("unrecognized gradebook format")

// AlignmentError reports a student whose grade list does not line up
// with the gradebook's assignments.
type AlignmentError struct {
	StudentID   int
	Grades      int
	Assignments int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("student %d has %d grades for %d assignments", e.StudentID, e.Grades, e.Assignments)
}

// DuplicateIDError reports two students sharing one id.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate student id %d", e.ID)
}

// FieldError reports a field holding a value outside its domain.
type FieldError struct {
	Path   string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// SchemaError indicates a document that could not be decoded into a
// Gradebook, either because it is not well-formed or because it does not
// match the gradebook schema.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid gradebook document: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
