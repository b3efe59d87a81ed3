package planner

import "errors"

var (
	// ErrInvalid marks input rejected by validation.
	ErrInvalid = errors.New("planner: invalid input")
	// ErrConflict marks a session that overlaps an existing one.
	ErrConflict = errors.New("planner: conflict with existing session (same day/time overlap)")
	// ErrNotFound marks an id that matches no record.
	ErrNotFound = errors.New("planner: record not found")
	// ErrInvalidImport marks an import document that cannot be used.
	ErrInvalidImport = errors.New("planner: invalid import file")
)
