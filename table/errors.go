package table

import "errors"

var (
	ErrColumnNotFound  = errors.New("column not found")
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrLengthMismatch  = errors.New("column length mismatch")
	ErrRowOutOfRange   = errors.New("row index out of range")
	ErrEmptyColumnName = errors.New("empty column name")
)
