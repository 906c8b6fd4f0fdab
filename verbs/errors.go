package verbs

import (
	"errors"

	"github.com/danthegoodman1/janitor/utils"
)

var (
	ErrInvalidOptions   = errors.New("invalid options")
	ErrNoMatch          = errors.New("pattern matched no columns")
	ErrColumnExists     = errors.New("column already exists")
	ErrMaskLength       = errors.New("boolean mask length does not match row count")
	ErrInvalidValueType = errors.New("invalid value type")
	ErrUnknownOperator  = errors.New("unknown comparison operator")
	ErrUnknownIDKind    = errors.New("unknown id kind")
	ErrUnknownDatePart  = errors.New("unknown date part")

	// ErrInvalidColumnType is returned when a value cannot be read as the kind a verb needs.
	ErrInvalidColumnType = utils.PermError("invalid column type")
)
