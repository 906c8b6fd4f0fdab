package verbs

import (
	"fmt"
	"strings"
	"time"

	"github.com/danthegoodman1/janitor/table"
)

type (
	// Predicate decides whether a row is kept.
	Predicate func(r table.Row) (bool, error)

	Operator string
)

const (
	OpEq  Operator = "=="
	OpNeq Operator = "!="
	OpLt  Operator = "<"
	OpLte Operator = "<="
	OpGt  Operator = ">"
	OpGte Operator = ">="
)

// Where adapts a plain boolean function into a Predicate.
func Where(fn func(r table.Row) bool) Predicate {
	return func(r table.Row) (bool, error) {
		return fn(r), nil
	}
}

// Compare builds a predicate comparing column to value. Ints and floats
// compare numerically; nil only equals nil and every ordering with nil is false.
func Compare(column string, op Operator, value any) Predicate {
	value = table.Normalize(value)
	return func(r table.Row) (bool, error) {
		v, ok := r.Get(column)
		if !ok {
			return false, fmt.Errorf("%w: %s", table.ErrColumnNotFound, column)
		}
		if v == nil || value == nil {
			switch op {
			case OpEq:
				return v == nil && value == nil, nil
			case OpNeq:
				return !(v == nil && value == nil), nil
			case OpLt, OpLte, OpGt, OpGte:
				return false, nil
			default:
				return false, fmt.Errorf("%w: %s", ErrUnknownOperator, op)
			}
		}
		c, err := compareValues(v, value)
		if err != nil {
			return false, err
		}
		switch op {
		case OpEq:
			return c == 0, nil
		case OpNeq:
			return c != 0, nil
		case OpLt:
			return c < 0, nil
		case OpLte:
			return c <= 0, nil
		case OpGt:
			return c > 0, nil
		case OpGte:
			return c >= 0, nil
		default:
			return false, fmt.Errorf("%w: %s", ErrUnknownOperator, op)
		}
	}
}

func And(preds ...Predicate) Predicate {
	return func(r table.Row) (bool, error) {
		for _, p := range preds {
			ok, err := p(r)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

func Or(preds ...Predicate) Predicate {
	return func(r table.Row) (bool, error) {
		for _, p := range preds {
			ok, err := p(r)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}
}

func Not(p Predicate) Predicate {
	return func(r table.Row) (bool, error) {
		ok, err := p(r)
		return !ok, err
	}
}

// FilterOn keeps the rows for which pred holds, or the rows for which it does
// not when complement is set.
func FilterOn(t *table.Table, pred Predicate, complement bool) (*table.Table, error) {
	var keep []int
	for _, r := range t.Rows() {
		ok, err := pred(r)
		if err != nil {
			return nil, fmt.Errorf("error evaluating row %d: %w", r.Num, err)
		}
		if ok != complement {
			keep = append(keep, r.Num)
		}
	}
	return take(t, keep)
}

// FilterMask keeps the rows whose mask entry is true.
func FilterMask(t *table.Table, mask []bool) (*table.Table, error) {
	if len(mask) != t.NumRows() {
		return nil, fmt.Errorf("%w: got %d, have %d rows", ErrMaskLength, len(mask), t.NumRows())
	}
	var keep []int
	for i, ok := range mask {
		if ok {
			keep = append(keep, i)
		}
	}
	return take(t, keep)
}

// FilterString keeps rows whose column contains substring. Non-string values
// are matched on their formatted form; nil never matches.
func FilterString(t *table.Table, column, substring string, complement bool) (*table.Table, error) {
	if !t.HasColumn(column) {
		return nil, fmt.Errorf("%w: %s", table.ErrColumnNotFound, column)
	}
	return FilterOn(t, Where(func(r table.Row) bool {
		v, _ := r.Get(column)
		if v == nil {
			return false
		}
		return strings.Contains(table.FormatValue(v), substring)
	}), complement)
}

// FilterColumnIsIn keeps rows whose column value equals one of values.
// Values of a different kind never match.
func FilterColumnIsIn(t *table.Table, column string, values []any, complement bool) (*table.Table, error) {
	if !t.HasColumn(column) {
		return nil, fmt.Errorf("%w: %s", table.ErrColumnNotFound, column)
	}
	norm := make([]any, len(values))
	for i, v := range values {
		norm[i] = table.Normalize(v)
	}
	return FilterOn(t, Where(func(r table.Row) bool {
		v, _ := r.Get(column)
		for _, want := range norm {
			if v == nil || want == nil {
				if v == nil && want == nil {
					return true
				}
				continue
			}
			if c, err := compareValues(v, want); err == nil && c == 0 {
				return true
			}
		}
		return false
	}), complement)
}

func take(t *table.Table, keep []int) (*table.Table, error) {
	if keep == nil {
		keep = []int{}
	}
	out, err := t.TakeRows(keep)
	if err != nil {
		return nil, fmt.Errorf("error in TakeRows: %w", err)
	}
	return out, nil
}

// compareValues returns -1, 0 or 1. Values of different kinds are an error,
// except int against float.
func compareValues(a, b any) (int, error) {
	a, b = table.Normalize(a), table.Normalize(b)
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			switch {
			case af < bf:
				return -1, nil
			case af > bf:
				return 1, nil
			default:
				return 0, nil
			}
		}
	}
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv), nil
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0, nil
			case !av:
				return -1, nil
			default:
				return 1, nil
			}
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			switch {
			case av.Before(bv):
				return -1, nil
			case av.After(bv):
				return 1, nil
			default:
				return 0, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: cannot compare %T with %T", ErrInvalidColumnType, a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
