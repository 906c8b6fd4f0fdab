package verbs

import (
	"fmt"
	"reflect"

	"github.com/danthegoodman1/janitor/table"
	"github.com/gobwas/glob"
)

type (
	SelectOptions struct {
		// Names are exact column names or glob patterns (*, ?, [a-z], {a,b}).
		Names []string `validate:"required,min=1"`
		// Invert keeps every column that is not matched.
		Invert bool
	}
)

// RemoveColumns drops the named columns. Unknown names are an error.
func RemoveColumns(t *table.Table, names ...string) (*table.Table, error) {
	out, err := t.WithoutColumns(names...)
	if err != nil {
		return nil, fmt.Errorf("error in WithoutColumns: %w", err)
	}
	return out, nil
}

// SelectColumns keeps the columns matched by opts.Names, in pattern order.
// A pattern matching no column is an error.
func SelectColumns(t *table.Table, opts SelectOptions) (*table.Table, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOptions, err.Error())
	}

	all := t.ColumnNames()
	picked := make(map[string]bool)
	var ordered []string
	for _, pattern := range opts.Names {
		// No separators, so * and ? also match '/' and '.' in names like "km/h"
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: bad pattern %q: %s", ErrInvalidOptions, pattern, err.Error())
		}
		matched := false
		for _, name := range all {
			if name != pattern && !g.Match(name) {
				continue
			}
			matched = true
			if !picked[name] {
				picked[name] = true
				ordered = append(ordered, name)
			}
		}
		if !matched {
			return nil, fmt.Errorf("%w: %s", ErrNoMatch, pattern)
		}
	}

	if opts.Invert {
		ordered = ordered[:0]
		for _, name := range all {
			if !picked[name] {
				ordered = append(ordered, name)
			}
		}
	}

	out, err := t.Select(ordered...)
	if err != nil {
		return nil, fmt.Errorf("error in Select: %w", err)
	}
	return out, nil
}

func RenameColumn(t *table.Table, oldName, newName string) (*table.Table, error) {
	return RenameColumns(t, map[string]string{oldName: newName})
}

func RenameColumns(t *table.Table, renames map[string]string) (*table.Table, error) {
	for _, n := range renames {
		if n == "" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidOptions, table.ErrEmptyColumnName)
		}
	}
	out, err := t.Rename(renames)
	if err != nil {
		return nil, fmt.Errorf("error in Rename: %w", err)
	}
	return out, nil
}

// AddColumn appends a column. value is either a slice holding one element per
// row or a scalar repeated on every row.
func AddColumn(t *table.Table, name string, value any) (*table.Table, error) {
	if t.HasColumn(name) {
		return nil, fmt.Errorf("%w: %s", ErrColumnExists, name)
	}
	vals, err := broadcast(value, t.NumRows())
	if err != nil {
		return nil, err
	}
	out, err := t.WithColumn(table.NewColumn(name, vals...))
	if err != nil {
		return nil, fmt.Errorf("error in WithColumn: %w", err)
	}
	return out, nil
}

func broadcast(value any, rows int) ([]any, error) {
	if value != nil {
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			if rv.Len() != rows {
				return nil, fmt.Errorf("%w: got %d values for %d rows", table.ErrLengthMismatch, rv.Len(), rows)
			}
			vals := make([]any, rv.Len())
			for i := range vals {
				vals[i] = rv.Index(i).Interface()
			}
			return vals, nil
		}
	}
	vals := make([]any, rows)
	for i := range vals {
		vals[i] = value
	}
	return vals, nil
}
