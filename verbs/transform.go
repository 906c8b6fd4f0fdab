package verbs

import (
	"fmt"

	"github.com/danthegoodman1/janitor/table"
)

type (
	// ElementFunc maps a single value to a new value.
	ElementFunc func(v any) (any, error)

	// ColumnFunc maps a whole column to a new column of the same length.
	ColumnFunc func(vals []any) ([]any, error)
)

// TransformColumn applies fn to every value of column. The result replaces
// the column when newColumn is empty, otherwise it is written to newColumn
// (replacing an existing column of that name).
func TransformColumn(t *table.Table, column string, fn ElementFunc, newColumn string) (*table.Table, error) {
	return TransformColumnWhole(t, column, func(vals []any) ([]any, error) {
		out := make([]any, len(vals))
		for i, v := range vals {
			nv, err := fn(v)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			out[i] = nv
		}
		return out, nil
	}, newColumn)
}

// Transform is TransformColumn in place.
func Transform(t *table.Table, column string, fn ElementFunc) (*table.Table, error) {
	return TransformColumn(t, column, fn, "")
}

func TransformColumnWhole(t *table.Table, column string, fn ColumnFunc, newColumn string) (*table.Table, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	vals, err := fn(col.Values)
	if err != nil {
		return nil, fmt.Errorf("error transforming column %s: %w", column, err)
	}

	dest := table.NewColumn(column, vals...)
	dest.Original = col.Original
	if newColumn != "" && newColumn != column {
		dest.Name = newColumn
		dest.Original = ""
	}

	out, err := t.WithColumn(dest)
	if err != nil {
		return nil, fmt.Errorf("error in WithColumn: %w", err)
	}
	return out, nil
}

// TransformColumns applies fn to each column. With a non-empty suffix the
// results go to "<column><suffix>" and the source columns are kept.
func TransformColumns(t *table.Table, columns []string, fn ElementFunc, suffix string) (*table.Table, error) {
	out := t
	for _, c := range columns {
		dest := ""
		if suffix != "" {
			dest = c + suffix
		}
		var err error
		out, err = TransformColumn(out, c, fn, dest)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
