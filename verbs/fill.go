package verbs

import (
	"fmt"

	"github.com/danthegoodman1/janitor/table"
)

// FillEmpty replaces nil and empty-string values in columns with value.
func FillEmpty(t *table.Table, columns []string, value any) (*table.Table, error) {
	value = table.Normalize(value)
	return TransformColumns(t, columns, func(v any) (any, error) {
		if table.IsEmpty(v) {
			return value, nil
		}
		return v, nil
	}, "")
}

// RemoveEmpty drops rows in which every value is empty, then columns in
// which every remaining value is empty.
func RemoveEmpty(t *table.Table) (*table.Table, error) {
	var keep []int
	for _, r := range t.Rows() {
		for _, v := range r.ColVals {
			if !table.IsEmpty(v) {
				keep = append(keep, r.Num)
				break
			}
		}
	}
	out, err := take(t, keep)
	if err != nil {
		return nil, err
	}

	var drop []string
	for _, col := range out.Columns() {
		empty := true
		for _, v := range col.Values {
			if !table.IsEmpty(v) {
				empty = false
				break
			}
		}
		if empty {
			drop = append(drop, col.Name)
		}
	}
	if len(drop) == 0 {
		return out, nil
	}
	return RemoveColumns(out, drop...)
}

// Coalesce writes the first non-empty value across columns into target.
// target may be one of columns, in which case it is overwritten.
func Coalesce(t *table.Table, columns []string, target string) (*table.Table, error) {
	if len(columns) < 2 {
		return nil, fmt.Errorf("%w: coalesce needs at least two columns", ErrInvalidOptions)
	}
	if target == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOptions, table.ErrEmptyColumnName)
	}
	src := make([]table.Column, len(columns))
	for i, name := range columns {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		src[i] = col
	}

	vals := make([]any, t.NumRows())
	for r := range vals {
		for _, col := range src {
			if !table.IsEmpty(col.Values[r]) {
				vals[r] = col.Values[r]
				break
			}
		}
	}

	out, err := t.WithColumn(table.NewColumn(target, vals...))
	if err != nil {
		return nil, fmt.Errorf("error in WithColumn: %w", err)
	}
	return out, nil
}
