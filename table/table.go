package table

import (
	"fmt"

	"github.com/danthegoodman1/janitor/utils"
)

type (
	// Table is an ordered set of uniquely named columns of equal length.
	// Builder methods return a new Table and never modify the receiver;
	// untouched columns share their value slices with the source table.
	Table struct {
		cols  []Column
		index map[string]int
		rows  int
	}
)

func New(cols ...Column) (*Table, error) {
	t := &Table{
		cols:  make([]Column, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	for i, col := range cols {
		if col.Name == "" {
			return nil, fmt.Errorf("%w at position %d", ErrEmptyColumnName, i)
		}
		if _, exists := t.index[col.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, col.Name)
		}
		if i == 0 {
			t.rows = len(col.Values)
		} else if len(col.Values) != t.rows {
			return nil, fmt.Errorf("%w: column %s has %d rows, expected %d", ErrLengthMismatch, col.Name, len(col.Values), t.rows)
		}
		t.index[col.Name] = i
		t.cols = append(t.cols, col)
	}
	return t, nil
}

// MustNew is New for tables built from literals.
func MustNew(cols ...Column) *Table {
	t, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return t
}

// FromRows builds a table from positional rows. Short rows are padded with nil.
func FromRows(names []string, rows [][]any) (*Table, error) {
	if dup, ok := utils.FirstDuplicate(names); ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, dup)
	}
	cols := make([]Column, len(names))
	for i, name := range names {
		cols[i] = Column{Name: name, Values: make([]any, len(rows))}
	}
	for r, row := range rows {
		if len(row) > len(names) {
			return nil, fmt.Errorf("%w: row %d has %d values for %d columns", ErrLengthMismatch, r, len(row), len(names))
		}
		for c, v := range row {
			cols[c].Values[r] = Normalize(v)
		}
	}
	return New(cols...)
}

// FromRecords builds a table from maps. Columns appear in first-seen order,
// with keys of each record visited in sorted order, and absent keys become nil.
func FromRecords(records []map[string]any) (*Table, error) {
	var names []string
	seen := make(map[string]bool)
	for _, rec := range records {
		for _, k := range sortedKeys(rec) {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	cols := make([]Column, len(names))
	for i, name := range names {
		vals := make([]any, len(records))
		for r, rec := range records {
			vals[r] = Normalize(rec[name])
		}
		cols[i] = Column{Name: name, Values: vals}
	}
	return New(cols...)
}

func (t *Table) NumRows() int {
	return t.rows
}

func (t *Table) NumCols() int {
	return len(t.cols)
}

// Shape returns (rows, columns).
func (t *Table) Shape() (int, int) {
	return t.rows, len(t.cols)
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

func (t *Table) Columns() []Column {
	out := make([]Column, len(t.cols))
	copy(out, t.cols)
	return out
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

func (t *Table) Column(name string) (Column, error) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}
	return t.cols[i], nil
}

func (t *Table) Row(i int) (Row, error) {
	if i < 0 || i >= t.rows {
		return Row{}, fmt.Errorf("%w: %d", ErrRowOutOfRange, i)
	}
	return t.row(i, t.ColumnNames()), nil
}

func (t *Table) row(i int, names []string) Row {
	vals := make([]any, len(t.cols))
	for c, col := range t.cols {
		vals[c] = col.Values[i]
	}
	return Row{Num: i, ColNames: names, ColVals: vals}
}

func (t *Table) Rows() []Row {
	names := t.ColumnNames()
	rows := make([]Row, t.rows)
	for i := 0; i < t.rows; i++ {
		rows[i] = t.row(i, names)
	}
	return rows
}

func (t *Table) Records() []map[string]any {
	recs := make([]map[string]any, t.rows)
	for i := 0; i < t.rows; i++ {
		rec := make(map[string]any, len(t.cols))
		for _, col := range t.cols {
			rec[col.Name] = col.Values[i]
		}
		recs[i] = rec
	}
	return recs
}

// OriginalNames maps current column names to the names recorded before a
// rename. Columns without a recorded original are omitted.
func (t *Table) OriginalNames() map[string]string {
	out := make(map[string]string)
	for _, c := range t.cols {
		if c.Original != "" {
			out[c.Name] = c.Original
		}
	}
	return out
}

func (t *Table) Clone() *Table {
	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		vals := make([]any, len(c.Values))
		copy(vals, c.Values)
		cols[i] = Column{Name: c.Name, Original: c.Original, Values: vals}
	}
	return MustNew(cols...)
}

// WithColumn replaces the column of the same name in place, or appends it.
func (t *Table) WithColumn(col Column) (*Table, error) {
	cols := t.Columns()
	if i, ok := t.index[col.Name]; ok {
		cols[i] = col
	} else {
		cols = append(cols, col)
	}
	empty := len(t.cols) == 0 && t.rows == 0
	if !empty && len(col.Values) != t.rows {
		return nil, fmt.Errorf("%w: column %s has %d rows, expected %d", ErrLengthMismatch, col.Name, len(col.Values), t.rows)
	}
	return New(cols...)
}

func (t *Table) WithoutColumns(names ...string) (*Table, error) {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		if !t.HasColumn(n) {
			return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, n)
		}
		drop[n] = true
	}
	cols := make([]Column, 0, len(t.cols))
	for _, c := range t.cols {
		if !drop[c.Name] {
			cols = append(cols, c)
		}
	}
	return t.rebuild(cols)
}

// Rename applies old -> new renames. Unchanged columns keep their names.
func (t *Table) Rename(renames map[string]string) (*Table, error) {
	for old := range renames {
		if !t.HasColumn(old) {
			return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, old)
		}
	}
	cols := t.Columns()
	for i, c := range cols {
		if n, ok := renames[c.Name]; ok {
			cols[i].Name = n
		}
	}
	return t.rebuild(cols)
}

// Select returns the named columns in the given order.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]Column, 0, len(names))
	for _, n := range names {
		c, err := t.Column(n)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return t.rebuild(cols)
}

// TakeRows returns a table holding the given rows in the given order.
func (t *Table) TakeRows(idx []int) (*Table, error) {
	for _, i := range idx {
		if i < 0 || i >= t.rows {
			return nil, fmt.Errorf("%w: %d", ErrRowOutOfRange, i)
		}
	}
	cols := make([]Column, len(t.cols))
	for c, col := range t.cols {
		vals := make([]any, len(idx))
		for r, i := range idx {
			vals[r] = col.Values[i]
		}
		cols[c] = Column{Name: col.Name, Original: col.Original, Values: vals}
	}
	out, err := New(cols...)
	if err != nil {
		return nil, err
	}
	out.rows = len(idx)
	return out, nil
}

// Head returns at most the first n rows.
func (t *Table) Head(n int) *Table {
	if n >= t.rows {
		return t
	}
	if n < 0 {
		n = 0
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	out, _ := t.TakeRows(idx)
	return out
}

// rebuild keeps the row count when every column has been dropped.
func (t *Table) rebuild(cols []Column) (*Table, error) {
	out, err := New(cols...)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		out.rows = t.rows
	}
	return out, nil
}
