package janitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/danthegoodman1/janitor/biology"
	"github.com/danthegoodman1/janitor/registry"
	"github.com/danthegoodman1/janitor/table"
	"github.com/danthegoodman1/janitor/verbs"
)

type (
	// Frame is a table moving through a chain of verbs. Frames are never
	// modified in place: each method returns a new Frame.
	Frame struct {
		t   *table.Table
		err error
	}

	// Verb is any single step that maps a table to a table.
	Verb func(t *table.Table) (*table.Table, error)
)

var ErrNilTable = errors.New("nil table")

// RegisterFunctions registers every built-in verb by name.
func RegisterFunctions() {
	registry.RegisterFunctions()
	biology.RegisterFunctions()
}

func From(t *table.Table) *Frame {
	if t == nil {
		return &Frame{err: ErrNilTable}
	}
	return &Frame{t: t}
}

// Wrap starts a chain from a (table, error) pair, such as a reader's result.
func Wrap(t *table.Table, err error) *Frame {
	if err != nil {
		return &Frame{err: err}
	}
	return From(t)
}

func (f *Frame) then(name string, v Verb) *Frame {
	if f.err != nil {
		return f
	}
	out, err := v(f.t)
	if err != nil {
		return &Frame{err: fmt.Errorf("error in %s: %w", name, err)}
	}
	return &Frame{t: out}
}

// Table returns the result of the chain, or the first error.
func (f *Frame) Table() (*table.Table, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.t, nil
}

func (f *Frame) Err() error {
	return f.err
}

// Must returns the table and panics on error. Meant for tests and examples.
func (f *Frame) Must() *table.Table {
	if f.err != nil {
		panic(f.err)
	}
	return f.t
}

// Pipe chains a caller-defined verb.
func (f *Frame) Pipe(v Verb) *Frame {
	return f.then("pipe", v)
}

// Call chains a verb registered by name.
func (f *Frame) Call(name string, args registry.Args) *Frame {
	if f.err != nil {
		return f
	}
	fn, err := registry.Lookup(name)
	if err != nil {
		return &Frame{err: err}
	}
	return f.then(name, func(t *table.Table) (*table.Table, error) {
		return fn(t, args)
	})
}

// Apply chains a list of registered steps, as recipes do.
func (f *Frame) Apply(ctx context.Context, steps []registry.Step) *Frame {
	return f.then("apply", func(t *table.Table) (*table.Table, error) {
		return registry.ApplyPlan(ctx, t, steps)
	})
}

func (f *Frame) CleanNames(opts verbs.CleanNamesOptions) *Frame {
	return f.then("clean_names", func(t *table.Table) (*table.Table, error) {
		return verbs.CleanNames(t, opts)
	})
}

func (f *Frame) RemoveColumn(name string) *Frame {
	return f.RemoveColumns(name)
}

func (f *Frame) RemoveColumns(names ...string) *Frame {
	return f.then("remove_columns", func(t *table.Table) (*table.Table, error) {
		return verbs.RemoveColumns(t, names...)
	})
}

// SelectColumns keeps the named columns, which may be glob patterns, in the
// order given.
func (f *Frame) SelectColumns(names ...string) *Frame {
	return f.then("select_columns", func(t *table.Table) (*table.Table, error) {
		return verbs.SelectColumns(t, verbs.SelectOptions{Names: names})
	})
}

// DropColumns is SelectColumns with the selection inverted.
func (f *Frame) DropColumns(names ...string) *Frame {
	return f.then("select_columns", func(t *table.Table) (*table.Table, error) {
		return verbs.SelectColumns(t, verbs.SelectOptions{Names: names, Invert: true})
	})
}

func (f *Frame) RenameColumn(oldName, newName string) *Frame {
	return f.then("rename_column", func(t *table.Table) (*table.Table, error) {
		return verbs.RenameColumn(t, oldName, newName)
	})
}

func (f *Frame) RenameColumns(renames map[string]string) *Frame {
	return f.then("rename_columns", func(t *table.Table) (*table.Table, error) {
		return verbs.RenameColumns(t, renames)
	})
}

func (f *Frame) AddColumn(name string, value any) *Frame {
	return f.then("add_column", func(t *table.Table) (*table.Table, error) {
		return verbs.AddColumn(t, name, value)
	})
}

// TransformColumn applies fn to each value of column. An empty newColumn
// replaces the column in place.
func (f *Frame) TransformColumn(column string, fn verbs.ElementFunc, newColumn string) *Frame {
	return f.then("transform_column", func(t *table.Table) (*table.Table, error) {
		return verbs.TransformColumn(t, column, fn, newColumn)
	})
}

func (f *Frame) Transform(column string, fn verbs.ElementFunc) *Frame {
	return f.then("transform", func(t *table.Table) (*table.Table, error) {
		return verbs.Transform(t, column, fn)
	})
}

func (f *Frame) TransformColumns(columns []string, fn verbs.ElementFunc, suffix string) *Frame {
	return f.then("transform_columns", func(t *table.Table) (*table.Table, error) {
		return verbs.TransformColumns(t, columns, fn, suffix)
	})
}

func (f *Frame) FilterOn(pred verbs.Predicate, complement bool) *Frame {
	return f.then("filter_on", func(t *table.Table) (*table.Table, error) {
		return verbs.FilterOn(t, pred, complement)
	})
}

func (f *Frame) FilterMask(mask []bool) *Frame {
	return f.then("filter_mask", func(t *table.Table) (*table.Table, error) {
		return verbs.FilterMask(t, mask)
	})
}

func (f *Frame) FilterString(column, search string, complement bool) *Frame {
	return f.then("filter_string", func(t *table.Table) (*table.Table, error) {
		return verbs.FilterString(t, column, search, complement)
	})
}

func (f *Frame) FilterColumnIsIn(column string, values []any, complement bool) *Frame {
	return f.then("filter_column_isin", func(t *table.Table) (*table.Table, error) {
		return verbs.FilterColumnIsIn(t, column, values, complement)
	})
}

func (f *Frame) FillEmpty(columns []string, value any) *Frame {
	return f.then("fill_empty", func(t *table.Table) (*table.Table, error) {
		return verbs.FillEmpty(t, columns, value)
	})
}

func (f *Frame) RemoveEmpty() *Frame {
	return f.then("remove_empty", verbs.RemoveEmpty)
}

func (f *Frame) Coalesce(columns []string, target string) *Frame {
	return f.then("coalesce", func(t *table.Table) (*table.Table, error) {
		return verbs.Coalesce(t, columns, target)
	})
}

func (f *Frame) AddRowIDs(column string, kind verbs.IDKind) *Frame {
	return f.then("add_row_ids", func(t *table.Table) (*table.Table, error) {
		return verbs.AddRowIDs(t, column, kind)
	})
}

func (f *Frame) AddDatePart(column string, part verbs.DatePart, newColumn string) *Frame {
	return f.then("add_date_part", func(t *table.Table) (*table.Table, error) {
		return verbs.AddDatePart(t, column, part, newColumn)
	})
}

// JoinFasta attaches the sequence for each row's id from a FASTA file.
func (f *Frame) JoinFasta(filename, idColumn, columnName string) *Frame {
	return f.then("join_fasta", func(t *table.Table) (*table.Table, error) {
		return biology.JoinFasta(t, filename, idColumn, columnName)
	})
}

// TransformColumnWhole applies fn to the column's values all at once.
func (f *Frame) TransformColumnWhole(column string, fn verbs.ColumnFunc, newColumn string) *Frame {
	return f.then("transform_column", func(t *table.Table) (*table.Table, error) {
		return verbs.TransformColumnWhole(t, column, fn, newColumn)
	})
}
