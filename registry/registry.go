package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/danthegoodman1/janitor/table"
	"github.com/danthegoodman1/janitor/verbs"
	"github.com/rs/zerolog"
)

type (
	// Step is one verb call in a plan.
	Step struct {
		Verb string `yaml:"verb" json:"verb" validate:"required"`
		Args Args   `yaml:"args,omitempty" json:"args,omitempty"`
	}

	VerbFunc func(t *table.Table, args Args) (*table.Table, error)
)

var (
	Functions = make(map[string]VerbFunc)

	ErrFuncNotFound   = errors.New("verb not found")
	ErrMissingArgs    = errors.New("missing args")
	ErrInvalidArgType = errors.New("invalid arg type")
)

// Register binds fn to name, replacing any earlier registration.
func Register(name string, fn VerbFunc) {
	Functions[name] = fn
}

func Lookup(name string) (VerbFunc, error) {
	f, ok := Functions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFuncNotFound, name)
	}
	return f, nil
}

// Names lists the registered verbs in sorted order.
func Names() []string {
	names := make([]string, 0, len(Functions))
	for n := range Functions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ApplyPlan runs steps in order and stops at the first failing step.
func ApplyPlan(ctx context.Context, t *table.Table, steps []Step) (*table.Table, error) {
	logger := zerolog.Ctx(ctx)
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := Lookup(step.Verb)
		if err != nil {
			return nil, fmt.Errorf("error in step %d: %w", i, err)
		}

		s := time.Now()
		out, err := f(t, step.Args)
		if err != nil {
			return nil, fmt.Errorf("error processing step %d (%s): %w", i, step.Verb, err)
		}
		rows, cols := out.Shape()
		logger.Debug().Int("step", i).Str("verb", step.Verb).Int("rows", rows).Int("cols", cols).Dur("took", time.Since(s)).Msg("applied verb")
		t = out
	}
	return t, nil
}

// RegisterFunctions registers every built-in verb under its snake_case name.
func RegisterFunctions() {
	Functions["clean_names"] = func(t *table.Table, args Args) (*table.Table, error) {
		var opts verbs.CleanNamesOptions
		var err error
		if opts.CaseType, err = args.OptString("case_type", ""); err != nil {
			return nil, err
		}
		if opts.StripUnderscores, err = args.OptString("strip_underscores", ""); err != nil {
			return nil, err
		}
		if opts.RemoveSpecial, err = args.Bool("remove_special"); err != nil {
			return nil, err
		}
		if opts.KeepAccents, err = args.Bool("keep_accents"); err != nil {
			return nil, err
		}
		if opts.PreserveOriginal, err = args.Bool("preserve_original"); err != nil {
			return nil, err
		}
		if opts.TruncateLimit, err = args.Int("truncate_limit", 0); err != nil {
			return nil, err
		}
		return verbs.CleanNames(t, opts)
	}
	Functions["remove_column"] = func(t *table.Table, args Args) (*table.Table, error) {
		name, err := args.Str("name")
		if err != nil {
			return nil, err
		}
		return verbs.RemoveColumns(t, name)
	}
	Functions["remove_columns"] = func(t *table.Table, args Args) (*table.Table, error) {
		names, err := args.Strings("names")
		if err != nil {
			return nil, err
		}
		return verbs.RemoveColumns(t, names...)
	}
	Functions["select_columns"] = func(t *table.Table, args Args) (*table.Table, error) {
		names, err := args.Strings("names")
		if err != nil {
			return nil, err
		}
		invert, err := args.Bool("invert")
		if err != nil {
			return nil, err
		}
		return verbs.SelectColumns(t, verbs.SelectOptions{Names: names, Invert: invert})
	}
	Functions["rename_column"] = func(t *table.Table, args Args) (*table.Table, error) {
		oldName, err := args.Str("old")
		if err != nil {
			return nil, err
		}
		newName, err := args.Str("new")
		if err != nil {
			return nil, err
		}
		return verbs.RenameColumn(t, oldName, newName)
	}
	Functions["rename_columns"] = func(t *table.Table, args Args) (*table.Table, error) {
		m, err := args.Map("mapping")
		if err != nil {
			return nil, err
		}
		return verbs.RenameColumns(t, m)
	}
	Functions["add_column"] = func(t *table.Table, args Args) (*table.Table, error) {
		name, err := args.Str("name")
		if err != nil {
			return nil, err
		}
		value, err := args.Value("value")
		if err != nil {
			return nil, err
		}
		return verbs.AddColumn(t, name, value)
	}
	Functions["transform_column"] = func(t *table.Table, args Args) (*table.Table, error) {
		column, fn, err := columnAndFunc(args)
		if err != nil {
			return nil, err
		}
		dest, err := args.OptString("new_column", "")
		if err != nil {
			return nil, err
		}
		return verbs.TransformColumn(t, column, fn, dest)
	}
	Functions["transform"] = func(t *table.Table, args Args) (*table.Table, error) {
		column, fn, err := columnAndFunc(args)
		if err != nil {
			return nil, err
		}
		return verbs.Transform(t, column, fn)
	}
	Functions["transform_columns"] = func(t *table.Table, args Args) (*table.Table, error) {
		columns, err := args.Strings("columns")
		if err != nil {
			return nil, err
		}
		fn, err := elementFunc(args)
		if err != nil {
			return nil, err
		}
		suffix, err := args.OptString("suffix", "")
		if err != nil {
			return nil, err
		}
		return verbs.TransformColumns(t, columns, fn, suffix)
	}
	Functions["filter_on"] = func(t *table.Table, args Args) (*table.Table, error) {
		column, err := args.Str("column")
		if err != nil {
			return nil, err
		}
		op, err := args.OptString("op", string(verbs.OpEq))
		if err != nil {
			return nil, err
		}
		value, err := args.Value("value")
		if err != nil {
			return nil, err
		}
		complement, err := args.Bool("complement")
		if err != nil {
			return nil, err
		}
		return verbs.FilterOn(t, verbs.Compare(column, verbs.Operator(op), value), complement)
	}
	Functions["filter_string"] = func(t *table.Table, args Args) (*table.Table, error) {
		column, err := args.Str("column")
		if err != nil {
			return nil, err
		}
		search, err := args.Str("search")
		if err != nil {
			return nil, err
		}
		complement, err := args.Bool("complement")
		if err != nil {
			return nil, err
		}
		return verbs.FilterString(t, column, search, complement)
	}
	Functions["filter_column_isin"] = func(t *table.Table, args Args) (*table.Table, error) {
		column, err := args.Str("column")
		if err != nil {
			return nil, err
		}
		values, err := args.List("values")
		if err != nil {
			return nil, err
		}
		complement, err := args.Bool("complement")
		if err != nil {
			return nil, err
		}
		return verbs.FilterColumnIsIn(t, column, values, complement)
	}
	Functions["fill_empty"] = func(t *table.Table, args Args) (*table.Table, error) {
		columns, err := args.Strings("columns")
		if err != nil {
			return nil, err
		}
		value, err := args.Value("value")
		if err != nil {
			return nil, err
		}
		return verbs.FillEmpty(t, columns, value)
	}
	Functions["remove_empty"] = func(t *table.Table, _ Args) (*table.Table, error) {
		return verbs.RemoveEmpty(t)
	}
	Functions["coalesce"] = func(t *table.Table, args Args) (*table.Table, error) {
		columns, err := args.Strings("columns")
		if err != nil {
			return nil, err
		}
		target, err := args.Str("target")
		if err != nil {
			return nil, err
		}
		return verbs.Coalesce(t, columns, target)
	}
	Functions["add_row_ids"] = func(t *table.Table, args Args) (*table.Table, error) {
		column, err := args.OptString("column", "id")
		if err != nil {
			return nil, err
		}
		kind, err := args.OptString("kind", string(verbs.IDUUID))
		if err != nil {
			return nil, err
		}
		return verbs.AddRowIDs(t, column, verbs.IDKind(kind))
	}
	Functions["add_date_part"] = func(t *table.Table, args Args) (*table.Table, error) {
		column, err := args.Str("column")
		if err != nil {
			return nil, err
		}
		part, err := args.Str("part")
		if err != nil {
			return nil, err
		}
		dest, err := args.OptString("new_column", "")
		if err != nil {
			return nil, err
		}
		return verbs.AddDatePart(t, column, verbs.DatePart(part), dest)
	}
}

func columnAndFunc(args Args) (string, verbs.ElementFunc, error) {
	column, err := args.Str("column")
	if err != nil {
		return "", nil, err
	}
	fn, err := elementFunc(args)
	if err != nil {
		return "", nil, err
	}
	return column, fn, nil
}

func elementFunc(args Args) (verbs.ElementFunc, error) {
	name, err := args.Str("function")
	if err != nil {
		return nil, err
	}
	fn, ok := ElementFuncs[name]
	if !ok {
		return nil, fmt.Errorf("%w: element function %s", ErrFuncNotFound, name)
	}
	return fn, nil
}
