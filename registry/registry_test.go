package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/danthegoodman1/janitor/table"
	"github.com/danthegoodman1/janitor/verbs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salesTable() *table.Table {
	return table.MustNew(
		table.NewColumn("Region Name", "North", "south ", "East"),
		table.NewColumn("Total Sales", "10", "25", "7"),
		table.NewColumn("Notes", nil, "late", nil),
	)
}

func TestApplyPlan(t *testing.T) {
	RegisterFunctions()

	out, err := ApplyPlan(context.Background(), salesTable(), []Step{
		{Verb: "clean_names"},
		{Verb: "remove_column", Args: Args{"name": "notes"}},
		{Verb: "transform_column", Args: Args{"column": "total_sales", "function": "to_int"}},
		{Verb: "transform", Args: Args{"column": "region_name", "function": "trim"}},
		{Verb: "transform_column", Args: Args{"column": "region_name", "function": "lower", "new_column": "region"}},
		{Verb: "filter_on", Args: Args{"column": "total_sales", "op": ">=", "value": 10}},
		{Verb: "select_columns", Args: Args{"names": []any{"region", "total_sales"}}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"region", "total_sales"}, out.ColumnNames())
	region, _ := out.Column("region")
	assert.Equal(t, []any{"north", "south"}, region.Values)
	sales, _ := out.Column("total_sales")
	assert.Equal(t, []any{int64(10), int64(25)}, sales.Values)
}

func TestApplyPlanErrors(t *testing.T) {
	RegisterFunctions()

	_, err := ApplyPlan(context.Background(), salesTable(), []Step{{Verb: "explode"}})
	assert.True(t, errors.Is(err, ErrFuncNotFound))

	_, err = ApplyPlan(context.Background(), salesTable(), []Step{{Verb: "remove_column"}})
	assert.True(t, errors.Is(err, ErrMissingArgs))

	_, err = ApplyPlan(context.Background(), salesTable(), []Step{{Verb: "remove_column", Args: Args{"name": 3}}})
	assert.True(t, errors.Is(err, ErrInvalidArgType))

	_, err = ApplyPlan(context.Background(), salesTable(), []Step{
		{Verb: "clean_names"},
		{Verb: "remove_column", Args: Args{"name": "Notes"}},
	})
	assert.True(t, errors.Is(err, table.ErrColumnNotFound))
	assert.Contains(t, err.Error(), "step 1 (remove_column)")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ApplyPlan(ctx, salesTable(), []Step{{Verb: "clean_names"}})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRegisterCustomVerb(t *testing.T) {
	Register("double_rows", func(t *table.Table, _ Args) (*table.Table, error) {
		idx := make([]int, 0, t.NumRows()*2)
		for i := 0; i < t.NumRows(); i++ {
			idx = append(idx, i, i)
		}
		return t.TakeRows(idx)
	})
	defer delete(Functions, "double_rows")

	out, err := ApplyPlan(context.Background(), salesTable(), []Step{{Verb: "double_rows"}})
	require.NoError(t, err)
	assert.Equal(t, 6, out.NumRows())
	assert.Contains(t, Names(), "double_rows")
}

func TestBuiltinVerbs(t *testing.T) {
	RegisterFunctions()
	base := table.MustNew(
		table.NewColumn("a", 1, nil, 3),
		table.NewColumn("b", nil, "x", nil),
		table.NewColumn("t", "2022-01-24", nil, "2023-06-01"),
	)

	cases := []struct {
		step  Step
		check func(t *testing.T, out *table.Table)
	}{
		{Step{"rename_columns", Args{"mapping": map[string]any{"a": "alpha"}}}, func(t *testing.T, out *table.Table) {
			assert.True(t, out.HasColumn("alpha"))
		}},
		{Step{"rename_column", Args{"old": "b", "new": "beta"}}, func(t *testing.T, out *table.Table) {
			assert.True(t, out.HasColumn("beta"))
		}},
		{Step{"remove_columns", Args{"names": []any{"a", "b"}}}, func(t *testing.T, out *table.Table) {
			assert.Equal(t, []string{"t"}, out.ColumnNames())
		}},
		{Step{"add_column", Args{"name": "c", "value": "k"}}, func(t *testing.T, out *table.Table) {
			col, _ := out.Column("c")
			assert.Equal(t, []any{"k", "k", "k"}, col.Values)
		}},
		{Step{"transform_columns", Args{"columns": []any{"a"}, "function": "to_float", "suffix": "_f"}}, func(t *testing.T, out *table.Table) {
			col, _ := out.Column("a_f")
			assert.Equal(t, []any{1.0, nil, 3.0}, col.Values)
		}},
		{Step{"filter_string", Args{"column": "b", "search": "x"}}, func(t *testing.T, out *table.Table) {
			assert.Equal(t, 1, out.NumRows())
		}},
		{Step{"filter_column_isin", Args{"column": "a", "values": []any{1, 3}, "complement": true}}, func(t *testing.T, out *table.Table) {
			assert.Equal(t, 1, out.NumRows())
		}},
		{Step{"fill_empty", Args{"columns": "a", "value": 0}}, func(t *testing.T, out *table.Table) {
			col, _ := out.Column("a")
			assert.Equal(t, int64(0), col.Values[1])
		}},
		{Step{"remove_empty", nil}, func(t *testing.T, out *table.Table) {
			assert.Equal(t, 3, out.NumRows())
		}},
		{Step{"coalesce", Args{"columns": []any{"b", "a"}, "target": "ab"}}, func(t *testing.T, out *table.Table) {
			col, _ := out.Column("ab")
			assert.Equal(t, []any{int64(1), "x", int64(3)}, col.Values)
		}},
		{Step{"add_row_ids", Args{"kind": "ksuid"}}, func(t *testing.T, out *table.Table) {
			assert.True(t, out.HasColumn("id"))
		}},
		{Step{"add_date_part", Args{"column": "t", "part": "year"}}, func(t *testing.T, out *table.Table) {
			col, _ := out.Column("t_year")
			assert.Equal(t, []any{int64(2022), nil, int64(2023)}, col.Values)
		}},
		{Step{"clean_names", Args{"case_type": "upper", "truncate_limit": 1}}, func(t *testing.T, out *table.Table) {
			assert.Equal(t, []string{"A", "B", "T"}, out.ColumnNames())
		}},
	}

	for _, c := range cases {
		t.Run(c.step.Verb, func(t *testing.T) {
			out, err := ApplyPlan(context.Background(), base, []Step{c.step})
			require.NoError(t, err)
			c.check(t, out)
		})
	}
}

func TestElementFuncs(t *testing.T) {
	v, err := ElementFuncs["to_int"](" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = ElementFuncs["abs"](-2.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	v, err = ElementFuncs["round"]("2.6")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	v, err = ElementFuncs["upper"](nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = ElementFuncs["lower"](3)
	assert.True(t, errors.Is(err, verbs.ErrInvalidColumnType))
}

func TestArgs(t *testing.T) {
	a := Args{"s": "x", "l": []any{"a", 1}, "n": 2.0, "f": 2.5, "m": map[string]any{"k": 1}}

	_, err := a.Strings("l")
	assert.True(t, errors.Is(err, ErrInvalidArgType))

	n, err := a.Int("n", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = a.Int("f", 0)
	assert.True(t, errors.Is(err, ErrInvalidArgType))

	n, err = a.Int("absent", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = a.Map("m")
	assert.True(t, errors.Is(err, ErrInvalidArgType))

	l, err := a.List("s")
	require.NoError(t, err)
	assert.Equal(t, []any{"x"}, l)
}
