package recipe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/danthegoodman1/janitor/registry"
	"github.com/danthegoodman1/janitor/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const salesRecipe = `
name: tidy sales
input: sales.csv
output: sales.parquet
steps:
  - verb: clean_names
    args:
      remove_special: true
  - verb: remove_column
    args:
      name: notes
  - verb: filter_on
    args:
      column: total_sales
      op: ">"
      value: 8
  - verb: select_columns
    args:
      names: [region_name, total_sales]
`

func TestParse(t *testing.T) {
	registry.RegisterFunctions()

	r, err := Parse([]byte(salesRecipe))
	require.NoError(t, err)
	assert.Equal(t, "tidy sales", r.Name)
	assert.Equal(t, "sales.csv", r.Input)
	assert.Equal(t, "sales.parquet", r.Output)
	require.Len(t, r.Steps, 4)
	assert.Equal(t, "filter_on", r.Steps[2].Verb)
	assert.Equal(t, 8, r.Steps[2].Args["value"])
}

func TestParseInvalid(t *testing.T) {
	registry.RegisterFunctions()

	_, err := Parse([]byte("name: empty\n"))
	assert.True(t, errors.Is(err, ErrInvalidRecipe))

	_, err = Parse([]byte("steps:\n  - args: {name: a}\n"))
	assert.True(t, errors.Is(err, ErrInvalidRecipe))

	_, err = Parse([]byte("steps:\n  - verb: explode\n"))
	assert.True(t, errors.Is(err, registry.ErrFuncNotFound))

	_, err = Parse([]byte("steps: [\n"))
	assert.Error(t, err)
}

func TestLoadAndRun(t *testing.T) {
	registry.RegisterFunctions()

	path := filepath.Join(t.TempDir(), "recipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(salesRecipe), 0o644))
	r, err := Load(path)
	require.NoError(t, err)

	in := table.MustNew(
		table.NewColumn("Region Name", "North", "South", "East"),
		table.NewColumn("Total Sales", 10, 25, 7),
		table.NewColumn("Notes", nil, "late", nil),
	)
	out, err := Run(context.Background(), r, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"region_name", "total_sales"}, out.ColumnNames())
	assert.Equal(t, 2, out.NumRows())

	// input is untouched
	assert.Equal(t, []string{"Region Name", "Total Sales", "Notes"}, in.ColumnNames())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunStepError(t *testing.T) {
	registry.RegisterFunctions()

	r := &Recipe{Name: "bad", Steps: []registry.Step{{Verb: "remove_column", Args: registry.Args{"name": "nope"}}}}
	_, err := Run(context.Background(), r, table.MustNew(table.NewColumn("a", 1)))
	assert.True(t, errors.Is(err, table.ErrColumnNotFound))
	assert.Contains(t, err.Error(), `recipe "bad"`)
}
