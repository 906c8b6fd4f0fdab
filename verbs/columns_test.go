package verbs

import (
	"errors"
	"testing"

	"github.com/danthegoodman1/janitor/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func peopleTable() *table.Table {
	return table.MustNew(
		table.NewColumn("name", "ada", "bob", "cy"),
		table.NewColumn("age", 36, 41, nil),
		table.NewColumn("city_home", "london", "paris", "rome"),
		table.NewColumn("city_work", "london", nil, "milan"),
	)
}

func TestRemoveColumns(t *testing.T) {
	out, err := RemoveColumns(peopleTable(), "age", "city_work")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "city_home"}, out.ColumnNames())

	_, err = RemoveColumns(peopleTable(), "nope")
	assert.True(t, errors.Is(err, table.ErrColumnNotFound))
}

func TestSelectColumns(t *testing.T) {
	out, err := SelectColumns(peopleTable(), SelectOptions{Names: []string{"city_*", "name"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"city_home", "city_work", "name"}, out.ColumnNames())

	out, err = SelectColumns(peopleTable(), SelectOptions{Names: []string{"city_*"}, Invert: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age"}, out.ColumnNames())

	_, err = SelectColumns(peopleTable(), SelectOptions{Names: []string{"zip*"}})
	assert.True(t, errors.Is(err, ErrNoMatch))

	_, err = SelectColumns(peopleTable(), SelectOptions{})
	assert.True(t, errors.Is(err, ErrInvalidOptions))
}

func TestSelectColumnsGlobCrossesSlash(t *testing.T) {
	tbl := table.MustNew(
		table.NewColumn("speed km/h", 10, 20),
		table.NewColumn("name", "a", "b"),
	)

	out, err := SelectColumns(tbl, SelectOptions{Names: []string{"*"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"speed km/h", "name"}, out.ColumnNames())

	out, err = SelectColumns(tbl, SelectOptions{Names: []string{"speed*"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"speed km/h"}, out.ColumnNames())

	out, err = SelectColumns(tbl, SelectOptions{Names: []string{"*"}, Invert: true})
	require.NoError(t, err)
	assert.Empty(t, out.ColumnNames())

	out, err = SelectColumns(tbl, SelectOptions{Names: []string{"speed km?h"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"speed km/h"}, out.ColumnNames())

	_, err = SelectColumns(tbl, SelectOptions{Names: []string{"[speed"}})
	assert.True(t, errors.Is(err, ErrInvalidOptions))
}

func TestRenameColumn(t *testing.T) {
	out, err := RenameColumn(peopleTable(), "age", "years")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "years", "city_home", "city_work"}, out.ColumnNames())

	_, err = RenameColumn(peopleTable(), "age", "name")
	assert.True(t, errors.Is(err, table.ErrDuplicateColumn))

	_, err = RenameColumn(peopleTable(), "age", "")
	assert.True(t, errors.Is(err, ErrInvalidOptions))
}

func TestAddColumn(t *testing.T) {
	out, err := AddColumn(peopleTable(), "country", "uk")
	require.NoError(t, err)
	col, err := out.Column("country")
	require.NoError(t, err)
	assert.Equal(t, []any{"uk", "uk", "uk"}, col.Values)

	out, err = AddColumn(peopleTable(), "score", []int{1, 2, 3})
	require.NoError(t, err)
	col, _ = out.Column("score")
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, col.Values)

	_, err = AddColumn(peopleTable(), "score", []int{1})
	assert.True(t, errors.Is(err, table.ErrLengthMismatch))

	_, err = AddColumn(peopleTable(), "name", "x")
	assert.True(t, errors.Is(err, ErrColumnExists))
}
