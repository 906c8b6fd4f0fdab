package verbs

import (
	"errors"
	"testing"

	"github.com/danthegoodman1/janitor/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillEmpty(t *testing.T) {
	out, err := FillEmpty(peopleTable(), []string{"age", "city_work"}, 0)
	require.NoError(t, err)
	age, _ := out.Column("age")
	assert.Equal(t, []any{int64(36), int64(41), int64(0)}, age.Values)
	work, _ := out.Column("city_work")
	assert.Equal(t, []any{"london", int64(0), "milan"}, work.Values)
}

func TestRemoveEmpty(t *testing.T) {
	tbl := table.MustNew(
		table.NewColumn("a", 1, nil, 3),
		table.NewColumn("b", nil, "", nil),
		table.NewColumn("c", "x", nil, nil),
	)
	out, err := RemoveEmpty(tbl)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, out.ColumnNames())
	assert.Equal(t, 2, out.NumRows())
}

func TestCoalesce(t *testing.T) {
	out, err := Coalesce(peopleTable(), []string{"city_work", "city_home"}, "city")
	require.NoError(t, err)
	col, _ := out.Column("city")
	assert.Equal(t, []any{"london", "paris", "milan"}, col.Values)

	out, err = Coalesce(peopleTable(), []string{"city_work", "city_home"}, "city_work")
	require.NoError(t, err)
	assert.Equal(t, 4, out.NumCols())

	_, err = Coalesce(peopleTable(), []string{"city_work"}, "city")
	assert.True(t, errors.Is(err, ErrInvalidOptions))

	_, err = Coalesce(peopleTable(), []string{"city_work", "nope"}, "city")
	assert.True(t, errors.Is(err, table.ErrColumnNotFound))
}
