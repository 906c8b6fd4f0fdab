package verbs

import (
	"errors"
	"strings"
	"testing"

	"github.com/danthegoodman1/janitor/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upper(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	return strings.ToUpper(s), nil
}

func TestTransformColumn(t *testing.T) {
	src := peopleTable()

	out, err := Transform(src, "name", upper)
	require.NoError(t, err)
	col, _ := out.Column("name")
	assert.Equal(t, []any{"ADA", "BOB", "CY"}, col.Values)
	assert.Equal(t, src.ColumnNames(), out.ColumnNames())

	orig, _ := src.Column("name")
	assert.Equal(t, []any{"ada", "bob", "cy"}, orig.Values)

	out, err = TransformColumn(src, "name", upper, "name_upper")
	require.NoError(t, err)
	assert.Equal(t, "name_upper", out.ColumnNames()[4])
	col, _ = out.Column("name")
	assert.Equal(t, "ada", col.Values[0])
}

func TestTransformColumnErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := Transform(peopleTable(), "age", func(v any) (any, error) {
		if v == nil {
			return nil, boom
		}
		return v, nil
	})
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "row 2")

	_, err = Transform(peopleTable(), "missing", upper)
	assert.True(t, errors.Is(err, table.ErrColumnNotFound))

	_, err = TransformColumnWhole(peopleTable(), "age", func(vals []any) ([]any, error) {
		return vals[:1], nil
	}, "short")
	assert.True(t, errors.Is(err, table.ErrLengthMismatch))
}

func TestTransformColumns(t *testing.T) {
	out, err := TransformColumns(peopleTable(), []string{"city_home", "city_work"}, upper, "_uc")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age", "city_home", "city_work", "city_home_uc", "city_work_uc"}, out.ColumnNames())
	col, _ := out.Column("city_work_uc")
	assert.Equal(t, []any{"LONDON", nil, "MILAN"}, col.Values)
}
