package registry

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/danthegoodman1/janitor/table"
	"github.com/danthegoodman1/janitor/verbs"
)

// ElementFuncs are the element functions transform_column can name in a recipe.
// nil passes through every function unchanged.
var ElementFuncs = map[string]verbs.ElementFunc{
	"lower":     stringFunc(strings.ToLower),
	"upper":     stringFunc(strings.ToUpper),
	"trim":      stringFunc(strings.TrimSpace),
	"to_string": nilSafe(func(v any) (any, error) { return table.FormatValue(v), nil }),
	"to_float":  nilSafe(toFloat),
	"to_int":    nilSafe(toInt),
	"abs": nilSafe(func(v any) (any, error) {
		switch n := table.Normalize(v).(type) {
		case int64:
			if n < 0 {
				return -n, nil
			}
			return n, nil
		case float64:
			return math.Abs(n), nil
		}
		return nil, fmt.Errorf("%w: abs of %T", verbs.ErrInvalidColumnType, v)
	}),
	"round": nilSafe(func(v any) (any, error) {
		f, err := toFloat(v)
		if err != nil {
			return nil, err
		}
		return math.Round(f.(float64)), nil
	}),
}

func nilSafe(fn verbs.ElementFunc) verbs.ElementFunc {
	return func(v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		return fn(v)
	}
}

func stringFunc(fn func(string) string) verbs.ElementFunc {
	return nilSafe(func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected string, got %T", verbs.ErrInvalidColumnType, v)
		}
		return fn(s), nil
	})
}

func toFloat(v any) (any, error) {
	switch n := table.Normalize(v).(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case bool:
		if n {
			return 1.0, nil
		}
		return 0.0, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil, fmt.Errorf("error in strconv.ParseFloat: %w", err)
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: to_float of %T", verbs.ErrInvalidColumnType, v)
}

func toInt(v any) (any, error) {
	switch n := table.Normalize(v).(type) {
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	case bool:
		if n {
			return int64(1), nil
		}
		return int64(0), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("error in strconv.ParseInt: %w", err)
		}
		return i, nil
	}
	return nil, fmt.Errorf("%w: to_int of %T", verbs.ErrInvalidColumnType, v)
}
