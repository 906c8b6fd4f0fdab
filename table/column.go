package table

import (
	"fmt"
	"math"
	"time"
)

type (
	Column struct {
		Name string
		// Original is the name the column had before it was first renamed,
		// empty when no rename was recorded.
		Original string
		Values   []any
	}

	Kind int
)

const (
	KindNull Kind = iota
	KindString
	KindFloat
	KindInt
	KindBool
	KindTime
	KindMixed
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return "mixed"
	}
}

// NewColumn normalizes Go numeric types so every value is one of string,
// float64, int64, bool, time.Time or nil.
func NewColumn(name string, values ...any) Column {
	norm := make([]any, len(values))
	for i, v := range values {
		norm[i] = Normalize(v)
	}
	return Column{Name: name, Values: norm}
}

func (c Column) Len() int {
	return len(c.Values)
}

// Kind reports the kind shared by all non-nil values. Ints mixed with floats
// widen to KindFloat.
func (c Column) Kind() Kind {
	kind := KindNull
	for _, v := range c.Values {
		k := KindOf(v)
		if k == KindNull || k == kind {
			continue
		}
		switch {
		case kind == KindNull:
			kind = k
		case (kind == KindInt && k == KindFloat) || (kind == KindFloat && k == KindInt):
			kind = KindFloat
		default:
			return KindMixed
		}
	}
	return kind
}

func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case float64, float32:
		return KindFloat
	case int64, int, int32, int16, int8, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case bool:
		return KindBool
	case time.Time:
		return KindTime
	default:
		return KindMixed
	}
}

// Normalize maps the Go numeric types onto int64 and float64 and
// dereferences common pointer types. Unsigned values above MaxInt64 become
// float64.
func Normalize(v any) any {
	switch val := v.(type) {
	case int:
		return int64(val)
	case int8:
		return int64(val)
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case uint:
		return normalizeUint(uint64(val))
	case uint8:
		return int64(val)
	case uint16:
		return int64(val)
	case uint32:
		return int64(val)
	case uint64:
		return normalizeUint(val)
	case float32:
		return float64(val)
	case *string:
		if val == nil {
			return nil
		}
		return *val
	case *float64:
		if val == nil {
			return nil
		}
		return *val
	case *int64:
		if val == nil {
			return nil
		}
		return *val
	case *bool:
		if val == nil {
			return nil
		}
		return *val
	default:
		return v
	}
}

// normalizeUint keeps values above MaxInt64 as float64 rather than wrapping.
func normalizeUint(v uint64) any {
	if v > math.MaxInt64 {
		return float64(v)
	}
	return int64(v)
}

// IsEmpty treats nil and the empty string as missing.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}

func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(val)
	}
}
