package registry

import (
	"fmt"

	"github.com/danthegoodman1/janitor/table"
)

// Args are the named parameters of a verb call, as decoded from a recipe.
type Args map[string]any

func (a Args) Value(key string) (any, error) {
	v, ok := a[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingArgs, key)
	}
	return v, nil
}

func (a Args) Str(key string) (string, error) {
	v, err := a.Value(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidArgType, key, v)
	}
	return s, nil
}

// OptString returns fallback when key is absent.
func (a Args) OptString(key, fallback string) (string, error) {
	if _, ok := a[key]; !ok {
		return fallback, nil
	}
	return a.Str(key)
}

// Strings accepts a list of strings or a single string.
func (a Args) Strings(key string) ([]string, error) {
	v, err := a.Value(key)
	if err != nil {
		return nil, err
	}
	switch val := v.(type) {
	case string:
		return []string{val}, nil
	case []string:
		return val, nil
	case []any:
		out := make([]string, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d] must be a string, got %T", ErrInvalidArgType, key, i, item)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a list of strings, got %T", ErrInvalidArgType, key, v)
	}
}

// Bool returns false when key is absent.
func (a Args) Bool(key string) (bool, error) {
	v, ok := a[key]
	if !ok {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s must be a bool, got %T", ErrInvalidArgType, key, v)
	}
	return b, nil
}

// Int returns fallback when key is absent.
func (a Args) Int(key string, fallback int) (int, error) {
	v, ok := a[key]
	if !ok {
		return fallback, nil
	}
	switch n := table.Normalize(v).(type) {
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int64(n)) {
			return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrInvalidArgType, key, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: %s must be an int, got %T", ErrInvalidArgType, key, v)
	}
}

// List returns the value as a slice, wrapping scalars.
func (a Args) List(key string) ([]any, error) {
	v, err := a.Value(key)
	if err != nil {
		return nil, err
	}
	if l, ok := v.([]any); ok {
		return l, nil
	}
	return []any{v}, nil
}

// Map accepts a string -> string mapping.
func (a Args) Map(key string) (map[string]string, error) {
	v, err := a.Value(key)
	if err != nil {
		return nil, err
	}
	switch val := v.(type) {
	case map[string]string:
		return val, nil
	case map[string]any:
		out := make(map[string]string, len(val))
		for k, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s.%s must be a string, got %T", ErrInvalidArgType, key, k, item)
			}
			out[k] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a mapping, got %T", ErrInvalidArgType, key, v)
	}
}
