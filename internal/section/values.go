package section

import (
	"maps"
	"slices"
	"time"
)

// Values is a loosely typed map decoded from a score file or built in code.
// Its getters never fail: a missing key or a value of the wrong shape yields
// the caller's default. Numbers may arrive as any Go numeric type because the
// HCL loader produces float64 while the YAML loader produces int for whole
// numbers.
type Values map[string]any

// Score is the payload shared by every section during one performance.
type Score = Values

// Options is the per-section configuration declared next to a section.
type Options = Values

// Has reports whether key is present, even if its value is nil.
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// Keys returns the keys in sorted order.
func (v Values) Keys() []string {
	return slices.Sorted(maps.Keys(v))
}

// String returns the string stored under key, or def.
func (v Values) String(key, def string) string {
	if s, ok := v[key].(string); ok {
		return s
	}
	return def
}

// Bool returns the bool stored under key, or def.
func (v Values) Bool(key string, def bool) bool {
	if b, ok := v[key].(bool); ok {
		return b
	}
	return def
}

// Float64 returns the number stored under key, or def.
func (v Values) Float64(key string, def float64) float64 {
	if f, ok := toFloat(v[key]); ok {
		return f
	}
	return def
}

// Int returns the number stored under key truncated to an int, or def.
func (v Values) Int(key string, def int) int {
	if f, ok := toFloat(v[key]); ok {
		return int(f)
	}
	return def
}

// Duration accepts a time.Duration, a Go duration string ("250ms") or a
// number of seconds.
func (v Values) Duration(key string, def time.Duration) time.Duration {
	switch x := v[key].(type) {
	case time.Duration:
		return x
	case string:
		if d, err := time.ParseDuration(x); err == nil {
			return d
		}
		return def
	}
	if f, ok := toFloat(v[key]); ok {
		return time.Duration(f * float64(time.Second))
	}
	return def
}

// Strings returns a list of strings. A single string is promoted to a
// one-element list.
func (v Values) Strings(key string, def []string) []string {
	switch x := v[key].(type) {
	case string:
		return []string{x}
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			s, ok := e.(string)
			if !ok {
				return def
			}
			out = append(out, s)
		}
		return out
	}
	return def
}

// Float64s returns a numeric vector.
func (v Values) Float64s(key string, def []float64) []float64 {
	if out, ok := toFloats(v[key]); ok {
		return out
	}
	return def
}

// Matrix returns a list of numeric rows.
func (v Values) Matrix(key string, def [][]float64) [][]float64 {
	switch x := v[key].(type) {
	case [][]float64:
		return x
	case []any:
		out := make([][]float64, 0, len(x))
		for _, row := range x {
			r, ok := toFloats(row)
			if !ok {
				return def
			}
			out = append(out, r)
		}
		return out
	}
	return def
}

// Map returns a nested map.
func (v Values) Map(key string, def map[string]any) map[string]any {
	switch x := v[key].(type) {
	case map[string]any:
		return x
	case Values:
		return x
	case map[string]float64:
		out := make(map[string]any, len(x))
		for k, f := range x {
			out[k] = f
		}
		return out
	}
	return def
}

func toFloats(raw any) ([]float64, bool) {
	switch x := raw.(type) {
	case []float64:
		return x, true
	case []int:
		out := make([]float64, len(x))
		for i, n := range x {
			out[i] = float64(n)
		}
		return out, true
	case []any:
		out := make([]float64, 0, len(x))
		for _, e := range x {
			f, ok := toFloat(e)
			if !ok {
				return nil, false
			}
			out = append(out, f)
		}
		return out, true
	}
	return nil, false
}

// ToFloat converts any Go numeric value to float64.
func ToFloat(raw any) (float64, bool) {
	return toFloat(raw)
}

func toFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
