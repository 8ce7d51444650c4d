package utils

import (
	"math"
	"strconv"
	"strings"
)

func StringToFloat64(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

// SafeString returns a stored string value, "" for nil or any other kind.
func SafeString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func SafeInt(v interface{}) int {
	switch val := v.(type) {
	case int:
		return val
	case int32:
		return int(val)
	case int64:
		return int(val)
	case float32:
		return int(val)
	case float64:
		return int(val)
	case string:
		return int(StringToFloat64(val))
	default:
		return 0
	}
}

func SafeFloat64(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) {
			return 0
		}
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case string:
		return StringToFloat64(val)
	default:
		return 0.0
	}
}

func SafeBool(v interface{}) bool {
	b, ok := v.(bool)
	return ok && b
}

// OptionalFloat64 returns nil for absent, unparsable or zero values.
func OptionalFloat64(v interface{}) *float64 {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || f == 0 {
			return nil
		}
		return &f
	}
	f := SafeFloat64(v)
	if f == 0 {
		return nil
	}
	return &f
}

// OptionalString returns nil for absent or empty values.
func OptionalString(v interface{}) *string {
	s := SafeString(v)
	if s == "" {
		return nil
	}
	return &s
}

// NonEmpty returns v unless it is nil, false, zero or an empty string.
func NonEmpty(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return nil
	case bool:
		if !val {
			return nil
		}
	case string:
		if val == "" {
			return nil
		}
	case float64, float32, int, int32, int64:
		if SafeFloat64(val) == 0 {
			return nil
		}
	}
	return v
}
