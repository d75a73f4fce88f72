package codec

import "github.com/linkedin/goavro/v2"

// Record is a structured record in the object container's native form.
type Record = map[string]interface{}

const (
	// DefaultSeparator joins decoded field values.
	DefaultSeparator = " |\t"
	// Delimiter splits encoded input lines into tokens.
	Delimiter = ","
	// NullText marks the null branch in both directions.
	NullText = "null"
)

// unwrapUnion returns the value held by a union datum and false when the
// datum is the null branch.
func unwrapUnion(datum interface{}) (interface{}, bool) {
	switch v := datum.(type) {
	case nil:
		return nil, false
	case map[string]interface{}:
		if len(v) != 1 {
			return v, true
		}
		for branch, inner := range v {
			if branch == NullText {
				return nil, false
			}
			return inner, true
		}
	}
	return datum, true
}

// wrapUnion tags value with its branch name.
func wrapUnion(branch string, value interface{}) interface{} {
	return goavro.Union(branch, value)
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int16:
		return int64(n), true
	case int8:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		if i, ok := toInt64(v); ok {
			return float64(i), true
		}
		return 0, false
	}
}
