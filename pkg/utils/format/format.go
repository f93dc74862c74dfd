package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Number formats a slider readout with a fixed number of decimals.
func Number(v float64, decimals int) string {
	if decimals <= 0 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// Num formats a float for use in HTML attributes (no trailing zeros).
func Num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Value renders a descriptor leaf for an input's value attribute. Absent
// values render empty.
func Value(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return Num(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Truncate returns s truncated to max characters with "..." suffix.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return strings.TrimSpace(string(r[:max-3])) + "..."
}
