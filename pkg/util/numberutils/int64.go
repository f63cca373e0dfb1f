package numberutils

import (
	"math"
	"strconv"
	"strings"
)

// IsInt64 checks if the given string can be converted to a valid int64.
func IsInt64(str string) bool {
	_, err := ToInt64WithError(str)
	return err == nil
}

// ToInt64WithError converts the given string to an int64, ignoring
// surrounding whitespace, and returns any conversion error.
func ToInt64WithError(str string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(str), 10, 64)
}

// MaxExactFloat bounds the integers a float64 holds unambiguously: 1<<53 is
// also what 1<<53+1 decodes to.
const MaxExactFloat = 1 << 53

// FloatToInt64 converts a whole float64 to an int64. JSON numbers decode as
// float64, so 3 and 3.0 are accepted while 3.5 is not. Magnitudes from
// MaxExactFloat up are rejected since the decoded value may differ from the
// number that was sent.
func FloatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= MaxExactFloat || f <= -MaxExactFloat {
		return 0, false
	}
	return int64(f), true
}

// AnyToInt64 converts a decoded JSON value (number or numeric string) to an
// int64.
func AnyToInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case float64:
		return FloatToInt64(v)
	case int:
		return int64(v), true
	case int64:
		return v, true
	case string:
		id, err := ToInt64WithError(v)
		return id, err == nil
	default:
		return 0, false
	}
}
