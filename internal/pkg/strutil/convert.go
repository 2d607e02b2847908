// Package strutil holds small conversions used when reading query strings.
package strutil

import "strconv"

// ConvertToInt parses s as a base-10 int, returning 0 when it cannot.
func ConvertToInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// ConvertToFloat64 parses s as a float64. ok is false when s is not a number.
func ConvertToFloat64(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ConvertToBool parses s as a boolean, returning false when it cannot.
func ConvertToBool(s string) bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return v
}
