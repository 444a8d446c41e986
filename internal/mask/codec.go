package mask

import (
	"math"
	"strconv"
)

// Encode converts a numeric value into its scaled digit string and sign.
// The magnitude is scaled by 10^fractionDigits and rounded half away from
// zero. A nil or NaN value encodes to the empty digit string. This is the
// single source of truth for the value-to-digits direction.
func Encode(value *float64, fractionDigits int) (digits string, negative bool) {
	if value == nil || math.IsNaN(*value) {
		return "", false
	}

	negative = *value < 0
	scaled := math.Abs(*value) * math.Pow10(fractionDigits)
	rounded := math.Floor(scaled + 0.5)
	if math.IsInf(rounded, 0) {
		return "", false
	}

	return strconv.FormatFloat(rounded, 'f', 0, 64), negative
}

// Decode converts a scaled digit string and sign back into a numeric
// value. The empty string decodes to nil. The sign is honored only when
// negatives are allowed.
func Decode(digits string, negative bool, fractionDigits int, allowNegative bool) *float64 {
	if digits == "" {
		return nil
	}

	magnitude, err := strconv.ParseFloat(digits, 64)
	if err != nil || math.IsInf(magnitude, 0) {
		return nil
	}

	v := magnitude / math.Pow10(fractionDigits)
	if negative && allowNegative {
		v = -v
	}
	return &v
}
