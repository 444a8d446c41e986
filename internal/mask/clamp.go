package mask

import "math"

// Clamp forces a value into the configured bounds. When negatives are
// disallowed, a negative value is first replaced by the minimum (or zero
// when no minimum is set) before the explicit min/max clamp runs, so a
// configured minimum below zero is honored only when negatives are
// allowed. Nil and NaN pass through untouched.
func Clamp(value *float64, opts ValidateOptions) *float64 {
	if value == nil || math.IsNaN(*value) {
		return value
	}

	v := *value
	if !opts.AllowNegative && v < 0 {
		if opts.Minimum != nil {
			v = *opts.Minimum
		} else {
			v = 0
		}
	}

	if opts.Minimum != nil && v < *opts.Minimum {
		v = *opts.Minimum
	}
	if opts.Maximum != nil && v > *opts.Maximum {
		v = *opts.Maximum
	}
	return &v
}
