package mask

import "fmt"

// Validation messages. The composer picks the first structural match in a
// fixed order; a caller-supplied validator replaces whatever it picked.
const (
	msgMaxDigits  = "Maximum digits is %d"
	msgNegative   = "Negative values are not allowed"
	msgBelowBound = "Value must be >= %v"
	msgAboveBound = "Value must be <= %v"
)

// ComposeValidation aggregates structural errors and the custom validator
// into the single effective message for the tuple. Precedence: digit cap,
// disallowed sign, lower bound, upper bound. The custom validator always
// wins when it returns a non-empty message, even if no structural error
// was found. The value passed here is the raw decoded value, before
// clamping, so bound violations from live typing are still visible.
func ComposeValidation(value *float64, negative, capped bool, opts ValidateOptions) string {
	var structural string
	switch {
	case capped && opts.MaxIntegerDigits != nil:
		structural = fmt.Sprintf(msgMaxDigits, *opts.MaxIntegerDigits)
	case negative && !opts.AllowNegative:
		structural = msgNegative
	case value != nil && opts.Minimum != nil && *value < *opts.Minimum:
		structural = fmt.Sprintf(msgBelowBound, *opts.Minimum)
	case value != nil && opts.Maximum != nil && *value > *opts.Maximum:
		structural = fmt.Sprintf(msgAboveBound, *opts.Maximum)
	}

	if opts.Validator != nil {
		if msg := opts.Validator(value); msg != "" {
			return msg
		}
	}
	return structural
}
