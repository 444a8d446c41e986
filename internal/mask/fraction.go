package mask

// defaultFractionDigits is the hard default when neither the legacy
// setting nor an explicit override is configured.
const defaultFractionDigits = 2

// ResolveFractionDigits resolves the effective minimum and maximum
// fraction-digit counts. The legacy single setting supplies the base for
// both; explicit overrides win over it. Max is silently raised to min so
// the pair is always consistent.
func ResolveFractionDigits(legacy, minOverride, maxOverride *int) (min, max int) {
	base := defaultFractionDigits
	if legacy != nil {
		base = *legacy
	}

	min = base
	if minOverride != nil {
		min = *minOverride
	}
	if min < 0 {
		min = 0
	}

	max = base
	if maxOverride != nil {
		max = *maxOverride
	}
	if max < min {
		max = min
	}
	return min, max
}

// ResolveFractionRange is ResolveFractionDigits applied to FormatOptions.
func ResolveFractionRange(opts FormatOptions) (min, max int) {
	return ResolveFractionDigits(opts.LegacyFractionDigits, opts.MinFractionDigits, opts.MaxFractionDigits)
}
