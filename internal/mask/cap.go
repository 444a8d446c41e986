package mask

// CapDigits enforces the integer-digit ceiling on a scaled digit string.
// When the integer portion exceeds maxIntegerDigits, only the last
// maxIntegerDigits+fractionDigits characters are kept, so the most
// significant excess digits are dropped and the newest digits survive.
func CapDigits(digits string, fractionDigits int, maxIntegerDigits *int) (string, bool) {
	if maxIntegerDigits == nil {
		return digits, false
	}

	limit := *maxIntegerDigits
	if limit < 0 {
		limit = 0
	}

	integerLen := len(digits) - fractionDigits
	if integerLen < 0 {
		integerLen = 0
	}
	if integerLen <= limit {
		return digits, false
	}

	keep := limit + fractionDigits
	return digits[len(digits)-keep:], true
}
