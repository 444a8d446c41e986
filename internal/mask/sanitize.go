package mask

import "strings"

const signChar = '-'

// Parts is the result of sanitizing free text into digit material.
type Parts struct {
	Integer           string // digits before the first decimal separator
	Fraction          string // digits after the first decimal separator, concatenated
	Negative          bool   // odd number of sign characters in the text
	HasSeparator      bool   // a decimal separator was present
	TrailingSeparator bool   // separator present with no fraction digits yet
}

// Sanitize strips everything from text that is not a digit, the sign
// character, or (when allowFraction) the configured decimal separator.
// Repeated sign characters toggle: an odd count means negative intent.
// The fraction part is never truncated here; scaling happens downstream.
func Sanitize(text, separator string, allowFraction bool) Parts {
	var p Parts

	for _, r := range text {
		if r == signChar {
			p.Negative = !p.Negative
		}
	}

	head := text
	tail := ""
	if allowFraction && separator != "" {
		if idx := strings.Index(text, separator); idx >= 0 {
			p.HasSeparator = true
			head = text[:idx]
			tail = text[idx+len(separator):]
		}
	}

	p.Integer = digitsOf(head)
	p.Fraction = digitsOf(tail)
	p.TrailingSeparator = p.HasSeparator && p.Fraction == ""
	return p
}

// digitsOf keeps only ASCII digits.
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TrimLeadingZeros drops leading zeros but keeps at least one digit of a
// non-empty string.
func TrimLeadingZeros(digits string) string {
	if digits == "" {
		return ""
	}
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
