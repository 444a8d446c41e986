package mask

import "strings"

// CurrencyFormatter is the surface the renderer needs from the platform
// number-formatting facility. internal/localefmt provides the real one.
type CurrencyFormatter interface {
	// FormatCurrency renders a full numeric value with grouping, the
	// currency symbol in its locale position, and the given fraction range.
	FormatCurrency(value float64, minFrac, maxFrac int) string
	// GroupInteger applies the locale group separator to an unsigned
	// integer digit string.
	GroupInteger(digits string) string
	// DecimalSeparator returns the locale decimal separator.
	DecimalSeparator() string
	// Symbol returns the currency symbol and whether it leads the number.
	Symbol() (text string, leading bool)
}

// RenderCurrency renders a decoded value in Currency mode. Used on the
// programmatic-set path where the value is already normalized.
func RenderCurrency(value *float64, f CurrencyFormatter, minFrac, maxFrac int) string {
	if value == nil {
		return ""
	}
	return f.FormatCurrency(*value, minFrac, maxFrac)
}

// ComposeCurrencyText renders sanitized parts in Currency mode while
// preserving the natural left-to-right typing state: "12." keeps its
// trailing separator and a lone separator shows as a pending "0.".
func ComposeCurrencyText(p Parts, f CurrencyFormatter, maxFrac int, allowNegative bool) string {
	integer := TrimLeadingZeros(p.Integer)
	if integer == "" {
		integer = "0"
	}

	var b strings.Builder
	if p.Negative && allowNegative {
		b.WriteString("-")
	}

	symbol, leading := f.Symbol()
	if leading {
		b.WriteString(symbol)
	}

	b.WriteString(f.GroupInteger(integer))
	if p.HasSeparator && maxFrac > 0 {
		b.WriteString(f.DecimalSeparator())
		b.WriteString(truncate(p.Fraction, maxFrac))
	}

	if !leading && symbol != "" {
		b.WriteString(" ")
		b.WriteString(symbol)
	}
	return b.String()
}

// ComposeRawText renders sanitized parts in Raw mode, preserving the
// typing state against the locale decimal separator.
func ComposeRawText(p Parts, separator string, maxFrac int, allowNegative bool) string {
	integer := TrimLeadingZeros(p.Integer)
	if integer == "" {
		integer = "0"
	}

	var b strings.Builder
	if p.Negative && allowNegative {
		b.WriteString("-")
	}
	b.WriteString(integer)
	if p.HasSeparator && maxFrac > 0 {
		b.WriteString(separator)
		b.WriteString(truncate(p.Fraction, maxFrac))
	}
	return b.String()
}

// RenderRaw renders a scaled digit string in Raw mode: left-pad so an
// integer digit always exists, split at the scale, strip leading zeros,
// and join with the locale separator. The separator is omitted entirely
// when the scale is zero. Empty digits render as empty text.
func RenderRaw(digits string, negative bool, fractionDigits int, separator string, allowNegative bool) string {
	if digits == "" {
		return ""
	}

	padded := digits
	for len(padded) < fractionDigits+1 {
		padded = "0" + padded
	}

	integer := TrimLeadingZeros(padded[:len(padded)-fractionDigits])
	var b strings.Builder
	if negative && allowNegative {
		b.WriteString("-")
	}
	b.WriteString(integer)
	if fractionDigits > 0 {
		b.WriteString(separator)
		b.WriteString(padded[len(padded)-fractionDigits:])
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
