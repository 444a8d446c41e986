// Package localefmt adapts the platform number-formatting facility
// (golang.org/x/text) for the masking engine: currency and locale
// resolution, grouped currency formatting, and separator discovery.
package localefmt

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const defaultLocale = "en-US"

// Formatter resolves a currency/locale pair once and answers all
// formatting questions for it. Separators and the symbol are probed from
// the locale printer at construction, so per-keystroke rendering never
// walks the CLDR tables again.
type Formatter struct {
	unit    currency.Unit
	tag     language.Tag
	printer *message.Printer

	decSep   string
	groupSep string
	symbol   string
	leading  bool
}

// New resolves a currency code and locale tag. An unrecognized currency
// or malformed locale is a fatal configuration error; there is no
// fallback formatting.
func New(currencyCode, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, &ConfigError{Field: "currency", Value: currencyCode, Reason: ErrUnsupportedCurrency}
	}

	if locale == "" {
		locale = defaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, &ConfigError{Field: "locale", Value: locale, Reason: ErrInvalidLocale}
	}

	f := &Formatter{
		unit:    unit,
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
	f.probe()
	return f, nil
}

// probe derives the decimal separator, group separator, and currency
// symbol placement from sample renderings.
func (f *Formatter) probe() {
	f.decSep = "."
	if sep := stripDigits(f.printer.Sprint(number.Decimal(1.1, number.MinFractionDigits(1), number.MaxFractionDigits(1)))); sep != "" {
		f.decSep = sep
	}

	if seps := stripDigits(f.printer.Sprint(number.Decimal(1234567))); seps != "" {
		r, _ := utf8.DecodeRuneInString(seps)
		f.groupSep = string(r)
	}

	sample := f.printer.Sprint(currency.Symbol(f.unit.Amount(0.0)))
	first, last := -1, -1
	for i, r := range sample {
		if unicode.IsDigit(r) {
			if first < 0 {
				first = i
			}
			last = i + utf8.RuneLen(r)
		}
	}

	f.leading = true
	f.symbol = f.unit.String()
	if first >= 0 {
		if prefix := strings.TrimSpace(sample[:first]); prefix != "" {
			f.symbol = prefix
		} else if suffix := strings.TrimSpace(sample[last:]); suffix != "" {
			f.symbol = suffix
			f.leading = false
		}
	}
}

// FormatCurrency renders a full value: sign, symbol in its locale
// position, locale-grouped digits, and the requested fraction range.
func (f *Formatter) FormatCurrency(value float64, minFrac, maxFrac int) string {
	num := f.printer.Sprint(number.Decimal(math.Abs(value),
		number.MinFractionDigits(minFrac),
		number.MaxFractionDigits(maxFrac)))

	var b strings.Builder
	if value < 0 {
		b.WriteString("-")
	}
	if f.leading {
		b.WriteString(f.symbol)
		b.WriteString(num)
	} else {
		b.WriteString(num)
		b.WriteString(" ")
		b.WriteString(f.symbol)
	}
	return b.String()
}

// GroupInteger applies the locale group separator to an unsigned integer
// digit string in groups of three.
func (f *Formatter) GroupInteger(digits string) string {
	if f.groupSep == "" || len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(f.groupSep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// DecimalSeparator returns the locale decimal separator ("." fallback).
func (f *Formatter) DecimalSeparator() string {
	return f.decSep
}

// Symbol returns the currency symbol and whether it precedes the number.
func (f *Formatter) Symbol() (string, bool) {
	return f.symbol, f.leading
}

// Currency returns the resolved ISO 4217 code.
func (f *Formatter) Currency() string {
	return f.unit.String()
}

// Locale returns the canonical resolved locale tag.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

func stripDigits(s string) string {
	return strings.TrimFunc(s, unicode.IsDigit)
}
