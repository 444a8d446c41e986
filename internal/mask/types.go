package mask

import (
	"fmt"
	"strings"
)

// Mode selects which of the two renderings is shown
type Mode int

const (
	// ModeCurrency renders grouped digits behind the locale currency symbol
	ModeCurrency Mode = iota
	// ModeRaw renders bare digits against the locale decimal separator
	ModeRaw
)

func (m Mode) String() string {
	switch m {
	case ModeCurrency:
		return "currency"
	case ModeRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name ("currency" or "raw")
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "currency":
		return ModeCurrency, nil
	case "raw":
		return ModeRaw, nil
	default:
		return ModeCurrency, fmt.Errorf("unknown mode: %s", s)
	}
}

// FormatOptions configures how values are formatted for display.
// Fraction digits resolve in a fixed order: the legacy single setting,
// then the explicit min/max overrides, then the hard default of 2.
type FormatOptions struct {
	Currency             string // ISO 4217 currency code
	Locale               string // BCP-47 locale tag, empty means en-US
	LegacyFractionDigits *int   // legacy single fraction-digit setting
	MinFractionDigits    *int   // minimum fraction digits for display
	MaxFractionDigits    *int   // maximum fraction digits (also the parsing scale)
}

// ValidateOptions configures structural validation of entered values.
type ValidateOptions struct {
	Minimum          *float64 // inclusive lower bound, nil means unbounded
	Maximum          *float64 // inclusive upper bound, nil means unbounded
	AllowNegative    bool     // whether a sign toggle is honored
	MaxIntegerDigits *int     // cap on digits before the decimal point

	// Validator is an optional caller-supplied check. A non-empty return
	// replaces any structural message, even when none was produced.
	Validator func(value *float64) string
}

// State is the full output tuple of the engine. It is replaced wholesale
// on every accepted change; no field is ever mutated in place.
type State struct {
	Value    *float64 // clamped numeric value, nil when no value entered
	Digits   string   // unsigned digit string scaled by 10^maxFractionDigits
	Negative bool     // sign, meaningful only when negatives are allowed
	Text     string   // display text for the active mode
	Err      string   // effective validation message, empty when valid
}

// Empty reports whether no value has been entered.
func (s State) Empty() bool {
	return s.Digits == ""
}
