// Package session implements the stateful input session that drives the
// masking components: it consumes text-change and set-value events and
// publishes the (value, text, rawDigits, error) tuple.
package session

import (
	"strings"
	"sync"

	"currency-mask/internal/localefmt"
	"currency-mask/internal/mask"
)

// Session owns the current engine state for one input field. Every
// accepted event replaces the state wholesale; there is no partial
// mutation and no history. Calls are serialized by the session mutex, so
// when concurrent callers race, the last call to complete wins.
type Session struct {
	mu sync.Mutex

	fopts mask.FormatOptions
	vopts mask.ValidateOptions
	mode  mask.Mode

	minFrac int
	maxFrac int
	fmtr    *localefmt.Formatter

	state mask.State
}

// New starts a session from an initial value (nil for empty). The only
// error is a fatal configuration error from the platform formatter.
func New(initial *float64, fopts mask.FormatOptions, vopts mask.ValidateOptions, mode mask.Mode) (*Session, error) {
	s := &Session{}
	if err := s.configure(fopts, vopts, mode); err != nil {
		return nil, err
	}
	s.state = s.applyValue(initial)
	return s, nil
}

// State returns the current tuple.
func (s *Session) State() mask.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Formatter exposes the resolved platform formatter (for bindings that
// render auxiliary text such as placeholders).
func (s *Session) Formatter() *localefmt.Formatter {
	return s.fmtr
}

// Mode returns the active display mode.
func (s *Session) Mode() mask.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Reconfigure swaps the formatting/validation options and recomputes the
// state once from the current value. This is the explicit replacement for
// reactive re-derivation: the owning binding calls it when options change.
func (s *Session) Reconfigure(fopts mask.FormatOptions, vopts mask.ValidateOptions, mode mask.Mode) (mask.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.state.Value
	if err := s.configure(fopts, vopts, mode); err != nil {
		return s.state, err
	}
	s.state = s.applyValue(current)
	return s.state, nil
}

// SetValue processes a programmatic value change. The value is clamped,
// encoded, capped (by truncation from the most-significant end), decoded
// again, rendered, and validated. A value that is numerically equal to
// the current one at the active scale is a no-op, so controlled bindings
// echoing the session's own emission do not trigger a re-render.
func (s *Session) SetValue(value *float64) mask.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sameAsCurrent(value) {
		return s.state
	}
	s.state = s.applyValue(value)
	return s.state
}

// SetText processes a text-change event from a keystroke.
func (s *Session) SetText(text string) mask.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Empty input always clears, including any prior error.
	if text == "" {
		s.state = mask.State{}
		return s.state
	}

	parts := mask.Sanitize(text, s.fmtr.DecimalSeparator(), s.maxFrac > 0)

	// Nothing typed that carries value: keep only the sign intent.
	if parts.Integer == "" && parts.Fraction == "" && !parts.HasSeparator {
		s.state = s.applySignOnly(parts.Negative)
		return s.state
	}

	integer := mask.TrimLeadingZeros(parts.Integer)
	if integer == "0" {
		integer = ""
	}

	// Live typing past the integer-digit cap rejects the keystroke: the
	// previous tuple is kept and only the error field is refreshed. This
	// is deliberately different from SetValue, which truncates.
	if s.vopts.MaxIntegerDigits != nil && len(integer) > *s.vopts.MaxIntegerDigits {
		rejected := s.state
		rejected.Err = mask.ComposeValidation(rejected.Value, parts.Negative, true, s.vopts)
		s.state = rejected
		return s.state
	}

	digits := s.scaleParts(integer, parts.Fraction)
	raw := mask.Decode(digits, parts.Negative, s.maxFrac, s.vopts.AllowNegative)
	clamped := mask.Clamp(raw, s.vopts)

	var text2 string
	switch s.mode {
	case mask.ModeRaw:
		text2 = mask.ComposeRawText(parts, s.fmtr.DecimalSeparator(), s.maxFrac, s.vopts.AllowNegative)
	default:
		text2 = mask.ComposeCurrencyText(parts, s.fmtr, s.maxFrac, s.vopts.AllowNegative)
	}

	s.state = mask.State{
		Value:    clamped,
		Digits:   digits,
		Negative: parts.Negative,
		Text:     text2,
		Err:      mask.ComposeValidation(raw, parts.Negative, false, s.vopts),
	}
	return s.state
}

// configure resolves options and rebuilds the platform formatter.
func (s *Session) configure(fopts mask.FormatOptions, vopts mask.ValidateOptions, mode mask.Mode) error {
	fmtr, err := localefmt.New(fopts.Currency, fopts.Locale)
	if err != nil {
		return err
	}

	s.fopts = fopts
	s.vopts = vopts
	s.mode = mode
	s.fmtr = fmtr
	s.minFrac, s.maxFrac = mask.ResolveFractionRange(fopts)
	return nil
}

// applyValue runs the full programmatic-set pipeline and returns the new
// state without touching s.state.
func (s *Session) applyValue(value *float64) mask.State {
	clamped := mask.Clamp(value, s.vopts)
	digits, negative := mask.Encode(clamped, s.maxFrac)
	if digits == "" {
		return mask.State{}
	}

	digits, capped := mask.CapDigits(digits, s.maxFrac, s.vopts.MaxIntegerDigits)
	digits = mask.TrimLeadingZeros(digits)
	derived := mask.Decode(digits, negative, s.maxFrac, s.vopts.AllowNegative)

	var text string
	switch s.mode {
	case mask.ModeRaw:
		text = mask.RenderRaw(digits, negative, s.maxFrac, s.fmtr.DecimalSeparator(), s.vopts.AllowNegative)
	default:
		text = mask.RenderCurrency(derived, s.fmtr, s.minFrac, s.maxFrac)
	}

	return mask.State{
		Value:    derived,
		Digits:   digits,
		Negative: negative,
		Text:     text,
		Err:      mask.ComposeValidation(derived, negative, capped, s.vopts),
	}
}

// applySignOnly covers input that contains sign characters but no digit
// material yet (e.g. a lone "-").
func (s *Session) applySignOnly(negative bool) mask.State {
	text := ""
	if negative && s.vopts.AllowNegative {
		text = "-"
	}
	return mask.State{
		Negative: negative,
		Text:     text,
		Err:      mask.ComposeValidation(nil, negative, false, s.vopts),
	}
}

// scaleParts builds the scaled digit string from typed integer and
// fraction digits: fraction truncated to the scale, then right-padded.
func (s *Session) scaleParts(integer, fraction string) string {
	frac := fraction
	if len(frac) > s.maxFrac {
		frac = frac[:s.maxFrac]
	}
	padded := frac + strings.Repeat("0", s.maxFrac-len(frac))
	return mask.TrimLeadingZeros(integer + padded)
}

// sameAsCurrent reports whether a value encodes to the current
// (digits, sign) pair at the active scale.
func (s *Session) sameAsCurrent(value *float64) bool {
	digits, negative := mask.Encode(value, s.maxFrac)
	if digits == "" {
		return s.state.Empty()
	}
	return digits == s.state.Digits && negative == s.state.Negative
}
