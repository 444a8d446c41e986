package session

import (
	"strings"
	"testing"

	"currency-mask/internal/mask"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func usdOptions() mask.FormatOptions {
	return mask.FormatOptions{Currency: "USD", Locale: "en-US"}
}

func mustSession(t *testing.T, initial *float64, fopts mask.FormatOptions, vopts mask.ValidateOptions, mode mask.Mode) *Session {
	t.Helper()
	s, err := New(initial, fopts, vopts, mode)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func checkValue(t *testing.T, state mask.State, want float64) {
	t.Helper()
	if state.Value == nil {
		t.Fatalf("state.Value = nil, want %v (state %+v)", want, state)
	}
	if *state.Value != want {
		t.Errorf("state.Value = %v, want %v", *state.Value, want)
	}
}

// TestSetText_WholeDollars tests plain integer typing in Currency mode
func TestSetText_WholeDollars(t *testing.T) {
	s := mustSession(t, nil, usdOptions(), mask.ValidateOptions{}, mask.ModeCurrency)

	state := s.SetText("1234")
	checkValue(t, state, 1234)
	if state.Text != "$1,234" {
		t.Errorf("Text = %q, want %q", state.Text, "$1,234")
	}
	if state.Digits != "123400" {
		t.Errorf("Digits = %q, want %q", state.Digits, "123400")
	}
	if state.Err != "" {
		t.Errorf("Err = %q, want empty", state.Err)
	}
}

func TestSetText_SingleDigit(t *testing.T) {
	s := mustSession(t, nil, usdOptions(), mask.ValidateOptions{}, mask.ModeCurrency)

	state := s.SetText("1")
	checkValue(t, state, 1)
	if state.Text != "$1" {
		t.Errorf("Text = %q, want %q", state.Text, "$1")
	}
	if state.Digits != "100" {
		t.Errorf("Digits = %q, want %q", state.Digits, "100")
	}
}

// TestSetText_SignToggle tests that an even sign count yields a positive
// value and an odd count a negative one
func TestSetText_SignToggle(t *testing.T) {
	vopts := mask.ValidateOptions{AllowNegative: true}
	s := mustSession(t, nil, usdOptions(), vopts, mask.ModeCurrency)

	state := s.SetText("-123-")
	checkValue(t, state, 123)
	if state.Negative {
		t.Error("Negative = true after double toggle")
	}
	if state.Text != "$123" {
		t.Errorf("Text = %q, want %q", state.Text, "$123")
	}

	state = s.SetText("-123")
	checkValue(t, state, -123)
	if !state.Negative {
		t.Error("Negative = false, want true")
	}
	if state.Text != "-$123" {
		t.Errorf("Text = %q, want %q", state.Text, "-$123")
	}
}

func TestSetText_SignOnly(t *testing.T) {
	s := mustSession(t, nil, usdOptions(), mask.ValidateOptions{AllowNegative: true}, mask.ModeCurrency)
	state := s.SetText("-")
	if state.Value != nil || state.Text != "-" || !state.Negative {
		t.Errorf("sign-only state = %+v", state)
	}

	s = mustSession(t, nil, usdOptions(), mask.ValidateOptions{}, mask.ModeCurrency)
	state = s.SetText("-")
	if state.Text != "" {
		t.Errorf("Text = %q, want empty when negatives disallowed", state.Text)
	}
	if state.Err != "Negative values are not allowed" {
		t.Errorf("Err = %q", state.Err)
	}
}

// TestSetText_CapRejects tests that typing past the integer-digit cap
// keeps the previous tuple and only refreshes the error
func TestSetText_CapRejects(t *testing.T) {
	vopts := mask.ValidateOptions{MaxIntegerDigits: intPtr(2)}
	s := mustSession(t, nil, usdOptions(), vopts, mask.ModeCurrency)

	state := s.SetText("12")
	checkValue(t, state, 12)
	if state.Err != "" {
		t.Fatalf("Err = %q before cap", state.Err)
	}

	state = s.SetText("123")
	checkValue(t, state, 12)
	if state.Text != "$12" || state.Digits != "1200" {
		t.Errorf("kept tuple = %+v, want previous text/digits", state)
	}
	if state.Err != "Maximum digits is 2" {
		t.Errorf("Err = %q, want %q", state.Err, "Maximum digits is 2")
	}
}

func TestSetText_CapRejectsFromEmpty(t *testing.T) {
	vopts := mask.ValidateOptions{MaxIntegerDigits: intPtr(2)}
	s := mustSession(t, nil, usdOptions(), vopts, mask.ModeCurrency)

	state := s.SetText("1234")
	if state.Value != nil || state.Text != "" || state.Digits != "" {
		t.Errorf("state = %+v, want empty tuple", state)
	}
	if state.Err != "Maximum digits is 2" {
		t.Errorf("Err = %q", state.Err)
	}
}

func TestSetText_RawMode(t *testing.T) {
	s := mustSession(t, nil, usdOptions(), mask.ValidateOptions{}, mask.ModeRaw)

	state := s.SetText("99")
	checkValue(t, state, 99)
	if state.Text != "99" {
		t.Errorf("Text = %q, want %q", state.Text, "99")
	}
	if state.Digits != "9900" {
		t.Errorf("Digits = %q, want %q", state.Digits, "9900")
	}
}

// TestSetText_LoneSeparator tests that a bare decimal separator shows a
// pending zero and decodes to zero
func TestSetText_LoneSeparator(t *testing.T) {
	s := mustSession(t, nil, usdOptions(), mask.ValidateOptions{}, mask.ModeCurrency)

	state := s.SetText(".")
	checkValue(t, state, 0)
	if state.Text != "$0." {
		t.Errorf("Text = %q, want %q", state.Text, "$0.")
	}
	if state.Digits != "0" {
		t.Errorf("Digits = %q, want %q", state.Digits, "0")
	}
}

func TestSetText_FractionTyping(t *testing.T) {
	s := mustSession(t, nil, usdOptions(), mask.ValidateOptions{}, mask.ModeCurrency)

	state := s.SetText("12.5")
	checkValue(t, state, 12.5)
	if state.Text != "$12.5" {
		t.Errorf("Text = %q, want %q", state.Text, "$12.5")
	}
	if state.Digits != "1250" {
		t.Errorf("Digits = %q, want %q", state.Digits, "1250")
	}

	// Excess fraction digits are truncated at the scale.
	state = s.SetText("12.567")
	checkValue(t, state, 12.56)
	if state.Text != "$12.56" {
		t.Errorf("Text = %q, want %q", state.Text, "$12.56")
	}
}

func TestSetText_EmptyClears(t *testing.T) {
	s := mustSession(t, nil, usdOptions(), mask.ValidateOptions{Minimum: floatPtr(100)}, mask.ModeCurrency)

	state := s.SetText("5")
	if state.Err == "" {
		t.Fatal("expected bound error before clearing")
	}

	state = s.SetText("")
	if !state.Empty() {
		t.Errorf("state = %+v, want empty", state)
	}
	if state.Err != "" {
		t.Errorf("Err = %q, want cleared", state.Err)
	}
}

// TestSetText_BoundError tests that live typing below the minimum clamps
// the value but still reports the violation
func TestSetText_BoundError(t *testing.T) {
	vopts := mask.ValidateOptions{Minimum: floatPtr(100), Maximum: floatPtr(1000)}
	s := mustSession(t, nil, usdOptions(), vopts, mask.ModeCurrency)

	state := s.SetText("5")
	checkValue(t, state, 100)
	if state.Err != "Value must be >= 100" {
		t.Errorf("Err = %q", state.Err)
	}

	state = s.SetText("5000")
	checkValue(t, state, 1000)
	if state.Err != "Value must be <= 1000" {
		t.Errorf("Err = %q", state.Err)
	}
}

func TestNew_InitialValue(t *testing.T) {
	s := mustSession(t, floatPtr(1234.5), usdOptions(), mask.ValidateOptions{}, mask.ModeCurrency)

	state := s.State()
	checkValue(t, state, 1234.5)
	if state.Text != "$1,234.50" {
		t.Errorf("Text = %q, want %q", state.Text, "$1,234.50")
	}
	if state.Digits != "123450" {
		t.Errorf("Digits = %q, want %q", state.Digits, "123450")
	}
}

func TestNew_BadConfiguration(t *testing.T) {
	if _, err := New(nil, mask.FormatOptions{Currency: "??"}, mask.ValidateOptions{}, mask.ModeCurrency); err == nil {
		t.Fatal("expected error for bad currency")
	}
}

// TestSetValue_Truncates tests that the programmatic-set path truncates
// at the cap instead of rejecting
func TestSetValue_Truncates(t *testing.T) {
	vopts := mask.ValidateOptions{MaxIntegerDigits: intPtr(2)}
	s := mustSession(t, nil, usdOptions(), vopts, mask.ModeCurrency)

	state := s.SetValue(floatPtr(1234))
	checkValue(t, state, 34)
	if state.Digits != "3400" {
		t.Errorf("Digits = %q, want %q", state.Digits, "3400")
	}
	if state.Err != "Maximum digits is 2" {
		t.Errorf("Err = %q", state.Err)
	}
}

func TestSetValue_NilClears(t *testing.T) {
	s := mustSession(t, floatPtr(42), usdOptions(), mask.ValidateOptions{}, mask.ModeCurrency)

	state := s.SetValue(nil)
	if !state.Empty() {
		t.Errorf("state = %+v, want empty", state)
	}
}

// TestSetValue_EchoIsNoOp tests that setting a value equal to the
// current one at the active scale leaves the state untouched
func TestSetValue_EchoIsNoOp(t *testing.T) {
	s := mustSession(t, nil, usdOptions(), mask.ValidateOptions{}, mask.ModeCurrency)

	typed := s.SetText("12.5")
	echoed := s.SetValue(typed.Value)
	if echoed != typed {
		t.Errorf("echo changed state: %+v -> %+v", typed, echoed)
	}
	if echoed.Text != "$12.5" {
		t.Errorf("Text = %q, want typing text preserved", echoed.Text)
	}

	// Setting the same value twice yields the same state as once.
	first := s.SetValue(floatPtr(7))
	second := s.SetValue(floatPtr(7))
	if first != second {
		t.Errorf("double set changed state: %+v -> %+v", first, second)
	}
}

func TestSetValue_RawMode(t *testing.T) {
	s := mustSession(t, nil, usdOptions(), mask.ValidateOptions{}, mask.ModeRaw)

	state := s.SetValue(floatPtr(1234.5))
	if state.Text != "1234.50" {
		t.Errorf("Text = %q, want %q", state.Text, "1234.50")
	}
}

// TestReconfigure tests that swapping options recomputes the state from
// the current value
func TestReconfigure(t *testing.T) {
	s := mustSession(t, floatPtr(1234.5), usdOptions(), mask.ValidateOptions{}, mask.ModeCurrency)

	state, err := s.Reconfigure(
		mask.FormatOptions{Currency: "EUR", Locale: "de-DE"},
		mask.ValidateOptions{}, mask.ModeCurrency)
	if err != nil {
		t.Fatalf("Reconfigure failed: %v", err)
	}
	checkValue(t, state, 1234.5)
	if !strings.Contains(state.Text, "1.234,50") {
		t.Errorf("Text = %q, want de-DE grouping", state.Text)
	}

	state, err = s.Reconfigure(usdOptions(), mask.ValidateOptions{}, mask.ModeRaw)
	if err != nil {
		t.Fatalf("Reconfigure failed: %v", err)
	}
	if state.Text != "1234.50" {
		t.Errorf("Text = %q, want raw rendering", state.Text)
	}
	if s.Mode() != mask.ModeRaw {
		t.Errorf("Mode() = %v, want ModeRaw", s.Mode())
	}
}

func TestReconfigure_BadOptionsKeepsState(t *testing.T) {
	s := mustSession(t, floatPtr(42), usdOptions(), mask.ValidateOptions{}, mask.ModeCurrency)
	before := s.State()

	if _, err := s.Reconfigure(mask.FormatOptions{Currency: "??"}, mask.ValidateOptions{}, mask.ModeCurrency); err == nil {
		t.Fatal("expected error for bad currency")
	}
	if s.State() != before {
		t.Errorf("state changed on failed reconfigure: %+v", s.State())
	}
}

// TestSetText_ZeroFractionScale tests typing with fraction digits
// disabled: the separator is inert and digits stay unscaled
func TestSetText_ZeroFractionScale(t *testing.T) {
	fopts := usdOptions()
	fopts.LegacyFractionDigits = intPtr(0)
	s := mustSession(t, nil, fopts, mask.ValidateOptions{}, mask.ModeCurrency)

	state := s.SetText("12.34")
	checkValue(t, state, 1234)
	if state.Digits != "1234" {
		t.Errorf("Digits = %q, want %q", state.Digits, "1234")
	}
	if state.Text != "$1,234" {
		t.Errorf("Text = %q, want %q", state.Text, "$1,234")
	}
}
