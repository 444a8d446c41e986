package api

// FieldOptions is the wire form of the formatting/validation
// configuration shared by create, reconfigure, and preview requests.
type FieldOptions struct {
	Currency          string   `json:"currency"`            // ISO 4217 code, e.g. "USD"
	Locale            string   `json:"locale"`              // BCP-47 tag, e.g. "en-US"
	FractionDigits    *int     `json:"fraction_digits"`     // legacy single fraction setting
	MinFractionDigits *int     `json:"min_fraction_digits"` // display minimum
	MaxFractionDigits *int     `json:"max_fraction_digits"` // display maximum / parsing scale
	Minimum           *float64 `json:"minimum"`             // inclusive lower bound
	Maximum           *float64 `json:"maximum"`             // inclusive upper bound
	AllowNegative     *bool    `json:"allow_negative"`      // honor sign toggles
	MaxIntegerDigits  *int     `json:"max_integer_digits"`  // integer-digit cap
	Mode              string   `json:"mode"`                // "currency" or "raw"
}

// CreateSessionRequest starts a session from an optional initial value.
type CreateSessionRequest struct {
	InitialValue *float64     `json:"initial_value"`
	Options      FieldOptions `json:"options"`
}

// TextChangeRequest carries one text-change event.
type TextChangeRequest struct {
	Text string `json:"text"`
}

// ValueSetRequest carries one programmatic value change (null clears).
type ValueSetRequest struct {
	Value *float64 `json:"value"`
}

// PreviewRequest is the stateless one-shot: exactly one of Value or Text
// must be set.
type PreviewRequest struct {
	Options FieldOptions `json:"options"`
	Value   *float64     `json:"value"`
	Text    *string      `json:"text"`
}

// StateDTO is the wire form of the engine tuple.
type StateDTO struct {
	Value     *float64 `json:"value"`           // clamped numeric value, null when empty
	Text      string   `json:"text"`            // display text
	RawDigits string   `json:"raw_digits"`      // scaled digit string
	Negative  bool     `json:"negative"`        // sign flag
	Error     string   `json:"error,omitempty"` // effective validation message
}

// SessionResponse pairs a session ID with its current state.
type SessionResponse struct {
	SessionID string   `json:"session_id"`
	State     StateDTO `json:"state"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Code    string `json:"code"`    // Error code
	Message string `json:"message"` // Error message
}
