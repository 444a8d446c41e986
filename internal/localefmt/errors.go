package localefmt

import (
	"errors"
	"fmt"
)

// Configuration errors. These are fatal: the engine never falls back to a
// substitute currency or locale.
var (
	ErrUnsupportedCurrency = errors.New("unsupported currency code")
	ErrInvalidLocale       = errors.New("invalid locale tag")
)

// ConfigError reports which configuration field could not be resolved.
type ConfigError struct {
	Field  string // "currency" or "locale"
	Value  string // the rejected input
	Reason error  // the sentinel cause
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Reason
}

func (e *ConfigError) Is(target error) bool {
	return target == e.Reason
}
