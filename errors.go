package moneymoney

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when MoneyMoney produced no payload for an
// operation that requires one. It signals "no matching data", as opposed to
// a payload that failed to parse.
var ErrEmptyResponse = errors.New("moneymoney: empty response")

// ScriptError reports that the underlying OSA script call could not be
// executed or was rejected, typically because MoneyMoney is not running or
// automation permissions are missing. It is never retried by this package.
type ScriptError struct {
	Method string
	Err    error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("moneymoney: %s: script execution failed: %v", e.Method, e.Err)
}

func (e *ScriptError) Unwrap() error { return e.Err }

// DecodeError reports that a payload was present but did not match the
// expected structure.
type DecodeError struct {
	Method string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Method == "" {
		return fmt.Sprintf("moneymoney: decode response: %v", e.Err)
	}
	return fmt.Sprintf("moneymoney: %s: decode response: %v", e.Method, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// InvalidCurrencyError reports a currency code that is not a recognized
// ISO 4217 alphabetic code. Code carries the offending value verbatim.
type InvalidCurrencyError struct {
	Code string
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("moneymoney: invalid currency code %q", e.Code)
}
