package moneymoney

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

// UUID identifies accounts, categories and securities. MoneyMoney transmits
// identifiers as strings, so the wrapper carries the plist string form for
// github.com/google/uuid values.
type UUID struct {
	uuid.UUID
}

// ParseUUID parses the canonical string form.
func ParseUUID(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, err
	}
	return UUID{id}, nil
}

// MustParseUUID is ParseUUID for statically known identifiers; it panics on
// malformed input.
func MustParseUUID(s string) UUID {
	return UUID{uuid.MustParse(s)}
}

func (u UUID) MarshalPlist() (interface{}, error) {
	return u.String(), nil
}

func (u *UUID) UnmarshalPlist(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return err
	}
	u.UUID = id
	return nil
}

// Date is a calendar date. MoneyMoney expects call arguments as plain
// YYYY-MM-DD strings without a time or zone component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates t to its calendar day in t's location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Currency is a validated ISO 4217 currency unit.
type Currency struct {
	currency.Unit
}

// ParseCurrency validates code against the ISO 4217 table. Unrecognized
// codes fail with *InvalidCurrencyError carrying the raw input.
func ParseCurrency(code string) (Currency, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Currency{}, &InvalidCurrencyError{Code: code}
	}
	return Currency{unit}, nil
}

func (c Currency) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Currency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCurrency(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Currency) MarshalPlist() (interface{}, error) {
	return c.String(), nil
}

func (c *Currency) UnmarshalPlist(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseCurrency(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// toFloat widens the numeric types the plist decoder may produce for an
// untyped value. XML plists carry <real> as float64 but <integer> values
// arrive as uint64 or int64.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
