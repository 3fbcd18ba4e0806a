package domain

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Decimal is a wrapper around apd.Decimal used for every money, price and
// quantity field exchanged with the portfolio API.
type Decimal struct {
	apd.Decimal
}

// DefaultContext is used for arithmetic operations.
var DefaultContext = apd.BaseContext.WithPrecision(20)

// Zero constant for convenience
var Zero = NewDecimalFromInt(0)

// NewDecimalFromInt creates a Decimal from an int64
func NewDecimalFromInt(v int64) Decimal {
	d := Decimal{}
	d.SetInt64(v)
	return d
}

// NewDecimalFromString creates a Decimal from a string
func NewDecimalFromString(v string) (Decimal, error) {
	d := Decimal{}
	_, _, err := d.SetString(v)
	if err != nil {
		return d, fmt.Errorf("invalid decimal string %s: %w", v, err)
	}
	return d, nil
}

// MustDecimal parses v and panics on malformed input. Intended for literals.
func MustDecimal(v string) Decimal {
	d, err := NewDecimalFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

// String implements the fmt.Stringer interface.
func (d Decimal) String() string {
	return d.Decimal.String()
}

func (d Decimal) IsZero() bool {
	return d.Decimal.IsZero()
}

// IsPositive reports whether d is strictly greater than zero.
func (d Decimal) IsPositive() bool {
	return d.Sign() > 0
}

func (d Decimal) IsNegative() bool {
	return d.Sign() < 0
}

func (d Decimal) Equal(other Decimal) bool {
	return d.Decimal.Cmp(&other.Decimal) == 0
}

func (d Decimal) Cmp(other Decimal) int {
	return d.Decimal.Cmp(&other.Decimal)
}

func (d Decimal) Add(other Decimal) (Decimal, error) {
	res := Decimal{}
	if _, err := DefaultContext.Add(&res.Decimal, &d.Decimal, &other.Decimal); err != nil {
		return res, fmt.Errorf("add operation failed: %w", err)
	}
	return res, nil
}

// MarshalJSON implements the json.Marshaler interface.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON accepts bare numbers and quoted strings. A JSON null leaves
// d at zero; use *Decimal fields where absence must be observable.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		d.SetInt64(0)
		return nil
	}
	s := string(data)
	if len(s) > 1 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if _, _, err := d.SetString(s); err != nil {
		return fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	return nil
}

// Round rounds the decimal half-up to the specified number of places.
func (d Decimal) Round(places int32) (Decimal, error) {
	res := Decimal{}
	ctx := apd.BaseContext.WithPrecision(20)
	ctx.Rounding = apd.RoundHalfUp

	if _, err := ctx.Quantize(&res.Decimal, &d.Decimal, -places); err != nil {
		return res, fmt.Errorf("quantize operation failed: %w", err)
	}
	return res, nil
}

// MinorUnits rounds d half-up to places and returns it as an integer count
// of the smallest unit, so 12.345 at 2 places is 1235.
func (d Decimal) MinorUnits(places int32) (int64, error) {
	rounded, err := d.Round(places)
	if err != nil {
		return 0, err
	}
	rounded.Exponent += places
	v, err := rounded.Int64()
	if err != nil {
		return 0, fmt.Errorf("minor units of %s: %w", d, err)
	}
	return v, nil
}

// DecimalPtr returns a pointer to a copy of d, for optional request fields.
func DecimalPtr(d Decimal) *Decimal {
	return &d
}
