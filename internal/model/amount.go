package model

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// leadingNumber matches the numeric prefix of a string, so "20 mi" reads as 20.
var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d+)?|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseNumber reads the leading decimal number of s, ignoring leading
// whitespace and any trailing text. ok is false when s has no numeric prefix.
func ParseNumber(s string) (decimal.Decimal, bool) {
	m := leadingNumber.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	if m == "" {
		return decimal.Zero, false
	}
	neg := false
	switch m[0] {
	case '-':
		neg = true
		m = m[1:]
	case '+':
		m = m[1:]
	}
	if m[0] == '.' {
		m = "0" + m
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}
	if neg {
		d = d.Neg()
	}
	return d, true
}

// ParseNullable is ParseNumber returning an invalid NullDecimal on failure.
func ParseNullable(s string) decimal.NullDecimal {
	d, ok := ParseNumber(s)
	return decimal.NullDecimal{Decimal: d, Valid: ok}
}

// Known wraps d as a valid NullDecimal.
func Known(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// AddNull adds two nullable amounts; the result is invalid if either is.
func AddNull(a, b decimal.NullDecimal) decimal.NullDecimal {
	if !a.Valid || !b.Valid {
		return decimal.NullDecimal{}
	}
	return Known(a.Decimal.Add(b.Decimal))
}

// SubNull subtracts b from a; the result is invalid if either is.
func SubNull(a, b decimal.NullDecimal) decimal.NullDecimal {
	if !a.Valid || !b.Valid {
		return decimal.NullDecimal{}
	}
	return Known(a.Decimal.Sub(b.Decimal))
}

// MulNull multiplies two nullable amounts; the result is invalid if either is.
func MulNull(a, b decimal.NullDecimal) decimal.NullDecimal {
	if !a.Valid || !b.Valid {
		return decimal.NullDecimal{}
	}
	return Known(a.Decimal.Mul(b.Decimal))
}

// RoundNull rounds a valid amount to places; invalid stays invalid.
func RoundNull(a decimal.NullDecimal, places int32) decimal.NullDecimal {
	if !a.Valid {
		return a
	}
	return Known(a.Decimal.Round(places))
}

// FormatFixed renders a with a fixed number of decimal places, or "NaN" when
// the amount could not be computed.
func FormatFixed(a decimal.NullDecimal, places int32) string {
	if !a.Valid {
		return "NaN"
	}
	return a.Decimal.StringFixed(places)
}
