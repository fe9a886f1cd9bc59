// Package currency converts between the shop price notation and
// integer minor units.
//
// The shop catalog formats prices with a dot as the thousands
// separator and a comma as the decimal separator, e.g. "1.028,00".
// All arithmetic in the core happens on [Cents] to avoid floating
// point drift; strings appear only at this boundary.
package currency

import (
	"strings"
)

// A Cents is a monetary amount in minor units (1/100 of a dollar).
type Cents int64

const (
	symbol        = "$"
	groupSep      = '.'
	decimalSep    = ','
	centsPerWhole = 100
)

// Parse interprets a price string using the shop notation:
// "." groups thousands, "," separates the decimal part.
//
//	Parse("1.028,00") == 102800
//	Parse("27,00") == 2700
//
// An empty or blank string yields 0. A leading currency symbol and
// surrounding spaces are tolerated, so Parse inverts [Format].
// Anything else malformed (several decimal separators, stray
// letters) is undefined input: Parse degrades to 0 and never fails.
func Parse(raw string) Cents {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, symbol)
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	s = strings.ReplaceAll(s, string(groupSep), "")

	whole, frac := s, ""
	if i := strings.IndexByte(s, byte(decimalSep)); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}

	w, ok := parseDigits(whole)
	if !ok {
		return 0
	}

	f, ok := parseFrac(frac)
	if !ok {
		return 0
	}

	return Cents(w*centsPerWhole + f)
}

// Format renders an amount using the shop notation with a currency
// symbol and exactly two fractional digits:
//
//	Format(102800) == "$1.028,00"
//
// Format succeeds for any value; negative amounts keep their sign
// after the symbol.
func Format(v Cents) string {
	var b strings.Builder
	b.WriteString(symbol)

	if v < 0 {
		b.WriteByte('-')
		v = -v
	}

	b.WriteString(groupThousands(int64(v) / centsPerWhole))
	b.WriteByte(byte(decimalSep))

	frac := int64(v) % centsPerWhole
	b.WriteByte(byte('0' + frac/10))
	b.WriteByte(byte('0' + frac%10))

	return b.String()
}

func parseDigits(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	var n int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int64(c-'0')
	}
	return n, true
}

// parseFrac reads at most two fractional digits, padding a single
// digit to tens of cents. Digits beyond the cent are dropped.
func parseFrac(s string) (int64, bool) {
	if s == "" {
		return 0, true
	}
	if len(s) > 2 {
		s = s[:2]
	}
	n, ok := parseDigits(s)
	if !ok {
		return 0, false
	}
	if len(s) == 1 {
		n *= 10
	}
	return n, true
}

func groupThousands(n int64) string {
	digits := make([]byte, 0, 24)
	if n == 0 {
		return "0"
	}
	for i := 0; n > 0; i++ {
		if i > 0 && i%3 == 0 {
			digits = append(digits, byte(groupSep))
		}
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}
	return string(digits)
}
