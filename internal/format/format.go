// Package format renders listing values for display: prices with thousands
// separators, sizes with their unit, and long-form dates.
package format

import (
	"strconv"
	"strings"
	"time"
)

const notAvailable = "N/A"

// Price renders a listing price as "<currency> <grouped amount>", with no
// fractional digits. Zero reads as N/A.
func Price(price float64, currency string) string {
	if price == 0 {
		return notAvailable
	}
	if currency == "" {
		currency = "RWF"
	}
	return currency + " " + group(strconv.FormatFloat(price, 'f', 0, 64))
}

// Size renders a plot or house size with its unit. Zero reads as N/A.
func Size(size float64, unit string) string {
	if size == 0 {
		return notAvailable
	}
	if unit == "" {
		unit = "sqm"
	}
	return group(strconv.FormatFloat(size, 'f', -1, 64)) + " " + unit
}

// Date renders a timestamp as "January 2, 2006". The zero time reads as N/A.
func Date(t time.Time) string {
	if t.IsZero() {
		return notAvailable
	}
	return t.Format("January 2, 2006")
}

// group inserts thousands separators into the integer part of a formatted
// number.
func group(s string) string {
	intPart := s
	var fracPart string
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
