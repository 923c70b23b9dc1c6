package view

import (
	"math"
	"strconv"
	"strings"

	"SecureBank/internal/domain/models"
)

// NotAvailable is shown for any metric the backend did not supply.
const NotAvailable = "N/A"

// FormatProbability renders a 0..1 probability as a percentage with two decimals.
func FormatProbability(n models.Number) string {
	if !n.Valid {
		return NotAvailable
	}
	return strconv.FormatFloat(n.Value*100, 'f', 2, 64) + "%"
}

// FormatRatio renders a 0..1 ratio as a percentage with one decimal.
func FormatRatio(n models.Number) string {
	if !n.Valid {
		return NotAvailable
	}
	return strconv.FormatFloat(n.Value*100, 'f', 1, 64) + "%"
}

// FormatDecimal3 renders n with three decimals.
func FormatDecimal3(n models.Number) string {
	if !n.Valid {
		return NotAvailable
	}
	return strconv.FormatFloat(n.Value, 'f', 3, 64)
}

// FormatInt renders n truncated to an integer.
func FormatInt(n models.Number) string {
	if !n.Valid {
		return NotAvailable
	}
	return strconv.FormatInt(int64(math.Trunc(n.Value)), 10)
}

// FormatText renders an optional string.
func FormatText(s models.OptionalString) string {
	if !s.Valid || strings.TrimSpace(s.Value) == "" {
		return NotAvailable
	}
	return s.Value
}

// FormatThousands groups the digits of n with commas: 45211 -> "45,211".
func FormatThousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
