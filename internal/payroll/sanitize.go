package payroll

import (
	"math"
	"strconv"
	"strings"
)

// SanitizeNumeric keeps the digits of text and its first decimal point.
func SanitizeNumeric(text string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range strings.TrimSpace(text) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteByte('.')
		}
	}
	return b.String()
}

// ParseAmount turns free text into a non-negative finite number. Empty or
// unparseable input yields 0.
func ParseAmount(text string) float64 {
	clean := SanitizeNumeric(text)
	if clean == "" || clean == "." {
		return 0
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// FormatAmount renders a number for an input field without trailing zeros.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
