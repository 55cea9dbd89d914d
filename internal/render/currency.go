// Package render formats final response strings: currency values and the
// per-language template tables shared by the pipeline components.
package render

import (
	"strconv"
	"strings"
)

// Currency formats a rupee value with two decimal places and thousands
// separators, e.g. 1200.5 -> "₹1,200.50".
func Currency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₹")

	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}

	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// Percent formats a percentage with one decimal place, e.g. 60 -> "60.0%".
func Percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// Amount formats a plain numeric amount, trimming a trailing ".00" so that
// whole rupee values read naturally inside sentences.
func Amount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimSuffix(s, ".00")
	return s
}
