// Package energy turns recognized label text into a normalized yearly-kWh
// figure.
package energy

import (
	"regexp"
	"strconv"
	"strings"
)

// Matches patterns like "250 kwh/year" or "0.8 kw" in lowercased text.
var valueRe = regexp.MustCompile(`(\d+\.?\d*)\s*(kwh|kw)`)

// Extract scans text for the leftmost decimal number followed by a kwh or kw
// unit and returns the normalized yearly kWh figure. A bare kw reading is
// treated as continuous average draw and converted with v * 24 * 365 / 1000.
// The second return value is false when no value was detected.
func Extract(text string) (float64, bool) {
	m := valueRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 0, false
	}

	val, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	if m[2] == "kw" {
		val = val * 24 * 365 / 1000
	}
	return val, true
}
