package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected float64
		ok       bool
	}{
		{
			name:     "Yearly kWh figure",
			text:     "consumption 250 kwh/year",
			expected: 250.0,
			ok:       true,
		},
		{
			name:     "kW reading converted to yearly estimate",
			text:     "rated 0.5 kw",
			expected: 0.5 * 24 * 365 / 1000,
			ok:       true,
		},
		{
			name:     "Uppercase unit",
			text:     "Energy Consumption 300 KWH per annum",
			expected: 300.0,
			ok:       true,
		},
		{
			name:     "No whitespace before unit",
			text:     "3kw compressor",
			expected: 3 * 24 * 365 / 1000.0,
			ok:       true,
		},
		{
			name:     "Leftmost match wins",
			text:     "uses 100 kwh in eco mode, 200 kwh otherwise",
			expected: 100.0,
			ok:       true,
		},
		{
			name:     "kwh preferred over kw prefix",
			text:     "total 42 kwh",
			expected: 42.0,
			ok:       true,
		},
		{
			name: "No numeric unit pattern",
			text: "energy star certified appliance",
			ok:   false,
		},
		{
			name: "Empty text",
			text: "",
			ok:   false,
		},
		{
			name: "Number without unit",
			text: "model 9000 deluxe",
			ok:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			val, ok := Extract(tc.text)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.InDelta(t, tc.expected, val, 1e-9)
			}
		})
	}
}
