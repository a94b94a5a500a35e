package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/i18n"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"crore with two decimals", 12500000, "₹1.25 Cr"},
		{"lakh with two decimals", 250000, "₹2.50 L"},
		{"thousands with one decimal", 4200, "4.2K"},
		{"small values verbatim", 500, "500"},
		{"crore boundary", 10000000, "₹1.00 Cr"},
		{"lakh boundary", 100000, "₹1.00 L"},
		{"thousand boundary", 1000, "1.0K"},
		{"zero", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Amount(tt.input))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "12.5%", Percent(12.5))
	assert.Equal(t, "12.5%", Percent(-12.5), "direction is conveyed separately")
	assert.Equal(t, "0.0%", Percent(0))
}

func TestChangeKey(t *testing.T) {
	assert.Equal(t, i18n.KeyIncreased, ChangeKey(3.2))
	assert.Equal(t, i18n.KeyDecreased, ChangeKey(-0.1))
	assert.Equal(t, i18n.KeyStable, ChangeKey(0))
}
