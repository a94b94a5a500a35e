// Package format renders metric values the way the dashboard displays
// them: Indian magnitude suffixes for amounts, one-decimal percentages
// for deltas.
package format

import (
	"fmt"

	"github.com/thanseerjelani/mgnrega-dashboard/internal/i18n"
)

const (
	crore = 1e7
	lakh  = 1e5
)

// Amount formats a rupee value with crore/lakh/thousand suffixes.
func Amount(v float64) string {
	switch {
	case v >= crore:
		return fmt.Sprintf("₹%.2f Cr", v/crore)
	case v >= lakh:
		return fmt.Sprintf("₹%.2f L", v/lakh)
	case v >= 1000:
		return fmt.Sprintf("%.1fK", v/1000)
	default:
		return fmt.Sprintf("%d", int64(v))
	}
}

// Percent formats a comparison delta as an unsigned percentage with one
// decimal place. Direction is conveyed separately via ChangeKey.
func Percent(v float64) string {
	if v < 0 {
		v = -v
	}
	return fmt.Sprintf("%.1f%%", v)
}

// ChangeKey returns the translation key describing the direction of a
// delta value.
func ChangeKey(v float64) string {
	switch {
	case v > 0:
		return i18n.KeyIncreased
	case v < 0:
		return i18n.KeyDecreased
	default:
		return i18n.KeyStable
	}
}
