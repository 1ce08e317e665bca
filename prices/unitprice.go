package prices

import (
	"fmt"
	"strconv"
	"strings"
)

// UnitPrice computes price divided by weight. ok is false when either field
// is absent or non-numeric, or the weight is zero; no division is attempted
// in those cases.
func UnitPrice(price, weight string) (float64, bool) {
	p, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		return 0, false
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if err != nil || w == 0 {
		return 0, false
	}
	return p / w, true
}

// FormatUnitPrice renders "$X.XX per <unit>", rounded to two decimals, or the
// "$0.00" placeholder when the unit price cannot be computed.
func FormatUnitPrice(price, weight, unit string) string {
	v, ok := UnitPrice(price, weight)
	if !ok {
		return "$0.00"
	}
	return fmt.Sprintf("$%.2f per %s", v, unit)
}
