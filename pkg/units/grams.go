// Package units formats ingredient quantities for display.
package units

import "fmt"

// GramsPerKilogram is the threshold at which quantities switch to kilograms.
const GramsPerKilogram = 1000

// FormatGrams renders g as kilograms with two decimals when it is at least
// one kilogram, and as whole grams otherwise.
func FormatGrams(g int64) string {
	if g >= GramsPerKilogram {
		return fmt.Sprintf("%.2f kg", float64(g)/GramsPerKilogram)
	}
	return fmt.Sprintf("%d g", g)
}
