// Package pricing computes stay totals from the configured nightly rate and
// the fixed RSD/EUR exchange rate.
package pricing

import (
	"fmt"
	"time"

	"github.com/vila-verde/booking-api/internal/models"
)

// Nights returns the number of nights between two YYYY-MM-DD dates. The
// check-out day is not slept, so back-to-back stays share an endpoint.
func Nights(checkIn, checkOut string) (int, error) {
	ci, err := time.Parse(models.DateFormat, checkIn)
	if err != nil {
		return 0, fmt.Errorf("invalid check-in date %q: %w", checkIn, err)
	}
	co, err := time.Parse(models.DateFormat, checkOut)
	if err != nil {
		return 0, fmt.Errorf("invalid check-out date %q: %w", checkOut, err)
	}
	nights := int(co.Sub(ci).Hours() / 24)
	if nights < 1 {
		return 0, fmt.Errorf("check-out %s must be after check-in %s", checkOut, checkIn)
	}
	return nights, nil
}

// TotalLocal is the stay total in RSD.
func TotalLocal(nights, nightlyRate int) int {
	return nights * nightlyRate
}

// TotalForeign converts an RSD total to EUR at the fixed rate, rendered to
// two decimal places.
func TotalForeign(totalLocal int, exchangeRate float64) string {
	return fmt.Sprintf("%.2f", float64(totalLocal)/exchangeRate)
}
