package utils

import (
	"math"
	"time"
)

// Nights returns the number of nights between check-in and check-out:
// the ceiling of the difference in whole days. Zero or negative means the
// range is not bookable.
func Nights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	return int(math.Ceil(hours / 24))
}
