package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"ThreeFullNights", day(1), day(4), 3},
		{"SingleNight", day(1), day(2), 1},
		{"PartialDayRoundsUp", day(1).Add(12 * time.Hour), day(4), 3},
		{"UnderOneDayRoundsUp", day(1), day(1).Add(time.Hour), 1},
		{"SameInstant", day(1), day(1), 0},
		{"Reversed", day(4), day(1), -3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Nights(tc.checkIn, tc.checkOut))
		})
	}
}
