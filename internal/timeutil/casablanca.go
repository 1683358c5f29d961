package timeutil

import (
	"time"
)

// Casablanca is the shop's local time zone. All timestamps on records
// and printed documents use it.
var Casablanca *time.Location

func init() {
	var err error
	Casablanca, err = time.LoadLocation("Africa/Casablanca")
	if err != nil {
		// Fallback: fixed zone if the tz database is unavailable
		Casablanca = time.FixedZone("UTC+1", 1*60*60)
	}
}

// Now returns the current time in the shop's time zone.
func Now() time.Time {
	return time.Now().In(Casablanca)
}

// ToLocal converts any time to the shop's time zone.
func ToLocal(t time.Time) time.Time {
	return t.In(Casablanca)
}

// Format formats a time in the shop's time zone using the given layout.
func Format(t time.Time, layout string) string {
	return t.In(Casablanca).Format(layout)
}
