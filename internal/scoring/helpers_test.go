package scoring

import "time"

// laDate builds a timestamp at the given hour of a Los Angeles calendar day.
func laDate(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, dayLocation)
}
