package scoring

import "time"

// All day bucketing happens in the club's home timezone. Normalizer, point
// calculator, streak calculator and feed builder must agree on where a day
// starts, otherwise late-evening activities drift across dates.
const dayFormat = "2006-01-02"

var dayLocation *time.Location

func init() {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		// Systems without tzdata fall back to a fixed offset.
		loc = time.FixedZone("PST", -8*60*60)
	}
	dayLocation = loc
}

// Location returns the club timezone all day bucketing uses.
func Location() *time.Location {
	return dayLocation
}

// DayString returns the calendar date of t as YYYY-MM-DD in the club
// timezone. Zero timestamps return "" and bucket nowhere.
func DayString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(dayLocation).Format(dayFormat)
}
