package scoring

import "time"

// Streak returns the length of the user's current run of consecutive
// qualifying days ending at now. A day qualifies when the user completed a
// workout or logged an activity meeting its point threshold (the same
// predicate ComputePoints uses, after normalization, so streaks and points
// can never disagree about what "counts").
//
// The walk starts at yesterday and moves backward until the first
// non-qualifying day; today is then checked separately and adds 1 when it
// qualifies. An empty today never breaks the chain, since the user can
// still act before the day ends.
//
// The workouts and activities passed in should belong to a single user;
// records from other users would inflate the result.
func Streak(now time.Time, workouts []CompletedWorkout, activities []Activity) int {
	qualifying := make(map[string]bool)

	for _, w := range workouts {
		if w.Status != StatusCompleted {
			continue
		}
		if day := DayString(w.CreatedAt); day != "" {
			qualifying[day] = true
		}
	}
	for _, a := range Normalize(activities) {
		if activityPoints(a) == 0 {
			continue
		}
		if day := DayString(a.CreatedAt); day != "" {
			qualifying[day] = true
		}
	}

	streak := 0
	day := now.In(dayLocation).AddDate(0, 0, -1)
	for qualifying[day.Format(dayFormat)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}

	if qualifying[DayString(now)] {
		streak++
	}

	return streak
}
