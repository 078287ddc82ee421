package scoring

// Ledger maps a day string to the points each user earned that day.
// Cells that would be zero are simply absent; callers treat absence as zero.
type Ledger map[string]map[string]int

// MaxDailyPoints caps how many points a user can earn in one day.
const MaxDailyPoints = 3

// activityPoints returns the points a normalized day-value earns for its
// type. Thresholds: 15 minutes of cardio, 10 minutes of stretching, any
// cold plunge, 3 meals. A meal day earns at most 1 point no matter how many
// meals were logged. Weight and water are informational only.
func activityPoints(a Activity) int {
	switch a.Type {
	case TypeCardio:
		if a.Value >= 15 {
			return 1
		}
	case TypeStretch:
		if a.Value >= 10 {
			return 1
		}
	case TypeColdPlunge:
		if a.Value > 0 {
			return 1
		}
	case TypeMeal:
		if a.Value >= 3 {
			return 1
		}
	}
	return 0
}

// ComputePoints builds the daily point ledger from completed workouts and
// normalized activities. A completed workout earns 1 point on its day;
// skipped workouts earn nothing. Each activity contributes per
// activityPoints, and the running total for a (day, user) cell is clamped
// to MaxDailyPoints after every contribution.
//
// Activities are expected to be normalized already (see Normalize) so that
// per-day thresholds apply to the whole day, not to individual entries.
func ComputePoints(workouts []CompletedWorkout, activities []Activity) Ledger {
	ledger := make(Ledger)

	add := func(day, userID string, pts int) {
		if pts == 0 {
			return
		}
		if ledger[day] == nil {
			ledger[day] = make(map[string]int)
		}
		total := ledger[day][userID] + pts
		if total > MaxDailyPoints {
			total = MaxDailyPoints
		}
		ledger[day][userID] = total
	}

	for _, w := range workouts {
		if w.Status != StatusCompleted {
			continue
		}
		day := DayString(w.CreatedAt)
		if day == "" {
			continue
		}
		add(day, w.AuthorID, 1)
	}

	for _, a := range activities {
		day := DayString(a.CreatedAt)
		if day == "" {
			continue
		}
		add(day, a.AuthorID, activityPoints(a))
	}

	return ledger
}

// TotalPoints sums a user's points across every day in the ledger.
func (l Ledger) TotalPoints(userID string) int {
	total := 0
	for _, day := range l {
		total += day[userID]
	}
	return total
}
