package scoring

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// FeedEntry is one human-readable line in the group activity feed.
type FeedEntry struct {
	Date    time.Time `json:"date"`
	Type    string    `json:"type"`
	Message string    `json:"message"`
}

// FeedWindow is how far back the activity feed reaches.
const FeedWindow = 7 * 24 * time.Hour

// BuildFeed renders the trailing week of workouts and normalized activities
// as a reverse-chronological feed. displayName resolves an author id to a
// first name; a nil lookup or an unknown id renders an empty name rather
// than failing the whole feed.
func BuildFeed(now time.Time, workouts []CompletedWorkout, activities []Activity, displayName func(id string) string) []FeedEntry {
	if displayName == nil {
		displayName = func(string) string { return "" }
	}

	cutoff := now.Add(-FeedWindow)
	inWindow := func(t time.Time) bool {
		return !t.IsZero() && !t.Before(cutoff) && !t.After(now)
	}

	entries := make([]FeedEntry, 0, len(workouts)+len(activities))

	for _, w := range workouts {
		if !inWindow(w.CreatedAt) {
			continue
		}
		verb := "completed"
		if w.Status == StatusSkipped {
			verb = "skipped"
		}
		entries = append(entries, FeedEntry{
			Date:    w.CreatedAt,
			Type:    "workout",
			Message: sentence(displayName(w.AuthorID), verb, w.WorkoutTitle, "workout"),
		})
	}

	for _, a := range Normalize(activities) {
		if !inWindow(a.CreatedAt) {
			continue
		}
		body := activityMessage(a)
		if body == "" {
			continue
		}
		entries = append(entries, FeedEntry{
			Date:    a.CreatedAt,
			Type:    string(a.Type),
			Message: sentence(displayName(a.AuthorID), body),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	return entries
}

// activityMessage renders the body of a feed line for a recognized activity
// type, or "" for types the feed does not show.
func activityMessage(a Activity) string {
	switch a.Type {
	case TypeMeal:
		return fmt.Sprintf("logged %d meals", int(a.Value))
	case TypeCardio:
		return fmt.Sprintf("did %d minutes of cardio", int(a.Value))
	case TypeStretch:
		return fmt.Sprintf("stretched for %d minutes", int(a.Value))
	case TypeColdPlunge:
		return fmt.Sprintf("cold plunged for %d minutes", int(a.Value))
	case TypeWeight:
		return fmt.Sprintf("weighed in at %g lbs", a.Value)
	}
	return ""
}

// sentence joins the non-empty words with spaces and appends a period, so a
// missing name or title degrades to a shorter message instead of leaving
// stray whitespace.
func sentence(words ...string) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			parts = append(parts, w)
		}
	}
	return strings.Join(parts, " ") + "."
}
