package scoring

// Normalize merges raw activity records that share an author, a type and a
// calendar day into a single record whose value is the sum of the group.
// The merged record keeps the identity and timestamp of the first record
// seen for the group.
//
// Weight entries are never merged: each one is a point-in-time measurement,
// not an amount that accumulates over a day.
//
// Records with a zero timestamp cannot be assigned to a day and are dropped.
func Normalize(activities []Activity) []Activity {
	merged := make([]Activity, 0, len(activities))
	index := make(map[string]int)

	for _, a := range activities {
		day := DayString(a.CreatedAt)
		if day == "" {
			continue
		}
		if a.Type == TypeWeight {
			merged = append(merged, a)
			continue
		}
		key := a.AuthorID + "|" + string(a.Type) + "|" + day
		if i, ok := index[key]; ok {
			merged[i].Value += a.Value
			continue
		}
		index[key] = len(merged)
		merged = append(merged, a)
	}

	return merged
}
