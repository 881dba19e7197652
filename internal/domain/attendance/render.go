package attendance

import "sort"

// Render returns the records dated filterDate (all records when nil),
// most recent date first. Records sharing a date keep their input order.
func Render(records []Record, filterDate *string) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if filterDate != nil && rec.Date != *filterDate {
			continue
		}
		out = append(out, rec)
	}
	// YYYY-MM-DD compares correctly as a string.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// CountByStatus tallies records per status.
func CountByStatus(records []Record) map[Status]int {
	counts := make(map[Status]int, len(Statuses))
	for _, s := range Statuses {
		counts[s] = 0
	}
	for _, rec := range records {
		counts[rec.Status]++
	}
	return counts
}
