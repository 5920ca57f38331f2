package dataset

// Inclusion thresholds for the filter stage. Popularity and danceability are
// strict inequalities; the speechiness band is inclusive on both ends.
const (
	minPopularity   = 50
	minDanceability = 0.20
	minSpeechiness  = 0.33
	maxSpeechiness  = 0.66
)

// YearRetention reports how many records a year had before and after
// filtering. Informational output only; nothing downstream reads it.
type YearRetention struct {
	Before int
	After  int
}

// Retained reports whether a record satisfies every inclusion predicate. NaN
// metrics fail the comparisons, so records with missing values are excluded.
func Retained(rec Record) bool {
	return rec.Popularity > minPopularity &&
		rec.Danceability > minDanceability &&
		rec.Speechiness >= minSpeechiness &&
		rec.Speechiness <= maxSpeechiness
}

// Filter returns the records satisfying all inclusion predicates, along with
// the per-year retention report.
func Filter(records []Record) ([]Record, map[int]YearRetention) {
	var kept []Record
	retention := make(map[int]YearRetention)
	for _, rec := range records {
		r := retention[rec.Year]
		r.Before++
		if Retained(rec) {
			r.After++
			kept = append(kept, rec)
		}
		retention[rec.Year] = r
	}
	return kept, retention
}
