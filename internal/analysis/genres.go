package analysis

import "songstats/internal/store"

// DefaultMinSongs is the sample size below which a year's genre statistics
// are flagged as low-confidence.
const DefaultMinSongs = 10

// nearbyYearLimit caps how many alternative years a thin or empty year query
// suggests.
const nearbyYearLimit = 2

// GenreStatistics runs the genre-statistics-by-year query. A year with no
// songs yields a report with nil Stats and nearby alternatives; a year with
// fewer than minSongs songs yields the statistics flagged low-confidence,
// alternatives attached.
func GenreStatistics(s *store.Store, year, minSongs int) (*YearReport, error) {
	if err := ValidateYear(year); err != nil {
		return nil, err
	}

	count, err := s.SongCountForYear(year)
	if err != nil {
		return nil, err
	}
	report := &YearReport{Year: year, SongCount: count}

	if count < minSongs {
		report.Alternatives, err = s.NearbyYears(year, minSongs, nearbyYearLimit)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return report, nil
		}
		report.LowConfidence = true
	}

	report.Stats, err = s.GenreStatsForYear(year)
	if err != nil {
		return nil, err
	}
	return report, nil
}
