package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Year domain of the dataset. Query input validation and record cleaning both
// use these bounds.
const (
	MinYear = 1998
	MaxYear = 2020
)

// genrePlaceholder is the literal token the source data uses for "no genre
// information". It never becomes a Genre row.
const genrePlaceholder = "set()"

// RawRecord is one row of the input file, untyped. Column parsing is owned by
// the reader; cleaning and coercion happen in Clean.
type RawRecord struct {
	Artist       string
	Song         string
	DurationMS   string
	Year         string
	Genre        string
	Popularity   string
	Danceability string
	Speechiness  string
	Explicit     string
}

// Record is a cleaned input row. Popularity, Danceability, and Speechiness are
// NaN when the source value was missing or non-numeric; the filter predicates
// treat NaN as failing, so such records are excluded rather than defaulted.
type Record struct {
	Artist       string
	Title        string
	Duration     int // seconds
	Year         int
	Genres       []string
	Popularity   float64
	Danceability float64
	Speechiness  float64
	Explicit     bool
}

// Clean validates and normalizes one raw record. The second return value is
// false when the record must be dropped: unparsable duration, or a year that
// is missing, non-numeric, or outside [MinYear, MaxYear].
func Clean(raw RawRecord) (Record, bool) {
	duration, err := strconv.ParseFloat(strings.TrimSpace(raw.DurationMS), 64)
	if err != nil {
		return Record{}, false
	}

	year, ok := parseYear(raw.Year)
	if !ok {
		return Record{}, false
	}

	explicit, err := strconv.ParseBool(strings.TrimSpace(raw.Explicit))
	if err != nil {
		explicit = false
	}

	return Record{
		Artist: raw.Artist,
		Title:  raw.Song,
		// Rounds half away from zero (math.Round).
		Duration:     int(math.Round(duration / 1000)),
		Year:         year,
		Genres:       parseGenres(raw.Genre),
		Popularity:   parseMetric(raw.Popularity),
		Danceability: parseMetric(raw.Danceability),
		Speechiness:  parseMetric(raw.Speechiness),
		Explicit:     explicit,
	}, true
}

// CleanAll applies Clean to every raw record, discarding the dropped ones.
func CleanAll(raws []RawRecord) []Record {
	var records []Record
	for _, raw := range raws {
		if rec, ok := Clean(raw); ok {
			records = append(records, rec)
		}
	}
	return records
}

func parseYear(s string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	year := int(f)
	if year < MinYear || year > MaxYear {
		return 0, false
	}
	return year, true
}

// parseGenres splits the comma-separated genre field, trims each token, and
// drops empty tokens, the placeholder, and intra-record duplicates. The
// first-appearance order of the remaining tokens is preserved.
func parseGenres(field string) []string {
	var genres []string
	seen := make(map[string]bool)
	for _, token := range strings.Split(field, ",") {
		token = strings.TrimSpace(token)
		if token == "" || token == genrePlaceholder {
			continue
		}
		if seen[token] {
			continue
		}
		seen[token] = true
		genres = append(genres, token)
	}
	return genres
}

func parseMetric(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
