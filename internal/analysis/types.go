package analysis

import "songstats/internal/store"

// GenreComparison is one row of the artist-vs-genre popularity report. The
// artist's average is compared against the cross-artist average for the same
// genre; AboveMean flags rows the presentation layer should highlight.
type GenreComparison struct {
	Genre         string  `yaml:"genre"`
	ArtistAvg     float64 `yaml:"artist_popularity"`
	SongCount     int     `yaml:"song_count"`
	OverallAvg    float64 `yaml:"overall_popularity"`
	TotalSongs    int     `yaml:"total_songs"`
	Difference    float64 `yaml:"difference"`
	AboveMean     bool    `yaml:"above_mean"`
}

// ArtistReport is the result of an artist popularity query. Genres is nil when
// the artist has no exact match; Suggestions then carries up to the configured
// number of near-miss names.
type ArtistReport struct {
	Artist      string            `yaml:"artist"`
	Found       bool              `yaml:"found"`
	Genres      []GenreComparison `yaml:"genres,omitempty"`
	Suggestions []string          `yaml:"suggestions,omitempty"`
}

// YearReport is the result of a genre-statistics-by-year query. Stats is nil
// when the year holds no songs. LowConfidence marks a result computed from
// fewer songs than the configured minimum; Alternatives lists nearby years
// with more data in both cases.
type YearReport struct {
	Year          int                  `yaml:"year"`
	SongCount     int                  `yaml:"song_count"`
	Stats         []store.GenreYearRow `yaml:"genres,omitempty"`
	LowConfidence bool                 `yaml:"low_confidence,omitempty"`
	Alternatives  []store.YearCount    `yaml:"alternatives,omitempty"`
}

// ArtistTotal summarizes one top-ranked artist across the queried year range.
type ArtistTotal struct {
	Artist        string  `yaml:"artist"`
	RankValue     float64 `yaml:"rank_value"`
	Songs         int     `yaml:"songs"`
	AvgPopularity float64 `yaml:"avg_popularity"`
}

// RankingTable is the year-by-artist pivot of rank values for the top artists
// of a year range. Cells[i][j] is the rank value of Artists[i] in Years[j],
// nil where the artist has no songs that year. Average[j] is the mean of the
// non-nil cells in column j.
type RankingTable struct {
	Years   []int
	Artists []string
	Cells   [][]*float64
	Average []*float64
	Totals  []ArtistTotal
}
