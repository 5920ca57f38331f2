package store

import "fmt"

type GenreAverage struct {
	Genre   string
	Average float64
	Songs   int
}

type GenreYearRow struct {
	Genre           string
	AvgDanceability float64
	AvgPopularity   float64
	AvgSpeechiness  float64
	Songs           int
	Percentage      float64
}

type ArtistYearStat struct {
	Artist        string
	Year          int
	Songs         int
	AvgPopularity float64
}

type YearCount struct {
	Year  int
	Songs int
}

// HasArtist reports whether an artist with exactly this name exists. Matching
// is case-sensitive.
func (s *Store) HasArtist(name string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM Artist WHERE Name = ?", name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking artist %q: %w", name, err)
	}
	return count > 0, nil
}

// ArtistNames returns every stored artist name.
func (s *Store) ArtistNames() ([]string, error) {
	rows, err := s.db.Query("SELECT Name FROM Artist ORDER BY ID")
	if err != nil {
		return nil, fmt.Errorf("querying artist names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ArtistGenrePopularity returns the named artist's average popularity and song
// count per genre. Averages are rounded to 2 decimal places in SQL.
func (s *Store) ArtistGenrePopularity(name string) ([]GenreAverage, error) {
	query := `
		SELECT g.Genre, ROUND(AVG(s.Popularity), 2), COUNT(*)
		FROM Song s
		JOIN Artist a ON s.ArtistID = a.ID
		JOIN SongGenre sg ON s.ID = sg.SongID
		JOIN Genre g ON sg.GenreID = g.ID
		WHERE a.Name = ?
		GROUP BY g.Genre
	`
	return s.genreAverages(query, name)
}

// GenrePopularityAllArtists returns the cross-artist average popularity and
// song count per genre, rounded to 2 decimal places.
func (s *Store) GenrePopularityAllArtists() ([]GenreAverage, error) {
	query := `
		SELECT g.Genre, ROUND(AVG(s.Popularity), 2), COUNT(*)
		FROM Song s
		JOIN SongGenre sg ON s.ID = sg.SongID
		JOIN Genre g ON sg.GenreID = g.ID
		GROUP BY g.Genre
	`
	return s.genreAverages(query)
}

func (s *Store) genreAverages(query string, args ...any) ([]GenreAverage, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying genre popularity: %w", err)
	}
	defer rows.Close()

	var averages []GenreAverage
	for rows.Next() {
		var g GenreAverage
		if err := rows.Scan(&g.Genre, &g.Average, &g.Songs); err != nil {
			return nil, err
		}
		averages = append(averages, g)
	}
	return averages, rows.Err()
}

// SongCountForYear returns the number of stored songs for one year.
func (s *Store) SongCountForYear(year int) (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM Song WHERE Year = ?", year).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting songs for year %d: %w", year, err)
	}
	return count, nil
}

// NearbyYears returns up to limit years holding more than minSongs songs,
// closest to the given year first.
func (s *Store) NearbyYears(year, minSongs, limit int) ([]YearCount, error) {
	query := `
		SELECT Year, COUNT(*) as count
		FROM Song
		GROUP BY Year
		HAVING count > ?
		ORDER BY ABS(Year - ?)
		LIMIT ?
	`
	rows, err := s.db.Query(query, minSongs, year, limit)
	if err != nil {
		return nil, fmt.Errorf("querying years near %d: %w", year, err)
	}
	defer rows.Close()

	var years []YearCount
	for rows.Next() {
		var yc YearCount
		if err := rows.Scan(&yc.Year, &yc.Songs); err != nil {
			return nil, err
		}
		years = append(years, yc)
	}
	return years, rows.Err()
}

// GenreStatsForYear returns per-genre aggregates for one year, most populous
// genre first. The percentage column is each genre's share of the year's
// song-genre links; rounding is per row, so the column need not sum to 100.
func (s *Store) GenreStatsForYear(year int) ([]GenreYearRow, error) {
	query := `
		WITH GenreSongs AS (
			SELECT
				g.Genre,
				s.Danceability,
				s.Popularity,
				s.Speechiness
			FROM Song s
			JOIN SongGenre sg ON s.ID = sg.SongID
			JOIN Genre g ON sg.GenreID = g.ID
			WHERE s.Year = ?
		)
		SELECT
			Genre,
			ROUND(AVG(Danceability), 3),
			ROUND(AVG(Popularity), 1),
			ROUND(AVG(Speechiness), 3),
			COUNT(*) as SongCount,
			ROUND(COUNT(*) * 100.0 / SUM(COUNT(*)) OVER (), 1)
		FROM GenreSongs
		GROUP BY Genre
		ORDER BY SongCount DESC
	`
	rows, err := s.db.Query(query, year)
	if err != nil {
		return nil, fmt.Errorf("querying genre stats for year %d: %w", year, err)
	}
	defer rows.Close()

	var stats []GenreYearRow
	for rows.Next() {
		var r GenreYearRow
		if err := rows.Scan(&r.Genre, &r.AvgDanceability, &r.AvgPopularity, &r.AvgSpeechiness, &r.Songs, &r.Percentage); err != nil {
			return nil, err
		}
		stats = append(stats, r)
	}
	return stats, rows.Err()
}

// ArtistYearStats returns song count and average popularity (2 decimal
// places) per (artist, year) pair within the inclusive year range.
func (s *Store) ArtistYearStats(startYear, endYear int) ([]ArtistYearStat, error) {
	query := `
		SELECT a.Name, s.Year, COUNT(*) as NumSongs, ROUND(AVG(s.Popularity), 2)
		FROM Song s
		JOIN Artist a ON s.ArtistID = a.ID
		WHERE s.Year BETWEEN ? AND ?
		GROUP BY a.Name, s.Year
		ORDER BY s.Year, NumSongs DESC
	`
	rows, err := s.db.Query(query, startYear, endYear)
	if err != nil {
		return nil, fmt.Errorf("querying artist stats for %d-%d: %w", startYear, endYear, err)
	}
	defer rows.Close()

	var stats []ArtistYearStat
	for rows.Next() {
		var st ArtistYearStat
		if err := rows.Scan(&st.Artist, &st.Year, &st.Songs, &st.AvgPopularity); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// YearCounts returns the per-year song counts in ascending year order.
func (s *Store) YearCounts() ([]YearCount, error) {
	rows, err := s.db.Query("SELECT Year, COUNT(*) FROM Song GROUP BY Year ORDER BY Year")
	if err != nil {
		return nil, fmt.Errorf("querying year counts: %w", err)
	}
	defer rows.Close()

	var counts []YearCount
	for rows.Next() {
		var yc YearCount
		if err := rows.Scan(&yc.Year, &yc.Songs); err != nil {
			return nil, err
		}
		counts = append(counts, yc)
	}
	return counts, rows.Err()
}

// CountRows returns the number of rows in one of the four tables. The table
// name must be a trusted literal, never user input.
func (s *Store) CountRows(table string) (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting %s rows: %w", table, err)
	}
	return count, nil
}

// TopGenres returns the most-linked genres and their song counts.
func (s *Store) TopGenres(limit int) ([]GenreAverage, error) {
	query := `
		SELECT g.Genre, ROUND(AVG(s.Popularity), 2), COUNT(*) as count
		FROM Song s
		JOIN SongGenre sg ON s.ID = sg.SongID
		JOIN Genre g ON sg.GenreID = g.ID
		GROUP BY g.Genre
		ORDER BY count DESC
		LIMIT ?
	`
	return s.genreAverages(query, limit)
}
