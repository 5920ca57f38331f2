package store

import (
	"fmt"
	"math"

	"songstats/internal/dataset"
)

// LoadSongs populates the four tables from cleaned, filtered records in a
// single transaction: either every row is committed or none are. The name→id
// maps are local to the load; artists and genres are inserted once per
// distinct name, in order of first appearance.
func (s *Store) LoadSongs(records []dataset.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	artistIDs := make(map[string]int64)
	for _, rec := range records {
		if _, ok := artistIDs[rec.Artist]; ok {
			continue
		}
		res, err := tx.Exec("INSERT INTO Artist (Name) VALUES (?)", rec.Artist)
		if err != nil {
			return fmt.Errorf("inserting artist %q: %w", rec.Artist, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("inserting artist %q: %w", rec.Artist, err)
		}
		artistIDs[rec.Artist] = id
	}

	genreIDs := make(map[string]int64)
	for _, rec := range records {
		for _, genre := range rec.Genres {
			if _, ok := genreIDs[genre]; ok {
				continue
			}
			res, err := tx.Exec("INSERT INTO Genre (Genre) VALUES (?)", genre)
			if err != nil {
				return fmt.Errorf("inserting genre %q: %w", genre, err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("inserting genre %q: %w", genre, err)
			}
			genreIDs[genre] = id
		}
	}

	for _, rec := range records {
		res, err := tx.Exec(`
			INSERT INTO Song (Title, Duration, Explicit, Year, Popularity, Danceability, Speechiness, ArtistID)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.Title,
			rec.Duration,
			rec.Explicit,
			rec.Year,
			int(math.Round(rec.Popularity)),
			rec.Danceability,
			rec.Speechiness,
			artistIDs[rec.Artist],
		)
		if err != nil {
			return fmt.Errorf("inserting song %q: %w", rec.Title, err)
		}
		songID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("inserting song %q: %w", rec.Title, err)
		}
		for _, genre := range rec.Genres {
			_, err := tx.Exec("INSERT INTO SongGenre (SongID, GenreID) VALUES (?, ?)", songID, genreIDs[genre])
			if err != nil {
				return fmt.Errorf("linking song %q to genre %q: %w", rec.Title, genre, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
