package store

import (
	"path/filepath"
	"testing"

	"songstats/internal/dataset"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "songs.db")

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open(%s) error: %v", dbPath, err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.Rebuild(); err != nil {
		t.Fatalf("Rebuild error: %v", err)
	}
	return s
}

func song(artist, title string, year int, popularity float64, genres ...string) dataset.Record {
	return dataset.Record{
		Artist:       artist,
		Title:        title,
		Duration:     200,
		Year:         year,
		Genres:       genres,
		Popularity:   popularity,
		Danceability: 0.5,
		Speechiness:  0.5,
	}
}

func TestExists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "songs.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer s.Close()

	exists, err := s.Exists()
	if err != nil {
		t.Fatalf("Exists error: %v", err)
	}
	if exists {
		t.Error("Exists = true before Rebuild")
	}

	if err := s.Rebuild(); err != nil {
		t.Fatalf("Rebuild error: %v", err)
	}
	exists, err = s.Exists()
	if err != nil {
		t.Fatalf("Exists error: %v", err)
	}
	if !exists {
		t.Error("Exists = false after Rebuild")
	}
}

func TestLoadSongsDeduplicatesArtistsAndGenres(t *testing.T) {
	s := createTestStore(t)

	records := []dataset.Record{
		song("Eminem", "Song One", 2000, 80, "hip hop", "pop"),
		song("Eminem", "Song Two", 2001, 70, "hip hop"),
		song("Britney Spears", "Song Three", 2000, 75, "pop"),
	}
	if err := s.LoadSongs(records); err != nil {
		t.Fatalf("LoadSongs failed: %v", err)
	}

	artists, err := s.CountRows("Artist")
	if err != nil {
		t.Fatalf("counting artists: %v", err)
	}
	if artists != 2 {
		t.Errorf("Artist rows = %d, want 2", artists)
	}

	genres, err := s.CountRows("Genre")
	if err != nil {
		t.Fatalf("counting genres: %v", err)
	}
	if genres != 2 {
		t.Errorf("Genre rows = %d, want 2", genres)
	}

	// One Song row per record, one SongGenre row per (record, genre).
	songs, err := s.CountRows("Song")
	if err != nil {
		t.Fatalf("counting songs: %v", err)
	}
	if songs != 3 {
		t.Errorf("Song rows = %d, want 3", songs)
	}
	links, err := s.CountRows("SongGenre")
	if err != nil {
		t.Fatalf("counting song-genre links: %v", err)
	}
	if links != 4 {
		t.Errorf("SongGenre rows = %d, want 4", links)
	}

	var songCount int
	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM Song s JOIN Artist a ON s.ArtistID = a.ID WHERE a.Name = ?`,
		"Eminem").Scan(&songCount)
	if err != nil {
		t.Fatalf("querying songs per artist: %v", err)
	}
	if songCount != 2 {
		t.Errorf("Eminem songs = %d, want 2", songCount)
	}
}

func TestLoadSongsEmptyGenreList(t *testing.T) {
	s := createTestStore(t)

	if err := s.LoadSongs([]dataset.Record{song("Artist", "No Genre", 2000, 60)}); err != nil {
		t.Fatalf("LoadSongs failed: %v", err)
	}

	songs, _ := s.CountRows("Song")
	links, _ := s.CountRows("SongGenre")
	if songs != 1 || links != 0 {
		t.Errorf("got %d songs and %d links, want 1 and 0", songs, links)
	}
}

func TestRebuildDropsExistingData(t *testing.T) {
	s := createTestStore(t)

	if err := s.LoadSongs([]dataset.Record{song("Artist", "Song", 2000, 60, "pop")}); err != nil {
		t.Fatalf("LoadSongs failed: %v", err)
	}
	if err := s.Rebuild(); err != nil {
		t.Fatalf("second Rebuild failed: %v", err)
	}

	songs, err := s.CountRows("Song")
	if err != nil {
		t.Fatalf("counting songs: %v", err)
	}
	if songs != 0 {
		t.Errorf("Song rows after Rebuild = %d, want 0", songs)
	}
}
