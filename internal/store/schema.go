package store

import "database/sql"

// The store is rebuilt from scratch on every preprocessing run, so the schema
// drops before it creates. There is no migration story across versions.
const schema = `
DROP TABLE IF EXISTS SongGenre;
DROP TABLE IF EXISTS Song;
DROP TABLE IF EXISTS Genre;
DROP TABLE IF EXISTS Artist;

CREATE TABLE Artist (
  ID INTEGER PRIMARY KEY AUTOINCREMENT,
  Name TEXT NOT NULL UNIQUE
);

CREATE TABLE Genre (
  ID INTEGER PRIMARY KEY AUTOINCREMENT,
  Genre TEXT NOT NULL UNIQUE
);

CREATE TABLE Song (
  ID INTEGER PRIMARY KEY AUTOINCREMENT,
  Title TEXT NOT NULL,
  Duration INTEGER NOT NULL,
  Explicit BOOLEAN NOT NULL,
  Year INTEGER NOT NULL,
  Popularity INTEGER NOT NULL,
  Danceability FLOAT NOT NULL,
  Speechiness FLOAT NOT NULL,
  ArtistID INTEGER NOT NULL,
  FOREIGN KEY (ArtistID) REFERENCES Artist(ID)
);

CREATE TABLE SongGenre (
  SongID INTEGER,
  GenreID INTEGER,
  PRIMARY KEY (SongID, GenreID),
  FOREIGN KEY (SongID) REFERENCES Song(ID),
  FOREIGN KEY (GenreID) REFERENCES Genre(ID)
);
`

func createTables(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

// Exists reports whether the normalized tables are present. Query commands use
// this to tell an un-preprocessed database apart from an empty result.
func (s *Store) Exists() (bool, error) {
	row := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'Song'")
	var name string
	err := row.Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
