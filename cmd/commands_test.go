/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"songstats/internal/store"
)

const testCSV = `artist,song,duration_ms,explicit,year,genre,popularity,danceability,speechiness
Kept Artist,Good Song,200000,False,2010,"pop, rock",75,0.8,0.5
Kept Artist,Second Song,180000,False,2011,pop,60,0.5,0.4
Dropped Artist,Quiet Song,210000,False,2010,jazz,40,0.8,0.5
Dropped Artist,Spoken Song,210000,True,2010,jazz,80,0.8,0.9
`

func TestPreprocessCreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "songs.csv")
	if err := os.WriteFile(csvPath, []byte(testCSV), 0644); err != nil {
		t.Fatalf("writing test csv: %v", err)
	}
	dbPath := filepath.Join(dir, "songs.db")

	if err := preprocess(dbPath, csvPath); err != nil {
		t.Fatalf("preprocess failed: %v", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer s.Close()

	songs, err := s.CountRows("Song")
	if err != nil {
		t.Fatalf("counting songs: %v", err)
	}
	if songs != 2 {
		t.Errorf("got %d songs, want 2 after filtering", songs)
	}
	artists, err := s.CountRows("Artist")
	if err != nil {
		t.Fatalf("counting artists: %v", err)
	}
	if artists != 1 {
		t.Errorf("got %d artists, want 1", artists)
	}
}

func TestPreprocessMissingCSV(t *testing.T) {
	dir := t.TempDir()
	err := preprocess(filepath.Join(dir, "songs.db"), filepath.Join(dir, "missing.csv"))
	if err == nil {
		t.Fatal("preprocess should have errored with a missing csv file")
	}
}

func TestPrintArtistPopularityDatabaseDoesntExist(t *testing.T) {
	err := printArtistPopularity(filepath.Join(t.TempDir(), "songs.db"), "Adele")
	if err == nil {
		t.Fatal("printArtistPopularity should have errored with no database")
	}
	if !strings.Contains(err.Error(), "doesn't exist") {
		t.Fatalf("printArtistPopularity should have said the db doesn't exist: %v", err)
	}
}

func TestPrintTopArtistsDatabaseDoesntExist(t *testing.T) {
	err := printTopArtists(filepath.Join(t.TempDir(), "songs.db"), 2000, 2010)
	if err == nil {
		t.Fatal("printTopArtists should have errored with no database")
	}
	if !strings.Contains(err.Error(), "doesn't exist") {
		t.Fatalf("printTopArtists should have said the db doesn't exist: %v", err)
	}
}

func TestPrintGenreStatisticsInvalidYear(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "songs.csv")
	if err := os.WriteFile(csvPath, []byte(testCSV), 0644); err != nil {
		t.Fatalf("writing test csv: %v", err)
	}
	dbPath := filepath.Join(dir, "songs.db")
	if err := preprocess(dbPath, csvPath); err != nil {
		t.Fatalf("preprocess failed: %v", err)
	}

	if err := printGenreStatistics(dbPath, 1950); err == nil {
		t.Fatal("printGenreStatistics should have rejected a year outside the dataset")
	}
}

func TestPrintGenreStatisticsRejectsYearBeforeDatabase(t *testing.T) {
	// No database exists; a bad year must be rejected before it is opened.
	err := printGenreStatistics(filepath.Join(t.TempDir(), "songs.db"), 1950)
	if err == nil {
		t.Fatal("printGenreStatistics should have rejected a year outside the dataset")
	}
	if !strings.Contains(err.Error(), "outside valid range") {
		t.Fatalf("printGenreStatistics should have rejected the year, got: %v", err)
	}
}

func TestPrintTopArtistsRejectsRangeBeforeDatabase(t *testing.T) {
	err := printTopArtists(filepath.Join(t.TempDir(), "songs.db"), 2012, 2010)
	if err == nil {
		t.Fatal("printTopArtists should have rejected a backwards year range")
	}
	if !strings.Contains(err.Error(), "after end year") {
		t.Fatalf("printTopArtists should have rejected the range, got: %v", err)
	}
}

func TestFormatCell(t *testing.T) {
	if got := formatCell(nil, 10); got != "Null" {
		t.Errorf("formatCell(nil) = %q, want Null", got)
	}
	value := 12.34
	if got := formatCell(&value, 99); got != "12.3" {
		t.Errorf("formatCell = %q, want 12.3", got)
	}
	if got := formatCell(&value, 12.34); got != "12.3 *" {
		t.Errorf("formatCell best = %q, want 12.3 *", got)
	}
}
