package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Columns required in the input file. Column order does not matter; the header
// row decides which column holds which field.
var requiredColumns = []string{
	"artist", "song", "duration_ms", "year", "genre",
	"popularity", "danceability", "speechiness", "explicit",
}

// ReadFile reads a song CSV file into raw records.
func ReadFile(path string) ([]RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

// Read parses CSV data with a header row into raw records.
func Read(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	field := func(row []string, name string) string {
		i := index[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	var raws []RawRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		raws = append(raws, RawRecord{
			Artist:       field(row, "artist"),
			Song:         field(row, "song"),
			DurationMS:   field(row, "duration_ms"),
			Year:         field(row, "year"),
			Genre:        field(row, "genre"),
			Popularity:   field(row, "popularity"),
			Danceability: field(row, "danceability"),
			Speechiness:  field(row, "speechiness"),
			Explicit:     field(row, "explicit"),
		})
	}
	return raws, nil
}
