package dataset

import (
	"math"
	"testing"
)

func record(year int, popularity, danceability, speechiness float64) Record {
	return Record{
		Artist:       "Artist",
		Title:        "Song",
		Year:         year,
		Popularity:   popularity,
		Danceability: danceability,
		Speechiness:  speechiness,
	}
}

func TestRetained(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want bool
	}{
		{"all thresholds just met", record(2010, 51, 0.21, 0.50), true},
		{"speechiness lower bound inclusive", record(2010, 51, 0.21, 0.33), true},
		{"speechiness upper bound inclusive", record(2010, 51, 0.21, 0.66), true},
		{"speechiness too high", record(2010, 51, 0.21, 0.67), false},
		{"speechiness too low", record(2010, 51, 0.21, 0.32), false},
		{"danceability boundary excluded", record(2010, 51, 0.20, 0.50), false},
		{"popularity boundary excluded", record(2010, 50, 0.21, 0.50), false},
		{"missing popularity", record(2010, math.NaN(), 0.21, 0.50), false},
		{"missing speechiness", record(2010, 51, 0.21, math.NaN()), false},
	}
	for _, test := range tests {
		if got := Retained(test.rec); got != test.want {
			t.Errorf("%s: Retained = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestFilterRetentionReport(t *testing.T) {
	records := []Record{
		record(2010, 60, 0.5, 0.5),
		record(2010, 10, 0.5, 0.5),
		record(2010, 60, 0.1, 0.5),
		record(2011, 60, 0.5, 0.5),
	}

	kept, retention := Filter(records)
	if len(kept) != 2 {
		t.Fatalf("Filter kept %d records, want 2", len(kept))
	}

	r2010 := retention[2010]
	if r2010.Before != 3 || r2010.After != 1 {
		t.Errorf("2010 retention = %+v, want {3 1}", r2010)
	}
	r2011 := retention[2011]
	if r2011.Before != 1 || r2011.After != 1 {
		t.Errorf("2011 retention = %+v, want {1 1}", r2011)
	}
}
