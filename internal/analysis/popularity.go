package analysis

import (
	"sort"

	"songstats/internal/store"
)

// ComparePopularity joins the artist's per-genre averages onto the
// cross-artist averages. The join is anchored on the artist's genres, so
// genres the artist never recorded in do not appear. Rows are sorted by the
// artist's average popularity, highest first.
func ComparePopularity(artist, overall []store.GenreAverage) []GenreComparison {
	overallByGenre := make(map[string]store.GenreAverage, len(overall))
	for _, g := range overall {
		overallByGenre[g.Genre] = g
	}

	var rows []GenreComparison
	for _, g := range artist {
		o := overallByGenre[g.Genre]
		diff := g.Average - o.Average
		rows = append(rows, GenreComparison{
			Genre:      g.Genre,
			ArtistAvg:  g.Average,
			SongCount:  g.Songs,
			OverallAvg: o.Average,
			TotalSongs: o.Songs,
			Difference: diff,
			AboveMean:  diff > 0,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ArtistAvg != rows[j].ArtistAvg {
			return rows[i].ArtistAvg > rows[j].ArtistAvg
		}
		return rows[i].Genre < rows[j].Genre
	})
	return rows
}

// ArtistPopularity runs the artist-vs-genre popularity query. When the name
// has no exact match the report carries suggestions instead of genre rows.
func ArtistPopularity(s *store.Store, name string, suggestionLimit int) (*ArtistReport, error) {
	report := &ArtistReport{Artist: name}

	found, err := s.HasArtist(name)
	if err != nil {
		return nil, err
	}
	if !found {
		names, err := s.ArtistNames()
		if err != nil {
			return nil, err
		}
		report.Suggestions = Suggest(name, names, suggestionLimit)
		return report, nil
	}
	report.Found = true

	artistRows, err := s.ArtistGenrePopularity(name)
	if err != nil {
		return nil, err
	}
	overallRows, err := s.GenrePopularityAllArtists()
	if err != nil {
		return nil, err
	}
	report.Genres = ComparePopularity(artistRows, overallRows)
	return report, nil
}
