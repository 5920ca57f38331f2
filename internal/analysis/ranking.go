package analysis

import (
	"fmt"
	"math"
	"sort"

	"songstats/internal/store"
)

const (
	DefaultSongWeight       = 0.4
	DefaultPopularityWeight = 0.6

	// Song counts are normalized to the same 0-100 scale as popularity,
	// clamping at maxSongs.
	maxSongs = 100

	weightTolerance = 1e-9

	topArtistCount = 5
)

// Weights blends song volume and popularity into a rank value. Construct via
// NewWeights; the zero value is invalid.
type Weights struct {
	song       float64
	popularity float64
}

// NewWeights validates that the two weights sum to 1.0 within a small
// floating-point tolerance.
func NewWeights(songWeight, popularityWeight float64) (Weights, error) {
	if math.Abs(songWeight+popularityWeight-1.0) > weightTolerance {
		return Weights{}, fmt.Errorf("weights must sum to 1.0, got %v + %v", songWeight, popularityWeight)
	}
	return Weights{song: songWeight, popularity: popularityWeight}, nil
}

// DefaultWeights returns the 0.4/0.6 volume/quality split.
func DefaultWeights() Weights {
	w, err := NewWeights(DefaultSongWeight, DefaultPopularityWeight)
	if err != nil {
		panic(err)
	}
	return w
}

// RankValue computes the weighted composite score for one (artist, year)
// cell: song count normalized to 0-100 and clamped, blended with average
// popularity.
func (w Weights) RankValue(songs int, avgPopularity float64) float64 {
	normalized := math.Min(float64(songs)/maxSongs*100, 100)
	return w.song*normalized + w.popularity*avgPopularity
}

// BuildRankingTable ranks artists by their rank values summed across the
// years they appear in, keeps the top 5, and pivots their per-year rank
// values into a year-by-artist table with a synthetic column-mean row.
// Returns nil when stats is empty.
func BuildRankingTable(stats []store.ArtistYearStat, weights Weights) *RankingTable {
	if len(stats) == 0 {
		return nil
	}

	type artistAgg struct {
		rankTotal float64
		songs     int
		popSum    float64
		popCells  int
	}
	aggregates := make(map[string]*artistAgg)
	rank := make(map[string]map[int]float64)
	yearSet := make(map[int]bool)

	for _, st := range stats {
		value := weights.RankValue(st.Songs, st.AvgPopularity)

		agg := aggregates[st.Artist]
		if agg == nil {
			agg = &artistAgg{}
			aggregates[st.Artist] = agg
		}
		agg.rankTotal += value
		agg.songs += st.Songs
		agg.popSum += st.AvgPopularity
		agg.popCells++

		if rank[st.Artist] == nil {
			rank[st.Artist] = make(map[int]float64)
		}
		rank[st.Artist][st.Year] = value
		yearSet[st.Year] = true
	}

	var artists []string
	for name := range aggregates {
		artists = append(artists, name)
	}
	sort.Slice(artists, func(i, j int) bool {
		a, b := aggregates[artists[i]], aggregates[artists[j]]
		if a.rankTotal != b.rankTotal {
			return a.rankTotal > b.rankTotal
		}
		return artists[i] < artists[j]
	})
	if len(artists) > topArtistCount {
		artists = artists[:topArtistCount]
	}

	var years []int
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Ints(years)

	table := &RankingTable{Years: years, Artists: artists}
	for _, artist := range artists {
		row := make([]*float64, len(years))
		for j, year := range years {
			if value, ok := rank[artist][year]; ok {
				v := value
				row[j] = &v
			}
		}
		table.Cells = append(table.Cells, row)

		agg := aggregates[artist]
		table.Totals = append(table.Totals, ArtistTotal{
			Artist:        artist,
			RankValue:     agg.rankTotal,
			Songs:         agg.songs,
			AvgPopularity: agg.popSum / float64(agg.popCells),
		})
	}

	// Column-wise mean over the top artists, ignoring empty cells.
	table.Average = make([]*float64, len(years))
	for j := range years {
		var sum float64
		var n int
		for i := range table.Cells {
			if table.Cells[i][j] != nil {
				sum += *table.Cells[i][j]
				n++
			}
		}
		if n > 0 {
			mean := sum / float64(n)
			table.Average[j] = &mean
		}
	}

	return table
}

// TopArtists runs the full ranking query for an inclusive year range.
func TopArtists(s *store.Store, startYear, endYear int, weights Weights) (*RankingTable, error) {
	if err := ValidateYearRange(startYear, endYear); err != nil {
		return nil, err
	}
	stats, err := s.ArtistYearStats(startYear, endYear)
	if err != nil {
		return nil, err
	}
	return BuildRankingTable(stats, weights), nil
}
