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
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"songstats/internal/analysis"
)

var songWeight float64
var popularityWeight float64

var topArtistsCmd = &cobra.Command{
	Use:   "top-artists [start-year] [end-year]",
	Short: "Ranks the top 5 artists over a year range",
	Long: `Ranks artists by a weighted blend of song volume and average popularity,
summed over each year in the range (1998-2020). Shows the per-year rank values
for the top 5 artists; the highest value in each year is marked with *.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		startYear, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Invalid start year %q\n", args[0])
			os.Exit(1)
		}
		endYear, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Printf("Invalid end year %q\n", args[1])
			os.Exit(1)
		}
		if err := printTopArtists(viper.GetString("database"), startYear, endYear); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topArtistsCmd)

	topArtistsCmd.Flags().Float64Var(&songWeight, "song-weight", analysis.DefaultSongWeight,
		"influence of song volume on the rank value")
	topArtistsCmd.Flags().Float64Var(&popularityWeight, "popularity-weight", analysis.DefaultPopularityWeight,
		"influence of popularity on the rank value")
}

func printTopArtists(dbPath string, startYear, endYear int) error {
	weights, err := analysis.NewWeights(songWeight, popularityWeight)
	if err != nil {
		return err
	}
	if err := analysis.ValidateYearRange(startYear, endYear); err != nil {
		return err
	}

	s, err := openExistingStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	table, err := analysis.TopArtists(s, startYear, endYear, weights)
	if err != nil {
		logger.Error("top artists query failed", "start", startYear, "end", endYear, "error", err)
		return err
	}
	if table == nil {
		fmt.Printf("No data found for years %d-%d\n", startYear, endYear)
		return nil
	}

	printRankingTable(table)
	return nil
}

func printRankingTable(rt *analysis.RankingTable) {
	// The best rank value per year column gets a marker.
	best := make([]float64, len(rt.Years))
	for j := range rt.Years {
		for i := range rt.Cells {
			if rt.Cells[i][j] != nil && *rt.Cells[i][j] > best[j] {
				best[j] = *rt.Cells[i][j]
			}
		}
	}

	header := []string{"Artist"}
	for _, year := range rt.Years {
		header = append(header, strconv.Itoa(year))
	}
	header = append(header, "Total Songs", "Avg Popularity")

	fmt.Println("Top Artists Table:")
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(header)
	for i, artist := range rt.Artists {
		row := []string{artist}
		for j := range rt.Years {
			row = append(row, formatCell(rt.Cells[i][j], best[j]))
		}
		row = append(row,
			strconv.Itoa(rt.Totals[i].Songs),
			fmt.Sprintf("%.1f", rt.Totals[i].AvgPopularity))
		table.Append(row)
	}

	avgRow := []string{"Average"}
	for j := range rt.Years {
		avgRow = append(avgRow, formatCell(rt.Average[j], 0))
	}
	avgRow = append(avgRow, "", "")
	table.Append(avgRow)

	table.Render()
	fmt.Println("Note: * marks the highest rank value for each year")
}

func formatCell(value *float64, best float64) string {
	if value == nil {
		return "Null"
	}
	if best != 0 && *value == best {
		return fmt.Sprintf("%.1f *", *value)
	}
	return fmt.Sprintf("%.1f", *value)
}
