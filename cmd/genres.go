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
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"songstats/internal/analysis"
)

var minSongs int

var genresCmd = &cobra.Command{
	Use:   "genres [year]",
	Short: "Shows per-genre statistics for one year",
	Long: `For each genre with songs in the given year (1998-2020), shows average
danceability, popularity, and speechiness, the song count, and the genre's
percentage share of the year.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Invalid year %q\n", args[0])
			os.Exit(1)
		}
		if err := printGenreStatistics(viper.GetString("database"), year); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)

	genresCmd.Flags().IntVar(&minSongs, "min-songs", analysis.DefaultMinSongs,
		"minimum songs a year needs for a confident result")
}

func printGenreStatistics(dbPath string, year int) error {
	// Reject bad input before the database is opened.
	if err := analysis.ValidateYear(year); err != nil {
		return err
	}

	s, err := openExistingStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	report, err := analysis.GenreStatistics(s, year, minSongs)
	if err != nil {
		logger.Error("genre statistics query failed", "year", year, "error", err)
		return err
	}

	if report.Stats == nil {
		msg := fmt.Sprintf("No songs available for the year %d.", year)
		if len(report.Alternatives) > 0 {
			var years []string
			for _, alt := range report.Alternatives {
				years = append(years, strconv.Itoa(alt.Year))
			}
			msg += fmt.Sprintf(" Consider using these years instead: %s", strings.Join(years, ", "))
		}
		fmt.Println(msg)
		return nil
	}

	if report.LowConfidence {
		fmt.Printf("Warning: Limited data available for %d (only %d songs).\n", year, report.SongCount)
		fmt.Println("The statistics might not be representative of the entire year.")
		if len(report.Alternatives) > 0 {
			var years []string
			for _, alt := range report.Alternatives {
				years = append(years, fmt.Sprintf("%d (%d songs)", alt.Year, alt.Songs))
			}
			fmt.Printf("Consider these years with more data: %s\n", strings.Join(years, ", "))
		}
	}

	fmt.Printf("Songs in Year %d:\n", year)
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Genre", "Avg Danceability", "Avg Popularity", "Avg Speechiness", "Total Songs", "Percentage"})
	for _, row := range report.Stats {
		table.Append([]string{
			row.Genre,
			fmt.Sprintf("%.3f", row.AvgDanceability),
			fmt.Sprintf("%.1f", row.AvgPopularity),
			fmt.Sprintf("%.3f", row.AvgSpeechiness),
			strconv.Itoa(row.Songs),
			fmt.Sprintf("%.1f%%", row.Percentage),
		})
	}
	table.Render()
	return nil
}
