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

var suggestionLimit int

var artistCmd = &cobra.Command{
	Use:   "artist [name]",
	Short: "Compares an artist's popularity per genre against the overall average",
	Long: `For each genre the artist has songs in, shows the artist's average
popularity next to the average across all artists, flagging genres where the
artist is above the mean. Artist names match exactly; near misses get
suggestions.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := printArtistPopularity(viper.GetString("database"), args[0]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(artistCmd)

	artistCmd.Flags().IntVar(&suggestionLimit, "suggestions", analysis.DefaultSuggestionLimit,
		"maximum number of name suggestions on a failed lookup")
}

func printArtistPopularity(dbPath, name string) error {
	s, err := openExistingStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	report, err := analysis.ArtistPopularity(s, name, suggestionLimit)
	if err != nil {
		logger.Error("artist popularity query failed", "artist", name, "error", err)
		return fmt.Errorf("querying artist %q: %w", name, err)
	}

	if !report.Found {
		fmt.Printf("Artist %q not found in database.\n", name)
		if len(report.Suggestions) > 0 {
			fmt.Println("\nDid you mean one of these artists?")
			for _, suggestion := range report.Suggestions {
				fmt.Printf("- %s\n", suggestion)
			}
		}
		return nil
	}
	if len(report.Genres) == 0 {
		fmt.Printf("No genre data available for %s.\n", name)
		return nil
	}

	fmt.Printf("Popularity table for %s:\n", name)
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Genre", "Artist Avg", "Overall Avg", "Difference", "Songs", "Above Mean"})
	for _, row := range report.Genres {
		aboveMean := "no"
		if row.AboveMean {
			aboveMean = "yes"
		}
		table.Append([]string{
			row.Genre,
			fmt.Sprintf("%.2f", row.ArtistAvg),
			fmt.Sprintf("%.2f", row.OverallAvg),
			fmt.Sprintf("%+.2f", row.Difference),
			strconv.Itoa(row.SongCount),
			aboveMean,
		})
	}
	table.Render()
	return nil
}
