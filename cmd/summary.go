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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var summaryTopGenres int

type datasetSummary struct {
	TotalSongs   int            `yaml:"total_songs"`
	TotalArtists int            `yaml:"total_artists"`
	TotalGenres  int            `yaml:"total_genres"`
	Years        []yearSummary  `yaml:"years"`
	TopGenres    []genreSummary `yaml:"top_genres"`
}

type yearSummary struct {
	Year  int `yaml:"year"`
	Songs int `yaml:"songs"`
}

type genreSummary struct {
	Genre         string  `yaml:"genre"`
	Songs         int     `yaml:"songs"`
	AvgPopularity float64 `yaml:"avg_popularity"`
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Emits a YAML summary of the loaded dataset",
	Long: `Prints dataset totals, the per-year song distribution, and the most
common genres as YAML, for consumption by other tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := printSummary(viper.GetString("database")); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating summary: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().IntVar(&summaryTopGenres, "top-genres", 10, "number of top genres to include")
}

func printSummary(dbPath string) error {
	s, err := openExistingStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	summary := datasetSummary{}
	if summary.TotalSongs, err = s.CountRows("Song"); err != nil {
		return err
	}
	if summary.TotalArtists, err = s.CountRows("Artist"); err != nil {
		return err
	}
	if summary.TotalGenres, err = s.CountRows("Genre"); err != nil {
		return err
	}

	years, err := s.YearCounts()
	if err != nil {
		return err
	}
	for _, yc := range years {
		summary.Years = append(summary.Years, yearSummary{Year: yc.Year, Songs: yc.Songs})
	}

	genres, err := s.TopGenres(summaryTopGenres)
	if err != nil {
		return err
	}
	for _, g := range genres {
		summary.TopGenres = append(summary.TopGenres, genreSummary{
			Genre:         g.Genre,
			Songs:         g.Songs,
			AvgPopularity: g.Average,
		})
	}

	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return encoder.Close()
}
