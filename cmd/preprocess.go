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
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"songstats/internal/dataset"
	"songstats/internal/store"
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess [csv-file]",
	Short: "Builds the song database from a CSV file",
	Long: `Cleans and filters the raw song dataset, then rebuilds the normalized
database from scratch. Any existing data is dropped.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		csvPath := "songs.csv"
		if len(args) > 0 {
			csvPath = args[0]
		}
		if err := preprocess(viper.GetString("database"), csvPath); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(preprocessCmd)
}

func preprocess(dbPath, csvPath string) error {
	logger.Info("starting preprocessing", "csv", csvPath, "database", dbPath)

	raws, err := dataset.ReadFile(csvPath)
	if err != nil {
		return err
	}
	records := dataset.CleanAll(raws)
	logger.Info("cleaned records", "raw", len(raws), "kept", len(records))

	filtered, retention := dataset.Filter(records)
	printRetention(retention)
	printMatchingArtists(filtered)
	logger.Info("filtered records", "before", len(records), "after", len(filtered))

	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Rebuild(); err != nil {
		return fmt.Errorf("rebuilding schema: %w", err)
	}
	if err := s.LoadSongs(filtered); err != nil {
		return fmt.Errorf("loading songs: %w", err)
	}

	fmt.Printf("Database %s created and populated with %d songs\n", dbPath, len(filtered))
	return nil
}

func printRetention(retention map[int]dataset.YearRetention) {
	var years []int
	for year := range retention {
		years = append(years, year)
	}
	sort.Ints(years)

	fmt.Println("Filtering impact per year:")
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Year", "Before", "After", "Retained"})
	for _, year := range years {
		r := retention[year]
		retained := float64(r.After) / float64(r.Before) * 100
		table.Append([]string{
			strconv.Itoa(year),
			strconv.Itoa(r.Before),
			strconv.Itoa(r.After),
			fmt.Sprintf("%.1f%%", retained),
		})
	}
	table.Render()
}

func printMatchingArtists(filtered []dataset.Record) {
	counts := make(map[string]int)
	for _, rec := range filtered {
		counts[rec.Artist]++
	}
	var artists []string
	for artist := range counts {
		artists = append(artists, artist)
	}
	sort.Strings(artists)

	fmt.Println("\nArtists with songs matching the criteria:")
	for _, artist := range artists {
		fmt.Printf("%s: %d matching songs\n", artist, counts[artist])
	}
	fmt.Println()
}
