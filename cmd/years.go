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
)

// Diagnostic view of the year distribution, useful for picking inputs to the
// genres and top-artists queries.
var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "Shows the song count for each year in the database",
	Run: func(cmd *cobra.Command, args []string) {
		if err := printYears(viper.GetString("database")); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(yearsCmd)
}

func printYears(dbPath string) error {
	s, err := openExistingStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	counts, err := s.YearCounts()
	if err != nil {
		return err
	}

	fmt.Println("Song count per year:")
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Year", "Songs"})
	total := 0
	for _, yc := range counts {
		table.Append([]string{strconv.Itoa(yc.Year), strconv.Itoa(yc.Songs)})
		total += yc.Songs
	}
	table.Render()
	fmt.Printf("Total: %d songs in %d years\n", total, len(counts))
	return nil
}
