package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mager/songstory/config"
	"github.com/mager/songstory/shares"
	"github.com/mager/songstory/songs"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var sharesCmd = &cobra.Command{
	Use:   "shares",
	Short: "Prints the share of each genre, or of the subgenres of a genre, per decade",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg = overrides(cmd)(cfg)

		f, err := os.Open(cfg.DatasetPath)
		if err != nil {
			return fmt.Errorf("opening dataset: %w", err)
		}
		defer f.Close()

		ds, err := songs.Load(f)
		if err != nil {
			return err
		}

		genre, _ := cmd.Flags().GetString("genre")
		artist, _ := cmd.Flags().GetString("artist")
		cumulative, _ := cmd.Flags().GetBool("cumulative")
		return writeShares(cmd.OutOrStdout(), ds, genre, artist, cumulative)
	},
}

func init() {
	sharesCmd.Flags().String("genre", "", "show the subgenres of this genre")
	sharesCmd.Flags().String("artist", "", "only count the songs of this artist")
	sharesCmd.Flags().Bool("cumulative", false, "add up every decade up to each one")
	rootCmd.AddCommand(sharesCmd)
}

func writeShares(out io.Writer, ds *songs.Dataset, genre, artist string, cumulative bool) error {
	agg := shares.Aggregator[songs.Song]{
		Bucket:     func(s songs.Song) (shares.Key, bool) { return shares.Decade(s.Year()), true },
		Category:   func(s songs.Song) string { return s.Genre },
		Cumulative: cumulative,
		Order:      ds.Genres(),
	}

	list := ds.Songs()
	if genre != "" {
		list = ds.ByGenre(genre)
		if len(list) == 0 {
			return fmt.Errorf("unknown genre %q", genre)
		}
		agg.Category = func(s songs.Song) string { return s.Subgenre }
		agg.Order = ds.Subgenres(genre)
	}
	if artist != "" {
		list = songs.Filter(list, func(s songs.Song) bool { return s.Artist == artist })
		if len(list) == 0 {
			return fmt.Errorf("no songs by %q", artist)
		}
	}

	category := "Genre"
	if genre != "" {
		category = "Subgenre"
	}

	table := tablewriter.NewWriter(out)
	table.Header("Decade", category, "Songs", "Share")
	for _, sh := range agg.Aggregate(list) {
		row := []string{
			strconv.FormatInt(int64(sh.Bucket), 10),
			sh.Category,
			strconv.FormatFloat(sh.Count, 'f', 0, 64),
			strconv.FormatFloat(sh.Percentage, 'f', 2, 64) + "%",
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("rendering table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	return nil
}
