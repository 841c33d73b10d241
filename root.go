package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "songstory",
	Short: "Tells the story of Spotify songs through interactive charts",
	// Serving the dashboard is what the bare command does.
	Run: func(cmd *cobra.Command, args []string) {
		serveCmd.Run(cmd, args)
	},
}

// Execute runs the command line. It is called once by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("dataset", "", "path to the songs CSV (default $SONGSTORY_DATASET_PATH)")
}
