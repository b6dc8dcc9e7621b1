package cmd

import (
	"fmt"
	"os"

	"github.com/StavanShah1402/Music-Recommendation-System/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "music-server",
	Short: "Backend for the music recommendation companion app.",
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
