package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Yashvi2874/digiform/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of digiform",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("digiform v%s\n", version.Version)
		fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
