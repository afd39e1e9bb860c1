package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/bliss"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of bliss",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bliss version %s\n", strings.TrimSpace(bliss.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
