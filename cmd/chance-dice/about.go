package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=..." at release time.
var version = "1.0.01"

const (
	docsURL     = "https://github.com/Ravis-World/Chance-Music-Dice-Python/blob/master/README.md"
	releasesURL = "https://github.com/Ravis-World/Chance-Music-Dice-Python/releases"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and documentation links",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Chance Music Dice Roller %s\n", version)
		fmt.Fprintf(out, "Help:     %s\n", docsURL)
		fmt.Fprintf(out, "Releases: %s\n", releasesURL)
	},
}
