package main

import (
	"fmt"

	"chance-dice/internal/asset"
	"chance-dice/internal/dice"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that every duration image resolves and decodes",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.Sync()

	out := cmd.OutOrStdout()
	index := asset.BuildIndex(cfg.AssetsDir)
	fmt.Fprintf(out, "Assets: %s (%d images indexed)\n", cfg.AssetsDir, index.Len())

	errors := 0
	for _, face := range dice.Duration.Faces() {
		id, _ := dice.ImageAssetFor(face)
		path, _ := index.ResolvePath(id)
		img, err := asset.Load(index, id)
		if err != nil {
			fmt.Fprintf(out, "ERR %-20s %v\n", face, err)
			errors++
			continue
		}
		b := img.Bounds()
		fmt.Fprintf(out, "OK  %-20s %s (%dx%d)\n", face, path, b.Dx(), b.Dy())
	}

	if errors > 0 {
		return fmt.Errorf("%d of %d duration images unusable", errors, dice.Duration.Len())
	}
	fmt.Fprintln(out, "All duration images usable.")
	return nil
}
