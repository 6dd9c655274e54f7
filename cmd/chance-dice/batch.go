package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"chance-dice/internal/asset"
	"chance-dice/internal/batch"

	"github.com/spf13/cobra"
)

var batchCount int

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Render many independent rolls",
	Long: `Render --count independent rolls to <output-dir>/roll-NNNN.<format>
and write a manifest.json listing every roll.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&batchCount, "count", "n", 16, "Number of rolls to render")
	batchCmd.Flags().StringVar(&flags.OutputDir, "output-dir", "", "Output directory (default: rolls)")
	batchCmd.Flags().IntVar(&flags.Workers, "workers", 0, "Number of worker goroutines (default: NumCPU)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchCount <= 0 {
		return fmt.Errorf("--count must be positive, got %d", batchCount)
	}

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.Sync()

	index := asset.BuildIndex(cfg.AssetsDir)
	log.Infow("batch starting",
		"rolls", batchCount,
		"workers", cfg.Workers,
		"tet", cfg.Tuning,
		"assets", index.Len(),
		"output", cfg.OutputDir,
	)

	start := time.Now()
	results := batch.Run(batch.Config{
		OutputDir: cfg.OutputDir,
		FontsDir:  cfg.FontsDir,
		FontFiles: cfg.FontFiles(),
		Images:    asset.NewCache(index),
		Width:     cfg.CanvasWidth,
		Height:    cfg.CanvasHeight,
		Tuning:    cfg.Tuning,
		Format:    cfg.Format,
		Workers:   cfg.Workers,
		Log:       log,
	}, batchCount)

	// Count results
	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			log.Errorw("roll failed", "index", r.Index, "error", r.Error)
		}
	}
	log.Infow("batch done",
		"rendered", len(results)-failed,
		"failed", failed,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	// Write manifest
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return err
	}
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		log.Warnw("manifest write failed", "error", err)
	} else {
		log.Infow("manifest written", "path", manifestPath)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d rolls failed", failed, len(results))
	}
	return nil
}
