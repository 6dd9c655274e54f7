package main

import (
	"fmt"

	"chance-dice/internal/asset"
	"chance-dice/internal/batch"
	"chance-dice/internal/dice"
	"chance-dice/internal/fonts"
	"chance-dice/internal/raster"
	"chance-dice/internal/render"
	"chance-dice/internal/session"

	"github.com/spf13/cobra"
)

var rollOutput string

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll all dice once",
	Long: `Roll the four dice once and print the result. With --output the roll
is also rendered to an image file.`,
	RunE: runRoll,
}

func init() {
	rollCmd.Flags().StringVarP(&rollOutput, "output", "o", "", "Write the rendered roll to this file")
}

func runRoll(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.Sync()

	faces, err := fonts.Load(cfg.FontsDir, cfg.FontFiles(), log)
	if err != nil {
		return err
	}
	defer faces.Close()

	images := asset.NewCache(asset.BuildIndex(cfg.AssetsDir))
	sess := session.New(dice.NewRoller(nil), render.NewRenderer(faces, images, log))
	sess.Resize(float64(cfg.CanvasWidth), float64(cfg.CanvasHeight))

	frame, err := sess.Roll(cfg.Tuning)
	if err != nil {
		return err
	}
	res := sess.Current()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Duration:     %s\n", res.Duration)
	fmt.Fprintf(out, "Pitch:        %s (%d-TET)\n", res.Pitch, res.Tuning)
	fmt.Fprintf(out, "Chord:        %s\n", res.Chord)
	fmt.Fprintf(out, "Augmentation: %s\n", res.Augmentation)

	if rollOutput == "" {
		return nil
	}
	if frame.Empty() {
		log.Warnw("canvas too small, nothing rendered", "width", cfg.CanvasWidth, "height", cfg.CanvasHeight)
		return nil
	}
	img := raster.Paint(frame, faces, raster.DefaultPalette)
	if err := batch.WriteImage(rollOutput, img, cfg.Format); err != nil {
		return fmt.Errorf("write %s: %w", rollOutput, err)
	}
	log.Infow("rendered roll", "file", rollOutput)
	return nil
}
