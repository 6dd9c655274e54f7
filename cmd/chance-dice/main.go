// Package main is the chance-dice command line tool.
package main

import (
	"fmt"
	"os"

	"chance-dice/internal/config"
	"chance-dice/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	flags      config.Flags
)

var rootCmd = &cobra.Command{
	Use:   "chance-dice",
	Short: "Chance music dice roller",
	Long: `chance-dice rolls duration, pitch, chord and augmentation dice for
aleatoric composition and renders each roll as a four-panel image.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Path to config.json file")
	pf.StringVar(&flags.AssetsDir, "assets", "", "Assets directory containing images/ (default: auto-detect)")
	pf.StringVar(&flags.FontsDir, "fonts", "", "Fonts directory (default: <assets>/fonts)")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error (default: info)")
	pf.IntVar(&flags.Tuning, "tet", 0, "Pitch tuning, 12 or 24 (anything else means 12)")
	pf.IntVar(&flags.Width, "width", 0, "Canvas width (default: 1600)")
	pf.IntVar(&flags.Height, "height", 0, "Canvas height (default: 900)")
	pf.StringVar(&flags.Format, "format", "", "Image format: webp or png (default: webp)")

	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(aboutCmd)
}

// loadConfig layers config file, environment and flags, in that order.
func loadConfig() (config.Config, *zap.SugaredLogger, error) {
	var cfg config.Config
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return config.Config{}, nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, nil, err
	}
	cfg.Resolve(flags)

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}
	if cfg.AssetsDir == "" {
		log.Warn("assets directory not found; duration images will be omitted (use --assets)")
	}
	return cfg, log, nil
}
