package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"chance-dice/internal/dice"
	"chance-dice/internal/fonts"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix for environment overrides, e.g. CHANCEDICE_ASSETS_DIR.
const EnvPrefix = "chancedice"

// Output formats.
const (
	FormatWebP = "webp"
	FormatPNG  = "png"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	AssetsDir string `json:"assets_dir" envconfig:"ASSETS_DIR"`
	FontsDir  string `json:"fonts_dir" envconfig:"FONTS_DIR"`
	OutputDir string `json:"output_dir" envconfig:"OUTPUT_DIR"`

	// Font files inside FontsDir
	DefaultFont  string `json:"default_font" envconfig:"DEFAULT_FONT"`
	PhoneticFont string `json:"phonetic_font" envconfig:"PHONETIC_FONT"`
	MathFont     string `json:"math_font" envconfig:"MATH_FONT"`

	// Render settings
	CanvasWidth  int    `json:"canvas_width" envconfig:"CANVAS_WIDTH"`
	CanvasHeight int    `json:"canvas_height" envconfig:"CANVAS_HEIGHT"`
	Format       string `json:"format" envconfig:"FORMAT"`
	Tuning       int    `json:"tet" envconfig:"TET"`
	Workers      int    `json:"workers" envconfig:"WORKERS"`
	LogLevel     string `json:"log_level" envconfig:"LOG_LEVEL"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overlays CHANCEDICE_* environment variables onto c.
// Unset variables leave the current value alone.
func (c *Config) ApplyEnv() error {
	var env Config
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("config: env: %w", err)
	}
	c.merge(env)
	return nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	AssetsDir string
	FontsDir  string
	OutputDir string
	Format    string
	Width     int
	Height    int
	Tuning    int
	Workers   int
	LogLevel  string
}

// Resolve fills in any empty fields with auto-detected defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	c.merge(Config{
		AssetsDir:    flags.AssetsDir,
		FontsDir:     flags.FontsDir,
		OutputDir:    flags.OutputDir,
		Format:       flags.Format,
		CanvasWidth:  flags.Width,
		CanvasHeight: flags.Height,
		Tuning:       flags.Tuning,
		Workers:      flags.Workers,
		LogLevel:     flags.LogLevel,
	})

	// Auto-detect assets dir if still empty
	if c.AssetsDir == "" {
		c.AssetsDir = detectAssetsDir()
	}

	if c.AssetsDir != "" && c.FontsDir == "" {
		c.FontsDir = filepath.Join(c.AssetsDir, "fonts")
	} else if c.AssetsDir != "" && !filepath.IsAbs(c.FontsDir) {
		c.FontsDir = filepath.Join(c.AssetsDir, c.FontsDir)
	}
	if c.OutputDir == "" {
		c.OutputDir = "rolls"
	}

	if c.DefaultFont == "" {
		c.DefaultFont = fonts.DefaultFiles.Default
	}
	if c.PhoneticFont == "" {
		c.PhoneticFont = fonts.DefaultFiles.Phonetic
	}
	if c.MathFont == "" {
		c.MathFont = fonts.DefaultFiles.Math
	}

	// Defaults for render settings
	if c.CanvasWidth <= 0 {
		c.CanvasWidth = 1600
	}
	if c.CanvasHeight <= 0 {
		c.CanvasHeight = 900
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format != FormatPNG {
		c.Format = FormatWebP
	}
	c.Tuning = int(dice.ParseTuning(c.Tuning))
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// FontFiles returns the per-role font file names.
func (c Config) FontFiles() fonts.Files {
	return fonts.Files{Default: c.DefaultFont, Phonetic: c.PhoneticFont, Math: c.MathFont}
}

// merge copies every non-zero field of o onto c.
func (c *Config) merge(o Config) {
	setString(&c.AssetsDir, o.AssetsDir)
	setString(&c.FontsDir, o.FontsDir)
	setString(&c.OutputDir, o.OutputDir)
	setString(&c.DefaultFont, o.DefaultFont)
	setString(&c.PhoneticFont, o.PhoneticFont)
	setString(&c.MathFont, o.MathFont)
	setString(&c.Format, o.Format)
	setString(&c.LogLevel, o.LogLevel)
	setInt(&c.CanvasWidth, o.CanvasWidth)
	setInt(&c.CanvasHeight, o.CanvasHeight)
	setInt(&c.Tuning, o.Tuning)
	setInt(&c.Workers, o.Workers)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

// detectAssetsDir looks for an assets/images directory next to the
// executable (packaged layout) and then around the working directory
// (running from a source checkout).
func detectAssetsDir() string {
	var candidates []string

	// Try relative to executable
	exe, _ := os.Executable()
	if exe != "" {
		dir := filepath.Dir(exe)
		candidates = append(candidates, dir, filepath.Dir(dir))
	}

	// Try current working directory and its parent (if we're in cmd/)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, cwd, filepath.Dir(cwd))
	}

	for _, base := range candidates {
		assets := filepath.Join(base, "assets")
		if info, err := os.Stat(filepath.Join(assets, "images")); err == nil && info.IsDir() {
			return assets
		}
	}
	return ""
}
