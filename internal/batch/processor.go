package batch

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"chance-dice/internal/asset"
	"chance-dice/internal/config"
	"chance-dice/internal/dice"
	"chance-dice/internal/fonts"
	"chance-dice/internal/raster"
	"chance-dice/internal/render"
	"chance-dice/internal/session"

	"github.com/HugoSmits86/nativewebp"
	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"go.uber.org/zap"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir string
	FontsDir  string
	FontFiles fonts.Files
	Images    *asset.Cache
	Roller    toolkitdice.Roller // nil uses the toolkit default
	Width     int
	Height    int
	Tuning    int
	Format    string
	Workers   int
	Log       *zap.SugaredLogger
}

// Result holds the outcome of one roll.
type Result struct {
	Index   int
	Roll    dice.RollResult
	File    string
	Success bool
	Error   string
}

// Run renders count independent rolls using a worker pool. Each worker owns
// its own fonts and session; the image cache is shared.
func Run(cfg Config, count int) []Result {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	workers := max(1, cfg.Workers)

	results := make([]Result, count)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					log.Infof("[%d/%d] %.1f rolls/sec", p, count, rate)
				}
			}
		}
	}()

	// Worker pool
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wk, err := newWorker(cfg, log)
			if err != nil {
				for idx := range jobs {
					results[idx] = Result{Index: idx, Error: err.Error()}
					processed.Add(1)
				}
				return
			}
			defer wk.close()
			for idx := range jobs {
				results[idx] = wk.process(cfg, idx)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := 0; i < count; i++ {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

type worker struct {
	faces *fonts.Set
	sess  *session.Session
}

func newWorker(cfg Config, log *zap.SugaredLogger) (*worker, error) {
	faces, err := fonts.Load(cfg.FontsDir, cfg.FontFiles, log)
	if err != nil {
		return nil, err
	}
	r := render.NewRenderer(faces, cfg.Images, log)
	sess := session.New(dice.NewRoller(cfg.Roller), r)
	sess.Resize(float64(cfg.Width), float64(cfg.Height))
	return &worker{faces: faces, sess: sess}, nil
}

func (w *worker) close() {
	w.faces.Close()
}

func (w *worker) process(cfg Config, idx int) Result {
	frame, err := w.sess.Roll(cfg.Tuning)
	if err != nil {
		return Result{Index: idx, Error: err.Error()}
	}
	res := Result{Index: idx, Roll: w.sess.Current()}
	if frame.Empty() {
		res.Error = fmt.Sprintf("canvas %dx%d too small", cfg.Width, cfg.Height)
		return res
	}

	img := raster.Paint(frame, w.faces, raster.DefaultPalette)

	res.File = FileName(idx, cfg.Format)
	if err := WriteImage(filepath.Join(cfg.OutputDir, res.File), img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}

// FileName is the output name of roll idx.
func FileName(idx int, format string) string {
	return fmt.Sprintf("roll-%04d.%s", idx, extension(format))
}

func extension(format string) string {
	if format == config.FormatPNG {
		return "png"
	}
	return "webp"
}

// WriteImage encodes img as WebP or PNG to path, creating parent directories.
func WriteImage(path string, img image.Image, format string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	if format == config.FormatPNG {
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("PNG encode: %w", err)
		}
		return nil
	}
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("WebP encode: %w", err)
	}
	return nil
}
