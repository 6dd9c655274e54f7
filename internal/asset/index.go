package asset

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"chance-dice/internal/dice"
)

// ErrAssetMissing is returned when an asset id has no file behind it.
var ErrAssetMissing = errors.New("asset missing")

// Source opens the encoded bytes of an asset along with the file extension
// that names its format, e.g. ".png".
type Source interface {
	Open(id dice.AssetID) (io.ReadCloser, string, error)
}

// extRank orders decodable extensions; lower wins when two files share a stem.
var extRank = map[string]int{
	".png":  0,
	".webp": 1,
	".tga":  2,
	".gif":  3,
	".bmp":  4,
	".tif":  5,
	".tiff": 5,
	".jpg":  6,
	".jpeg": 6,
}

// Index maps lowercase image stems to filesystem paths.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex scans root and its images/ subdirectory for decodable images.
// A missing directory yields an empty index.
func BuildIndex(root string) *Index {
	idx := &Index{entries: make(map[string]string)}
	if root == "" {
		return idx
	}

	searchDirs := []string{filepath.Join(root, "images"), root}
	for _, dir := range searchDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			idx.add(filepath.Join(dir, e.Name()))
		}
	}

	return idx
}

func (idx *Index) add(path string) {
	ext := strings.ToLower(filepath.Ext(path))
	rank, ok := extRank[ext]
	if !ok {
		return
	}
	stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

	existing, exists := idx.entries[stem]
	if !exists || rank < extRank[strings.ToLower(filepath.Ext(existing))] {
		idx.entries[stem] = path
	}
}

// ResolvePath returns the filesystem path for an asset id, or ("", false).
// Only the stem of the id is significant, so "images/breve.png" and
// "Breve.webp" resolve to the same file.
func (idx *Index) ResolvePath(id dice.AssetID) (string, bool) {
	name := strings.ReplaceAll(string(id), "\\", "/")
	base := filepath.Base(name)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	path, ok := idx.entries[stem]
	return path, ok
}

// Open implements Source.
func (idx *Index) Open(id dice.AssetID) (io.ReadCloser, string, error) {
	path, ok := idx.ResolvePath(id)
	if !ok {
		return nil, "", fmt.Errorf("asset: resolve %s: %w", id, ErrAssetMissing)
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("asset: open %s: %w", path, ErrAssetMissing)
		}
		return nil, "", fmt.Errorf("asset: open %s: %w", path, err)
	}
	return f, strings.ToLower(filepath.Ext(path)), nil
}

// Len returns the number of indexed images.
func (idx *Index) Len() int {
	return len(idx.entries)
}
