package batch

import (
	"encoding/json"
	"os"

	"chance-dice/internal/dice"
)

// ManifestEntry represents one rendered roll in the output manifest.
type ManifestEntry struct {
	Index        int         `json:"index"`
	Duration     dice.Face   `json:"duration"`
	Pitch        dice.Face   `json:"pitch"`
	Chord        dice.Face   `json:"chord"`
	Augmentation dice.Face   `json:"augmentation"`
	Tuning       dice.Tuning `json:"tet"`
	Image        string      `json:"image"`
}

// WriteManifest writes the successful results to path as JSON.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Index:        r.Index,
			Duration:     r.Roll.Duration,
			Pitch:        r.Roll.Pitch,
			Chord:        r.Roll.Chord,
			Augmentation: r.Roll.Augmentation,
			Tuning:       r.Roll.Tuning,
			Image:        r.File,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
