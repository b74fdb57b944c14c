package sequence

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ManifestEntry describes one rendered frame.
type ManifestEntry struct {
	Index  int                `json:"index"`
	Tick   uint64             `json:"tick"`
	Image  string             `json:"image,omitempty"`
	Gait   string             `json:"gait"`
	Cannon string             `json:"cannon"`
	Joints map[string]float64 `json:"joints"`
	Error  string             `json:"error,omitempty"`
}

// WriteManifest writes the frame list to path as indented JSON. Images are
// recorded relative to the manifest's directory.
func WriteManifest(path string, frames []Frame, results []Result) error {
	dir := filepath.Dir(path)
	byIndex := make(map[int]Result, len(results))
	for _, r := range results {
		byIndex[r.Index] = r
	}

	entries := make([]ManifestEntry, len(frames))
	for i, f := range frames {
		e := ManifestEntry{
			Index:  f.Index,
			Tick:   f.Tick,
			Gait:   f.Gait.String(),
			Cannon: f.Cannon.String(),
			Joints: f.Pose.Map(),
		}
		if r, ok := byIndex[f.Index]; ok {
			if r.Success {
				e.Image = r.Path
				if rel, err := filepath.Rel(dir, r.Path); err == nil {
					e.Image = filepath.ToSlash(rel)
				}
			}
			e.Error = r.Error
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "sequence: manifest")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "sequence: manifest")
	}
	return nil
}
