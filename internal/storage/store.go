// Package storage records headless runs as a metadata.json plus a
// frames.csv per run directory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var frameHeader = []string{"time", "x", "y", "v", "potential", "kinetic", "thermal", "total"}

// FrameColumns is the width of one recorded frame row (minus time).
const FrameColumns = 7

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Duration  float64            `json:"duration"`
	FrameRate int                `json:"frame_rate"`
	Gravity   float64            `json:"gravity"`
	Friction  float64            `json:"friction"`
	Curvature float64            `json:"curvature"`
	Mass      float64            `json:"mass"`
	StartX    float64            `json:"start_x"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes one run. Each frame row is [x, y, v, potential, kinetic,
// thermal, total]; times holds the matching simulated timestamps.
func (s *Store) Save(meta RunMetadata, times []float64, frames [][]float64) (string, error) {
	if len(times) != len(frames) {
		return "", fmt.Errorf("storage: %d times for %d frames", len(times), len(frames))
	}

	runID := fmt.Sprintf("run_%s", uuid.New().String()[:8])
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(frameHeader); err != nil {
		return "", err
	}

	for i, frame := range frames {
		row := make([]string, 0, len(frameHeader))
		row = append(row, strconv.FormatFloat(times[i], 'f', 6, 64))
		for _, val := range frame {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

// LoadFrames reads back a run's trace in the Save layout.
func (s *Store) LoadFrames(runID string) (times []float64, frames [][]float64, err error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 1 {
		return nil, nil, fmt.Errorf("storage: empty frames file for %s", runID)
	}

	for _, rec := range records[1:] {
		if len(rec) != len(frameHeader) {
			return nil, nil, fmt.Errorf("storage: malformed row in %s", runID)
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, nil, err
		}
		frame := make([]float64, 0, FrameColumns)
		for _, field := range rec[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, err
			}
			frame = append(frame, v)
		}
		times = append(times, t)
		frames = append(frames, frame)
	}
	return times, frames, nil
}
