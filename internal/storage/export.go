package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

type ExportData struct {
	ID        string             `json:"id"`
	Duration  float64            `json:"duration"`
	FrameRate int                `json:"frame_rate"`
	Gravity   float64            `json:"gravity"`
	Friction  float64            `json:"friction"`
	Curvature float64            `json:"curvature"`
	Times     []float64          `json:"times"`
	Frames    [][]float64        `json:"frames"`
	Metrics   map[string]float64 `json:"metrics"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, times []float64, frames [][]float64) error {
	data := ExportData{
		ID:        meta.ID,
		Duration:  meta.Duration,
		FrameRate: meta.FrameRate,
		Gravity:   meta.Gravity,
		Friction:  meta.Friction,
		Curvature: meta.Curvature,
		Times:     times,
		Frames:    frames,
		Metrics:   meta.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func ExportCSV(w io.Writer, times []float64, frames [][]float64) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(frameHeader); err != nil {
		return err
	}
	for i, frame := range frames {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range frame {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}
