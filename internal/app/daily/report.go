package daily

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Report is the machine-readable summary of one run, written next to
// the build logs so CI can track definition coverage over time.
type Report struct {
	RunID          string    `json:"run_id"`
	GeneratedAt    time.Time `json:"generated_at"`
	DatasetVersion string    `json:"dataset_version,omitempty"`
	PoolSize       int       `json:"pool_size"`
	Defined        int       `json:"defined"`
	Missing        int       `json:"missing"`
	MissingPercent float64   `json:"missing_percent"`
	DurationMS     int64     `json:"duration_ms"`
	Output         string    `json:"output"`
}

func writeReport(path, output, datasetVersion string, res Result) error {
	rep := Report{
		RunID:          uuid.NewString(),
		GeneratedAt:    time.Now().UTC(),
		DatasetVersion: datasetVersion,
		PoolSize:       res.PoolSize,
		Defined:        res.Defined,
		Missing:        res.Missing,
		MissingPercent: res.MissingPercent(),
		DurationMS:     res.Duration.Milliseconds(),
		Output:         output,
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
