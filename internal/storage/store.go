package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/san-kum/columnsim/internal/column"
	"github.com/san-kum/columnsim/internal/config"
	"github.com/san-kum/columnsim/internal/ode"
)

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
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Integrator string             `json:"integrator"`
	C0         float64            `json:"c0"`
	ZMax       float64            `json:"zmax"`
	Points     int                `json:"points"`
	Tolerance  float64            `json:"tolerance"`
	Params     column.Params      `json:"params"`
	Metrics    map[string]float64 `json:"metrics"`
}

// ProfileRecord is one row of the saved concentration profile.
type ProfileRecord struct {
	Z          float64 `csv:"z" json:"z"`
	Cg         float64 `csv:"cg" json:"cg"`
	Normalized float64 `csv:"cg_over_c0" json:"cg_over_c0"`
}

// Records flattens a solver result into profile rows.
func Records(result *ode.Result) []ProfileRecord {
	profile := result.Profile()
	normalized := result.Normalized()

	records := make([]ProfileRecord, len(profile))
	for i := range profile {
		records[i] = ProfileRecord{
			Z:          result.Grid[i],
			Cg:         profile[i],
			Normalized: normalized[i],
		}
	}
	return records
}

func (s *Store) Save(cfg *config.Config, result *ode.Result) (string, error) {
	// Nanosecond precision so back-to-back saves get distinct run dirs.
	runID := fmt.Sprintf("column_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Integrator: cfg.Integrator,
		C0:         cfg.C0,
		ZMax:       cfg.ZMax,
		Points:     cfg.Points,
		Tolerance:  cfg.Tolerance,
		Params:     cfg.Params,
		Metrics:    result.Metrics,
	}

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

	csvFile, err := os.Create(filepath.Join(runDir, "profile.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	records := Records(result)
	if err := gocsv.MarshalFile(&records, csvFile); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("run %s not found: %w", runID, err)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadProfile(runID string) ([]ProfileRecord, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "profile.csv"))
	if err != nil {
		return nil, fmt.Errorf("run %s has no profile: %w", runID, err)
	}
	defer f.Close()

	var records []ProfileRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ExportCSV writes the profile rows to w.
func ExportCSV(w io.Writer, records []ProfileRecord) error {
	return gocsv.Marshal(&records, w)
}

// ExportJSON writes metadata plus profile rows to w.
func ExportJSON(w io.Writer, meta *RunMetadata, records []ProfileRecord) error {
	out := struct {
		Meta    *RunMetadata    `json:"run"`
		Profile []ProfileRecord `json:"profile"`
	}{meta, records}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
