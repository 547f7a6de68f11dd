package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Store keeps one directory per run: metadata.json plus one file per table.
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
	ID          string             `json:"id"`
	Lattice     string             `json:"lattice"`
	Timestamp   time.Time          `json:"timestamp"`
	Format      string             `json:"format"`
	Points      string             `json:"points"`
	SegmentN    int                `json:"segment_n"`
	EnergySteps int                `json:"energy_steps"`
	Singularity bool               `json:"singularity"`
	Tables      []string           `json:"tables"`
	Metrics     map[string]float64 `json:"metrics"`
}

func (s *Store) Save(meta RunMetadata, tables ...*Table) (string, error) {
	if meta.Format == "" {
		meta.Format = "csv"
	}
	now := time.Now()
	runID := fmt.Sprintf("%s_%s_%s", meta.Lattice, now.Format("20060102-150405"), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	meta.Tables = make([]string, 0, len(tables))
	for _, t := range tables {
		if err := s.writeTable(runDir, meta.Format, t); err != nil {
			return "", err
		}
		meta.Tables = append(meta.Tables, t.Name)
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
	return runID, nil
}

func (s *Store) writeTable(runDir, format string, t *Table) error {
	f, err := os.Create(filepath.Join(runDir, t.Name+"."+format))
	if err != nil {
		return err
	}
	if err := Write(f, format, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// List returns every readable run, oldest first.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
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

func (s *Store) LoadTable(runID, name string) (*Table, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, runID, name+"."+meta.Format))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if meta.Format == "json" {
		return ReadJSON(f)
	}
	return ReadCSV(f, name)
}
