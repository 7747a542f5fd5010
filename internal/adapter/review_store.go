package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/redress-dev/redress/internal/model"
)

const indexFile = "_index.yaml"

// ReviewStore persists and retrieves run records under the reports directory.
type ReviewStore interface {
	// SaveRun writes the record as a YAML document named by its content hash
	// and returns the written path.
	SaveRun(dir m.Path, record m.RunRecord) (m.Path, error)

	// ListRuns loads every stored record, newest first. A missing reports
	// directory yields an empty list.
	ListRuns(dir m.Path) ([]m.RunRecord, error)

	// RegenerateIndex rewrites _index.yaml from the stored records, removing
	// it when none remain.
	RegenerateIndex(dir m.Path) error

	// CleanRuns deletes all but the newest keep records and regenerates the
	// index.
	CleanRuns(dir m.Path, keep int) error
}

// LocalReviewStore stores run records as YAML files on disk.
type LocalReviewStore struct{}

// NewLocalReviewStore constructs a LocalReviewStore.
func NewLocalReviewStore() *LocalReviewStore {
	return &LocalReviewStore{}
}

type runYAML struct {
	Kind       string    `yaml:"kind"`
	StartedAt  time.Time `yaml:"started_at"`
	Passed     bool      `yaml:"passed"`
	Checks     int       `yaml:"checks"`
	Failed     int       `yaml:"failed"`
	Violations int       `yaml:"violations"`
	Kept       int       `yaml:"kept,omitempty"`
	Reverted   int       `yaml:"reverted,omitempty"`
	Log        string    `yaml:"log,omitempty"`
}

type indexYAML struct {
	TotalRuns  int        `yaml:"total_runs"`
	PassedRuns int        `yaml:"passed_runs"`
	FailedRuns int        `yaml:"failed_runs"`
	Violations int        `yaml:"violations"`
	Runs       []indexRun `yaml:"runs"`
}

type indexRun struct {
	File       string    `yaml:"file"`
	Kind       string    `yaml:"kind"`
	StartedAt  time.Time `yaml:"started_at"`
	Passed     bool      `yaml:"passed"`
	Violations int       `yaml:"violations"`
}

// SaveRun writes the record into dir, creating it when needed. The index is
// not touched; callers regenerate it once per run.
func (rs *LocalReviewStore) SaveRun(dir m.Path, record m.RunRecord) (m.Path, error) {
	if dir == "" {
		return "", fmt.Errorf("reports directory path is required")
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("failed to create reports dir: %w", err)
	}

	doc := toRunYAML(record)

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal run record: %w", err)
	}

	path := filepath.Join(string(dir), rs.computeRunHash(doc)+".yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write run record: %w", err)
	}

	return m.Path(path), nil
}

// ListRuns loads the stored records, newest first.
func (rs *LocalReviewStore) ListRuns(dir m.Path) ([]m.RunRecord, error) {
	if dir == "" {
		return nil, fmt.Errorf("reports directory path is required")
	}

	names, err := rs.runFiles(dir)
	if err != nil {
		return nil, err
	}

	var records []m.RunRecord

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(string(dir), name))
		if err != nil {
			return nil, fmt.Errorf("failed to read run record %s: %w", name, err)
		}

		var doc runYAML
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode run record %s: %w", name, err)
		}

		records = append(records, fromRunYAML(doc))
	}

	sort.Slice(records, func(i, j int) bool { return records[i].StartedAt.After(records[j].StartedAt) })

	return records, nil
}

// RegenerateIndex rewrites _index.yaml from the stored records.
func (rs *LocalReviewStore) RegenerateIndex(dir m.Path) error {
	if dir == "" {
		return fmt.Errorf("reports directory path is required")
	}

	names, err := rs.runFiles(dir)
	if err != nil {
		return err
	}

	indexPath := filepath.Join(string(dir), indexFile)

	if len(names) == 0 {
		if err := os.Remove(indexPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove index: %w", err)
		}

		return nil
	}

	var index indexYAML

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(string(dir), name))
		if err != nil {
			return fmt.Errorf("failed to read run record %s: %w", name, err)
		}

		var doc runYAML
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to decode run record %s: %w", name, err)
		}

		index.TotalRuns++
		if doc.Passed {
			index.PassedRuns++
		} else {
			index.FailedRuns++
		}

		index.Violations += doc.Violations
		index.Runs = append(index.Runs, indexRun{
			File:       name,
			Kind:       doc.Kind,
			StartedAt:  doc.StartedAt,
			Passed:     doc.Passed,
			Violations: doc.Violations,
		})
	}

	sort.Slice(index.Runs, func(i, j int) bool { return index.Runs[i].StartedAt.After(index.Runs[j].StartedAt) })

	data, err := yaml.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}

	if err := os.WriteFile(indexPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}

	return nil
}

// CleanRuns removes all but the newest keep records. A missing reports
// directory is not an error.
func (rs *LocalReviewStore) CleanRuns(dir m.Path, keep int) error {
	if dir == "" {
		return fmt.Errorf("reports directory path is required")
	}

	if keep < 0 {
		keep = 0
	}

	names, err := rs.runFiles(dir)
	if err != nil {
		return err
	}

	type datedFile struct {
		name      string
		startedAt time.Time
	}

	dated := make([]datedFile, 0, len(names))

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(string(dir), name))
		if err != nil {
			return fmt.Errorf("failed to read run record %s: %w", name, err)
		}

		var doc runYAML
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to decode run record %s: %w", name, err)
		}

		dated = append(dated, datedFile{name: name, startedAt: doc.StartedAt})
	}

	sort.Slice(dated, func(i, j int) bool { return dated[i].startedAt.After(dated[j].startedAt) })

	for i := keep; i < len(dated); i++ {
		if err := os.Remove(filepath.Join(string(dir), dated[i].name)); err != nil {
			return fmt.Errorf("failed to remove run record %s: %w", dated[i].name, err)
		}
	}

	return rs.RegenerateIndex(dir)
}

// runFiles lists stored record file names. A missing directory yields an
// empty list.
func (rs *LocalReviewStore) runFiles(dir m.Path) ([]string, error) {
	entries, err := os.ReadDir(string(dir))
	if os.IsNotExist(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read reports dir: %w", err)
	}

	var names []string

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == indexFile || !strings.HasSuffix(name, ".yaml") {
			continue
		}

		names = append(names, name)
	}

	return names, nil
}

// computeRunHash fingerprints the marshaled record. Sixteen hex characters
// keep filenames short while avoiding collisions between runs.
func (rs *LocalReviewStore) computeRunHash(doc runYAML) string {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return ""
	}

	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])[:16]
}

func toRunYAML(record m.RunRecord) runYAML {
	return runYAML{
		Kind:       string(record.Kind),
		StartedAt:  record.StartedAt,
		Passed:     record.Passed,
		Checks:     record.Checks,
		Failed:     record.Failed,
		Violations: record.Violations,
		Kept:       record.Kept,
		Reverted:   record.Reverted,
		Log:        record.Log,
	}
}

func fromRunYAML(doc runYAML) m.RunRecord {
	return m.RunRecord{
		Kind:       m.RunKind(doc.Kind),
		StartedAt:  doc.StartedAt,
		Passed:     doc.Passed,
		Checks:     doc.Checks,
		Failed:     doc.Failed,
		Violations: doc.Violations,
		Kept:       doc.Kept,
		Reverted:   doc.Reverted,
		Log:        doc.Log,
	}
}
