package adapter

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/redress-dev/redress/internal/model"
)

func reviewRecord(startedAt time.Time, passed bool, violations int) m.RunRecord {
	failed := 0
	if !passed {
		failed = 1
	}

	return m.RunRecord{
		Kind:       m.RunReview,
		StartedAt:  startedAt,
		Passed:     passed,
		Checks:     9,
		Failed:     failed,
		Violations: violations,
		Log:        "review.log",
	}
}

func saveRecord(t *testing.T, store *LocalReviewStore, dir string, record m.RunRecord) string {
	t.Helper()

	path, err := store.SaveRun(m.Path(dir), record)
	if err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}

	return string(path)
}

func TestLocalReviewStore_SaveRun_WritesHashedYAML(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), ".redress")
	store := NewLocalReviewStore()
	startedAt := time.Now().UTC().Truncate(time.Second)

	record := m.RunRecord{
		Kind:       m.RunFix,
		StartedAt:  startedAt,
		Passed:     true,
		Checks:     3,
		Failed:     0,
		Violations: 0,
		Kept:       3,
		Log:        "review.log",
	}

	path := saveRecord(t, store, dir, record)

	pattern := regexp.MustCompile(`^[0-9a-f]{16}\.yaml$`)
	if !pattern.MatchString(filepath.Base(path)) {
		t.Fatalf("unexpected record file name: %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read record: %v", err)
	}

	var doc runYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode record: %v", err)
	}

	if doc.Kind != "fix" {
		t.Errorf("kind = %q, want fix", doc.Kind)
	}

	if !doc.StartedAt.Equal(startedAt) {
		t.Errorf("started_at = %v, want %v", doc.StartedAt, startedAt)
	}

	if !doc.Passed || doc.Checks != 3 || doc.Kept != 3 {
		t.Errorf("unexpected record body: %+v", doc)
	}

	if doc.Log != "review.log" {
		t.Errorf("log = %q, want review.log", doc.Log)
	}
}

func TestLocalReviewStore_SaveRun_EmptyPath_ReturnsError(t *testing.T) {
	t.Parallel()

	_, err := NewLocalReviewStore().SaveRun("", reviewRecord(time.Now(), true, 0))
	if err == nil {
		t.Fatalf("expected error for empty reports dir")
	}

	if !strings.Contains(err.Error(), "reports directory path is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLocalReviewStore_SaveRun_DoesNotWriteIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewLocalReviewStore()

	saveRecord(t, store, dir, reviewRecord(time.Now().UTC().Truncate(time.Second), true, 0))

	if _, err := os.Stat(filepath.Join(dir, indexFile)); !os.IsNotExist(err) {
		t.Fatalf("index written by SaveRun, stat err: %v", err)
	}
}

func TestLocalReviewStore_ListRuns_NewestFirst(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewLocalReviewStore()
	base := time.Now().UTC().Truncate(time.Second)

	saveRecord(t, store, dir, reviewRecord(base.Add(-2*time.Hour), true, 0))
	saveRecord(t, store, dir, reviewRecord(base, false, 5))
	saveRecord(t, store, dir, reviewRecord(base.Add(-time.Hour), true, 0))

	records, err := store.ListRuns(m.Path(dir))
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	if !records[0].StartedAt.Equal(base) || !records[2].StartedAt.Equal(base.Add(-2*time.Hour)) {
		t.Fatalf("records not sorted newest first: %v, %v, %v",
			records[0].StartedAt, records[1].StartedAt, records[2].StartedAt)
	}

	if records[0].Violations != 5 || records[0].Passed {
		t.Fatalf("newest record body lost in roundtrip: %+v", records[0])
	}
}

func TestLocalReviewStore_ListRuns_MissingDir_ReturnsEmpty(t *testing.T) {
	t.Parallel()

	records, err := NewLocalReviewStore().ListRuns(m.Path(filepath.Join(t.TempDir(), "absent")))
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}

	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
}

func TestLocalReviewStore_ListRuns_SkipsIndexAndStrays(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewLocalReviewStore()

	saveRecord(t, store, dir, reviewRecord(time.Now().UTC().Truncate(time.Second), true, 0))

	if err := os.WriteFile(filepath.Join(dir, indexFile), []byte("total_runs: 99\n"), 0o600); err != nil {
		t.Fatalf("seed index: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("scratch\n"), 0o600); err != nil {
		t.Fatalf("seed stray file: %v", err)
	}

	if err := os.Mkdir(filepath.Join(dir, "archive.yaml"), 0o750); err != nil {
		t.Fatalf("seed stray dir: %v", err)
	}

	records, err := store.ListRuns(m.Path(dir))
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestLocalReviewStore_RegenerateIndex_BuildsSummary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewLocalReviewStore()
	base := time.Now().UTC().Truncate(time.Second)

	oldest := saveRecord(t, store, dir, reviewRecord(base.Add(-2*time.Hour), true, 0))
	newest := saveRecord(t, store, dir, reviewRecord(base, false, 5))
	saveRecord(t, store, dir, reviewRecord(base.Add(-time.Hour), false, 2))

	if err := store.RegenerateIndex(m.Path(dir)); err != nil {
		t.Fatalf("RegenerateIndex returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, indexFile))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}

	var index indexYAML
	if err := yaml.Unmarshal(data, &index); err != nil {
		t.Fatalf("decode index: %v", err)
	}

	if index.TotalRuns != 3 || index.PassedRuns != 1 || index.FailedRuns != 2 {
		t.Errorf("unexpected run counts: %+v", index)
	}

	if index.Violations != 7 {
		t.Errorf("violations = %d, want 7", index.Violations)
	}

	if len(index.Runs) != 3 {
		t.Fatalf("got %d index entries, want 3", len(index.Runs))
	}

	if index.Runs[0].File != filepath.Base(newest) || index.Runs[2].File != filepath.Base(oldest) {
		t.Errorf("index entries not sorted newest first: %+v", index.Runs)
	}
}

func TestLocalReviewStore_RegenerateIndex_RemovesIndexWhenEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewLocalReviewStore()

	if err := os.WriteFile(filepath.Join(dir, indexFile), []byte("total_runs: 99\n"), 0o600); err != nil {
		t.Fatalf("seed stale index: %v", err)
	}

	if err := store.RegenerateIndex(m.Path(dir)); err != nil {
		t.Fatalf("RegenerateIndex returned error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, indexFile)); !os.IsNotExist(err) {
		t.Fatalf("stale index not removed, stat err: %v", err)
	}
}

func TestLocalReviewStore_CleanRuns_KeepsNewest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewLocalReviewStore()
	base := time.Now().UTC().Truncate(time.Second)

	saveRecord(t, store, dir, reviewRecord(base.Add(-2*time.Hour), true, 0))
	saveRecord(t, store, dir, reviewRecord(base.Add(-time.Hour), false, 2))
	saveRecord(t, store, dir, reviewRecord(base, false, 5))

	if err := store.CleanRuns(m.Path(dir), 1); err != nil {
		t.Fatalf("CleanRuns returned error: %v", err)
	}

	records, err := store.ListRuns(m.Path(dir))
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("got %d records after clean, want 1", len(records))
	}

	if !records[0].StartedAt.Equal(base) {
		t.Fatalf("kept record is not the newest: %v", records[0].StartedAt)
	}

	data, err := os.ReadFile(filepath.Join(dir, indexFile))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}

	var index indexYAML
	if err := yaml.Unmarshal(data, &index); err != nil {
		t.Fatalf("decode index: %v", err)
	}

	if index.TotalRuns != 1 || index.Violations != 5 {
		t.Fatalf("index not regenerated after clean: %+v", index)
	}
}

func TestLocalReviewStore_CleanRuns_DeleteAll_RemovesIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewLocalReviewStore()
	base := time.Now().UTC().Truncate(time.Second)

	saveRecord(t, store, dir, reviewRecord(base, true, 0))
	saveRecord(t, store, dir, reviewRecord(base.Add(-time.Hour), false, 1))

	if err := store.RegenerateIndex(m.Path(dir)); err != nil {
		t.Fatalf("RegenerateIndex returned error: %v", err)
	}

	if err := store.CleanRuns(m.Path(dir), 0); err != nil {
		t.Fatalf("CleanRuns returned error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read reports dir: %v", err)
	}

	if len(entries) != 0 {
		t.Fatalf("reports dir not emptied: %d entries remain", len(entries))
	}
}

func TestLocalReviewStore_CleanRuns_NegativeKeep_DeletesAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewLocalReviewStore()

	saveRecord(t, store, dir, reviewRecord(time.Now().UTC().Truncate(time.Second), true, 0))

	if err := store.CleanRuns(m.Path(dir), -3); err != nil {
		t.Fatalf("CleanRuns returned error: %v", err)
	}

	records, err := store.ListRuns(m.Path(dir))
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}

	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
}

func TestLocalReviewStore_CleanRuns_MissingDir_NoError(t *testing.T) {
	t.Parallel()

	err := NewLocalReviewStore().CleanRuns(m.Path(filepath.Join(t.TempDir(), "absent")), 2)
	if err != nil {
		t.Fatalf("CleanRuns returned error: %v", err)
	}
}

func TestLocalReviewStore_CleanRuns_EmptyPath_ReturnsError(t *testing.T) {
	t.Parallel()

	err := NewLocalReviewStore().CleanRuns("", 2)
	if err == nil {
		t.Fatalf("expected error for empty reports dir")
	}
}
