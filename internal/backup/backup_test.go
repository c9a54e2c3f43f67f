package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nakachan-ing/dayspark/internal/model"
	"github.com/nakachan-ing/dayspark/internal/util"
)

type stubExporter struct {
	exp model.Export
}

func (s stubExporter) Export(context.Context) (model.Export, error) {
	return s.exp, nil
}

func testExport() model.Export {
	return model.Export{
		ID:         "e1",
		Notes:      []model.Note{{ID: "n1", Text: "hello"}},
		Settings:   model.DefaultSettings(),
		ExportDate: time.Date(2024, 6, 2, 21, 0, 0, 0, time.Local),
	}
}

func TestEncodeUsesExportFieldNames(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testExport()); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, key := range []string{"id", "notes", "quickLogs", "photos", "schedule", "tasks", "moods", "streak", "settings", "exportDate"} {
		if _, ok := doc[key]; !ok {
			t.Fatalf("export is missing %q: %s", key, buf.String())
		}
	}
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path, err := WriteFile(dir, testExport())
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if filepath.Base(path) != "dayspark-backup-2024-06-02.json" {
		t.Fatalf("path = %q", path)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("entries = %v, want only the snapshot", entries)
	}

	var got model.Export
	data, _ := os.ReadFile(path)
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.ID != "e1" || len(got.Notes) != 1 {
		t.Fatalf("got = %+v", got)
	}
}

func TestRunnerRunAndPrune(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 6, 2, 23, 30, 0, 0, time.Local)

	old := filepath.Join(dir, util.BackupFileName(now.AddDate(0, 0, -40)))
	if err := os.WriteFile(old, []byte("{}"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := os.Chtimes(old, now.AddDate(0, 0, -40), now.AddDate(0, 0, -40)); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}
	unrelated := filepath.Join(dir, "keep.txt")
	if err := os.WriteFile(unrelated, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := os.Chtimes(unrelated, now.AddDate(0, 0, -40), now.AddDate(0, 0, -40)); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}

	r := NewRunner(stubExporter{exp: testExport()}, model.BackupConfig{BackupDir: dir, Retention: 30}, nil)
	r.now = func() time.Time { return now }

	path, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot missing: %v", err)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Fatalf("expired snapshot still present (err = %v)", err)
	}
	if _, err := os.Stat(unrelated); err != nil {
		t.Fatalf("unrelated file removed: %v", err)
	}
}

func TestBuildDailySpec(t *testing.T) {
	spec, err := buildDailySpec("23:30")
	if err != nil {
		t.Fatalf("buildDailySpec() error = %v", err)
	}
	if spec != "0 30 23 * * *" {
		t.Fatalf("spec = %q", spec)
	}
	for _, bad := range []string{"24:00", "7:30", "noon"} {
		if _, err := buildDailySpec(bad); err == nil {
			t.Fatalf("buildDailySpec(%q) error = nil", bad)
		}
	}
}

func TestSchedulerRegistersDailyJob(t *testing.T) {
	s := NewScheduler(time.Local)
	if _, err := s.ScheduleDaily("06:00", func() {}); err != nil {
		t.Fatalf("ScheduleDaily() error = %v", err)
	}
	if got := len(s.Entries()); got != 1 {
		t.Fatalf("entries = %d, want 1", got)
	}
	s.Start()
	s.Stop()
}
