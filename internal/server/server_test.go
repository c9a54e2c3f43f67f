package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nakachan-ing/dayspark/internal/model"
)

type stubJournal struct {
	exp      model.Export
	settings model.Settings
	tasks    []model.Task
	schedule []model.ScheduleItem
	feed     []model.Memory
	streak   model.Streak
	query    *string
	err      error
}

func (s stubJournal) Export(context.Context) (model.Export, error) {
	return s.exp, s.err
}

func (s stubJournal) Settings(context.Context) (model.Settings, error) {
	return s.settings, s.err
}

func (s stubJournal) Tasks(_ context.Context, query string) ([]model.Task, error) {
	if s.query != nil {
		*s.query = query
	}
	return s.tasks, s.err
}

func (s stubJournal) Schedule(context.Context) ([]model.ScheduleItem, error) {
	return s.schedule, s.err
}

func (s stubJournal) Memories(context.Context) ([]model.Memory, error) {
	return s.feed, s.err
}

func (s stubJournal) Streak(context.Context) (model.Streak, error) {
	return s.streak, s.err
}

func newTestServer(t *testing.T, j Journal) (*Server, string) {
	t.Helper()
	base := t.TempDir()
	public := filepath.Join(base, "public")
	if err := os.MkdirAll(filepath.Join(public, "img"), 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	files := map[string]string{
		"index.html":   "<h1>DaySpark</h1>",
		"style.css":    "body{}",
		"script.js":    "console.log(1)",
		"img/logo.PNG": "png",
		"data.bin":     "raw",
		"feed.json":    "{}",
		"notes.txt":    "hello",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(public, name), []byte(body), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(base, "secret.txt"), []byte("top secret"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	s, err := New(model.ServerConfig{Addr: "127.0.0.1:0", PublicDir: public}, j, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s, public
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestStaticFiles(t *testing.T) {
	s, _ := newTestServer(t, stubJournal{})
	h := s.Handler()

	tests := []struct {
		target      string
		status      int
		contentType string
		body        string
	}{
		{"/", http.StatusOK, "text/html; charset=utf-8", "<h1>DaySpark</h1>"},
		{"/index.html", http.StatusOK, "text/html; charset=utf-8", "<h1>DaySpark</h1>"},
		{"/style.css", http.StatusOK, "text/css; charset=utf-8", "body{}"},
		{"/script.js", http.StatusOK, "application/javascript; charset=utf-8", "console.log(1)"},
		{"/img/logo.PNG", http.StatusOK, "image/png", "png"},
		{"/data.bin", http.StatusOK, "application/octet-stream", "raw"},
		{"/feed.json", http.StatusOK, "application/json; charset=utf-8", "{}"},
		{"/notes.txt", http.StatusOK, "text/plain; charset=utf-8", "hello"},
		{"/missing.html", http.StatusNotFound, "", "Not Found"},
		{"/img", http.StatusNotFound, "", "Not Found"},
		{"/../secret.txt", http.StatusForbidden, "", "Forbidden"},
		{"/%2e%2e/secret.txt", http.StatusForbidden, "", "Forbidden"},
	}
	for _, tt := range tests {
		rec := get(t, h, tt.target)
		if rec.Code != tt.status {
			t.Fatalf("GET %s status = %d, want %d", tt.target, rec.Code, tt.status)
		}
		if tt.contentType != "" && rec.Header().Get("Content-Type") != tt.contentType {
			t.Fatalf("GET %s Content-Type = %q, want %q", tt.target, rec.Header().Get("Content-Type"), tt.contentType)
		}
		if rec.Body.String() != tt.body {
			t.Fatalf("GET %s body = %q, want %q", tt.target, rec.Body.String(), tt.body)
		}
	}
}

func TestResolvePublic(t *testing.T) {
	root := filepath.FromSlash("/srv/public")
	if got, ok := resolvePublic(root, "/"); !ok || got != filepath.Join(root, "index.html") {
		t.Fatalf("resolvePublic(/) = %q, %v", got, ok)
	}
	if _, ok := resolvePublic(root, "/../public-other/x"); ok {
		t.Fatalf("sibling directory with shared prefix was allowed")
	}
	if _, ok := resolvePublic(root, "/a/../../etc/passwd"); ok {
		t.Fatalf("traversal was allowed")
	}
}

func TestHealthzAndMetrics(t *testing.T) {
	s, _ := newTestServer(t, stubJournal{})
	h := s.Handler()

	if rec := get(t, h, "/healthz"); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("GET /healthz = %d %s", rec.Code, rec.Body.String())
	}
	rec := get(t, h, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "dayspark_http_requests_total") {
		t.Fatalf("metrics missing request counter:\n%s", rec.Body.String())
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("missing %s header", requestIDHeader)
	}
}

func TestExportEndpoint(t *testing.T) {
	exp := model.Export{
		ID:         "abc",
		Notes:      []model.Note{{ID: "1", Text: "hi"}},
		ExportDate: time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local),
	}
	s, _ := newTestServer(t, stubJournal{exp: exp})

	rec := get(t, s.Handler(), "/api/export")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	want := `attachment; filename="dayspark-backup-2024-01-15.json"`
	if got := rec.Header().Get("Content-Disposition"); got != want {
		t.Fatalf("Content-Disposition = %q, want %q", got, want)
	}
	var got model.Export
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.ID != "abc" || len(got.Notes) != 1 {
		t.Fatalf("got = %+v", got)
	}
}

func TestExportEndpointFailure(t *testing.T) {
	s, _ := newTestServer(t, stubJournal{err: errors.New("disk gone")})
	rec := get(t, s.Handler(), "/api/export")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "disk gone") {
		t.Fatalf("internal error leaked: %s", rec.Body.String())
	}
}

func TestThemeCSS(t *testing.T) {
	s, _ := newTestServer(t, stubJournal{settings: model.DefaultSettings()})
	rec := get(t, s.Handler(), "/theme.css")
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "text/css; charset=utf-8" {
		t.Fatalf("GET /theme.css = %d %q", rec.Code, rec.Header().Get("Content-Type"))
	}
	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{"--primary-color: #5b8def;", "--base-font-size: 16px;"} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("theme.css missing %q:\n%s", want, body)
		}
	}
}

func TestViewEndpoints(t *testing.T) {
	var query string
	last := time.Date(2024, 5, 1, 21, 0, 0, 0, time.Local).Format(time.RFC3339)
	j := stubJournal{
		tasks: []model.Task{
			{ID: "b", Text: "File taxes", Priority: model.PriorityHigh},
			{ID: "a", Text: "Buy milk", Priority: model.PriorityLow},
		},
		schedule: []model.ScheduleItem{
			{ID: "s2", Title: "Lunch", Time: "12:00"},
			{ID: "s1", Title: "Standup", Time: "09:30"},
		},
		feed:   []model.Memory{{Kind: model.KindNote, Text: "hello"}},
		streak: model.Streak{Count: 4, LastDate: &last},
		query:  &query,
	}
	s, _ := newTestServer(t, j)
	h := s.Handler()

	rec := get(t, h, "/api/tasks?q=milk")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/tasks status = %d", rec.Code)
	}
	if query != "milk" {
		t.Fatalf("Tasks() query = %q, want milk", query)
	}
	var tasks []model.Task
	if err := json.NewDecoder(rec.Body).Decode(&tasks); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(tasks) != 2 || tasks[0].ID != "b" || tasks[1].ID != "a" {
		t.Fatalf("tasks = %+v, want journal order kept", tasks)
	}

	var items []model.ScheduleItem
	rec = get(t, h, "/api/schedule")
	if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(items) != 2 || items[0].ID != "s2" {
		t.Fatalf("schedule = %+v, want journal order kept", items)
	}

	var feed []model.Memory
	rec = get(t, h, "/api/memories")
	if err := json.NewDecoder(rec.Body).Decode(&feed); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(feed) != 1 || feed[0].Text != "hello" {
		t.Fatalf("memories = %+v", feed)
	}

	var view struct {
		Count int `json:"count"`
	}
	s.now = func() time.Time { return time.Date(2024, 5, 2, 8, 0, 0, 0, time.Local) }
	rec = get(t, h, "/api/streak")
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if view.Count != 4 {
		t.Fatalf("streak the next morning = %d, want 4", view.Count)
	}

	s.now = func() time.Time { return time.Date(2024, 5, 4, 8, 0, 0, 0, time.Local) }
	rec = get(t, h, "/api/streak")
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if view.Count != 0 {
		t.Fatalf("streak after a missed day = %d, want 0", view.Count)
	}
}

func TestViewEndpointsEmptyAndFailure(t *testing.T) {
	s, _ := newTestServer(t, stubJournal{})
	for _, target := range []string{"/api/tasks", "/api/schedule", "/api/memories"} {
		rec := get(t, s.Handler(), target)
		if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
			t.Fatalf("GET %s = %d %s, want empty list", target, rec.Code, rec.Body.String())
		}
	}

	failing, _ := newTestServer(t, stubJournal{err: errors.New("db locked")})
	for _, target := range []string{"/api/tasks", "/api/schedule", "/api/memories", "/api/streak"} {
		rec := get(t, failing.Handler(), target)
		if rec.Code != http.StatusInternalServerError || strings.Contains(rec.Body.String(), "db locked") {
			t.Fatalf("GET %s = %d %s", target, rec.Code, rec.Body.String())
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s, _ := newTestServer(t, stubJournal{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run() did not return after cancel")
	}
}
