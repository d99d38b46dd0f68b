package download

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/fireflies-dl/errors"
	"github.com/johnquangdev/fireflies-dl/internal/fireflies"
	"github.com/johnquangdev/fireflies-dl/pkg/config"
)

const testPayload = `{"data":{"transcript":{"title":"Weekly Sync","id":"abc123","duration":125,"date":1756200000000,"participants":["alice@example.com"],"sentences":[{"text":"hi","speaker_name":"Alice","start_time":0,"end_time":2}],"summary":{"keywords":["sync"],"action_items":["Send notes"],"overview":"Short sync.","shorthand_bullet":""}}}}`

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client := fireflies.NewClient(&config.Config{
		APIKey:      "test-key",
		BaseURL:     ts.URL,
		HTTPTimeout: 5 * time.Second,
	}, zap.NewNop())
	return NewService(client, zap.NewNop())
}

func serveTranscript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(testPayload))
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRun_FormatBoth(t *testing.T) {
	svc := newTestService(t, serveTranscript)
	dir := t.TempDir()

	if err := svc.Run(context.Background(), "abc123", Options{OutputDir: dir, Format: FormatBoth}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := listDir(t, dir)
	if len(got) != 2 {
		t.Fatalf("expected 2 files, got %v", got)
	}
}

func TestRun_FormatJSONOnly(t *testing.T) {
	svc := newTestService(t, serveTranscript)
	dir := t.TempDir()

	if err := svc.Run(context.Background(), "abc123", Options{OutputDir: dir, Format: FormatJSON}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := listDir(t, dir)
	if len(got) != 1 || got[0] != "abc123.json" {
		t.Fatalf("expected only abc123.json, got %v", got)
	}
}

func TestRun_FormatTxtOnly(t *testing.T) {
	svc := newTestService(t, serveTranscript)
	dir := t.TempDir()

	if err := svc.Run(context.Background(), "abc123", Options{OutputDir: dir, Format: FormatTxt}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := listDir(t, dir)
	if len(got) != 1 || got[0] != "abc123.txt" {
		t.Fatalf("expected only abc123.txt, got %v", got)
	}
}

func TestRun_NormalizesURLReference(t *testing.T) {
	svc := newTestService(t, serveTranscript)
	dir := t.TempDir()

	ref := "https://app.fireflies.ai/view/abc123?tab=summary"
	if err := svc.Run(context.Background(), ref, Options{OutputDir: dir, Format: FormatTxt}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "abc123.txt")); err != nil {
		t.Fatalf("expected abc123.txt: %v", err)
	}
}

func TestRun_JSONRoundTrip(t *testing.T) {
	svc := newTestService(t, serveTranscript)
	dir := t.TempDir()

	if err := svc.Run(context.Background(), "abc123", Options{OutputDir: dir, Format: FormatJSON}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	written, err := os.ReadFile(filepath.Join(dir, "abc123.json"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var got, want map[string]interface{}
	if err := json.Unmarshal(written, &got); err != nil {
		t.Fatalf("written file is not valid JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(testPayload), &want); err != nil {
		t.Fatalf("bad test payload: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatal("round-tripped JSON differs from API payload")
	}

	// Indented output must preserve field order as received
	if !strings.Contains(string(written), "\n  \"data\"") {
		t.Error("output is not indented")
	}
	if strings.Index(string(written), "\"title\"") > strings.Index(string(written), "\"id\"") {
		t.Error("field order not preserved")
	}
}

func TestRun_TextContent(t *testing.T) {
	svc := newTestService(t, serveTranscript)
	dir := t.TempDir()

	if err := svc.Run(context.Background(), "abc123", Options{OutputDir: dir, Format: FormatTxt}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out, err := os.ReadFile(filepath.Join(dir, "abc123.txt"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	for _, want := range []string{"TITLE: Weekly Sync", "--- SUMMARY ---", "--- Alice ---", "[00:00] hi"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRun_CreatesOutputDir(t *testing.T) {
	svc := newTestService(t, serveTranscript)
	dir := filepath.Join(t.TempDir(), "nested", "out")

	if err := svc.Run(context.Background(), "abc123", Options{OutputDir: dir, Format: FormatBoth}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "abc123.json")); err != nil {
		t.Fatalf("output dir not created: %v", err)
	}
}

func TestRun_InvalidFormat(t *testing.T) {
	called := false
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	dir := t.TempDir()

	err := svc.Run(context.Background(), "abc123", Options{OutputDir: dir, Format: "xml"})
	if code := apperrors.CodeOf(err); code != apperrors.ErrorCode_INVALID_INPUT {
		t.Fatalf("error code = %s, want INVALID_INPUT (err: %v)", code, err)
	}
	if called {
		t.Error("fetch attempted despite invalid options")
	}
	if got := listDir(t, dir); len(got) != 0 {
		t.Errorf("unexpected files written: %v", got)
	}
}

func TestRun_FetchErrorWritesNothing(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	dir := t.TempDir()

	err := svc.Run(context.Background(), "abc123", Options{OutputDir: dir, Format: FormatBoth})
	if code := apperrors.CodeOf(err); code != apperrors.ErrorCode_AUTHENTICATION {
		t.Fatalf("error code = %s, want AUTHENTICATION (err: %v)", code, err)
	}
	if got := listDir(t, dir); len(got) != 0 {
		t.Errorf("unexpected files written: %v", got)
	}
}

func TestRun_WriteFailure(t *testing.T) {
	svc := newTestService(t, serveTranscript)

	// A regular file where the output directory should be
	base := t.TempDir()
	blocker := filepath.Join(base, "blocked")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	err := svc.Run(context.Background(), "abc123", Options{OutputDir: blocker, Format: FormatBoth})
	if code := apperrors.CodeOf(err); code != apperrors.ErrorCode_FILE_WRITE {
		t.Fatalf("error code = %s, want FILE_WRITE (err: %v)", code, err)
	}
}
