package telemetry

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelWarn},
		{"loud", slog.LevelWarn},
	}
	for _, tt := range tests {
		if got := LogLevel(tt.in); got != tt.want {
			t.Errorf("LogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := SetupLogger(&buf, LogConfig{Level: "WARN", Format: "json"})
	logger.Info("hidden")
	logger.Warn("shown", "family", "project")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info must be filtered at WARN")
	}
	if !strings.Contains(out, `"family":"project"`) {
		t.Errorf("expected json output, got %q", out)
	}

	buf.Reset()
	logger = SetupLogger(&buf, LogConfig{Level: "ERROR", Verbose: true})
	logger.Debug("request", "status", 200)
	if !strings.Contains(buf.String(), "status=200") {
		t.Errorf("verbose should enable debug text output, got %q", buf.String())
	}
}

func TestFromContext(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Error("expected logger from context")
	}
	if FromContext(context.Background()) != slog.Default() {
		t.Error("expected default logger")
	}
}

func TestMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	m := NewMetrics()
	client := &http.Client{Transport: m.RoundTripper(nil)}
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	m.ObserveCommand("project list", nil)
	m.ObserveCommand("project list", errors.New("boom"))

	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	counts := map[string]int{}
	for _, f := range families {
		counts[f.GetName()] = len(f.GetMetric())
	}
	if counts["cloudctl_http_requests_total"] != 1 {
		t.Errorf("expected one request series, got %d", counts["cloudctl_http_requests_total"])
	}
	if counts["cloudctl_http_request_duration_seconds"] != 1 {
		t.Errorf("expected one duration series, got %d", counts["cloudctl_http_request_duration_seconds"])
	}
	if counts["cloudctl_commands_total"] != 2 {
		t.Errorf("expected ok and error series, got %d", counts["cloudctl_commands_total"])
	}

	path := filepath.Join(t.TempDir(), "cloudctl.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("write textfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(data), `cloudctl_http_requests_total{code="404",method="get"} 1`) {
		t.Errorf("unexpected textfile contents:\n%s", data)
	}
}
