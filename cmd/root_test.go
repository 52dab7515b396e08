package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/szydag/taskdeck/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		BaseURL:        baseURL,
		TimeoutSeconds: 5,
		Filter:         "all",
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := versionCommand(&buf); err != nil {
		t.Fatalf("versionCommand: %v", err)
	}
	if got := buf.String(); got != "taskdeck dev\n" {
		t.Errorf("output: got %q", got)
	}
}

func TestListCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "status=false" {
			t.Errorf("query: got %q, want status=false", r.URL.RawQuery)
		}
		io.WriteString(w, `[{"id":"1","title":"Buy milk","status":false}]`)
	}))
	defer server.Close()

	var buf bytes.Buffer
	err := listCommand(context.Background(), testConfig(server.URL), []string{"--filter", "pending"}, &buf)
	if err != nil {
		t.Fatalf("listCommand: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "tasks (pending): 1") {
		t.Errorf("missing header, got %q", out)
	}
	if !strings.Contains(out, "Buy milk") {
		t.Errorf("missing task line, got %q", out)
	}
}

func TestListCommandBadFilter(t *testing.T) {
	var buf bytes.Buffer
	err := listCommand(context.Background(), testConfig("http://localhost:1"), []string{"--filter", "bogus"}, &buf)
	if err == nil {
		t.Error("expected error for bad filter")
	}
}

func TestAddCommandEmptyTitle(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	var buf bytes.Buffer
	err := addCommand(context.Background(), testConfig(server.URL), []string{"   "}, &buf)
	if err == nil {
		t.Error("expected validation error")
	}
	if called {
		t.Error("no network call should be made for an empty title")
	}
}

func TestAddCommandCreates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: got %s, want POST", r.Method)
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":"abc","title":"Buy milk","status":false}`)
	}))
	defer server.Close()

	var buf bytes.Buffer
	err := addCommand(context.Background(), testConfig(server.URL), []string{"Buy", "milk"}, &buf)
	if err != nil {
		t.Fatalf("addCommand: %v", err)
	}
	if got := buf.String(); got != "created abc\n" {
		t.Errorf("output: got %q", got)
	}
}

func TestDoctorCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":"1","title":"A","status":false}]`)
	}))
	defer server.Close()

	var buf bytes.Buffer
	if err := doctorCommand(context.Background(), testConfig(server.URL), &buf); err != nil {
		t.Fatalf("doctorCommand: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "schema: ok") {
		t.Errorf("missing schema check, got %q", out)
	}
}

func TestDoctorCommandBadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"title":"missing id","status":false}]`)
	}))
	defer server.Close()

	var buf bytes.Buffer
	if err := doctorCommand(context.Background(), testConfig(server.URL), &buf); err == nil {
		t.Error("expected schema validation failure")
	}
}
