package htr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "note.png")
	if err := os.WriteFile(path, []byte("not-a-real-png-but-readable"), 0644); err != nil {
		t.Fatalf("write test image: %v", err)
	}
	return path
}

func TestOllamaEngineRecognize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req ollamaGenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Images) != 1 || req.Images[0] == "" {
			t.Errorf("expected one base64 image, got %d", len(req.Images))
		}
		if req.Stream {
			t.Errorf("expected non-streaming request")
		}
		_ = json.NewEncoder(w).Encode(ollamaGenerateResponse{
			Response: "\"Dear diary,\ntoday was fine\"",
			Done:     true,
		})
	}))
	defer srv.Close()

	e := NewOllamaEngine(srv.URL, "test-model")
	got, err := e.Recognize(writeTestImage(t))
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if got != "Dear diary, today was fine" {
		t.Fatalf("unexpected transcript %q", got)
	}
}

func TestOllamaEngineEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(ollamaGenerateResponse{Response: "   ", Done: true})
	}))
	defer srv.Close()

	e := NewOllamaEngine(srv.URL, "test-model")
	if _, err := e.Recognize(writeTestImage(t)); err != ErrNoText {
		t.Fatalf("expected ErrNoText got %v", err)
	}
}

func TestOllamaEngineServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	e := NewOllamaEngine(srv.URL, "missing")
	if _, err := e.Recognize(writeTestImage(t)); err == nil {
		t.Fatalf("expected error on server failure")
	}
}

func TestStripModelWrapping(t *testing.T) {
	cases := map[string]string{
		"\"quoted text\"":       "quoted text",
		"```\nfenced text\n```": "fenced text",
		"plain":                 "plain",
	}
	for in, want := range cases {
		if got := stripModelWrapping(in); got != want {
			t.Fatalf("stripModelWrapping(%q)=%q want %q", in, got, want)
		}
	}
}
