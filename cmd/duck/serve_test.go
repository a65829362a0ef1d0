package main

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postEval(t *testing.T, src string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/repl/eval", strings.NewReader(src))
	rec := httptest.NewRecorder()
	handleEval(rec, req)
	return rec
}

func TestEvalEndpoint(t *testing.T) {
	rec := postEval(t, "(+ 2 3)")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "5" {
		t.Errorf("expected 5, got %q", got)
	}
}

func TestEvalEndpointReportsEvalErrors(t *testing.T) {
	rec := postEval(t, "(/ 1 0)")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "Error: division by zero" {
		t.Errorf("unexpected body %q", got)
	}
}

func TestEvalEndpointIsolatesRequests(t *testing.T) {
	if got := strings.TrimSpace(postEval(t, "(defvar leak 1)").Body.String()); got != "1" {
		t.Fatalf("unexpected response %q", got)
	}
	got := strings.TrimSpace(postEval(t, "leak").Body.String())
	if got != "Error: unbound symbol: leak" {
		t.Errorf("bindings leaked across requests: %q", got)
	}
}

func TestEvalEndpointMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/repl/eval", nil)
	rec := httptest.NewRecorder()
	handleEval(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestEvalEndpointBadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/repl/eval", failingReader{})
	rec := httptest.NewRecorder()
	handleEval(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestServerRoutes(t *testing.T) {
	srv := httptest.NewServer(newMux())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/repl/eval", "text/plain", strings.NewReader("(* 6 7)"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	if got := strings.TrimSpace(string(body)); got != "42" {
		t.Errorf("expected 42, got %q", got)
	}

	resp, err = http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 from index, got %d", resp.StatusCode)
	}
}
