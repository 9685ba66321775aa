package assets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestFetchBytesOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	data, err := FetchBytes(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchBytes: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("got %q", data)
	}
}

func TestFetchBytesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := FetchBytes(context.Background(), srv.URL)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Status != http.StatusNotFound {
		t.Fatalf("status = %d", se.Status)
	}
}

func TestFetchBytesTransportError(t *testing.T) {
	// 已关闭的服务器地址：传输层失败，而不是 StatusError
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := FetchBytes(context.Background(), url)
	if err == nil {
		t.Fatalf("expected transport error")
	}
	var se *StatusError
	if errors.As(err, &se) {
		t.Fatalf("transport failure must not be a StatusError")
	}
}

func TestFetchBytesEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	if _, err := FetchBytes(context.Background(), srv.URL); err == nil {
		t.Fatalf("expected error for empty body")
	}
}

func TestReadLocalFontLoudFailures(t *testing.T) {
	if _, err := ReadLocalFont(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Fatalf("missing font must fail")
	}

	empty := filepath.Join(t.TempDir(), "empty.ttf")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ReadLocalFont(empty); err == nil {
		t.Fatalf("zero-length font must fail")
	}

	ok := filepath.Join(t.TempDir(), "ok.ttf")
	if err := os.WriteFile(ok, []byte{0x00, 0x01}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := ReadLocalFont(ok)
	if err != nil || len(data) != 2 {
		t.Fatalf("ReadLocalFont: %v, %d bytes", err, len(data))
	}
}
