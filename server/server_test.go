package server

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdobasha2004/newscard/renderer"
	"github.com/abdobasha2004/newscard/scene"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type okRenderer struct{}

func (okRenderer) Render(ctx context.Context, sc *scene.Scene, font *scene.FontBinding) ([]byte, error) {
	return []byte("png-bytes"), nil
}

type timeoutRenderer struct{}

func (timeoutRenderer) Render(ctx context.Context, sc *scene.Scene, font *scene.FontBinding) ([]byte, error) {
	return nil, &renderer.RenderTimeout{Timeout: time.Second, Err: context.DeadlineExceeded}
}

func backgroundBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func newTestServer(t *testing.T, r renderer.Renderer) *Server {
	t.Helper()
	s := New(r, []byte{0x00, 0x01}, nil, nil, time.Second)
	bg := backgroundBytes(t)
	s.fetch = func(ctx context.Context, url string) ([]byte, error) {
		if url == "bad://" {
			return nil, fmt.Errorf("抓取失败")
		}
		return bg, nil
	}
	return s
}

func do(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := do(t, newTestServer(t, okRenderer{}), "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestRenderCardOK(t *testing.T) {
	w := do(t, newTestServer(t, okRenderer{}), "/card?title=%D8%B9%D8%A7%D8%AC%D9%84&image=https://example.com/bg.jpg")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content-type = %q", ct)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}
	if w.Body.String() != "png-bytes" {
		t.Fatalf("unexpected body")
	}
}

func TestRenderCardMissingImage(t *testing.T) {
	w := do(t, newTestServer(t, okRenderer{}), "/card?title=x")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestRenderCardFetchFailureIs502(t *testing.T) {
	w := do(t, newTestServer(t, okRenderer{}), "/card?image=bad://")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestRenderCardZeroWidthIs400(t *testing.T) {
	w := do(t, newTestServer(t, okRenderer{}), "/card?image=https://example.com/bg.jpg&width=0")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestRenderCardTimeoutIs504(t *testing.T) {
	w := do(t, newTestServer(t, timeoutRenderer{}), "/card?image=https://example.com/bg.jpg")
	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestRenderCardEmptyFontIs500(t *testing.T) {
	s := newTestServer(t, okRenderer{})
	s.FontBytes = nil
	w := do(t, s, "/card?image=https://example.com/bg.jpg")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
}
