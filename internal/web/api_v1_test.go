package web

import (
	"context"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cortex/favicons/internal/iconset"
)

func newTestMux() http.Handler {
	targets := iconset.DefaultTargets(iconset.Config{PublicDir: "public", IconsDir: "public/icons"})
	return NewDefaultMux(APIV1Config{Targets: targets, MaxSize: 2048})
}

func serve(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIconEndpoint(t *testing.T) {
	tests := []struct {
		target      string
		status      int
		contentType string
	}{
		{"/api/v1/icons/64.png", http.StatusOK, "image/png"},
		{"/api/v1/icons/32.ico", http.StatusOK, "image/x-icon"},
		{"/api/v1/icons/16.bmp", http.StatusOK, "image/bmp"},
		{"/api/v1/icons/16.tiff", http.StatusOK, "image/tiff"},
		{"/api/v1/icons/64.gif", http.StatusUnsupportedMediaType, "application/json; charset=utf-8"},
		{"/api/v1/icons/big.png", http.StatusBadRequest, "application/json; charset=utf-8"},
		{"/api/v1/icons/0.png", http.StatusBadRequest, "application/json; charset=utf-8"},
		{"/api/v1/icons/-4.png", http.StatusBadRequest, "application/json; charset=utf-8"},
		{"/api/v1/icons/4096.png", http.StatusBadRequest, "application/json; charset=utf-8"},
		{"/api/v1/icons/256.ico", http.StatusOK, "image/x-icon"},
		{"/api/v1/icons/257.ico", http.StatusBadRequest, "application/json; charset=utf-8"},
		{"/api/v1/icons/1024.ico", http.StatusBadRequest, "application/json; charset=utf-8"},
	}
	mux := newTestMux()
	for _, tt := range tests {
		rec := serve(t, mux, http.MethodGet, tt.target)
		if rec.Code != tt.status {
			t.Errorf("GET %s status = %d, want %d (%s)", tt.target, rec.Code, tt.status, rec.Body.String())
		}
		if got := rec.Header().Get("Content-Type"); got != tt.contentType {
			t.Errorf("GET %s Content-Type = %q, want %q", tt.target, got, tt.contentType)
		}
	}
}

func TestIconEndpointDecodes(t *testing.T) {
	rec := serve(t, newTestMux(), http.MethodGet, "/api/v1/icons/48.png")
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 48 {
		t.Errorf("width = %d, want 48", img.Bounds().Dx())
	}
}

func TestIconEndpointMethodNotAllowed(t *testing.T) {
	rec := serve(t, newTestMux(), http.MethodPost, "/api/v1/icons/48.png")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", rec.Code)
	}
}

func TestTargetsEndpoint(t *testing.T) {
	rec := serve(t, newTestMux(), http.MethodGet, "/api/v1/targets")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp targetsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Targets) != 9 {
		t.Errorf("got %d targets, want 9", len(resp.Targets))
	}
}

func TestPreviewEndpoint(t *testing.T) {
	rec := serve(t, newTestMux(), http.MethodGet, "/api/v1/preview.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if _, err := png.Decode(rec.Body); err != nil {
		t.Fatal(err)
	}
}

func TestPreviewEndpointWithoutTargets(t *testing.T) {
	rec := serve(t, NewDefaultMux(APIV1Config{}), http.MethodGet, "/api/v1/preview.png")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestDevCORS(t *testing.T) {
	h := WithDevCORS(newTestMux())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/icons/32.png", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q", got)
	}
}

func TestHTTPServerStartStop(t *testing.T) {
	srv := NewHTTPServer(ServerConfig{ListenAddr: "127.0.0.1:0"})
	srv.Handler = newTestMux()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Start(ctx); err != nil {
		t.Fatal(err)
	}
	resp, err := http.Get("http://" + srv.Addr + "/api/v1/icons/16.png")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	if err := srv.Stop(); err != nil {
		t.Fatal(err)
	}
	if err := srv.Start(ctx); err == nil {
		t.Error("Start after Stop should fail")
	}
}

func TestHTTPServerHonorsMaxSize(t *testing.T) {
	srv := NewHTTPServer(ServerConfig{ListenAddr: "127.0.0.1:0", MaxSize: 64})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := srv.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer srv.Stop()

	for target, want := range map[string]int{
		"/api/v1/icons/64.png":  http.StatusOK,
		"/api/v1/icons/128.png": http.StatusBadRequest,
	} {
		resp, err := http.Get("http://" + srv.Addr + target)
		if err != nil {
			t.Fatal(err)
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if resp.StatusCode != want {
			t.Errorf("GET %s status = %d, want %d", target, resp.StatusCode, want)
		}
	}
}

func TestHTTPServerStopReleasesContextWatcher(t *testing.T) {
	srv := NewHTTPServer(ServerConfig{ListenAddr: "127.0.0.1:0"})
	if err := srv.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	srv.mu.Lock()
	stopCh := srv.stopCh
	srv.mu.Unlock()

	if err := srv.Stop(); err != nil {
		t.Fatal(err)
	}
	select {
	case <-stopCh:
	default:
		t.Error("Stop left the context watcher waiting")
	}
}
