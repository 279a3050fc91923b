package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/cortex/favicons/internal/iconset"
	"github.com/cortex/favicons/internal/render"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type targetsResponse struct {
	Targets []iconset.Target `json:"targets"`
}

func apiV1Router(cfg APIV1Config) http.Handler {
	cfg = cfg.withDefaults()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /icons/{name}", func(w http.ResponseWriter, r *http.Request) { handleIcon(w, r, cfg) })
	mux.HandleFunc("GET /targets", func(w http.ResponseWriter, r *http.Request) { handleTargets(w, r, cfg) })
	mux.HandleFunc("GET /preview.png", func(w http.ResponseWriter, r *http.Request) { handlePreview(w, r, cfg) })
	return mux
}

// parseIconName splits "64.png" into a size and format.
func parseIconName(name string) (int, iconset.Format, error) {
	ext := path.Ext(name)
	size, err := strconv.Atoi(strings.TrimSuffix(name, ext))
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q", render.ErrInvalidSize, name)
	}
	format, err := iconset.ParseFormat(ext)
	if err != nil {
		return size, "", err
	}
	return size, format, nil
}

func handleIcon(w http.ResponseWriter, r *http.Request, cfg APIV1Config) {
	size, format, err := parseIconName(r.PathValue("name"))
	switch {
	case errors.Is(err, iconset.ErrUnsupportedFormat):
		writeAPIError(w, http.StatusUnsupportedMediaType, "unsupported_format", err.Error())
		return
	case err != nil:
		writeAPIError(w, http.StatusBadRequest, "invalid_size", err.Error())
		return
	}
	if size > cfg.MaxSize {
		writeAPIError(w, http.StatusBadRequest, "invalid_size", fmt.Sprintf("size must be at most %d", cfg.MaxSize))
		return
	}

	img, err := render.Render(size)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_size", err.Error())
		return
	}
	// Encode fully before answering: ICO can't hold images above 256px.
	var buf bytes.Buffer
	if err := iconset.Encode(&buf, img, format); err != nil {
		cfg.Logger.Errorf("web", "encode %dx%d %s: %v", size, size, format, err)
		writeAPIError(w, http.StatusBadRequest, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	_, _ = buf.WriteTo(w)
}

func handleTargets(w http.ResponseWriter, r *http.Request, cfg APIV1Config) {
	targets := cfg.Targets
	if targets == nil {
		targets = []iconset.Target{}
	}
	writeJSON(w, http.StatusOK, targetsResponse{Targets: targets})
}

func handlePreview(w http.ResponseWriter, r *http.Request, cfg APIV1Config) {
	// A generator per request keeps its render cache off shared state.
	sheet, err := iconset.NewGenerator(cfg.Logger).Sheet(cfg.Targets)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, render.ErrEmptySheet) {
			status = http.StatusNotFound
		}
		writeAPIError(w, status, "preview_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", iconset.FormatPNG.ContentType())
	if err := iconset.Encode(w, sheet, iconset.FormatPNG); err != nil {
		cfg.Logger.Errorf("web", "encode preview: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
