package web

import (
	"net/http"

	"github.com/cortex/favicons/internal/iconset"
	"github.com/cortex/favicons/internal/logging"
)

// APIV1Config carries what the API handlers need.
type APIV1Config struct {
	Targets []iconset.Target
	MaxSize int
	Logger  logging.Logger
}

func (c APIV1Config) withDefaults() APIV1Config {
	if c.MaxSize <= 0 {
		c.MaxSize = DefaultMaxSize
	}
	if c.Logger == nil {
		c.Logger = logging.NoopLogger{}
	}
	return c
}

// RegisterAPIV1 registers the public API routes under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, cfg APIV1Config) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(cfg)))
}

// NewDefaultMux builds the mux served by HTTPServer.
func NewDefaultMux(cfg APIV1Config) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterAPIV1(mux, cfg)
	return mux
}
