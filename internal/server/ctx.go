package server

import (
	"github.com/evergreenlab/plantmap/internal/config"

	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

// defaultMaxUpload bounds request bodies when the config does not.
const defaultMaxUpload = 50 << 20

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config   *config.Config
	minifier *minify.M
}

// NewServerContext initializes the context and resolves config defaults.
func NewServerContext(cfg *config.Config) *ServerContext {
	if cfg.MaxUploadSize <= 0 {
		cfg.MaxUploadSize = defaultMaxUpload
	}

	m := minify.New()
	m.AddFunc("application/json", mjson.Minify)

	log.Info().
		Int64("max_upload_bytes", cfg.MaxUploadSize).
		Bool("compact", cfg.Compact).
		Msg("Server context initialized")

	return &ServerContext{Config: cfg, minifier: m}
}
