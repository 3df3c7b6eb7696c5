package http

import (
	"fmt"

	"github.com/web-ghoul/Brainstorming-Server/internal/adapter"
	"github.com/web-ghoul/Brainstorming-Server/internal/config"
	"github.com/web-ghoul/Brainstorming-Server/internal/docs"
	"github.com/web-ghoul/Brainstorming-Server/internal/logger"
	"github.com/web-ghoul/Brainstorming-Server/internal/oauth"
	"github.com/web-ghoul/Brainstorming-Server/internal/ratelimit"
	"github.com/web-ghoul/Brainstorming-Server/internal/service"
	"github.com/web-ghoul/Brainstorming-Server/internal/session"
)

type Handler struct {
	services   *service.Services
	uploader   adapter.ImageUploader
	sessions   session.Store
	limiter    ratelimit.Limiter
	strategies *oauth.Registry
	cfg        *config.StructuredConfig

	openapiDoc []byte
	docsPage   []byte

	logger *logger.Logger
}

// NewHandler wires the transport layer. The OpenAPI document is generated
// once here; route handlers serve the cached bytes.
func NewHandler(
	services *service.Services,
	uploader adapter.ImageUploader,
	sessions session.Store,
	limiter ratelimit.Limiter,
	strategies *oauth.Registry,
	cfg *config.StructuredConfig,
	log *logger.Logger,
) (*Handler, error) {
	openapiDoc, err := docs.Document(docs.Info{
		Title:       "Brainstorming API",
		Version:     cfg.App.Version,
		Description: "Idea sharing backend",
		ServerURL:   "http://" + cfg.Server.HTTPAddress,
	})
	if err != nil {
		return nil, fmt.Errorf("build openapi document: %w", err)
	}

	log.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		uploader:   uploader,
		sessions:   sessions,
		limiter:    limiter,
		strategies: strategies,
		cfg:        cfg,
		openapiDoc: openapiDoc,
		docsPage:   docs.UI("Brainstorming API", "/api-docs/openapi.json"),
		logger:     log,
	}, nil
}
