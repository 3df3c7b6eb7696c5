// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/web-ghoul/Brainstorming-Server/internal/config"
	"github.com/web-ghoul/Brainstorming-Server/internal/logger"
	"github.com/web-ghoul/Brainstorming-Server/internal/store"
)

// Services bundles all business-logic services behind their interfaces.
type Services struct {
	AuthService
	IdeaService
}

// NewServices wires services to their repositories.
func NewServices(repos *store.Repositories, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, cfg, log),
		IdeaService: NewIdeaService(repos.IdeaRepository, log),
	}
}
