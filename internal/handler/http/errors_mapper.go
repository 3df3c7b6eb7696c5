package http

import (
	"errors"
	"net/http"

	"github.com/web-ghoul/Brainstorming-Server/internal/adapter"
	"github.com/web-ghoul/Brainstorming-Server/internal/oauth"
	"github.com/web-ghoul/Brainstorming-Server/internal/service"
	"github.com/web-ghoul/Brainstorming-Server/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrTokenIsInvalid:      http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrIdeaNotFound:       http.StatusNotFound,
	store.ErrNotIdeaOwner:       http.StatusForbidden,
	store.ErrExecutingQuery:     http.StatusInternalServerError,

	adapter.ErrNoFileProvided: http.StatusBadRequest,
	adapter.ErrUploadFailed:   http.StatusBadGateway,

	oauth.ErrUnknownProvider: http.StatusNotFound,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrTooManyRequests:            http.StatusTooManyRequests,
	ErrBodyTooLarge:               http.StatusBadRequest,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrOriginNotAllowed:           http.StatusForbidden,
	ErrRouteNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:           http.StatusMethodNotAllowed,
	ErrNoFilesUploaded:            http.StatusBadRequest,
	ErrInvalidOAuthState:          http.StatusUnauthorized,
	ErrOAuthExchangeFailed:        http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
