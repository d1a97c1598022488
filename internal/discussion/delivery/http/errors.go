package http

import (
	"errors"
	"net/http"

	"physics-writing-assistant/internal/discussion"
	pkgErrors "physics-writing-assistant/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, discussion.ErrNoPersonas),
		errors.Is(err, discussion.ErrEmptyText),
		errors.Is(err, discussion.ErrUnknownPersona),
		errors.Is(err, discussion.ErrDuplicatePersona),
		errors.Is(err, discussion.ErrInvalidMaxIterations):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, discussion.ErrDiscussionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, discussion.ErrRunTimeout):
		return pkgErrors.NewHTTPError(http.StatusGatewayTimeout, discussion.ErrRunTimeout.Error())
	case errors.Is(err, discussion.ErrDiscussionGeneration):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, discussion.ErrDiscussionGeneration.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
