package http

import (
	"errors"
	"net/http"

	"physics-writing-assistant/internal/review"
	pkgErrors "physics-writing-assistant/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, review.ErrEmptyText),
		errors.Is(err, review.ErrUnknownSection),
		errors.Is(err, review.ErrUnknownFormat):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, review.ErrReviewGeneration),
		errors.Is(err, review.ErrInvalidModelOutput):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
