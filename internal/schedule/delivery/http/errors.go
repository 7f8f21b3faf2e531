package http

import (
	"errors"
	"net/http"

	"calendar-converter/internal/extraction"
	"calendar-converter/internal/schedule"
	"calendar-converter/pkg/datemath"
	pkgErrors "calendar-converter/pkg/errors"
)

var (
	errMissingFile  = pkgErrors.NewHTTPError(http.StatusBadRequest, "multipart field \"file\" is required")
	errInvalidBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "request body must be JSON with a non-empty \"text\" field")
	errInvalidFmt   = pkgErrors.NewHTTPError(http.StatusBadRequest, "format must be ics or json")
	errBodyTooLarge = pkgErrors.NewHTTPError(http.StatusBadRequest, "request body exceeds the upload limit")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var (
		unparsable  *datemath.UnparsableDateError
		invalid     *datemath.InvalidDateError
		malformed   *extraction.MalformedResponseError
		engine      *extraction.EngineError
		unsupported *schedule.UnsupportedInputError
	)

	switch {
	case errors.Is(err, schedule.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.As(err, &unsupported):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, unsupported.Error())
	case errors.As(err, &unparsable), errors.As(err, &invalid):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &malformed):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "could not read events from the engine response")
	case errors.As(err, &engine):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "event extraction service is unavailable")
	default:
		// SerializationError and anything unexpected.
		return pkgErrors.ErrInternalServerError
	}
}
