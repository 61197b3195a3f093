package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"trek-tango/internal/trek-service/core/myerrors"
)

// jsonResponse writes the given data as a JSON-encoded HTTP response.
func jsonResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// JsonError writes an error response as JSON with the specified HTTP status code.
func JsonError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
		"code":  code,
	})
}

// statusFromError maps the core error taxonomy to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, myerrors.ErrSessionNotFound),
		errors.Is(err, myerrors.ErrPlaceNotFound):
		return http.StatusNotFound
	case errors.Is(err, myerrors.ErrEmptyDestinationSet),
		errors.Is(err, myerrors.ErrDuplicatePlaceID),
		errors.Is(err, myerrors.ErrMissingPlaceID),
		errors.Is(err, myerrors.ErrFieldIsEmpty),
		errors.Is(err, myerrors.ErrInvalidLatitude),
		errors.Is(err, myerrors.ErrInvalidLongitude):
		return http.StatusBadRequest
	case errors.Is(err, myerrors.ErrProviderUnavailable),
		errors.Is(err, myerrors.ErrNoRouteFound):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
