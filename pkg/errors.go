package pkg

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// Error classes shared by the feature packages. Feature errors wrap one of
// these so handlers can map them to a status without knowing the feature.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrNotFound            = errors.New("not found")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err with its mapped status. Internal errors are logged
// and not echoed to the client.
func WriteError(w http.ResponseWriter, op string, err error) {
	status := ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		log.Errorf("%s: %s", op, err)
		http.Error(w, "error, "+op+" failed", status)
		return
	}
	log.Tracef("%s: %s", op, err)
	http.Error(w, err.Error(), status)
}
