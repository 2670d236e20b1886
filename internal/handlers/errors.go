package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/crucial707/twitter-crud/internal/metrics"
	"github.com/crucial707/twitter-crud/internal/repo"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// StatusCodes selects the codes written for a successful single-entity
// lookup and for storage failures the API does not classify.
type StatusCodes struct {
	Found          int
	StorageFailure int
}

// DefaultStatusCodes answers lookups with 200 and unclassified failures with 500.
func DefaultStatusCodes() StatusCodes {
	return StatusCodes{Found: http.StatusOK, StorageFailure: http.StatusInternalServerError}
}

// CompatStatusCodes keeps the legacy wire behavior: 302 Found for lookups
// and 501 Not Implemented for unclassified storage failures.
func CompatStatusCodes() StatusCodes {
	return StatusCodes{Found: http.StatusFound, StorageFailure: http.StatusNotImplemented}
}

func (c StatusCodes) orDefault() StatusCodes {
	d := DefaultStatusCodes()
	if c.Found == 0 {
		c.Found = d.Found
	}
	if c.StorageFailure == 0 {
		c.StorageFailure = d.StorageFailure
	}
	return c
}

// storageStatus maps a repo error onto the response status:
// not found → 404, duplicate → 400, anything else → codes.StorageFailure.
// Unclassified errors are logged and counted.
func storageStatus(r *http.Request, codes StatusCodes, op string, err error) int {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repo.ErrDuplicate):
		return http.StatusBadRequest
	default:
		slog.Error("storage failure",
			"request_id", chimw.GetReqID(r.Context()),
			"op", op,
			"error", err)
		metrics.IncStorageErrors(op)
		return codes.StorageFailure
	}
}
