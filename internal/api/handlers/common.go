package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/krit/mlbb-counter-website/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusFor maps domain errors onto HTTP statuses: lookup misses are 404,
// validation and import failures are 400, anything else is a server fault.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrHeroNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrIndexOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyID),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrIDConflictsWithBase),
		errors.Is(err, domain.ErrEmptyEnemyTags),
		errors.Is(err, domain.ErrEmptyCounterID),
		errors.Is(err, domain.ErrEmptyReason),
		errors.Is(err, domain.ErrInvalidDifficulty),
		errors.Is(err, domain.ErrEmptyItemIDs),
		errors.Is(err, domain.ErrEmptyTargetHeroes),
		errors.Is(err, domain.ErrInvalidPhase),
		errors.Is(err, domain.ErrInvalidLane),
		errors.Is(err, domain.ErrInvalidTier),
		errors.Is(err, domain.ErrInvalidImport):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
