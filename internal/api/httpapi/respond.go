package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/financegpt/internal/logger"
	"max.ks1230/financegpt/internal/model/ledger"
	"max.ks1230/financegpt/internal/model/period"
)

var (
	errInvalidUser = errors.New("invalid user id")
	errBadBody     = errors.New("malformed request body")
	errUnknownCoin = errors.New("unknown coin")
	errBadDate     = errors.New("dates must look like 2006-01-02")
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("cannot encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusOf maps domain errors to HTTP statuses.
func statusOf(err error) int {
	switch {
	case errors.Is(err, ledger.ErrExpenseNotFound),
		errors.Is(err, ledger.ErrIncomeNotFound),
		errors.Is(err, ledger.ErrGoalNotFound),
		errors.Is(err, ledger.ErrHoldingNotFound),
		errors.Is(err, ledger.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrCategoryExists),
		errors.Is(err, ledger.ErrFallbackCategory):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrEmptyName),
		errors.Is(err, period.ErrInvalidWindow),
		errors.Is(err, errInvalidUser),
		errors.Is(err, errBadBody),
		errors.Is(err, errUnknownCoin),
		errors.Is(err, errBadDate):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeFailure(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, errors.Cause(err).Error())
}

func decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Wrap(errBadBody, err.Error())
	}
	return nil
}

func userID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		return 0, errInvalidUser
	}
	return id, nil
}
