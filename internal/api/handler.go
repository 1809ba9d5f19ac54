// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/examprep/backend/internal/domain/question"
	"github.com/examprep/backend/internal/domain/questionbank"
	"github.com/examprep/backend/internal/domain/user"
	"github.com/examprep/backend/internal/service"
	"github.com/examprep/backend/internal/store"
)

// maxBodyBytes caps every request body.
const maxBodyBytes = 1 << 20

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	accounts *service.Accounts
	library  *service.Library
	wrongs   *service.WrongAnswers
	exams    *service.Exams
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(accounts *service.Accounts, library *service.Library, wrongs *service.WrongAnswers, exams *service.Exams, logger *slog.Logger) *Handler {
	return &Handler{
		accounts: accounts,
		library:  library,
		wrongs:   wrongs,
		exams:    exams,
		logger:   logger,
	}
}

// validator is implemented by request types that check their own fields.
type validator interface {
	Validate() error
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads the request body into v. On failure it writes a 400 and
// returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// respondServiceError maps service, store and domain errors to HTTP status
// codes. Returns true if an error was handled (caller should return).
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error, entity string) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, service.ErrForbidden):
		respondError(w, http.StatusForbidden, "not permitted")
	case errors.Is(err, service.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, question.ErrInvalidAnswer),
		errors.Is(err, question.ErrInvalidQuestion),
		errors.Is(err, questionbank.ErrInvalidBank),
		errors.Is(err, user.ErrInvalidName),
		errors.Is(err, service.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("request failed",
			"error", err,
			"entity", entity,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFrom(r.Context()),
		)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
