package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/ubelabs/expense-tracker/internal/config"
	"github.com/ubelabs/expense-tracker/internal/middleware"
	"github.com/ubelabs/expense-tracker/internal/repository"
	"github.com/ubelabs/expense-tracker/internal/service"
)

// Handler exposes the HTTP API
type Handler struct {
	svc *service.Service
	cfg *config.Config
	log *logrus.Logger
}

// NewHandler initializes a new handler
func NewHandler(svc *service.Service, cfg *config.Config, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, cfg: cfg, log: log}
}

func (h *Handler) respond(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) message(w http.ResponseWriter, status int, msg string) {
	h.respond(w, status, map[string]string{"message": msg})
}

// respondError maps service and repository errors to status codes; the
// fallback message is used for unexpected failures.
func (h *Handler) respondError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.message(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, repository.ErrInvalidCurrency):
		h.message(w, http.StatusBadRequest, "You gave an invalid currency.")
	case errors.Is(err, service.ErrInvalidCredentials):
		h.message(w, http.StatusBadRequest, "Incorrect credentials")
	case errors.Is(err, service.ErrAccountDisabled):
		h.message(w, http.StatusBadRequest, "This account is disabled. Contact the administrator to enable the account back on")
	case errors.Is(err, repository.ErrDuplicateUsername):
		h.message(w, http.StatusConflict, "Username is already taken")
	case errors.Is(err, repository.ErrDuplicateEmail):
		h.message(w, http.StatusConflict, "Email is already taken")
	case errors.Is(err, repository.ErrNotFound):
		h.message(w, http.StatusNotFound, "The requested resource does not exist.")
	default:
		h.log.Errorf("Unhandled error: %v", err)
		h.message(w, http.StatusInternalServerError, fallback)
	}
}

// authorizedUsername extracts the {username} path variable and verifies
// it matches the authenticated token. Writes a 403 on mismatch.
func (h *Handler) authorizedUsername(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.message(w, http.StatusUnauthorized, "Invalid token. Unable to retrieve information")
		return "", false
	}
	username := mux.Vars(r)["username"]
	if claims.Username != username {
		h.log.Errorf("User %s attempted to access resources of %s", claims.Username, username)
		h.message(w, http.StatusForbidden, "You are unauthorized to retrieve this information.")
		return "", false
	}
	return username, true
}

func sequenceVar(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["sequence"], 10, 64)
}

// parseDate accepts a calendar date, with RFC 3339 as a fallback for
// clients that send full timestamps.
func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}

// parseTimestamp accepts RFC 3339, with a date-only fallback
func parseTimestamp(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
