package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pulsewell/health-insights-api/internal/api/validation"
	"github.com/pulsewell/health-insights-api/internal/domain"
	"github.com/pulsewell/health-insights-api/internal/service"
	"github.com/pulsewell/health-insights-api/pkg/problem"
)

// HealthRecordHandler handles vitals and journal endpoints.
type HealthRecordHandler struct {
	service service.HealthRecordService
}

// NewHealthRecordHandler creates a new HealthRecordHandler.
func NewHealthRecordHandler(service service.HealthRecordService) *HealthRecordHandler {
	return &HealthRecordHandler{service: service}
}

// CreateVitalSign handles POST /v1/users/{userId}/vitals
// @Summary Record a vitals reading
// @Description Record a blood pressure and/or heart rate reading.
// @Tags health-records
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.CreateVitalSignRequest true "Vitals reading"
// @Success 201 {object} domain.VitalSign
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/vitals [post]
func (h *HealthRecordHandler) CreateVitalSign(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateVitalSignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	vs, err := h.service.CreateVitalSign(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("A reading requires heart rate or a full blood pressure pair").Write(w)
		default:
			problem.InternalError("Failed to record vitals").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(vs)
}

// ListVitals handles GET /v1/users/{userId}/vitals
// @Summary List vitals readings
// @Description List a user's vitals readings, newest first, with cursor pagination.
// @Tags health-records
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param from query string false "Start of range (RFC3339)"
// @Param to query string false "End of range (RFC3339)"
// @Param limit query integer false "Page size" default(20) maximum(100)
// @Param cursor query string false "Pagination cursor"
// @Success 200 {object} domain.VitalSignListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/vitals [get]
func (h *HealthRecordHandler) ListVitals(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, filterErr := parseRecordFilter(r)
	if filterErr != nil {
		filterErr.Write(w)
		return
	}

	response, err := h.service.ListVitals(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list vitals").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// CreateJournalEntry handles POST /v1/users/{userId}/journal
// @Summary Record a journal entry
// @Description Record a daily wellness journal entry (sleep, exercise, stress).
// @Tags health-records
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} domain.HealthJournalEntry
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/journal [post]
func (h *HealthRecordHandler) CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateJournalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.CreateJournalEntry(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("An entry requires at least one of sleep, exercise, or stress").Write(w)
		default:
			problem.InternalError("Failed to record journal entry").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry)
}

// ListJournal handles GET /v1/users/{userId}/journal
// @Summary List journal entries
// @Description List a user's journal entries, newest first, with cursor pagination.
// @Tags health-records
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param from query string false "Start of range (RFC3339)"
// @Param to query string false "End of range (RFC3339)"
// @Param limit query integer false "Page size" default(20) maximum(100)
// @Param cursor query string false "Pagination cursor"
// @Success 200 {object} domain.JournalListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/journal [get]
func (h *HealthRecordHandler) ListJournal(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, filterErr := parseRecordFilter(r)
	if filterErr != nil {
		filterErr.Write(w)
		return
	}

	response, err := h.service.ListJournal(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list journal entries").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// parseRecordFilter parses the shared from/to/limit/cursor query params.
func parseRecordFilter(r *http.Request) (domain.RecordFilter, *problem.Problem) {
	filter := domain.RecordFilter{
		Cursor: r.URL.Query().Get("cursor"),
	}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return filter, problem.BadRequest("from must be an RFC3339 timestamp")
		}
		filter.From = &from
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			return filter, problem.BadRequest("to must be an RFC3339 timestamp")
		}
		filter.To = &to
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return filter, problem.BadRequest("limit must be a non-negative integer")
		}
		filter.Limit = limit
	}

	return filter, nil
}
