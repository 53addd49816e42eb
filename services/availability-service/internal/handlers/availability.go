package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/agendly/agendly/services/availability-service/internal/availability"
	"github.com/agendly/agendly/services/availability-service/internal/cache"
	"github.com/agendly/agendly/services/availability-service/internal/snapshot"
	"github.com/jackc/pgx/v5"
)

// SnapshotLoader gathers the schedule and booking state for one query.
type SnapshotLoader interface {
	Load(ctx context.Context, orgID, employeeID, date string) (snapshot.Snapshot, error)
}

type AvailabilityHandler struct {
	loader SnapshotLoader
	cache  *cache.SlotCache
	logger *slog.Logger
}

func NewAvailabilityHandler(loader SnapshotLoader, slotCache *cache.SlotCache, logger *slog.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{loader: loader, cache: slotCache, logger: logger}
}

type slotItem struct {
	Time      string `json:"time"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

type availabilityResponse struct {
	OrganizationID string     `json:"organization_id"`
	EmployeeID     string     `json:"employee_id,omitempty"`
	Date           string     `json:"date"`
	Timezone       string     `json:"timezone"`
	Closed         bool       `json:"closed"`
	Slots          []slotItem `json:"slots"`
}

// Day serves GET /api/v1/public/availability. step_minutes defaults to the
// organization's configured interval when omitted.
func (h *AvailabilityHandler) Day(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	orgID := strings.TrimSpace(q.Get("organization_id"))
	date := strings.TrimSpace(q.Get("date"))
	employeeID := strings.TrimSpace(q.Get("employee_id"))
	durationStr := strings.TrimSpace(q.Get("duration_minutes"))
	stepStr := strings.TrimSpace(q.Get("step_minutes"))

	if orgID == "" || date == "" || durationStr == "" {
		http.Error(w, "organization_id, date and duration_minutes are required", http.StatusBadRequest)
		return
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		http.Error(w, "duration_minutes must be an integer", http.StatusBadRequest)
		return
	}

	// step 0 means "organization default", resolved after the snapshot load.
	step := 0
	if stepStr != "" {
		step, err = strconv.Atoi(stepStr)
		if err != nil {
			http.Error(w, "step_minutes must be an integer", http.StatusBadRequest)
			return
		}
	}

	ctx := r.Context()
	if body, ok := h.cache.Get(ctx, orgID, employeeID, date, duration, step); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		return
	}

	snap, err := h.loader.Load(ctx, orgID, employeeID, date)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			http.Error(w, "organization or employee not found", http.StatusNotFound)
		case availability.IsValidation(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error("snapshot load failed", "err", err, "organization_id", orgID)
			http.Error(w, "failed to load schedule data", http.StatusInternalServerError)
		}
		return
	}

	effectiveStep := step
	if effectiveStep == 0 {
		effectiveStep = snap.Organization.SlotStepMinutes
		if effectiveStep <= 0 {
			effectiveStep = 30
		}
	}

	res, err := availability.Compute(availability.ComputeInput{
		Date:            date,
		Timezone:        snap.Organization.Timezone,
		Schedule:        snap.Schedule,
		Overrides:       snap.Overrides,
		DurationMinutes: duration,
		StepMinutes:     effectiveStep,
		Bookings:        snap.Bookings,
	})
	if err != nil {
		if availability.IsValidation(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("availability compute failed", "err", err, "organization_id", orgID)
		http.Error(w, "failed to compute availability", http.StatusInternalServerError)
		return
	}

	resp := availabilityResponse{
		OrganizationID: orgID,
		EmployeeID:     employeeID,
		Date:           date,
		Timezone:       snap.Organization.Timezone,
		Closed:         res.Closed,
		Slots:          make([]slotItem, 0, len(res.Slots)),
	}
	for _, s := range res.Slots {
		resp.Slots = append(resp.Slots, slotItem{
			Time:      s.LocalTime,
			StartTime: s.Start.Format(time.RFC3339),
			EndTime:   s.End.Format(time.RFC3339),
			Available: s.Available,
		})
	}

	body, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "failed to build response", http.StatusInternalServerError)
		return
	}

	h.cache.Set(ctx, orgID, employeeID, date, duration, step, body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
