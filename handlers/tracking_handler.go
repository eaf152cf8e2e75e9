package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fitnessCheckAPI/internal/tracking"
	"fitnessCheckAPI/services"
)

type TrackingHandler struct {
	trackingService *services.TrackingService
}

func NewTrackingHandler(trackingService *services.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// UpsertTracking records measurement values. An optional "date" query
// parameter allows backfill; it defaults to today.
func (h *TrackingHandler) UpsertTracking(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	date, err := dateParam(r, time.Now())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}

	var req services.TrackingUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	measurement, err := h.trackingService.UpsertDaily(ctx, date, &req)
	if err != nil {
		if errors.Is(err, tracking.ErrValidation) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, measurement)
}

func (h *TrackingHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	measurement, err := h.trackingService.GetDay(ctx, time.Now())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, measurement)
}

func (h *TrackingHandler) GetTodayStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status, err := h.trackingService.GetDayStatus(ctx, time.Now())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, status)
}

func (h *TrackingHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	year := r.URL.Query().Get("year")
	month := r.URL.Query().Get("month")

	if year == "" || month == "" {
		respondWithError(w, http.StatusBadRequest, "year and month are required")
		return
	}

	var yearInt, monthInt int
	if _, err := fmt.Sscanf(year, "%d", &yearInt); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid year format")
		return
	}
	if _, err := fmt.Sscanf(month, "%d", &monthInt); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid month format")
		return
	}
	if monthInt < 1 || monthInt > 12 {
		respondWithError(w, http.StatusBadRequest, "month must be between 1 and 12")
		return
	}

	calendar, err := h.trackingService.GetCalendar(ctx, yearInt, monthInt)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, calendar)
}

func (h *TrackingHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		if _, err := fmt.Sscanf(raw, "%d", &days); err != nil || days <= 0 {
			respondWithError(w, http.StatusBadRequest, "invalid days parameter")
			return
		}
	}

	summary, err := h.trackingService.GetSummary(ctx, days)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}

func dateParam(r *http.Request, fallback time.Time) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return fallback, nil
	}
	return time.Parse("2006-01-02", raw)
}
