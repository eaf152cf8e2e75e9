package handlers

import (
	"context"
	"net/http"
	"time"

	"fitnessCheckAPI/services"
)

type SyncHandler struct {
	syncService *services.FitnessSyncService
}

func NewSyncHandler(syncService *services.FitnessSyncService) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
	}
}

// SyncFitness pulls today's aggregates from the tracker API. An optional
// "date" query parameter syncs an earlier day. The tracker client fails
// soft, so a dead API still answers 200 with zero values.
func (h *SyncHandler) SyncFitness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	date, err := dateParam(r, time.Now())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}

	data, err := h.syncService.SyncDate(ctx, date)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, data)
}
