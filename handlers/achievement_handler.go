package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"fitnessCheckAPI/services"
)

type AchievementHandler struct {
	achievementService *services.AchievementService
}

func NewAchievementHandler(achievementService *services.AchievementService) *AchievementHandler {
	return &AchievementHandler{
		achievementService: achievementService,
	}
}

func (h *AchievementHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	achievements, err := h.achievementService.GetAchievements(ctx)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, achievements)
}

// EvaluateAchievements re-checks every pending achievement. The meditation
// session count comes from the app, which owns session tracking.
func (h *AchievementHandler) EvaluateAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		MeditationSessions int `json:"meditation_sessions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	unlocked, err := h.achievementService.EvaluateAll(ctx, req.MeditationSessions)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"unlocked":       unlocked,
		"unlocked_count": len(unlocked),
	})
}
