package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/brycegym/gymapp-backend/internal/services"
	"github.com/brycegym/gymapp-backend/pkg/logger"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatsHandler exposes the aggregation queries: points ledger, streaks,
// leaderboard and the activity feed.
type StatsHandler struct {
	Service *services.StatsService
}

// NewStatsHandler creates a new instance of StatsHandler.
func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{Service: service}
}

// GetPointsHandler returns the date -> user -> points ledger.
func (h *StatsHandler) GetPointsHandler(w http.ResponseWriter, r *http.Request) {
	ledger, err := h.Service.GetPoints(r.Context())
	if err != nil {
		logger.Log.Errorf("Failed to compute points: %v", err)
		http.Error(w, "Failed to compute points", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ledger)
}

// GetLeaderboardHandler returns total points per user, highest first.
func (h *StatsHandler) GetLeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	board, err := h.Service.GetLeaderboard(r.Context())
	if err != nil {
		logger.Log.Errorf("Failed to compute leaderboard: %v", err)
		http.Error(w, "Failed to compute leaderboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(board)
}

// GetActivityFeedHandler returns the trailing week of group activity.
func (h *StatsHandler) GetActivityFeedHandler(w http.ResponseWriter, r *http.Request) {
	feed, err := h.Service.GetActivityFeed(r.Context())
	if err != nil {
		logger.Log.Errorf("Failed to build activity feed: %v", err)
		http.Error(w, "Failed to build activity feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(feed)
}

// GetUserStreakHandler returns one user's profile with their streak.
func (h *StatsHandler) GetUserStreakHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := h.Service.GetUserWithStreak(r.Context(), userID)
	if err != nil {
		logger.Log.Errorf("Failed to compute streak: %v", err)
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// GetAllStreaksHandler returns every user's profile with their streak.
func (h *StatsHandler) GetAllStreaksHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAllUsersWithStreak(r.Context())
	if err != nil {
		logger.Log.Errorf("Failed to compute streaks: %v", err)
		http.Error(w, "Failed to compute streaks", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}
