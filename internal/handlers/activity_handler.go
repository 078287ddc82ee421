package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/brycegym/gymapp-backend/internal/services"
	"github.com/brycegym/gymapp-backend/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityHandler handles HTTP requests for logging and listing activities.
type ActivityHandler struct {
	Service *services.ActivityService
}

func NewActivityHandler(service *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{Service: service}
}

// AddActivityHandler logs a new activity for the logged-in user.
func (h *ActivityHandler) AddActivityHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		logrus.Warn("Unauthorized access attempt during activity logging")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Activity string  `json:"activity"`
		Value    float64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logrus.WithError(err).Warn("Invalid request payload during activity logging")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		logrus.WithError(err).Error("Failed to convert user ID")
		http.Error(w, "Invalid user ID", http.StatusInternalServerError)
		return
	}

	activity, err := h.Service.LogActivity(r.Context(), userID, input.Activity, input.Value)
	if err != nil {
		logrus.WithError(err).Warn("Failed to log activity")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	logrus.WithFields(logrus.Fields{
		"userID": claims.UserID,
		"type":   activity.Type,
	}).Info("Activity successfully logged")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(activity)
}

// GetUserActivitiesHandler lists the activities of one user.
func (h *ActivityHandler) GetUserActivitiesHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	userID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	activities, err := h.Service.GetUserActivities(r.Context(), userID)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch user activities")
		http.Error(w, "Failed to fetch activities", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(activities)
}
