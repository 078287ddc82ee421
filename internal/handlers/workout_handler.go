package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/brycegym/gymapp-backend/internal/models"
	"github.com/brycegym/gymapp-backend/internal/services"
	"github.com/brycegym/gymapp-backend/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutHandler handles HTTP requests related to workouts.
type WorkoutHandler struct {
	Service *services.WorkoutService
}

// NewWorkoutHandler creates a new instance of WorkoutHandler.
func NewWorkoutHandler(service *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{Service: service}
}

// CreateWorkoutHandler stores a new workout routine; admin only (enforced
// by route).
func (h *WorkoutHandler) CreateWorkoutHandler(w http.ResponseWriter, r *http.Request) {
	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		logrus.WithError(err).Warn("Invalid request payload during workout creation")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	created, err := h.Service.CreateWorkout(r.Context(), &workout)
	if err != nil {
		logrus.WithError(err).Error("Failed to create workout")
		http.Error(w, "Failed to create workout", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(created)
}

// GetWorkoutsHandler lists every workout routine.
func (h *WorkoutHandler) GetWorkoutsHandler(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.Service.GetAllWorkouts(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch workouts")
		http.Error(w, "Failed to fetch workouts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(workouts)
}

// GetWorkoutHandler fetches a single workout by its ID.
func (h *WorkoutHandler) GetWorkoutHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	workout, err := h.Service.GetWorkout(r.Context(), vars["id"])
	if err != nil {
		logrus.WithField("workoutID", vars["id"]).WithError(err).Warn("Workout not found")
		http.Error(w, "Workout not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(workout)
}

// GetIncompleteWorkoutsHandler lists workouts the logged-in user has not
// completed yet.
func (h *WorkoutHandler) GetIncompleteWorkoutsHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusInternalServerError)
		return
	}

	workouts, err := h.Service.GetIncompleteWorkouts(r.Context(), userID)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch incomplete workouts")
		http.Error(w, "Failed to fetch workouts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(workouts)
}

// CompleteWorkoutHandler records the logged-in user finishing or skipping
// a workout.
func (h *WorkoutHandler) CompleteWorkoutHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		logrus.Warn("Unauthorized access attempt during workout completion")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusInternalServerError)
		return
	}

	record, err := h.Service.CompleteWorkout(r.Context(), userID, vars["id"], input.Status)
	if err != nil {
		logrus.WithError(err).Warn("Failed to record workout completion")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	logrus.WithFields(logrus.Fields{
		"userID":    claims.UserID,
		"workoutID": vars["id"],
		"status":    input.Status,
	}).Info("Workout completion recorded")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}
