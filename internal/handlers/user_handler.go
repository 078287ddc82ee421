package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/brycegym/gymapp-backend/internal/config"
	"github.com/brycegym/gymapp-backend/internal/models"
	"github.com/brycegym/gymapp-backend/internal/services"
	jwtutil "github.com/brycegym/gymapp-backend/pkg/jwt"
	"github.com/brycegym/gymapp-backend/pkg/middleware"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// UserHandler handles HTTP requests related to user operations.
type UserHandler struct {
	Service *services.UserService
	Config  *config.Config
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(service *services.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		Service: service,
		Config:  cfg,
	}
}

// RegisterUserHandler handles user registration.
func (h *UserHandler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	log.Info("RegisterUserHandler called")
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.WithError(err).Warn("Failed to decode user registration request")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	createdUser, err := h.Service.RegisterUser(r.Context(), &user)
	if err != nil {
		log.WithError(err).Error("Failed to register user")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.WithField("userID", createdUser.ID.Hex()).Info("User registered successfully")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(createdUser)
}

// LoginUserHandler handles user login.
func (h *UserHandler) LoginUserHandler(w http.ResponseWriter, r *http.Request) {
	log.Info("LoginUserHandler called")
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.WithError(err).Warn("Failed to decode login request")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	user, err := h.Service.AuthenticateUser(r.Context(), credentials.Email, credentials.Password)
	if err != nil {
		log.WithFields(log.Fields{
			"email": credentials.Email,
			"error": err,
		}).Warn("Authentication failed")
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	token, err := jwtutil.GenerateToken(user.ID.Hex(), user.Email, user.Role, h.Config.JWTSecret, h.Config.TokenExpiry)
	if err != nil {
		log.WithError(err).Error("Failed to generate JWT token")
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	log.WithField("userID", user.ID.Hex()).Info("User logged in successfully")

	response := map[string]interface{}{
		"token": token,
		"user":  user,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// VerifyEmailHandler confirms an email verification token.
func (h *UserHandler) VerifyEmailHandler(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Missing verification token", http.StatusBadRequest)
		return
	}

	if err := h.Service.VerifyEmail(r.Context(), token); err != nil {
		log.WithError(err).Warn("Email verification failed")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Email verified successfully"})
}

// GetUserHandler handles fetching a user by ID.
func (h *UserHandler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	log.Info("GetUserHandler called")
	vars := mux.Vars(r)
	requestedUserID := vars["id"]

	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		log.Warn("Unauthorized access attempt to GetUserHandler")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.Service.GetUser(r.Context(), requestedUserID)
	if err != nil {
		log.WithField("userID", requestedUserID).WithError(err).Warn("User not found")
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	// Members can see each other's public profile; only the owner gets
	// the full record.
	w.Header().Set("Content-Type", "application/json")
	if requestedUserID != claims.UserID {
		json.NewEncoder(w).Encode(user.Public())
		return
	}
	json.NewEncoder(w).Encode(user)
}

// UpdateUserHandler handles updating a user profile.
func (h *UserHandler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	log.Info("UpdateUserHandler called")
	vars := mux.Vars(r)
	requestedUserID := vars["id"]

	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		log.Warn("Unauthorized access attempt to UpdateUserHandler")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if requestedUserID != claims.UserID {
		log.WithFields(log.Fields{
			"requestedUserID": requestedUserID,
			"loggedInUserID":  claims.UserID,
		}).Warn("Forbidden update attempt")
		http.Error(w, "Forbidden: You can only update your own profile", http.StatusForbidden)
		return
	}

	var updatedUser models.User
	if err := json.NewDecoder(r.Body).Decode(&updatedUser); err != nil {
		log.WithError(err).Warn("Failed to decode update request")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	user, err := h.Service.UpdateUser(r.Context(), requestedUserID, &updatedUser)
	if err != nil {
		log.WithError(err).Error("Failed to update user")
		http.Error(w, "Failed to update user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// AdminGetAllUsersHandler lists every user; admin only (enforced by route).
func (h *UserHandler) AdminGetAllUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAllUsers(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to fetch all users")
		http.Error(w, "Failed to fetch users", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}
