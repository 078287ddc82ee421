package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/brycegym/gymapp-backend/internal/config"
	"github.com/brycegym/gymapp-backend/internal/database"
	"github.com/brycegym/gymapp-backend/internal/handlers"
	"github.com/brycegym/gymapp-backend/internal/jobs"
	"github.com/brycegym/gymapp-backend/internal/repository"
	cronjobs "github.com/brycegym/gymapp-backend/internal/scheduler"
	"github.com/brycegym/gymapp-backend/internal/services"
	"github.com/brycegym/gymapp-backend/pkg/logger"
	"github.com/brycegym/gymapp-backend/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	completedWorkoutRepo := repository.NewCompletedWorkoutRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// --- Services ---
	userService := services.NewUserService(userRepo)
	activityService := services.NewActivityService(activityRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	workoutService := services.NewWorkoutService(workoutRepo, completedWorkoutRepo, notificationService)
	statsService := services.NewStatsService(userRepo, services.NewEventStore(completedWorkoutRepo, activityRepo))

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, cfg)
	activityHandler := handlers.NewActivityHandler(activityService)
	workoutHandler := handlers.NewWorkoutHandler(workoutService)
	statsHandler := handlers.NewStatsHandler(statsService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Register User routes
	router.HandleFunc("/users/register", userHandler.RegisterUserHandler).Methods("POST")
	router.HandleFunc("/users/login", userHandler.LoginUserHandler).Methods("POST")
	router.HandleFunc("/users/verify", userHandler.VerifyEmailHandler).Methods("GET")

	// Protected user routes (only authenticated users can access)
	protectedUserRoutes := router.PathPrefix("/users").Subrouter()
	protectedUserRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedUserRoutes.Use(middleware.UpdateLastActiveMiddleware(userService))
	protectedUserRoutes.HandleFunc("/{id}", userHandler.GetUserHandler).Methods("GET")
	protectedUserRoutes.HandleFunc("/{id}", userHandler.UpdateUserHandler).Methods("PATCH")

	// Activity routes
	protectedActivityRoutes := router.PathPrefix("/activities").Subrouter()
	protectedActivityRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedActivityRoutes.Use(middleware.UpdateLastActiveMiddleware(userService))
	protectedActivityRoutes.HandleFunc("", activityHandler.AddActivityHandler).Methods("POST")
	protectedActivityRoutes.HandleFunc("/{id}", activityHandler.GetUserActivitiesHandler).Methods("GET")

	// Workout routes
	protectedWorkoutRoutes := router.PathPrefix("/workouts").Subrouter()
	protectedWorkoutRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedWorkoutRoutes.Use(middleware.UpdateLastActiveMiddleware(userService))
	protectedWorkoutRoutes.HandleFunc("", workoutHandler.CreateWorkoutHandler).Methods("POST")
	protectedWorkoutRoutes.HandleFunc("", workoutHandler.GetWorkoutsHandler).Methods("GET")
	protectedWorkoutRoutes.HandleFunc("/incomplete", workoutHandler.GetIncompleteWorkoutsHandler).Methods("GET")
	protectedWorkoutRoutes.HandleFunc("/{id}", workoutHandler.GetWorkoutHandler).Methods("GET")
	protectedWorkoutRoutes.HandleFunc("/{id}/complete", workoutHandler.CompleteWorkoutHandler).Methods("POST")

	// Stats routes
	protectedStatsRoutes := router.PathPrefix("/stats").Subrouter()
	protectedStatsRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedStatsRoutes.Use(middleware.UpdateLastActiveMiddleware(userService))
	protectedStatsRoutes.HandleFunc("/points", statsHandler.GetPointsHandler).Methods("GET")
	protectedStatsRoutes.HandleFunc("/leaderboard", statsHandler.GetLeaderboardHandler).Methods("GET")
	protectedStatsRoutes.HandleFunc("/feed", statsHandler.GetActivityFeedHandler).Methods("GET")
	protectedStatsRoutes.HandleFunc("/streaks", statsHandler.GetAllStreaksHandler).Methods("GET")
	protectedStatsRoutes.HandleFunc("/streaks/{id}", statsHandler.GetUserStreakHandler).Methods("GET")

	// Notification routes
	protectedNotificationRoutes := router.PathPrefix("/notifications").Subrouter()
	protectedNotificationRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedNotificationRoutes.HandleFunc("", notificationHandler.GetUserNotificationsHandler).Methods("GET")
	protectedNotificationRoutes.HandleFunc("/{id}/read", notificationHandler.MarkAsReadHandler).Methods("PATCH")
	protectedNotificationRoutes.HandleFunc("/{id}", notificationHandler.DeleteNotificationHandler).Methods("DELETE")

	// Admin routes
	adminRoutes := router.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	adminRoutes.Use(middleware.RequireRole("admin"))
	adminRoutes.HandleFunc("/users", userHandler.AdminGetAllUsersHandler).Methods("GET")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Background jobs
	streakReminder := jobs.NewStreakReminder(statsService, userService, notificationService)
	cronjobs.StartStatsCronJobs(streakReminder, notificationService)

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // adjust to frontend origin
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
