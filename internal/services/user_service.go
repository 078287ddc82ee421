package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/brycegym/gymapp-backend/internal/models"
	"github.com/brycegym/gymapp-backend/internal/repository"
	"github.com/brycegym/gymapp-backend/pkg/email"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService encapsulates the business logic for user operations.
type UserService struct {
	repo *repository.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RegisterUser registers a new user after hashing their password.
func (s *UserService) RegisterUser(ctx context.Context, user *models.User) (*models.User, error) {
	logrus.Info("Registering new user")

	if user.Email == "" || user.Username == "" || user.HashedPassword == "" {
		logrus.Warn("Missing required fields during registration")
		return nil, fmt.Errorf("missing required user fields")
	}

	if !emailRegex.MatchString(user.Email) {
		logrus.WithField("email", user.Email).Warn("Invalid email format during registration")
		return nil, fmt.Errorf("invalid email format")
	}

	// Check if the email is already registered
	existingUser, _ := s.repo.GetUserByEmail(ctx, user.Email)
	if existingUser != nil {
		logrus.WithField("email", user.Email).Warn("Email already in use")
		return nil, fmt.Errorf("email already in use")
	}

	// Hash the user's password.
	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(user.HashedPassword), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Password hashing failed")
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user.HashedPassword = string(hashedPwd)
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if user.Role == "" {
		user.Role = "user"
	}

	user.VerifyToken = uuid.NewString()
	user.IsVerified = false

	createdUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		logrus.WithError(err).Error("User registration failed")
		return nil, fmt.Errorf("failed to register user: %v", err)
	}

	verificationLink := fmt.Sprintf("http://localhost:8080/users/verify?token=%s", createdUser.VerifyToken)
	emailBody := fmt.Sprintf("Welcome to the gym club!\n\nPlease verify your email by clicking the link below:\n%s", verificationLink)

	if err := email.SendEmail(user.Email, "Email Verification", emailBody); err != nil {
		logrus.WithError(err).Error("Failed to send verification email")
		return nil, fmt.Errorf("failed to send verification email")
	}

	logrus.Infof("Sent verification email to %s", user.Email)
	return createdUser, nil
}

// AuthenticateUser validates credentials and returns the user on success.
func (s *UserService) AuthenticateUser(ctx context.Context, emailAddr, password string) (*models.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, emailAddr)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		logrus.WithField("email", emailAddr).Warn("Password mismatch during login")
		return nil, fmt.Errorf("invalid email or password")
	}

	if !user.IsVerified {
		return nil, fmt.Errorf("email is not verified")
	}

	return user, nil
}

// VerifyEmail marks the account matching the token as verified.
func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.repo.GetUserByVerifyToken(ctx, token)
	if err != nil {
		return fmt.Errorf("invalid verification token")
	}

	user.IsVerified = true
	user.VerifyToken = ""

	if _, err := s.repo.UpdateUser(ctx, user.ID, user); err != nil {
		return fmt.Errorf("failed to verify user: %v", err)
	}

	logrus.WithField("userID", user.ID.Hex()).Info("User email verified")
	return nil
}

// GetUser retrieves a user by its ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %v", err)
	}
	return s.repo.GetUserByID(ctx, objID)
}

// GetAllUsers retrieves every registered user.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.GetAllUsers(ctx)
}

// UpdateUser updates profile fields of an existing user.
func (s *UserService) UpdateUser(ctx context.Context, id string, updated *models.User) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %v", err)
	}

	user, err := s.repo.GetUserByID(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %v", err)
	}

	if updated.FirstName != "" {
		user.FirstName = updated.FirstName
	}
	if updated.LastName != "" {
		user.LastName = updated.LastName
	}
	if updated.Username != "" {
		user.Username = updated.Username
	}

	return s.repo.UpdateUser(ctx, objID, user)
}

// UpdateLastActive stamps the user's most recent activity time.
func (s *UserService) UpdateLastActive(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.UpdateLastActive(ctx, id)
}
