package middleware

import (
	"net/http"

	"github.com/brycegym/gymapp-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateLastActiveMiddleware stamps the user's last activity time on every
// authenticated request; used by the streak reminder to skip long-gone users.
func UpdateLastActiveMiddleware(userService *services.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetUserFromContext(r.Context())
			if claims != nil {
				userID, err := primitive.ObjectIDFromHex(claims.UserID)
				if err == nil {
					_ = userService.UpdateLastActive(r.Context(), userID)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
