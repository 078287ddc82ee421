package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brycegym/gymapp-backend/internal/models"
	"github.com/brycegym/gymapp-backend/internal/services"
	jwtutil "github.com/brycegym/gymapp-backend/pkg/jwt"
	"github.com/brycegym/gymapp-backend/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

type fakeActivityStore struct {
	activities []models.Activity
}

func (f *fakeActivityStore) CreateActivity(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	activity.ID = primitive.NewObjectID()
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}
	f.activities = append(f.activities, *activity)
	return activity, nil
}

func (f *fakeActivityStore) GetUserActivities(ctx context.Context, userID primitive.ObjectID) ([]models.Activity, error) {
	var out []models.Activity
	for _, a := range f.activities {
		if a.AuthorID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// newActivityRouter registers the activity routes the same way the server
// does, so route and handler cannot drift apart unnoticed.
func newActivityRouter(h *ActivityHandler) *mux.Router {
	router := mux.NewRouter()
	protected := router.PathPrefix("/activities").Subrouter()
	protected.Use(middleware.AuthMiddleware(testSecret))
	protected.HandleFunc("", h.AddActivityHandler).Methods("POST")
	protected.HandleFunc("/{id}", h.GetUserActivitiesHandler).Methods("GET")
	return router
}

func bearerToken(t *testing.T, userID primitive.ObjectID) string {
	t.Helper()
	token, err := jwtutil.GenerateToken(userID.Hex(), "alice@example.com", "member", testSecret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestGetUserActivitiesHandler(t *testing.T) {
	userID := primitive.NewObjectID()
	store := &fakeActivityStore{activities: []models.Activity{
		{ID: primitive.NewObjectID(), AuthorID: userID, Type: "cardio", Value: 30, CreatedAt: time.Now()},
		{ID: primitive.NewObjectID(), AuthorID: userID, Type: "meal", Value: 3, CreatedAt: time.Now()},
		{ID: primitive.NewObjectID(), AuthorID: primitive.NewObjectID(), Type: "stretch", Value: 10, CreatedAt: time.Now()},
	}}
	router := newActivityRouter(NewActivityHandler(services.NewActivityService(store)))

	req := httptest.NewRequest(http.MethodGet, "/activities/"+userID.Hex(), nil)
	req.Header.Set("Authorization", bearerToken(t, userID))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var activities []models.Activity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&activities))
	require.Len(t, activities, 2)
	for _, a := range activities {
		assert.Equal(t, userID, a.AuthorID)
	}
}

func TestGetUserActivitiesHandlerInvalidID(t *testing.T) {
	userID := primitive.NewObjectID()
	router := newActivityRouter(NewActivityHandler(services.NewActivityService(&fakeActivityStore{})))

	req := httptest.NewRequest(http.MethodGet, "/activities/not-a-hex-id", nil)
	req.Header.Set("Authorization", bearerToken(t, userID))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddActivityHandler(t *testing.T) {
	userID := primitive.NewObjectID()
	store := &fakeActivityStore{}
	router := newActivityRouter(NewActivityHandler(services.NewActivityService(store)))

	body := strings.NewReader(`{"activity": "cardio", "value": 30}`)
	req := httptest.NewRequest(http.MethodPost, "/activities", body)
	req.Header.Set("Authorization", bearerToken(t, userID))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var activity models.Activity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&activity))
	assert.Equal(t, "cardio", activity.Type)
	assert.Equal(t, userID, activity.AuthorID)
	require.Len(t, store.activities, 1)
}

func TestActivityRoutesRequireAuth(t *testing.T) {
	router := newActivityRouter(NewActivityHandler(services.NewActivityService(&fakeActivityStore{})))

	req := httptest.NewRequest(http.MethodGet, "/activities/"+primitive.NewObjectID().Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
