package v1_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/delivery/http/middleware"
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"
)

func setupUserRouter(repo domain.UserRepository, callerID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	uc := usecase.NewUserUsecase(repo)

	r := gin.New()
	r.Use(middleware.ErrorHandler())

	public := r.Group("")
	protected := r.Group("")
	protected.Use(func(c *gin.Context) {
		c.Set(string(domain.KeyUserID), callerID)
	})

	v1.NewUserHandler(public, protected, uc)
	return r
}

func activeUser(id int64) *domain.User {
	return &domain.User{
		ID:        id,
		Email:     "owner@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		IsActive:  true,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestUpdateUserForbidden(t *testing.T) {
	mockRepo := new(MockUserRepo)
	// Token identity 7 updating user 5: rejected before any repo access
	r := setupUserRouter(mockRepo, 7)

	w := doJSON(r, http.MethodPut, "/users/5", `{"first_name":"Eve"}`)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateUserSelf(t *testing.T) {
	mockRepo := new(MockUserRepo)
	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(activeUser(5), nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	r := setupUserRouter(mockRepo, 5)
	w := doJSON(r, http.MethodPut, "/users/5", `{"first_name":" Janet "}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		User domain.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Janet", body.User.FirstName)
	assert.Equal(t, "Doe", body.User.LastName)
	mockRepo.AssertExpectations(t)
}

func TestDeactivateUser(t *testing.T) {
	t.Run("forbidden for another account", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		r := setupUserRouter(mockRepo, 7)

		w := doJSON(r, http.MethodDelete, "/users/5", "")

		require.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	})

	t.Run("own account deactivated", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("Deactivate", mock.Anything, int64(5)).Return(nil)

		r := setupUserRouter(mockRepo, 5)
		w := doJSON(r, http.MethodDelete, "/users/5", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Account deactivated successfully"}`, w.Body.String())
	})
}

func TestGetUserPublic(t *testing.T) {
	t.Run("active user", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetActiveByID", mock.Anything, int64(5)).Return(activeUser(5), nil)

		r := setupUserRouter(mockRepo, 0)
		w := doJSON(r, http.MethodGet, "/users/5", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user":{"id":5,"first_name":"Jane","last_name":"Doe"}}`, w.Body.String())
	})

	t.Run("inactive or absent user", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetActiveByID", mock.Anything, int64(999)).Return(nil, apperror.NotFound("User not found"))

		r := setupUserRouter(mockRepo, 0)
		w := doJSON(r, http.MethodGet, "/users/999", "")

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
	})
}

func TestListUsers(t *testing.T) {
	mockRepo := new(MockUserRepo)
	mockRepo.On("FetchActive", mock.Anything).Return([]domain.User{*activeUser(5)}, nil)

	r := setupUserRouter(mockRepo, 1)
	w := doJSON(r, http.MethodGet, "/users", "")

	require.Equal(t, http.StatusOK, w.Code)
	// Bare array of public projections
	assert.JSONEq(t, `[{"id":5,"first_name":"Jane","last_name":"Doe"}]`, w.Body.String())
}
