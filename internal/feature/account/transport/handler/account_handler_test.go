package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop_backend/internal/feature/account/domain/entity"
	"shop_backend/internal/feature/account/usecase"
)

// mockAccountUsecase is a mock implementation of the AccountUsecase interface.
type mockAccountUsecase struct {
	SignupFunc       func(ctx context.Context, name, email, username, password string) (string, error)
	LoginFunc        func(ctx context.Context, email, password string) (*entity.User, error)
	GoogleSignupFunc func(ctx context.Context, email, name, googleID string) (*entity.User, error)
}

// Signup is the mock implementation of the Signup method.
func (m *mockAccountUsecase) Signup(ctx context.Context, name, email, username, password string) (string, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, name, email, username, password)
	}
	return primitive.NewObjectID().Hex(), nil
}

// Login is the mock implementation of the Login method.
func (m *mockAccountUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, usecase.ErrInvalidCredentials
}

// GoogleSignup is the mock implementation of the GoogleSignup method.
func (m *mockAccountUsecase) GoogleSignup(ctx context.Context, email, name, googleID string) (*entity.User, error) {
	if m.GoogleSignupFunc != nil {
		return m.GoogleSignupFunc(ctx, email, name, googleID)
	}
	return nil, errors.New("google signup failed")
}

func newAccountRouter(mockUC *mockAccountUsecase) *gin.Engine {
	handler := NewAccountHandler(mockUC)
	router := gin.New()
	router.POST("/signup", handler.Signup)
	router.POST("/login", handler.Login)
	router.POST("/google-signup", handler.GoogleSignup)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAccountHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockSignupFunc func(ctx context.Context, name, email, username, password string) (string, error)
		expectedStatus int
	}{
		{
			name:        "success: user registration",
			requestBody: gin.H{"name": "Test User", "email": "test@example.com", "username": "testuser", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, name, email, username, password string) (string, error) {
				return "656a1f77bcf86cd799439011", nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: missing name",
			requestBody:    gin.H{"email": "test@example.com", "username": "testuser", "password": "password123"},
			mockSignupFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"name": "Test User", "email": "test@example.com", "username": "testuser"},
			mockSignupFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"name": "Test User", "email": "invalid-email", "username": "testuser", "password": "password123"},
			mockSignupFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"name": "Test User", "email": "existing@example.com", "username": "testuser", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, name, email, username, password string) (string, error) {
				return "", usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "failure: store error",
			requestBody: gin.H{"name": "Test User", "email": "test@example.com", "username": "testuser", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, name, email, username, password string) (string, error) {
				return "", errors.New("store unavailable")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAccountRouter(&mockAccountUsecase{SignupFunc: tt.mockSignupFunc})
			w := postJSON(t, router, "/signup", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, "656a1f77bcf86cd799439011", body["userId"])
				assert.NotEmpty(t, body["message"])
			} else {
				assert.Equal(t, false, body["success"])
				assert.NotEmpty(t, body["message"])
			}
		})
	}
}

func TestAccountHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userID := primitive.NewObjectID()
	testUser := &entity.User{
		ID:       userID,
		Name:     "Test User",
		Email:    "test@example.com",
		Username: "testuser",
		Password: "$2a$10$secret-hash",
	}

	t.Run("success: returns public user view without password", func(t *testing.T) {
		router := newAccountRouter(&mockAccountUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (*entity.User, error) {
				return testUser, nil
			},
		})
		w := postJSON(t, router, "/login", gin.H{"email": "test@example.com", "password": "password123"})

		assert.Equal(t, http.StatusOK, w.Code)

		var body gin.H
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])

		user, ok := body["user"].(map[string]any)
		assert.True(t, ok, "response must contain a user object")
		assert.Equal(t, userID.Hex(), user["id"])
		assert.Equal(t, "Test User", user["name"])
		assert.Equal(t, "test@example.com", user["email"])
		assert.Equal(t, "testuser", user["username"])

		// The password hash must never appear anywhere in the response
		assert.NotContains(t, w.Body.String(), "secret-hash")
		assert.NotContains(t, user, "password")
	})

	t.Run("failure: missing field returns 400", func(t *testing.T) {
		router := newAccountRouter(&mockAccountUsecase{})
		w := postJSON(t, router, "/login", gin.H{"email": "test@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("failure: unknown email and wrong password return identical 401 bodies", func(t *testing.T) {
		router := newAccountRouter(&mockAccountUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (*entity.User, error) {
				return nil, usecase.ErrInvalidCredentials
			},
		})

		w1 := postJSON(t, router, "/login", gin.H{"email": "nobody@example.com", "password": "password123"})
		w2 := postJSON(t, router, "/login", gin.H{"email": "test@example.com", "password": "wrong-password"})

		assert.Equal(t, http.StatusUnauthorized, w1.Code)
		assert.Equal(t, http.StatusUnauthorized, w2.Code)
		assert.Equal(t, w1.Body.String(), w2.Body.String())
	})

	t.Run("failure: store error returns 500", func(t *testing.T) {
		router := newAccountRouter(&mockAccountUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (*entity.User, error) {
				return nil, errors.New("store unavailable")
			},
		})
		w := postJSON(t, router, "/login", gin.H{"email": "test@example.com", "password": "password123"})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAccountHandler_GoogleSignup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: returns the user document", func(t *testing.T) {
		userID := primitive.NewObjectID()
		router := newAccountRouter(&mockAccountUsecase{
			GoogleSignupFunc: func(ctx context.Context, email, name, googleID string) (*entity.User, error) {
				return &entity.User{ID: userID, Name: name, Email: email, GoogleID: googleID}, nil
			},
		})
		w := postJSON(t, router, "/google-signup", gin.H{"email": "g@example.com", "name": "G User", "googleId": "google-123"})

		assert.Equal(t, http.StatusOK, w.Code)

		var body gin.H
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])

		user, ok := body["user"].(map[string]any)
		assert.True(t, ok, "response must contain a user object")
		assert.Equal(t, userID.Hex(), user["id"])
		assert.Equal(t, "google-123", user["googleId"])
	})

	t.Run("failure: missing googleId returns 400", func(t *testing.T) {
		router := newAccountRouter(&mockAccountUsecase{})
		w := postJSON(t, router, "/google-signup", gin.H{"email": "g@example.com", "name": "G User"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("failure: store error returns 500", func(t *testing.T) {
		router := newAccountRouter(&mockAccountUsecase{
			GoogleSignupFunc: func(ctx context.Context, email, name, googleID string) (*entity.User, error) {
				return nil, errors.New("store unavailable")
			},
		})
		w := postJSON(t, router, "/google-signup", gin.H{"email": "g@example.com", "name": "G User", "googleId": "google-123"})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
