package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inbot/internal/auth"
	"inbot/internal/extract"
	"inbot/internal/http/middleware"
	"inbot/internal/model"
	"inbot/internal/service"
	serviceMocks "inbot/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := newTestApp(func(app *fiber.App) {
		app.Post("/auth/signup", Signup(mockSvc))
	})
	body := map[string]string{"name": "Ann", "email": "ann@example.com", "password": "Secret#123"}

	t.Run("created", func(t *testing.T) {
		res := &service.AuthResult{Token: "tok", ExpiresAt: time.Now().Add(time.Hour), User: &model.User{ID: testUserID}}
		mockSvc.On("Signup", mock.Anything, "Ann", "ann@example.com", "Secret#123").Return(res, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/auth/signup", body))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var result service.AuthResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "tok", result.Token)
		mockSvc.AssertExpectations(t)
	})

	t.Run("email taken", func(t *testing.T) {
		mockSvc.On("Signup", mock.Anything, "Ann", "ann@example.com", "Secret#123").Return(nil, service.ErrEmailTaken).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/auth/signup", body))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "EMAIL_TAKEN", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("weak password", func(t *testing.T) {
		mockSvc.On("Signup", mock.Anything, "Ann", "ann@example.com", "weak").Return(nil, service.ErrWeakPassword).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/auth/signup", map[string]string{
			"name": "Ann", "email": "ann@example.com", "password": "weak",
		}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
		assert.Equal(t, service.ErrWeakPassword.Error(), res.Error.Message)
		mockSvc.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := newTestApp(func(app *fiber.App) {
		app.Post("/auth/login", Login(mockSvc))
	})

	t.Run("bad credentials", func(t *testing.T) {
		mockSvc.On("Login", mock.Anything, "ann@example.com", "nope").Return(nil, service.ErrInvalidCredentials).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/auth/login", map[string]string{
			"email": "ann@example.com", "password": "nope",
		}))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/auth/login", "not an object"))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid request body", decodeError(t, resp).Error.Message)
	})
}

func TestLogoutAndMe(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	claims := &auth.Claims{UserID: testUserID}
	app := newTestApp(func(app *fiber.App) {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(middleware.ClaimsLocalKey, claims)
			return c.Next()
		})
		app.Post("/api/auth/logout", Logout(mockSvc))
		app.Get("/api/auth/me", Me(mockSvc))
	})

	mockSvc.On("Logout", mock.Anything, claims).Return(nil).Once()
	resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	mockSvc.On("Me", mock.Anything, testUserID).Return(&model.User{ID: testUserID, Email: "ann@example.com"}, nil).Once()
	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user map[string]any
	json.NewDecoder(resp.Body).Decode(&user)
	assert.Equal(t, "ann@example.com", user["email"])
	assert.NotContains(t, user, "password_hash")

	mockSvc.AssertExpectations(t)
}

func TestProfileRoutes(t *testing.T) {
	mockSvc := new(serviceMocks.MockProfileService)
	app := newTestApp(func(app *fiber.App) {
		app.Get("/api/profile", GetProfile(mockSvc))
		app.Patch("/api/profile", UpdateProfile(mockSvc))
		app.Post("/api/profile/avatar", UploadAvatar(mockSvc))
	})

	t.Run("get", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, testUserID).Return(&model.User{ID: testUserID, Name: "Ann"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/profile", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("update", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, testUserID, "Ann B", "reads a lot").
			Return(&model.User{ID: testUserID, Name: "Ann B", Bio: "reads a lot"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPatch, "/api/profile", map[string]string{"name": "Ann B", "bio": "reads a lot"}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("update requires name", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPatch, "/api/profile", map[string]string{"bio": "x"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "name failed on required", decodeError(t, resp).Error.Message)
	})

	t.Run("avatar", func(t *testing.T) {
		isAvatar := mock.MatchedBy(func(in service.AvatarInput) bool {
			return in.UserID == testUserID && in.Filename == "me.png"
		})
		mockSvc.On("UploadAvatar", mock.Anything, isAvatar).
			Return(&model.User{ID: testUserID, AvatarURL: "http://minio/avatars/x.png"}, nil).Once()

		resp, _ := app.Test(multipartRequest(t, "/api/profile/avatar", "avatar", "me.png", []byte("\x89PNG\r\n\x1a\n")))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("avatar must be an image", func(t *testing.T) {
		isAvatar := mock.MatchedBy(func(in service.AvatarInput) bool { return in.Filename == "cv.pdf" })
		mockSvc.On("UploadAvatar", mock.Anything, isAvatar).Return(nil, extract.ErrUnsupportedFileType).Once()

		resp, _ := app.Test(multipartRequest(t, "/api/profile/avatar", "avatar", "cv.pdf", []byte("%PDF-1.4")))

		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("avatar missing", func(t *testing.T) {
		resp, _ := app.Test(multipartRequest(t, "/api/profile/avatar", "file", "me.png", []byte("x")))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})
}

func TestDashboard(t *testing.T) {
	mockSvc := new(serviceMocks.MockAnalyticsService)
	app := newTestApp(func(app *fiber.App) {
		app.Get("/api/analytics", Dashboard(mockSvc))
	})

	dash := &service.Dashboard{
		TotalDocuments: 2,
		TotalBytes:     2048,
		TopKeywords:    []service.Count{{Key: "budget", Count: 3}},
	}
	mockSvc.On("Dashboard", mock.Anything, testUserID).Return(dash, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/analytics", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var result service.Dashboard
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, 2, result.TotalDocuments)
	assert.Equal(t, int64(2048), result.TotalBytes)
	require.Len(t, result.TopKeywords, 1)
	assert.Equal(t, "budget", result.TopKeywords[0].Key)
	mockSvc.AssertExpectations(t)
}
