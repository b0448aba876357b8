package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"inbot/internal/model"
	serviceMocks "inbot/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTranslationRoutes(t *testing.T) {
	mockSvc := new(serviceMocks.MockTranslationService)
	app := newTestApp(func(app *fiber.App) {
		app.Post("/api/translations/preview", PreviewTranslation(mockSvc))
		app.Put("/api/translations", SaveTranslation(mockSvc))
		app.Get("/api/translations", ListTranslations(mockSvc))
		app.Get("/api/translations/:id", GetTranslation(mockSvc))
		app.Delete("/api/translations/:id", DeleteTranslation(mockSvc))
		app.Get("/api/translations/:id/pdf", TranslationPDF(mockSvc))
	})

	t.Run("preview", func(t *testing.T) {
		fileID := uuid.New().String()
		mockSvc.On("Preview", mock.Anything, testUserID, fileID, "French").Return("Bonjour\n\n", nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/translations/preview", map[string]string{
			"file_id":  fileID,
			"language": "French",
		}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result previewTranslationResponse
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "Bonjour\n\n", result.Translation)
		assert.Equal(t, "French", result.Language)
		mockSvc.AssertExpectations(t)
	})

	t.Run("preview requires language", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/translations/preview", map[string]string{
			"file_id": uuid.New().String(),
		}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "language failed on required", decodeError(t, resp).Error.Message)
	})

	t.Run("save", func(t *testing.T) {
		fileID := uuid.New().String()
		saved := &model.FileTranslation{ID: uuid.New().String(), FileID: fileID, Language: "French", Translation: "Bonjour"}
		mockSvc.On("Save", mock.Anything, testUserID, fileID, "French", "Bonjour").Return(saved, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/api/translations", map[string]string{
			"file_id":     fileID,
			"language":    "French",
			"translation": "Bonjour",
		}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.FileTranslation
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, saved.ID, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, testUserID).Return(nil, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/translations", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"data":[]}`, string(body))
		mockSvc.AssertExpectations(t)
	})

	t.Run("get", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, testUserID, id).Return(&model.FileTranslation{ID: id}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/translations/"+id, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("delete", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, testUserID, id).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/api/translations/"+id, nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("pdf download", func(t *testing.T) {
		id := uuid.New().String()
		pdf := []byte("%PDF-1.3 test")
		mockSvc.On("PDF", mock.Anything, testUserID, id).Return(pdf, "translation_French.pdf", nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/translations/"+id+"/pdf", nil))

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		assert.Equal(t, `attachment; filename="translation_French.pdf"`, resp.Header.Get("Content-Disposition"))
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, pdf, body)
		mockSvc.AssertExpectations(t)
	})
}
