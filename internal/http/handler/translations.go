package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"inbot/internal/http/middleware"
	"inbot/internal/model"
	"inbot/internal/service"
)

type previewTranslationRequest struct {
	FileID   string `json:"file_id" validate:"required,uuid"`
	Language string `json:"language" validate:"required,max=64"`
}

type saveTranslationRequest struct {
	FileID      string `json:"file_id" validate:"required,uuid"`
	Language    string `json:"language" validate:"required,max=64"`
	Translation string `json:"translation" validate:"required"`
}

type previewTranslationResponse struct {
	FileID      string `json:"file_id"`
	Language    string `json:"language"`
	Translation string `json:"translation"`
}

type translationListResponse struct {
	Items []model.FileTranslation `json:"data"`
}

// PreviewTranslation translates a file without saving it.
//
//	@Summary	Translate a file
//	@Tags		translations
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		previewTranslationRequest	true	"file and target language"
//	@Success	200		{object}	previewTranslationResponse
//	@Failure	502		{object}	errorPayload
//	@Router		/api/translations/preview [post]
func PreviewTranslation(svc service.TranslationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req previewTranslationRequest
		if err := parseBody(c, &req); err != nil {
			return writeValidationError(c, err)
		}

		text, err := svc.Preview(c.UserContext(), middleware.UserID(c), req.FileID, req.Language)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(previewTranslationResponse{FileID: req.FileID, Language: req.Language, Translation: text})
	}
}

// SaveTranslation stores a translation, replacing any earlier one for the same file and language.
//
//	@Summary	Save a translation
//	@Tags		translations
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		saveTranslationRequest	true	"translation"
//	@Success	200		{object}	model.FileTranslation
//	@Router		/api/translations [put]
func SaveTranslation(svc service.TranslationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req saveTranslationRequest
		if err := parseBody(c, &req); err != nil {
			return writeValidationError(c, err)
		}

		tr, err := svc.Save(c.UserContext(), middleware.UserID(c), req.FileID, req.Language, req.Translation)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(tr)
	}
}

// ListTranslations lists the caller's saved translations.
//
//	@Summary	List translations
//	@Tags		translations
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	translationListResponse
//	@Router		/api/translations [get]
func ListTranslations(svc service.TranslationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		if items == nil {
			items = []model.FileTranslation{}
		}
		return c.JSON(translationListResponse{Items: items})
	}
}

// GetTranslation returns one saved translation.
//
//	@Summary	Get a translation
//	@Tags		translations
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"translation id"
//	@Success	200	{object}	model.FileTranslation
//	@Router		/api/translations/{id} [get]
func GetTranslation(svc service.TranslationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return writeInvalidID(c)
		}

		tr, err := svc.Get(c.UserContext(), middleware.UserID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(tr)
	}
}

// DeleteTranslation removes a saved translation.
//
//	@Summary	Delete a translation
//	@Tags		translations
//	@Security	BearerAuth
//	@Param		id	path	string	true	"translation id"
//	@Success	204
//	@Router		/api/translations/{id} [delete]
func DeleteTranslation(svc service.TranslationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return writeInvalidID(c)
		}

		if err := svc.Delete(c.UserContext(), middleware.UserID(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// TranslationPDF downloads a saved translation as a PDF.
//
//	@Summary	Export a translation as PDF
//	@Tags		translations
//	@Security	BearerAuth
//	@Produce	application/pdf
//	@Param		id	path	string	true	"translation id"
//	@Success	200	{file}	binary
//	@Router		/api/translations/{id}/pdf [get]
func TranslationPDF(svc service.TranslationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return writeInvalidID(c)
		}

		data, name, err := svc.PDF(c.UserContext(), middleware.UserID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}

		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
		return c.Send(data)
	}
}
