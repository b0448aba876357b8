package handler

import (
	"github.com/gofiber/fiber/v2"

	"inbot/internal/http/middleware"
	"inbot/internal/model"
	"inbot/internal/service"
)

type updateFileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`
	Label *string `json:"label" validate:"omitempty,max=64"`
}

type askRequest struct {
	Question string `json:"question" validate:"required,max=4000"`
}

type downloadResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}

type answerResponse struct {
	Answer string `json:"answer"`
}

// ListFiles lists the caller's files.
//
//	@Summary	List files
//	@Tags		files
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query		int		false	"page size (1-100)"
//	@Param		offset	query		int		false	"rows to skip"
//	@Param		search	query		string	false	"name contains"
//	@Param		label	query		string	false	"folder, or Uncategorized"
//	@Param		sort	query		string	false	"uploaded_at or name"
//	@Success	200		{object}	service.FileListResult
//	@Router		/api/files [get]
func ListFiles(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, err := pageParams(c)
		if !ok {
			return err
		}

		res, err := svc.List(c.UserContext(), middleware.UserID(c), service.FileListInput{
			Limit:  limit,
			Offset: offset,
			Search: c.Query("search"),
			Label:  c.Query("label"),
			Sort:   c.Query("sort"),
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// UploadFile stores a PDF or TXT file (multipart/form-data, field name: file) and ingests it.
//
//	@Summary	Upload a file
//	@Tags		files
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file	formData	file	true	"PDF or TXT document"
//	@Success	201		{object}	service.UploadResult
//	@Failure	400		{object}	errorPayload
//	@Failure	415		{object}	errorPayload
//	@Router		/api/files [post]
func UploadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		res, err := svc.Upload(c.UserContext(), service.UploadInput{
			UserID:      middleware.UserID(c),
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Reader:      f,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// GetFile returns one file's metadata.
//
//	@Summary	Get a file
//	@Tags		files
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"file id"
//	@Success	200	{object}	model.File
//	@Failure	404	{object}	errorPayload
//	@Router		/api/files/{id} [get]
func GetFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return writeInvalidID(c)
		}

		f, err := svc.Get(c.UserContext(), middleware.UserID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(f)
	}
}

// UpdateFile renames a file and/or moves it to a folder. An empty label clears it.
//
//	@Summary	Rename or relabel a file
//	@Tags		files
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"file id"
//	@Param		body	body		updateFileRequest	true	"changes"
//	@Success	200		{object}	model.File
//	@Router		/api/files/{id} [patch]
func UpdateFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return writeInvalidID(c)
		}

		var req updateFileRequest
		if err := parseBody(c, &req); err != nil {
			return writeValidationError(c, err)
		}
		if req.Name == nil && req.Label == nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "name or label is required")
		}

		userID := middleware.UserID(c)
		var (
			f   *model.File
			err error
		)
		if req.Name != nil {
			if f, err = svc.Rename(c.UserContext(), userID, id, *req.Name); err != nil {
				return writeServiceError(c, err)
			}
		}
		if req.Label != nil {
			if f, err = svc.SetLabel(c.UserContext(), userID, id, *req.Label); err != nil {
				return writeServiceError(c, err)
			}
		}
		return c.JSON(f)
	}
}

// DeleteFile removes the stored object and its row.
//
//	@Summary	Delete a file
//	@Tags		files
//	@Security	BearerAuth
//	@Param		id	path	string	true	"file id"
//	@Success	204
//	@Failure	404	{object}	errorPayload
//	@Router		/api/files/{id} [delete]
func DeleteFile(svc service.FileService) fiber.Handler {
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

// DownloadFile returns a short-lived signed URL.
//
//	@Summary	Signed download link
//	@Tags		files
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"file id"
//	@Success	200	{object}	downloadResponse
//	@Router		/api/files/{id}/download [get]
func DownloadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return writeInvalidID(c)
		}

		url, err := svc.DownloadURL(c.UserContext(), middleware.UserID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(downloadResponse{URL: url, ExpiresIn: int(service.DownloadURLExpiry.Seconds())})
	}
}

// ReembedFile re-runs extraction and embedding for a stored file.
//
//	@Summary	Re-ingest a file
//	@Tags		files
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"file id"
//	@Success	200	{object}	model.File
//	@Failure	502	{object}	errorPayload
//	@Router		/api/files/{id}/embedding [post]
func ReembedFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return writeInvalidID(c)
		}

		f, err := svc.Ingest(c.UserContext(), middleware.UserID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(f)
	}
}

// AskFile answers one question about a file. Nothing is persisted.
//
//	@Summary	Ask about a file
//	@Tags		files
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string		true	"file id"
//	@Param		body	body		askRequest	true	"question"
//	@Success	200		{object}	answerResponse
//	@Failure	502		{object}	errorPayload
//	@Router		/api/files/{id}/ask [post]
func AskFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return writeInvalidID(c)
		}

		var req askRequest
		if err := parseBody(c, &req); err != nil {
			return writeValidationError(c, err)
		}

		answer, err := svc.Ask(c.UserContext(), middleware.UserID(c), id, req.Question)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(answerResponse{Answer: answer})
	}
}
