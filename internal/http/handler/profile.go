package handler

import (
	"github.com/gofiber/fiber/v2"

	"inbot/internal/http/middleware"
	"inbot/internal/service"
)

type updateProfileRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Bio  string `json:"bio" validate:"max=500"`
}

// GetProfile returns the caller's profile.
//
//	@Summary	Get profile
//	@Tags		profile
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	model.User
//	@Router		/api/profile [get]
func GetProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := svc.Get(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(user)
	}
}

// UpdateProfile changes the display name and bio.
//
//	@Summary	Update profile
//	@Tags		profile
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		updateProfileRequest	true	"profile"
//	@Success	200		{object}	model.User
//	@Router		/api/profile [patch]
func UpdateProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateProfileRequest
		if err := parseBody(c, &req); err != nil {
			return writeValidationError(c, err)
		}

		user, err := svc.Update(c.UserContext(), middleware.UserID(c), req.Name, req.Bio)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(user)
	}
}

// UploadAvatar replaces the profile picture (multipart/form-data, field name: avatar).
//
//	@Summary	Upload avatar
//	@Tags		profile
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		avatar	formData	file	true	"image"
//	@Success	200		{object}	model.User
//	@Failure	415		{object}	errorPayload
//	@Router		/api/profile/avatar [post]
func UploadAvatar(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("avatar")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "avatar is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		user, err := svc.UploadAvatar(c.UserContext(), service.AvatarInput{
			UserID:   middleware.UserID(c),
			Filename: fh.Filename,
			Reader:   f,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(user)
	}
}
