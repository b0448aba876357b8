package handler

import (
	"github.com/gofiber/fiber/v2"

	"inbot/internal/http/middleware"
	"inbot/internal/service"
)

type createConversationRequest struct {
	FileID string `json:"file_id" validate:"required,uuid"`
	Name   string `json:"name" validate:"max=255"`
}

// ListConversations lists the caller's conversations, newest first.
//
//	@Summary	List conversations
//	@Tags		conversations
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query		int	false	"page size (1-100)"
//	@Param		offset	query		int	false	"rows to skip"
//	@Success	200		{object}	service.ConversationListResult
//	@Router		/api/conversations [get]
func ListConversations(svc service.ConversationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, err := pageParams(c)
		if !ok {
			return err
		}

		res, err := svc.List(c.UserContext(), middleware.UserID(c), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateConversation starts a conversation over one file.
//
//	@Summary	Start a conversation
//	@Tags		conversations
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		createConversationRequest	true	"conversation"
//	@Success	201		{object}	model.Conversation
//	@Failure	404		{object}	errorPayload
//	@Router		/api/conversations [post]
func CreateConversation(svc service.ConversationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createConversationRequest
		if err := parseBody(c, &req); err != nil {
			return writeValidationError(c, err)
		}

		conv, err := svc.Create(c.UserContext(), middleware.UserID(c), req.FileID, req.Name)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(conv)
	}
}

// GetConversation returns a conversation with its messages.
//
//	@Summary	Get a conversation
//	@Tags		conversations
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"conversation id"
//	@Success	200	{object}	service.ConversationDetail
//	@Router		/api/conversations/{id} [get]
func GetConversation(svc service.ConversationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return writeInvalidID(c)
		}

		res, err := svc.Get(c.UserContext(), middleware.UserID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// DeleteConversation removes a conversation and its messages.
//
//	@Summary	Delete a conversation
//	@Tags		conversations
//	@Security	BearerAuth
//	@Param		id	path	string	true	"conversation id"
//	@Success	204
//	@Router		/api/conversations/{id} [delete]
func DeleteConversation(svc service.ConversationService) fiber.Handler {
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

// AskConversation appends a question and the bot's answer.
//
//	@Summary	Ask in a conversation
//	@Tags		conversations
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string		true	"conversation id"
//	@Param		body	body		askRequest	true	"question"
//	@Success	201		{object}	service.Exchange
//	@Failure	502		{object}	errorPayload
//	@Router		/api/conversations/{id}/messages [post]
func AskConversation(svc service.ConversationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return writeInvalidID(c)
		}

		var req askRequest
		if err := parseBody(c, &req); err != nil {
			return writeValidationError(c, err)
		}

		res, err := svc.Ask(c.UserContext(), middleware.UserID(c), id, req.Question)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}
