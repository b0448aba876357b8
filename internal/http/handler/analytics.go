package handler

import (
	"github.com/gofiber/fiber/v2"

	"inbot/internal/http/middleware"
	"inbot/internal/service"
)

// Dashboard returns the caller's usage analytics.
//
//	@Summary	Analytics dashboard
//	@Tags		analytics
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	service.Dashboard
//	@Router		/api/analytics [get]
func Dashboard(svc service.AnalyticsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Dashboard(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
