package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"inbot/internal/service"
)

// Services bundles the use cases the routes are served by.
type Services struct {
	Auth          service.AuthService
	Files         service.FileService
	Conversations service.ConversationService
	Translations  service.TranslationService
	Analytics     service.AnalyticsService
	Profile       service.ProfileService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Everything under /api runs behind requireAuth.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services, requireAuth fiber.Handler) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/auth/signup", Signup(svc.Auth))
	app.Post("/auth/login", Login(svc.Auth))

	api := app.Group("/api", requireAuth)

	api.Post("/auth/logout", Logout(svc.Auth))
	api.Get("/auth/me", Me(svc.Auth))

	api.Get("/files", ListFiles(svc.Files))
	api.Post("/files", UploadFile(svc.Files))
	api.Get("/files/:id", GetFile(svc.Files))
	api.Patch("/files/:id", UpdateFile(svc.Files))
	api.Delete("/files/:id", DeleteFile(svc.Files))
	api.Get("/files/:id/download", DownloadFile(svc.Files))
	api.Post("/files/:id/embedding", ReembedFile(svc.Files))
	api.Post("/files/:id/ask", AskFile(svc.Files))

	api.Get("/conversations", ListConversations(svc.Conversations))
	api.Post("/conversations", CreateConversation(svc.Conversations))
	api.Get("/conversations/:id", GetConversation(svc.Conversations))
	api.Delete("/conversations/:id", DeleteConversation(svc.Conversations))
	api.Post("/conversations/:id/messages", AskConversation(svc.Conversations))

	api.Post("/translations/preview", PreviewTranslation(svc.Translations))
	api.Put("/translations", SaveTranslation(svc.Translations))
	api.Get("/translations", ListTranslations(svc.Translations))
	api.Get("/translations/:id", GetTranslation(svc.Translations))
	api.Delete("/translations/:id", DeleteTranslation(svc.Translations))
	api.Get("/translations/:id/pdf", TranslationPDF(svc.Translations))

	api.Get("/analytics", Dashboard(svc.Analytics))

	api.Get("/profile", GetProfile(svc.Profile))
	api.Patch("/profile", UpdateProfile(svc.Profile))
	api.Post("/profile/avatar", UploadAvatar(svc.Profile))
}
