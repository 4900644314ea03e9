package contentRoutes

import (
	controllers "serene/controllers/content"
	"serene/middleware"
	validators "serene/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes sets up public and admin routes for news, projects and FAQs
func SetupContentRoutes(app *fiber.App) {
	// Public landing-page content
	app.Get("/news", controllers.GetPublishedNews)
	app.Get("/projects", controllers.GetPublishedProjects)
	app.Get("/faqs", controllers.GetPublishedFAQs)

	// Admin content management
	adminNews := app.Group("/admin/news", middleware.JWTMiddleware, middleware.RequireAdmin)
	adminNews.Get("/list", controllers.AdminListNews)
	adminNews.Post("/create", validators.NewsBody(), controllers.AdminCreateNews)
	adminNews.Put("/:id", validators.ContentID(), validators.NewsBody(), controllers.AdminUpdateNews)
	adminNews.Delete("/:id", validators.ContentID(), controllers.AdminDeleteNews)

	adminProjects := app.Group("/admin/projects", middleware.JWTMiddleware, middleware.RequireAdmin)
	adminProjects.Get("/list", controllers.AdminListProjects)
	adminProjects.Post("/create", validators.ProjectBody(), controllers.AdminCreateProject)
	adminProjects.Put("/:id", validators.ContentID(), validators.ProjectBody(), controllers.AdminUpdateProject)
	adminProjects.Delete("/:id", validators.ContentID(), controllers.AdminDeleteProject)

	adminFAQs := app.Group("/admin/faqs", middleware.JWTMiddleware, middleware.RequireAdmin)
	adminFAQs.Get("/list", controllers.AdminListFAQs)
	adminFAQs.Post("/create", validators.FAQBody(), controllers.AdminCreateFAQ)
	adminFAQs.Put("/:id", validators.ContentID(), validators.FAQBody(), controllers.AdminUpdateFAQ)
	adminFAQs.Delete("/:id", validators.ContentID(), controllers.AdminDeleteFAQ)
}
