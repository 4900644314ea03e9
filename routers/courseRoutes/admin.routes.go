package courseRoutes

import (
	controllers "serene/controllers/course"
	"serene/middleware"
	validators "serene/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.RequireAdmin)

	// Course CRUD
	adminGroup.Post("/create", validators.CourseBody(), controllers.AdminCreateCourse)
	adminGroup.Put("/:id", validators.CourseID(), validators.CourseBody(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", validators.CourseID(), controllers.AdminDeleteCourse)
	adminGroup.Get("/list", controllers.AdminGetAllCourses)
	adminGroup.Post("/:id/publish", validators.CourseID(), controllers.AdminPublishCourse)

	// Enrollment management
	enrollGroup := app.Group("/admin/enrollments", middleware.JWTMiddleware, middleware.RequireAdmin)
	enrollGroup.Get("/list", controllers.AdminListEnrollments)
	enrollGroup.Put("/:enrollment_id/status", validators.EnrollmentID(), validators.EnrollmentStatus(), controllers.AdminUpdateEnrollmentStatus)

	// Certificate issuance (idempotent; safe to retry)
	certGroup := app.Group("/admin/certificates", middleware.JWTMiddleware, middleware.RequireAdmin)
	certGroup.Post("/generate", validators.GenerateCertificate(), controllers.GenerateCertificate)
}
