package courseRoutes

import (
	controllers "serene/controllers/course"
	"serene/middleware"
	validators "serene/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Public catalog
	courseGroup.Get("/list", controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)
	courseGroup.Get("/:id/reviews", validators.CourseID(), controllers.GetCourseReviews)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	// Reviews (enrolled users)
	courseGroup.Post("/:id/review", middleware.JWTMiddleware, validators.CourseID(), validators.ReviewBody(), controllers.SubmitReview)
	courseGroup.Delete("/:id/review", middleware.JWTMiddleware, validators.CourseID(), controllers.DeleteReview)

	// User enrollments and certificates
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetMyEnrollments)
	userGroup.Post("/enrollments/:enrollment_id/cancel", middleware.JWTMiddleware, validators.EnrollmentID(), controllers.CancelEnrollment)
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)
}
