package courseValidator

import (
	"serene/middleware"
	courseModels "serene/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// EnrollmentID validates the :enrollment_id path parameter as a UUID
func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, err := uuid.Parse(c.Params("enrollment_id"))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
		}
		c.Locals("enrollmentID", enrollmentID)
		return c.Next()
	}
}

// EnrollmentStatus validates an admin status-transition request
func EnrollmentStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		switch reqData.Status {
		case courseModels.EnrollmentActive, courseModels.EnrollmentCompleted, courseModels.EnrollmentCancelled:
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be one of: active, completed, cancelled!",
			})
		}

		c.Locals("enrollmentStatus", reqData.Status)
		return c.Next()
	}
}
