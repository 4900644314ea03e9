package courseValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

// GenerateCertificate validates the issuance request body. The endpoint uses
// the dashboard's raw {"error": ...} shape rather than the platform envelope.
func GenerateCertificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			EnrollmentID string `json:"enrollmentId" validate:"required,uuid"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := validate.Struct(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enrollmentId must be a valid UUID"})
		}

		enrollmentID, err := uuid.Parse(reqData.EnrollmentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enrollmentId must be a valid UUID"})
		}

		c.Locals("enrollmentID", enrollmentID)
		return c.Next()
	}
}
