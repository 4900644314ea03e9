package controllers

import (
	"errors"

	"serene/certificate"
	"serene/database"
	"serene/middleware"
	courseModels "serene/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var certIssuer *certificate.Issuer

// InitCertificateIssuer wires the issuer used by the certificate endpoints.
// Called once from main before routes are served.
func InitCertificateIssuer(issuer *certificate.Issuer) {
	certIssuer = issuer
}

// GenerateCertificate issues the certificate for a completed enrollment, or
// returns the already-issued one. The response shape is the dashboard
// contract: {"certificate": {...}} on success, {"error": "..."} on failure.
func GenerateCertificate(c *fiber.Ctx) error {
	enrollmentID, ok := c.Locals("enrollmentID").(uuid.UUID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enrollmentId is required"})
	}

	cert, err := certIssuer.Issue(c.Context(), enrollmentID)
	if err != nil {
		return c.Status(certificateErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"certificate": cert})
}

func certificateErrorStatus(err error) int {
	switch {
	case errors.Is(err, certificate.ErrEnrollmentNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, certificate.ErrCourseNotCompleted):
		return fiber.StatusBadRequest
	case errors.Is(err, certificate.ErrAllocator), errors.Is(err, certificate.ErrStorage):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// GetUserCertificates gets all certificates for the current user
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uuid.UUID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type CertificateWithCourse struct {
		courseModels.Certificate
		CourseTitle string `json:"course_title"`
	}

	var certificates []courseModels.Certificate
	if err := database.Database.Db.Where("user_id = ?", userID).Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	result := make([]CertificateWithCourse, len(certificates))
	for i, cert := range certificates {
		var course courseModels.Course
		database.Database.Db.First(&course, "id = ?", cert.CourseID)
		result[i] = CertificateWithCourse{
			Certificate: cert,
			CourseTitle: course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}
