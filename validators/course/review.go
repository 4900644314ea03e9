package courseValidator

import (
	"strings"

	"serene/middleware"
	courseModels "serene/models/course"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewBody validates a review submission
func ReviewBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Rating int    `json:"rating" validate:"required,min=1,max=5"`
			Review string `json:"review" validate:"required,min=3"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Review = strings.TrimSpace(reqData.Review)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Rating":
					errors["rating"] = "Rating must be between 1 and 5!"
				case "Review":
					errors["review"] = "Review is required and must be at least 3 characters long!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", &courseModels.CourseReview{
			Rating: reqData.Rating,
			Review: reqData.Review,
		})
		return c.Next()
	}
}
