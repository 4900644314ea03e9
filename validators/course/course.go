package courseValidator

import (
	"encoding/json"
	"strings"

	"serene/middleware"
	courseModels "serene/models/course"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CourseID validates the :id path parameter as a UUID
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CourseBody validates admin create/update course requests
func CourseBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string   `json:"title" validate:"required,min=3"`
			Description string   `json:"description" validate:"required,min=5"`
			Topics      []string `json:"topics"`
			ImageURL    string   `json:"image_url" validate:"omitempty,url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Title":
					errors["title"] = "Title is required and must be at least 3 characters long!"
				case "Description":
					errors["description"] = "Description is required and must be at least 5 characters long!"
				case "ImageURL":
					errors["image_url"] = "Image URL must be a valid URL!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		topics, err := json.Marshal(reqData.Topics)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid topics!", nil)
		}

		c.Locals("validatedCourse", &courseModels.Course{
			Title:       reqData.Title,
			Description: reqData.Description,
			Topics:      datatypes.JSON(topics),
			ImageURL:    reqData.ImageURL,
		})
		return c.Next()
	}
}
