package contentValidator

import (
	"strings"

	"serene/middleware"
	"serene/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

// ContentID validates the :id path parameter as a UUID
func ContentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		c.Locals("contentID", contentID)
		return c.Next()
	}
}

// NewsBody validates admin news create/update requests
func NewsBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title" validate:"required,min=3"`
			Description string `json:"description"`
			ImageURL    string `json:"image_url" validate:"omitempty,url"`
			Published   bool   `json:"published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, contentErrors(err))
		}

		c.Locals("validatedNews", &models.News{
			Title:       reqData.Title,
			Description: reqData.Description,
			ImageURL:    reqData.ImageURL,
			Published:   reqData.Published,
		})
		return c.Next()
	}
}

// ProjectBody validates admin project create/update requests
func ProjectBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title" validate:"required,min=3"`
			Description string `json:"description"`
			ImageURL    string `json:"image_url" validate:"omitempty,url"`
			Published   bool   `json:"published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, contentErrors(err))
		}

		c.Locals("validatedProject", &models.Project{
			Title:       reqData.Title,
			Description: reqData.Description,
			ImageURL:    reqData.ImageURL,
			Published:   reqData.Published,
		})
		return c.Next()
	}
}

// FAQBody validates admin FAQ create/update requests
func FAQBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Question  string `json:"question" validate:"required,min=5"`
			Answer    string `json:"answer" validate:"required,min=3"`
			Published bool   `json:"published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Question = strings.TrimSpace(reqData.Question)
		reqData.Answer = strings.TrimSpace(reqData.Answer)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Question":
					errors["question"] = "Question is required and must be at least 5 characters long!"
				case "Answer":
					errors["answer"] = "Answer is required and must be at least 3 characters long!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFAQ", &models.FAQ{
			Question:  reqData.Question,
			Answer:    reqData.Answer,
			Published: reqData.Published,
		})
		return c.Next()
	}
}

func contentErrors(err error) map[string]string {
	errors := make(map[string]string)
	for _, fieldErr := range err.(validator.ValidationErrors) {
		switch fieldErr.Field() {
		case "Title":
			errors["title"] = "Title is required and must be at least 3 characters long!"
		case "ImageURL":
			errors["image_url"] = "Image URL must be a valid URL!"
		}
	}
	return errors
}
