package controllers

import (
	"serene/database"
	"serene/middleware"
	"serene/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetPublishedFAQs lists published FAQ entries
func GetPublishedFAQs(c *fiber.Ctx) error {
	var faqs []models.FAQ
	if err := database.Database.Db.Where("published = ?", true).Order("created_at asc").Find(&faqs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch FAQs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQs fetched successfully!", fiber.Map{
		"faqs":  faqs,
		"total": len(faqs),
	})
}

// AdminListFAQs lists every FAQ entry, published or not
func AdminListFAQs(c *fiber.Ctx) error {
	var faqs []models.FAQ
	if err := database.Database.Db.Order("created_at asc").Find(&faqs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch FAQs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQs fetched successfully!", fiber.Map{
		"faqs":  faqs,
		"total": len(faqs),
	})
}

// AdminCreateFAQ creates an FAQ entry
func AdminCreateFAQ(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedFAQ").(*models.FAQ)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create FAQ!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "FAQ created successfully!", reqData)
}

// AdminUpdateFAQ updates an FAQ entry
func AdminUpdateFAQ(c *fiber.Ctx) error {
	faqID, ok := c.Locals("contentID").(uuid.UUID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid FAQ id!", nil)
	}
	reqData, ok := c.Locals("validatedFAQ").(*models.FAQ)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var faq models.FAQ
	if err := database.Database.Db.First(&faq, "id = ?", faqID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "FAQ not found!", nil)
	}

	faq.Question = reqData.Question
	faq.Answer = reqData.Answer
	faq.Published = reqData.Published

	if err := database.Database.Db.Save(&faq).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update FAQ!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQ updated successfully!", faq)
}

// AdminDeleteFAQ removes an FAQ entry
func AdminDeleteFAQ(c *fiber.Ctx) error {
	faqID, ok := c.Locals("contentID").(uuid.UUID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid FAQ id!", nil)
	}

	if err := database.Database.Db.Delete(&models.FAQ{}, "id = ?", faqID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete FAQ!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQ deleted successfully!", nil)
}
