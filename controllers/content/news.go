package controllers

import (
	"serene/database"
	"serene/middleware"
	"serene/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetPublishedNews lists published news entries for the landing page
func GetPublishedNews(c *fiber.Ctx) error {
	var news []models.News
	if err := database.Database.Db.Where("published = ?", true).Order("created_at desc").Find(&news).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch news!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "News fetched successfully!", fiber.Map{
		"news":  news,
		"total": len(news),
	})
}

// AdminListNews lists every news entry, published or not
func AdminListNews(c *fiber.Ctx) error {
	var news []models.News
	if err := database.Database.Db.Order("created_at desc").Find(&news).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch news!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "News fetched successfully!", fiber.Map{
		"news":  news,
		"total": len(news),
	})
}

// AdminCreateNews creates a news entry
func AdminCreateNews(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNews").(*models.News)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create news!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "News created successfully!", reqData)
}

// AdminUpdateNews updates a news entry
func AdminUpdateNews(c *fiber.Ctx) error {
	newsID, ok := c.Locals("contentID").(uuid.UUID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid news id!", nil)
	}
	reqData, ok := c.Locals("validatedNews").(*models.News)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var news models.News
	if err := database.Database.Db.First(&news, "id = ?", newsID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "News not found!", nil)
	}

	news.Title = reqData.Title
	news.Description = reqData.Description
	news.ImageURL = reqData.ImageURL
	news.Published = reqData.Published

	if err := database.Database.Db.Save(&news).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update news!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "News updated successfully!", news)
}

// AdminDeleteNews removes a news entry
func AdminDeleteNews(c *fiber.Ctx) error {
	newsID, ok := c.Locals("contentID").(uuid.UUID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid news id!", nil)
	}

	if err := database.Database.Db.Delete(&models.News{}, "id = ?", newsID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete news!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "News deleted successfully!", nil)
}
