package controllers

import (
	"serene/database"
	"serene/middleware"
	"serene/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetPublishedProjects lists published projects
func GetPublishedProjects(c *fiber.Ctx) error {
	var projects []models.Project
	if err := database.Database.Db.Where("published = ?", true).Order("created_at desc").Find(&projects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch projects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Projects fetched successfully!", fiber.Map{
		"projects": projects,
		"total":    len(projects),
	})
}

// AdminListProjects lists every project, published or not
func AdminListProjects(c *fiber.Ctx) error {
	var projects []models.Project
	if err := database.Database.Db.Order("created_at desc").Find(&projects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch projects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Projects fetched successfully!", fiber.Map{
		"projects": projects,
		"total":    len(projects),
	})
}

// AdminCreateProject creates a project entry
func AdminCreateProject(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProject").(*models.Project)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Project created successfully!", reqData)
}

// AdminUpdateProject updates a project entry
func AdminUpdateProject(c *fiber.Ctx) error {
	projectID, ok := c.Locals("contentID").(uuid.UUID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid project id!", nil)
	}
	reqData, ok := c.Locals("validatedProject").(*models.Project)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var project models.Project
	if err := database.Database.Db.First(&project, "id = ?", projectID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	project.Title = reqData.Title
	project.Description = reqData.Description
	project.ImageURL = reqData.ImageURL
	project.Published = reqData.Published

	if err := database.Database.Db.Save(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project updated successfully!", project)
}

// AdminDeleteProject removes a project entry
func AdminDeleteProject(c *fiber.Ctx) error {
	projectID, ok := c.Locals("contentID").(uuid.UUID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid project id!", nil)
	}

	if err := database.Database.Db.Delete(&models.Project{}, "id = ?", projectID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project deleted successfully!", nil)
}
