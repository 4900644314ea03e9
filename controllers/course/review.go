package controllers

import (
	"serene/database"
	"serene/middleware"
	courseModels "serene/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetCourseReviews lists reviews for a course with the average rating
func GetCourseReviews(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uuid.UUID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var reviews []courseModels.CourseReview
	if err := database.Database.Db.Where("course_id = ?", courseID).Preload("Profile").Order("created_at desc").Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	average := 0.0
	if len(reviews) > 0 {
		total := 0
		for _, r := range reviews {
			total += r.Rating
		}
		average = float64(total) / float64(len(reviews))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", fiber.Map{
		"reviews":        reviews,
		"total":          len(reviews),
		"average_rating": average,
	})
}

// SubmitReview creates or replaces the current user's review for a course.
// Only enrolled users may review.
func SubmitReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uuid.UUID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, ok := c.Locals("courseID").(uuid.UUID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*courseModels.CourseReview)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var review courseModels.CourseReview
	err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&review).Error
	if err == nil {
		review.Rating = reqData.Rating
		review.Review = reqData.Review
		if err := database.Database.Db.Save(&review).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update review!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully!", review)
	}

	review = courseModels.CourseReview{
		UserID:   userID,
		CourseID: courseID,
		Rating:   reqData.Rating,
		Review:   reqData.Review,
	}
	if err := database.Database.Db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully!", review)
}

// DeleteReview removes the current user's review for a course
func DeleteReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uuid.UUID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, ok := c.Locals("courseID").(uuid.UUID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	res := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).Delete(&courseModels.CourseReview{})
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete review!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted successfully!", nil)
}
