package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aomari/course-management/internal/app/models/dto"
	"github.com/aomari/course-management/internal/app/services"
	"github.com/aomari/course-management/internal/middleware"
)

// ReviewController handles review-related operations
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// CreateReview handles review creation
// @Summary Create a new review
// @Description Creates a review written by an existing student on an existing course
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Review information"
// @Success 201 {object} dto.APIResponse{data=dto.ReviewResponse} "Review created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course or student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	var req dto.CreateReviewRequest
	if !bindJSON(ctx, &req) {
		return
	}

	review, err := c.reviewService.CreateReview(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      review,
		Timestamp: time.Now(),
	})
}

// GetReviewByID retrieves a review by ID
// @Summary Get review details
// @Description Retrieves a review by its ID with course and student summaries
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ReviewResponse} "Review retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid review ID format"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews/{id} [get]
func (c *ReviewController) GetReviewByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Review")
	if !ok {
		return
	}

	review, err := c.reviewService.GetReviewByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      review,
		Timestamp: time.Now(),
	})
}

// UpdateReview updates an existing review
// @Summary Update a review
// @Description Updates a review's comment or re-points it at another course or student
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID" Format(int64) minimum(1)
// @Param request body dto.UpdateReviewRequest true "Updated review information"
// @Success 200 {object} dto.APIResponse{data=dto.ReviewResponse} "Review updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Review, course or student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews/{id} [put]
func (c *ReviewController) UpdateReview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Review")
	if !ok {
		return
	}

	var req dto.UpdateReviewRequest
	if !bindJSON(ctx, &req) {
		return
	}

	review, err := c.reviewService.UpdateReview(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      review,
		Timestamp: time.Now(),
	})
}

// DeleteReview deletes a review
// @Summary Delete a review
// @Description Deletes a review by its ID
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID" Format(int64) minimum(1)
// @Success 200 {object} dto.DeleteResponse "Review deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid review ID format"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews/{id} [delete]
func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Review")
	if !ok {
		return
	}

	if err := c.reviewService.DeleteReview(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDeleteResponse(id, "Review", "Review deleted successfully"))
}

// GetCourseReviews lists a course's reviews
// @Summary List a course's reviews
// @Description Retrieves the course's reviews, newest first
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.ReviewResponse} "Reviews retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/reviews [get]
func (c *ReviewController) GetCourseReviews(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Course")
	if !ok {
		return
	}

	reviews, err := c.reviewService.GetReviewsByCourseID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      reviews,
		Timestamp: time.Now(),
	})
}

// CountCourseReviews counts a course's reviews
// @Summary Count a course's reviews
// @Description Counts the reviews written on the given course
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.CountResponse "Count retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/reviews/count [get]
func (c *ReviewController) CountCourseReviews(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Course")
	if !ok {
		return
	}

	count, err := c.reviewService.CountReviewsByCourseID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, count)
}

// GetLatestReviews lists the newest reviews across all courses
// @Summary List latest reviews
// @Description Retrieves the newest reviews across all courses
// @Tags reviews
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of reviews" default(10)
// @Success 200 {object} dto.APIResponse{data=[]dto.ReviewResponse} "Reviews retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews/latest [get]
func (c *ReviewController) GetLatestReviews(ctx *gin.Context) {
	limit := 10
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	reviews, err := c.reviewService.GetLatestReviews(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      reviews,
		Timestamp: time.Now(),
	})
}

// SearchReviews finds reviews by comment or course title
// @Summary Search reviews
// @Description Finds reviews by case-insensitive substring on the comment or the course title
// @Tags reviews
// @Accept json
// @Produce json
// @Param comment query string false "Comment fragment"
// @Param courseTitle query string false "Course title fragment"
// @Success 200 {object} dto.APIResponse{data=[]dto.ReviewResponse} "Reviews retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing search parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews/search [get]
func (c *ReviewController) SearchReviews(ctx *gin.Context) {
	comment := ctx.Query("comment")
	courseTitle := ctx.Query("courseTitle")

	var (
		reviews []dto.ReviewResponse
		err     error
	)
	switch {
	case comment != "":
		reviews, err = c.reviewService.SearchReviewsByComment(ctx, comment)
	case courseTitle != "":
		reviews, err = c.reviewService.SearchReviewsByCourseTitle(ctx, courseTitle)
	default:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing search parameter")
		errorDetail = errorDetail.WithDetails("Provide a comment or courseTitle query parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      reviews,
		Timestamp: time.Now(),
	})
}

// GetInstructorReviews lists the reviews left on an instructor's courses
// @Summary List an instructor's reviews
// @Description Retrieves all reviews written on any of the instructor's courses
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.ReviewResponse} "Reviews retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/{id}/reviews [get]
func (c *ReviewController) GetInstructorReviews(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Instructor")
	if !ok {
		return
	}

	reviews, err := c.reviewService.GetReviewsByInstructorID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      reviews,
		Timestamp: time.Now(),
	})
}
