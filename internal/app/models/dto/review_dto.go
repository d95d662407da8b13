package dto

import (
	"time"

	"github.com/aomari/course-management/internal/app/models"
)

// ReviewResponse represents review information with minimal nested summaries
type ReviewResponse struct {
	ID        int64           `json:"id" example:"1"`
	Comment   string          `json:"comment" example:"Great course!"`
	CourseID  int64           `json:"courseId" example:"1"`
	StudentID int64           `json:"studentId" example:"1"`
	Course    *CourseSummary  `json:"course,omitempty"`
	Student   *StudentSummary `json:"student,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CreateReviewRequest represents review creation data
type CreateReviewRequest struct {
	Comment   string `json:"comment" binding:"required,min=1"`
	CourseID  int64  `json:"courseId" binding:"required,gt=0"`
	StudentID int64  `json:"studentId" binding:"required,gt=0"`
}

// UpdateReviewRequest represents review update data
type UpdateReviewRequest struct {
	Comment   string `json:"comment" binding:"required,min=1"`
	CourseID  int64  `json:"courseId" binding:"required,gt=0"`
	StudentID int64  `json:"studentId" binding:"required,gt=0"`
}

// ReviewListResponse represents a paginated list of reviews
type ReviewListResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	Pagination PaginationInfo   `json:"pagination"`
}

// NewReviewResponse maps a review model to its response shape
func NewReviewResponse(review *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		Comment:   review.Comment,
		CourseID:  review.CourseID,
		StudentID: review.StudentID,
		Course:    NewCourseSummary(review.Course),
		Student:   NewStudentSummary(review.Student),
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

// NewReviewListResponse maps review models to response shapes
func NewReviewListResponse(reviews []*models.Review) []ReviewResponse {
	items := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, NewReviewResponse(review))
	}
	return items
}
