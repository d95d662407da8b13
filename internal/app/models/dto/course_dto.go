package dto

import (
	"time"

	"github.com/aomari/course-management/internal/app/models"
)

// CourseSummary is the minimal nested view of a course embedded in related responses.
type CourseSummary struct {
	ID    int64  `json:"id" example:"1"`
	Title string `json:"title" example:"Java Basics"`
}

// CourseResponse represents full course information with the embedded instructor summary
type CourseResponse struct {
	ID         int64              `json:"id" example:"1"`
	Title      string             `json:"title" example:"Java Basics"`
	Instructor *InstructorSummary `json:"instructor,omitempty"`
	Reviews    []ReviewResponse   `json:"reviews,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Title        string `json:"title" binding:"required,min=1,max=255"`
	InstructorID int64  `json:"instructorId" binding:"required,gt=0"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Title        string `json:"title" binding:"required,min=1,max=255"`
	InstructorID int64  `json:"instructorId" binding:"required,gt=0"`
}

// CourseListResponse represents a paginated list of courses
type CourseListResponse struct {
	Courses    []CourseResponse `json:"courses"`
	Pagination PaginationInfo   `json:"pagination"`
}

// NewCourseSummary maps a course model to its nested summary view
func NewCourseSummary(course *models.Course) *CourseSummary {
	if course == nil {
		return nil
	}
	return &CourseSummary{
		ID:    course.ID,
		Title: course.Title,
	}
}

// NewCourseResponse maps a course model to its response shape
func NewCourseResponse(course *models.Course) CourseResponse {
	resp := CourseResponse{
		ID:         course.ID,
		Title:      course.Title,
		Instructor: NewInstructorSummary(course.Instructor),
		CreatedAt:  course.CreatedAt,
		UpdatedAt:  course.UpdatedAt,
	}
	if len(course.Reviews) > 0 {
		resp.Reviews = NewReviewListResponse(course.Reviews)
	}
	return resp
}

// NewCourseListResponse maps course models to a paginated list response
func NewCourseListResponse(courses []*models.Course, pagination PaginationInfo) CourseListResponse {
	items := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		items = append(items, NewCourseResponse(course))
	}
	return CourseListResponse{Courses: items, Pagination: pagination}
}

// NewCourseResponses maps course models to response shapes without pagination
func NewCourseResponses(courses []*models.Course) []CourseResponse {
	items := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		items = append(items, NewCourseResponse(course))
	}
	return items
}
