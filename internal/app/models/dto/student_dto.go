package dto

import (
	"time"

	"github.com/aomari/course-management/internal/app/models"
)

// StudentSummary is the minimal nested view of a student embedded in related responses.
type StudentSummary struct {
	ID       int64  `json:"id" example:"1"`
	FullName string `json:"fullName" example:"Jane Smith"`
	Email    string `json:"email" example:"jane.smith@example.com"`
}

// StudentResponse represents full student information
type StudentResponse struct {
	ID        int64           `json:"id" example:"1"`
	FirstName string          `json:"firstName" example:"Jane"`
	LastName  string          `json:"lastName" example:"Smith"`
	FullName  string          `json:"fullName" example:"Jane Smith"`
	Email     string          `json:"email" example:"jane.smith@example.com"`
	Courses   []CourseSummary `json:"courses,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100"`
	Email     string `json:"email" binding:"required,email"`
}

// UpdateStudentRequest represents student update data
type UpdateStudentRequest struct {
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100"`
	Email     string `json:"email" binding:"required,email"`
}

// StudentListResponse represents a paginated list of students
type StudentListResponse struct {
	Students   []StudentResponse `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}

// EnrollmentStatusResponse reports whether a student is enrolled in a course
type EnrollmentStatusResponse struct {
	StudentID int64 `json:"studentId" example:"1"`
	CourseID  int64 `json:"courseId" example:"1"`
	Enrolled  bool  `json:"enrolled" example:"true"`
}

// NewStudentSummary maps a student model to its nested summary view
func NewStudentSummary(student *models.Student) *StudentSummary {
	if student == nil {
		return nil
	}
	return &StudentSummary{
		ID:       student.ID,
		FullName: student.FullName(),
		Email:    student.Email,
	}
}

// NewStudentResponse maps a student model to its response shape
func NewStudentResponse(student *models.Student) StudentResponse {
	resp := StudentResponse{
		ID:        student.ID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		FullName:  student.FullName(),
		Email:     student.Email,
		CreatedAt: student.CreatedAt,
		UpdatedAt: student.UpdatedAt,
	}
	for _, course := range student.Courses {
		if summary := NewCourseSummary(course); summary != nil {
			resp.Courses = append(resp.Courses, *summary)
		}
	}
	return resp
}

// NewStudentListResponse maps student models to a paginated list response
func NewStudentListResponse(students []*models.Student, pagination PaginationInfo) StudentListResponse {
	items := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		items = append(items, NewStudentResponse(student))
	}
	return StudentListResponse{Students: items, Pagination: pagination}
}

// NewStudentResponses maps student models to response shapes without pagination
func NewStudentResponses(students []*models.Student) []StudentResponse {
	items := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		items = append(items, NewStudentResponse(student))
	}
	return items
}
