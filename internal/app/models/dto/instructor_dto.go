package dto

import (
	"time"

	"github.com/aomari/course-management/internal/app/models"
)

// InstructorSummary is the minimal nested view of an instructor embedded in
// related responses.
type InstructorSummary struct {
	ID       int64  `json:"id" example:"1"`
	FullName string `json:"fullName" example:"John Doe"`
	Email    string `json:"email" example:"john.doe@example.com"`
}

// InstructorResponse represents full instructor information
type InstructorResponse struct {
	ID        int64                      `json:"id" example:"1"`
	FirstName string                     `json:"firstName" example:"John"`
	LastName  string                     `json:"lastName" example:"Doe"`
	FullName  string                     `json:"fullName" example:"John Doe"`
	Email     string                     `json:"email" example:"john.doe@example.com"`
	Details   *InstructorDetailsResponse `json:"details,omitempty"`
	CreatedAt time.Time                  `json:"createdAt"`
	UpdatedAt time.Time                  `json:"updatedAt"`
}

// CreateInstructorRequest represents instructor creation data
type CreateInstructorRequest struct {
	FirstName string                          `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string                          `json:"lastName" binding:"required,min=1,max=100"`
	Email     string                          `json:"email" binding:"required,email"`
	Details   *CreateInstructorDetailsRequest `json:"details,omitempty"`
}

// UpdateInstructorRequest represents instructor update data. An absent details
// payload unlinks the current details record rather than leaving it untouched.
type UpdateInstructorRequest struct {
	FirstName string                          `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string                          `json:"lastName" binding:"required,min=1,max=100"`
	Email     string                          `json:"email" binding:"required,email"`
	Details   *CreateInstructorDetailsRequest `json:"details,omitempty"`
}

// LinkInstructorDetailsRequest links an existing standalone details record
type LinkInstructorDetailsRequest struct {
	DetailsID int64 `json:"detailsId" binding:"required,gt=0"`
}

// InstructorListResponse represents a paginated list of instructors
type InstructorListResponse struct {
	Instructors []InstructorResponse `json:"instructors"`
	Pagination  PaginationInfo       `json:"pagination"`
}

// NewInstructorSummary maps an instructor model to its nested summary view
func NewInstructorSummary(instructor *models.Instructor) *InstructorSummary {
	if instructor == nil {
		return nil
	}
	return &InstructorSummary{
		ID:       instructor.ID,
		FullName: instructor.FullName(),
		Email:    instructor.Email,
	}
}

// NewInstructorResponse maps an instructor model to its response shape
func NewInstructorResponse(instructor *models.Instructor) InstructorResponse {
	resp := InstructorResponse{
		ID:        instructor.ID,
		FirstName: instructor.FirstName,
		LastName:  instructor.LastName,
		FullName:  instructor.FullName(),
		Email:     instructor.Email,
		CreatedAt: instructor.CreatedAt,
		UpdatedAt: instructor.UpdatedAt,
	}
	if instructor.Details != nil {
		details := NewInstructorDetailsResponse(instructor.Details)
		resp.Details = &details
	}
	return resp
}

// NewInstructorListResponse maps instructor models to a paginated list response
func NewInstructorListResponse(instructors []*models.Instructor, pagination PaginationInfo) InstructorListResponse {
	items := make([]InstructorResponse, 0, len(instructors))
	for _, instructor := range instructors {
		items = append(items, NewInstructorResponse(instructor))
	}
	return InstructorListResponse{Instructors: items, Pagination: pagination}
}
