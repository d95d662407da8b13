package dto

import (
	"time"

	"github.com/aomari/course-management/internal/app/models"
)

// InstructorDetailsResponse represents instructor details information
type InstructorDetailsResponse struct {
	ID             int64     `json:"id" example:"1"`
	YoutubeChannel string    `json:"youtubeChannel" example:"https://youtube.com/@johndoe"`
	Hobby          *string   `json:"hobby,omitempty" example:"Guitar"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CreateInstructorDetailsRequest represents details creation data
type CreateInstructorDetailsRequest struct {
	YoutubeChannel string  `json:"youtubeChannel" binding:"required,max=255"`
	Hobby          *string `json:"hobby,omitempty" binding:"omitempty,max=255"`
}

// UpdateInstructorDetailsRequest represents details update data
type UpdateInstructorDetailsRequest struct {
	YoutubeChannel string  `json:"youtubeChannel" binding:"required,max=255"`
	Hobby          *string `json:"hobby,omitempty" binding:"omitempty,max=255"`
}

// NewInstructorDetailsResponse maps a details model to its response shape
func NewInstructorDetailsResponse(details *models.InstructorDetails) InstructorDetailsResponse {
	return InstructorDetailsResponse{
		ID:             details.ID,
		YoutubeChannel: details.YoutubeChannel,
		Hobby:          details.Hobby,
		CreatedAt:      details.CreatedAt,
		UpdatedAt:      details.UpdatedAt,
	}
}

// NewInstructorDetailsListResponse maps details models to response shapes
func NewInstructorDetailsListResponse(detailsList []*models.InstructorDetails) []InstructorDetailsResponse {
	items := make([]InstructorDetailsResponse, 0, len(detailsList))
	for _, details := range detailsList {
		items = append(items, NewInstructorDetailsResponse(details))
	}
	return items
}
