package services

import (
	"context"

	"github.com/aomari/course-management/internal/app/models"
	"github.com/aomari/course-management/internal/app/models/dto"
)

// InstructorDetailsService defines the interface for instructor details operations
type InstructorDetailsService interface {
	CreateInstructorDetails(ctx context.Context, req dto.CreateInstructorDetailsRequest) (*dto.InstructorDetailsResponse, error)
	UpdateInstructorDetails(ctx context.Context, id int64, req dto.UpdateInstructorDetailsRequest) (*dto.InstructorDetailsResponse, error)
	DeleteInstructorDetails(ctx context.Context, id int64) error
	GetInstructorDetailsByID(ctx context.Context, id int64) (*dto.InstructorDetailsResponse, error)
	SearchByYoutubeChannel(ctx context.Context, channel string) ([]dto.InstructorDetailsResponse, error)
	SearchByHobby(ctx context.Context, hobby string) ([]dto.InstructorDetailsResponse, error)
	GetOrphanedDetails(ctx context.Context) ([]dto.InstructorDetailsResponse, error)
}

// instructorDetailsServiceImpl implements the InstructorDetailsService interface
type instructorDetailsServiceImpl struct {
	detailsRepo InstructorDetailsRepository
}

// NewInstructorDetailsService creates a new instructor details service instance
func NewInstructorDetailsService(detailsRepo InstructorDetailsRepository) InstructorDetailsService {
	return &instructorDetailsServiceImpl{detailsRepo: detailsRepo}
}

// CreateInstructorDetails creates a standalone details record. The channel is
// required at the binding layer; there is no uniqueness constraint on it, so
// creation never conflicts.
func (s *instructorDetailsServiceImpl) CreateInstructorDetails(ctx context.Context, req dto.CreateInstructorDetailsRequest) (*dto.InstructorDetailsResponse, error) {
	details := &models.InstructorDetails{
		YoutubeChannel: req.YoutubeChannel,
		Hobby:          req.Hobby,
	}
	if err := s.detailsRepo.Create(ctx, details); err != nil {
		return nil, err
	}

	resp := dto.NewInstructorDetailsResponse(details)
	return &resp, nil
}

// UpdateInstructorDetails replaces both fields of an existing details record
func (s *instructorDetailsServiceImpl) UpdateInstructorDetails(ctx context.Context, id int64, req dto.UpdateInstructorDetailsRequest) (*dto.InstructorDetailsResponse, error) {
	details, err := s.detailsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details.YoutubeChannel = req.YoutubeChannel
	details.Hobby = req.Hobby
	if err := s.detailsRepo.Update(ctx, details); err != nil {
		return nil, err
	}

	resp := dto.NewInstructorDetailsResponse(details)
	return &resp, nil
}

// DeleteInstructorDetails deletes a details record. A linked instructor survives
// with its reference cleared.
func (s *instructorDetailsServiceImpl) DeleteInstructorDetails(ctx context.Context, id int64) error {
	return s.detailsRepo.Delete(ctx, id)
}

// GetInstructorDetailsByID retrieves a details record by id
func (s *instructorDetailsServiceImpl) GetInstructorDetailsByID(ctx context.Context, id int64) (*dto.InstructorDetailsResponse, error) {
	details, err := s.detailsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewInstructorDetailsResponse(details)
	return &resp, nil
}

// SearchByYoutubeChannel finds details by case-insensitive channel substring
func (s *instructorDetailsServiceImpl) SearchByYoutubeChannel(ctx context.Context, channel string) ([]dto.InstructorDetailsResponse, error) {
	details, err := s.detailsRepo.SearchByYoutubeChannel(ctx, channel)
	if err != nil {
		return nil, err
	}
	return dto.NewInstructorDetailsListResponse(details), nil
}

// SearchByHobby finds details by case-insensitive hobby substring
func (s *instructorDetailsServiceImpl) SearchByHobby(ctx context.Context, hobby string) ([]dto.InstructorDetailsResponse, error) {
	details, err := s.detailsRepo.SearchByHobby(ctx, hobby)
	if err != nil {
		return nil, err
	}
	return dto.NewInstructorDetailsListResponse(details), nil
}

// GetOrphanedDetails retrieves details records no instructor points to
func (s *instructorDetailsServiceImpl) GetOrphanedDetails(ctx context.Context) ([]dto.InstructorDetailsResponse, error) {
	details, err := s.detailsRepo.GetOrphaned(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewInstructorDetailsListResponse(details), nil
}
