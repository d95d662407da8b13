package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aomari/course-management/internal/app/models"
	"github.com/aomari/course-management/internal/app/models/dto"
	"github.com/aomari/course-management/internal/pkg/apperrors"
	"github.com/aomari/course-management/internal/pkg/helpers"
)

// InstructorService defines the interface for instructor-related operations
type InstructorService interface {
	CreateInstructor(ctx context.Context, req dto.CreateInstructorRequest) (*dto.InstructorResponse, error)
	UpdateInstructor(ctx context.Context, id int64, req dto.UpdateInstructorRequest) (*dto.InstructorResponse, error)
	DeleteInstructor(ctx context.Context, id int64) error
	GetInstructorByID(ctx context.Context, id int64) (*dto.InstructorResponse, error)
	GetInstructorByEmail(ctx context.Context, email string) (*dto.InstructorResponse, error)
	GetAllInstructors(ctx context.Context, page, size int) (*dto.InstructorListResponse, error)
	AddInstructorDetails(ctx context.Context, instructorID, detailsID int64) (*dto.InstructorResponse, error)
	RemoveInstructorDetails(ctx context.Context, instructorID int64) (*dto.InstructorResponse, error)
	SearchInstructorsByName(ctx context.Context, name string) ([]dto.InstructorResponse, error)
	GetInstructorsWithDetails(ctx context.Context) ([]dto.InstructorResponse, error)
	GetInstructorsWithoutDetails(ctx context.Context) ([]dto.InstructorResponse, error)
	InstructorExistsByID(ctx context.Context, id int64) (bool, error)
	InstructorExistsByEmail(ctx context.Context, email string) (bool, error)
}

// instructorServiceImpl implements the InstructorService interface
type instructorServiceImpl struct {
	instructorRepo InstructorRepository
	detailsRepo    InstructorDetailsRepository
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructorRepo InstructorRepository, detailsRepo InstructorDetailsRepository) InstructorService {
	return &instructorServiceImpl{
		instructorRepo: instructorRepo,
		detailsRepo:    detailsRepo,
	}
}

// validateName validates a first or last name
func validateName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, field+" cannot be empty").
			WithDetails(map[string]interface{}{"field": field, "rejectedValue": value})
	}
	if len(value) > 100 {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, field+" is too long (max 100 characters)").
			WithDetails(map[string]interface{}{"field": field, "maxLength": 100})
	}
	return nil
}

// CreateInstructor creates a new instructor, together with a linked details record
// when the payload carries one.
func (s *instructorServiceImpl) CreateInstructor(ctx context.Context, req dto.CreateInstructorRequest) (*dto.InstructorResponse, error) {
	if err := validateName("first name", req.FirstName); err != nil {
		return nil, err
	}
	if err := validateName("last name", req.LastName); err != nil {
		return nil, err
	}

	taken, err := s.instructorRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking instructor email: %w", err)
	}
	if taken {
		return nil, apperrors.ErrInstructorEmailTaken
	}

	instructor := &models.Instructor{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	if req.Details != nil {
		details := &models.InstructorDetails{
			YoutubeChannel: req.Details.YoutubeChannel,
			Hobby:          req.Details.Hobby,
		}
		if err := s.instructorRepo.CreateWithDetails(ctx, instructor, details); err != nil {
			return nil, err
		}
	} else {
		if err := s.instructorRepo.Create(ctx, instructor); err != nil {
			return nil, err
		}
	}

	resp := dto.NewInstructorResponse(instructor)
	return &resp, nil
}

// UpdateInstructor updates an instructor. The email uniqueness check runs only when
// the email actually changes. A details payload creates or updates the linked
// record; an absent payload unlinks the current record without deleting it.
func (s *instructorServiceImpl) UpdateInstructor(ctx context.Context, id int64, req dto.UpdateInstructorRequest) (*dto.InstructorResponse, error) {
	if err := validateName("first name", req.FirstName); err != nil {
		return nil, err
	}
	if err := validateName("last name", req.LastName); err != nil {
		return nil, err
	}

	instructor, err := s.instructorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != instructor.Email {
		taken, err := s.instructorRepo.ExistsByEmailExcluding(ctx, req.Email, id)
		if err != nil {
			return nil, fmt.Errorf("error checking instructor email: %w", err)
		}
		if taken {
			return nil, apperrors.ErrInstructorEmailTaken
		}
	}

	instructor.FirstName = req.FirstName
	instructor.LastName = req.LastName
	instructor.Email = req.Email
	if err := s.instructorRepo.Update(ctx, instructor); err != nil {
		return nil, err
	}

	if req.Details != nil {
		if instructor.DetailsID != nil {
			details := &models.InstructorDetails{
				ID:             *instructor.DetailsID,
				YoutubeChannel: req.Details.YoutubeChannel,
				Hobby:          req.Details.Hobby,
			}
			if err := s.detailsRepo.Update(ctx, details); err != nil {
				return nil, err
			}
		} else {
			details := &models.InstructorDetails{
				YoutubeChannel: req.Details.YoutubeChannel,
				Hobby:          req.Details.Hobby,
			}
			if err := s.detailsRepo.Create(ctx, details); err != nil {
				return nil, err
			}
			if err := s.instructorRepo.SetDetailsID(ctx, id, &details.ID); err != nil {
				return nil, err
			}
		}
	} else if instructor.DetailsID != nil {
		// Unlink on absence is an explicit policy, not a no-op. The details record
		// itself survives as an orphan.
		if err := s.instructorRepo.SetDetailsID(ctx, id, nil); err != nil {
			return nil, err
		}
	}

	return s.GetInstructorByID(ctx, id)
}

// DeleteInstructor deletes an instructor and its owned details record
func (s *instructorServiceImpl) DeleteInstructor(ctx context.Context, id int64) error {
	return s.instructorRepo.Delete(ctx, id)
}

// GetInstructorByID retrieves an instructor with linked details populated
func (s *instructorServiceImpl) GetInstructorByID(ctx context.Context, id int64) (*dto.InstructorResponse, error) {
	instructor, err := s.instructorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.attachDetails(ctx, instructor); err != nil {
		return nil, err
	}

	resp := dto.NewInstructorResponse(instructor)
	return &resp, nil
}

// GetInstructorByEmail retrieves an instructor by exact email
func (s *instructorServiceImpl) GetInstructorByEmail(ctx context.Context, email string) (*dto.InstructorResponse, error) {
	instructor, err := s.instructorRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.attachDetails(ctx, instructor); err != nil {
		return nil, err
	}

	resp := dto.NewInstructorResponse(instructor)
	return &resp, nil
}

// GetAllInstructors retrieves a page of instructors
func (s *instructorServiceImpl) GetAllInstructors(ctx context.Context, page, size int) (*dto.InstructorListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	instructors, total, err := s.instructorRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	for _, instructor := range instructors {
		if err := s.attachDetails(ctx, instructor); err != nil {
			return nil, err
		}
	}

	resp := dto.NewInstructorListResponse(instructors, helpers.NewPaginationInfo(total, page, limit))
	return &resp, nil
}

// AddInstructorDetails links an existing standalone details record to an instructor
func (s *instructorServiceImpl) AddInstructorDetails(ctx context.Context, instructorID, detailsID int64) (*dto.InstructorResponse, error) {
	exists, err := s.instructorRepo.ExistsByID(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error checking instructor: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrInstructorNotFound
	}

	detailsExists, err := s.detailsRepo.ExistsByID(ctx, detailsID)
	if err != nil {
		return nil, fmt.Errorf("error checking instructor details: %w", err)
	}
	if !detailsExists {
		return nil, apperrors.ErrInstructorDetailsNotFound
	}

	if err := s.instructorRepo.SetDetailsID(ctx, instructorID, &detailsID); err != nil {
		return nil, err
	}

	return s.GetInstructorByID(ctx, instructorID)
}

// RemoveInstructorDetails unlinks an instructor's details record without deleting it
func (s *instructorServiceImpl) RemoveInstructorDetails(ctx context.Context, instructorID int64) (*dto.InstructorResponse, error) {
	exists, err := s.instructorRepo.ExistsByID(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error checking instructor: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrInstructorNotFound
	}

	if err := s.instructorRepo.SetDetailsID(ctx, instructorID, nil); err != nil {
		return nil, err
	}

	return s.GetInstructorByID(ctx, instructorID)
}

// SearchInstructorsByName finds instructors by case-insensitive name substring
func (s *instructorServiceImpl) SearchInstructorsByName(ctx context.Context, name string) ([]dto.InstructorResponse, error) {
	instructors, err := s.instructorRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, instructors)
}

// GetInstructorsWithDetails retrieves instructors that have a linked details record
func (s *instructorServiceImpl) GetInstructorsWithDetails(ctx context.Context) ([]dto.InstructorResponse, error) {
	instructors, err := s.instructorRepo.GetWithDetails(ctx)
	if err != nil {
		return nil, err
	}

	// Details already populated by the repository join
	items := make([]dto.InstructorResponse, 0, len(instructors))
	for _, instructor := range instructors {
		items = append(items, dto.NewInstructorResponse(instructor))
	}
	return items, nil
}

// GetInstructorsWithoutDetails retrieves instructors with no linked details record
func (s *instructorServiceImpl) GetInstructorsWithoutDetails(ctx context.Context) ([]dto.InstructorResponse, error) {
	instructors, err := s.instructorRepo.GetWithoutDetails(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.InstructorResponse, 0, len(instructors))
	for _, instructor := range instructors {
		items = append(items, dto.NewInstructorResponse(instructor))
	}
	return items, nil
}

// InstructorExistsByID checks whether an instructor exists
func (s *instructorServiceImpl) InstructorExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.instructorRepo.ExistsByID(ctx, id)
}

// InstructorExistsByEmail checks whether an instructor email is in use
func (s *instructorServiceImpl) InstructorExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.instructorRepo.ExistsByEmail(ctx, email)
}

func (s *instructorServiceImpl) attachDetails(ctx context.Context, instructor *models.Instructor) error {
	if instructor.DetailsID == nil {
		return nil
	}

	details, err := s.detailsRepo.GetByID(ctx, *instructor.DetailsID)
	if err != nil {
		return err
	}
	instructor.Details = details
	return nil
}

func (s *instructorServiceImpl) toResponses(ctx context.Context, instructors []*models.Instructor) ([]dto.InstructorResponse, error) {
	items := make([]dto.InstructorResponse, 0, len(instructors))
	for _, instructor := range instructors {
		if err := s.attachDetails(ctx, instructor); err != nil {
			return nil, err
		}
		items = append(items, dto.NewInstructorResponse(instructor))
	}
	return items, nil
}
