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

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error)
	UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, id int64) error
	GetCourseByID(ctx context.Context, id int64, withReviews bool) (*dto.CourseResponse, error)
	GetAllCourses(ctx context.Context, page, size int, withReviews bool) (*dto.CourseListResponse, error)
	GetCoursesByInstructorID(ctx context.Context, instructorID int64, withReviews bool) ([]dto.CourseResponse, error)
	SearchCoursesByTitle(ctx context.Context, title string) ([]dto.CourseResponse, error)
	SearchCoursesByInstructorName(ctx context.Context, name string) ([]dto.CourseResponse, error)
	CountCoursesByInstructorID(ctx context.Context, instructorID int64) (*dto.CountResponse, error)
	CourseExistsByID(ctx context.Context, id int64) (bool, error)
	CourseExistsByTitleAndInstructorID(ctx context.Context, title string, instructorID int64) (bool, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo     CourseRepository
	instructorRepo InstructorRepository
	reviewRepo     ReviewRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseRepository, instructorRepo InstructorRepository, reviewRepo ReviewRepository) CourseService {
	return &courseServiceImpl{
		courseRepo:     courseRepo,
		instructorRepo: instructorRepo,
		reviewRepo:     reviewRepo,
	}
}

// validateTitle validates a course title
func (s *courseServiceImpl) validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateCourse creates a new course after validating that the instructor exists and
// the (title, instructor) pair is free.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if err := s.validateTitle(req.Title); err != nil {
		return nil, err
	}

	exists, err := s.instructorRepo.ExistsByID(ctx, req.InstructorID)
	if err != nil {
		return nil, fmt.Errorf("error checking instructor: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrInstructorNotFound
	}

	taken, err := s.courseRepo.ExistsByTitleAndInstructorID(ctx, req.Title, req.InstructorID)
	if err != nil {
		return nil, fmt.Errorf("error checking course title: %w", err)
	}
	if taken {
		return nil, apperrors.ErrCourseAlreadyExists
	}

	course := &models.Course{
		Title:        req.Title,
		InstructorID: req.InstructorID,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	// Reload with the embedded instructor summary
	created, err := s.courseRepo.GetByID(ctx, course.ID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewCourseResponse(created)
	return &resp, nil
}

// UpdateCourse updates a course. The uniqueness pair is re-checked whenever the
// title differs from the stored value or the course moves to another instructor.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	if err := s.validateTitle(req.Title); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.instructorRepo.ExistsByID(ctx, req.InstructorID)
	if err != nil {
		return nil, fmt.Errorf("error checking instructor: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrInstructorNotFound
	}

	if req.Title != course.Title || req.InstructorID != course.InstructorID {
		taken, err := s.courseRepo.ExistsByTitleAndInstructorID(ctx, req.Title, req.InstructorID)
		if err != nil {
			return nil, fmt.Errorf("error checking course title: %w", err)
		}
		if taken {
			return nil, apperrors.ErrCourseAlreadyExists
		}
	}

	course.Title = req.Title
	course.InstructorID = req.InstructorID
	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	updated, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewCourseResponse(updated)
	return &resp, nil
}

// DeleteCourse deletes a course by ID. Reviews of the course are cleared only by
// the database cascade, never here.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}

// GetCourseByID retrieves a course, optionally with its reviews
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64, withReviews bool) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if withReviews {
		if err := s.attachReviews(ctx, course); err != nil {
			return nil, err
		}
	}

	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// GetAllCourses retrieves a page of courses, optionally with reviews
func (s *courseServiceImpl) GetAllCourses(ctx context.Context, page, size int, withReviews bool) (*dto.CourseListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	courses, total, err := s.courseRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	if withReviews {
		for _, course := range courses {
			if err := s.attachReviews(ctx, course); err != nil {
				return nil, err
			}
		}
	}

	resp := dto.NewCourseListResponse(courses, helpers.NewPaginationInfo(total, page, limit))
	return &resp, nil
}

// GetCoursesByInstructorID retrieves an instructor's courses, optionally with reviews
func (s *courseServiceImpl) GetCoursesByInstructorID(ctx context.Context, instructorID int64, withReviews bool) ([]dto.CourseResponse, error) {
	exists, err := s.instructorRepo.ExistsByID(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error checking instructor: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrInstructorNotFound
	}

	courses, err := s.courseRepo.GetByInstructorID(ctx, instructorID)
	if err != nil {
		return nil, err
	}

	if withReviews {
		for _, course := range courses {
			if err := s.attachReviews(ctx, course); err != nil {
				return nil, err
			}
		}
	}

	return dto.NewCourseResponses(courses), nil
}

// SearchCoursesByTitle finds courses by case-insensitive title substring
func (s *courseServiceImpl) SearchCoursesByTitle(ctx context.Context, title string) ([]dto.CourseResponse, error) {
	courses, err := s.courseRepo.SearchByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return dto.NewCourseResponses(courses), nil
}

// SearchCoursesByInstructorName finds courses by case-insensitive instructor name substring
func (s *courseServiceImpl) SearchCoursesByInstructorName(ctx context.Context, name string) ([]dto.CourseResponse, error) {
	courses, err := s.courseRepo.SearchByInstructorName(ctx, name)
	if err != nil {
		return nil, err
	}
	return dto.NewCourseResponses(courses), nil
}

// CountCoursesByInstructorID counts an instructor's courses
func (s *courseServiceImpl) CountCoursesByInstructorID(ctx context.Context, instructorID int64) (*dto.CountResponse, error) {
	exists, err := s.instructorRepo.ExistsByID(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error checking instructor: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrInstructorNotFound
	}

	count, err := s.courseRepo.CountByInstructorID(ctx, instructorID)
	if err != nil {
		return nil, err
	}

	return &dto.CountResponse{
		Count:        count,
		ResourceType: "Course",
		Description:  fmt.Sprintf("Number of courses taught by instructor %d", instructorID),
	}, nil
}

// CourseExistsByID checks whether a course exists
func (s *courseServiceImpl) CourseExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.courseRepo.ExistsByID(ctx, id)
}

// CourseExistsByTitleAndInstructorID checks the uniqueness pair
func (s *courseServiceImpl) CourseExistsByTitleAndInstructorID(ctx context.Context, title string, instructorID int64) (bool, error) {
	return s.courseRepo.ExistsByTitleAndInstructorID(ctx, title, instructorID)
}

func (s *courseServiceImpl) attachReviews(ctx context.Context, course *models.Course) error {
	reviews, err := s.reviewRepo.GetByCourseID(ctx, course.ID)
	if err != nil {
		return err
	}
	course.Reviews = reviews
	return nil
}
