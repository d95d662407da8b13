package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aomari/course-management/internal/app/models"
	"github.com/aomari/course-management/internal/app/models/dto"
	"github.com/aomari/course-management/internal/pkg/apperrors"
)

// ReviewService defines the interface for review-related operations
type ReviewService interface {
	CreateReview(ctx context.Context, req dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	UpdateReview(ctx context.Context, id int64, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(ctx context.Context, id int64) error
	GetReviewByID(ctx context.Context, id int64) (*dto.ReviewResponse, error)
	GetReviewsByCourseID(ctx context.Context, courseID int64) ([]dto.ReviewResponse, error)
	GetLatestReviews(ctx context.Context, limit int) ([]dto.ReviewResponse, error)
	CountReviewsByCourseID(ctx context.Context, courseID int64) (*dto.CountResponse, error)
	SearchReviewsByComment(ctx context.Context, comment string) ([]dto.ReviewResponse, error)
	SearchReviewsByCourseTitle(ctx context.Context, title string) ([]dto.ReviewResponse, error)
	GetReviewsByInstructorID(ctx context.Context, instructorID int64) ([]dto.ReviewResponse, error)
	ReviewExistsByID(ctx context.Context, id int64) (bool, error)
}

// reviewServiceImpl implements the ReviewService interface
type reviewServiceImpl struct {
	reviewRepo  ReviewRepository
	courseRepo  CourseRepository
	studentRepo StudentRepository
}

// NewReviewService creates a new review service instance
func NewReviewService(reviewRepo ReviewRepository, courseRepo CourseRepository, studentRepo StudentRepository) ReviewService {
	return &reviewServiceImpl{
		reviewRepo:  reviewRepo,
		courseRepo:  courseRepo,
		studentRepo: studentRepo,
	}
}

func validateComment(comment string) error {
	if strings.TrimSpace(comment) == "" {
		return fmt.Errorf("%w: comment cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateReview creates a review after validating that its course and student exist
func (s *reviewServiceImpl) CreateReview(ctx context.Context, req dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if err := validateComment(req.Comment); err != nil {
		return nil, err
	}
	if err := s.checkCourseAndStudent(ctx, req.CourseID, req.StudentID); err != nil {
		return nil, err
	}

	review := &models.Review{
		Comment:   req.Comment,
		CourseID:  req.CourseID,
		StudentID: req.StudentID,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return s.GetReviewByID(ctx, review.ID)
}

// UpdateReview updates a review. Re-pointing the review at another course or
// student re-validates the target.
func (s *reviewServiceImpl) UpdateReview(ctx context.Context, id int64, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	if err := validateComment(req.Comment); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CourseID != review.CourseID || req.StudentID != review.StudentID {
		if err := s.checkCourseAndStudent(ctx, req.CourseID, req.StudentID); err != nil {
			return nil, err
		}
	}

	review.Comment = req.Comment
	review.CourseID = req.CourseID
	review.StudentID = req.StudentID
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return s.GetReviewByID(ctx, id)
}

// DeleteReview deletes a review by id
func (s *reviewServiceImpl) DeleteReview(ctx context.Context, id int64) error {
	return s.reviewRepo.Delete(ctx, id)
}

// GetReviewByID retrieves a review with course and student summaries attached
func (s *reviewServiceImpl) GetReviewByID(ctx context.Context, id int64) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewReviewResponse(review)
	return &resp, nil
}

// GetReviewsByCourseID retrieves a course's reviews, newest first
func (s *reviewServiceImpl) GetReviewsByCourseID(ctx context.Context, courseID int64) ([]dto.ReviewResponse, error) {
	exists, err := s.courseRepo.ExistsByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	reviews, err := s.reviewRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return dto.NewReviewListResponse(reviews), nil
}

// GetLatestReviews retrieves the newest reviews across all courses
func (s *reviewServiceImpl) GetLatestReviews(ctx context.Context, limit int) ([]dto.ReviewResponse, error) {
	if limit <= 0 {
		limit = 10
	}

	reviews, err := s.reviewRepo.GetLatest(ctx, limit)
	if err != nil {
		return nil, err
	}
	return dto.NewReviewListResponse(reviews), nil
}

// CountReviewsByCourseID counts a course's reviews
func (s *reviewServiceImpl) CountReviewsByCourseID(ctx context.Context, courseID int64) (*dto.CountResponse, error) {
	exists, err := s.courseRepo.ExistsByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	count, err := s.reviewRepo.CountByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	return &dto.CountResponse{
		Count:        count,
		ResourceType: "reviews",
		Description:  fmt.Sprintf("reviews for course %d", courseID),
	}, nil
}

// SearchReviewsByComment finds reviews by case-insensitive comment substring
func (s *reviewServiceImpl) SearchReviewsByComment(ctx context.Context, comment string) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.SearchByComment(ctx, comment)
	if err != nil {
		return nil, err
	}
	return dto.NewReviewListResponse(reviews), nil
}

// SearchReviewsByCourseTitle finds reviews whose course title matches a
// case-insensitive substring.
func (s *reviewServiceImpl) SearchReviewsByCourseTitle(ctx context.Context, title string) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.SearchByCourseTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return dto.NewReviewListResponse(reviews), nil
}

// GetReviewsByInstructorID retrieves reviews left on any of an instructor's courses
func (s *reviewServiceImpl) GetReviewsByInstructorID(ctx context.Context, instructorID int64) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.GetByInstructorID(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	return dto.NewReviewListResponse(reviews), nil
}

// ReviewExistsByID checks whether a review exists
func (s *reviewServiceImpl) ReviewExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.reviewRepo.ExistsByID(ctx, id)
}

func (s *reviewServiceImpl) checkCourseAndStudent(ctx context.Context, courseID, studentID int64) error {
	exists, err := s.courseRepo.ExistsByID(ctx, courseID)
	if err != nil {
		return fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return apperrors.ErrCourseNotFound
	}

	exists, err = s.studentRepo.ExistsByID(ctx, studentID)
	if err != nil {
		return fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
