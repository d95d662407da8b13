package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aomari/course-management/internal/app/models"
	"github.com/aomari/course-management/internal/pkg/apperrors"
	"github.com/aomari/course-management/internal/pkg/dberrors"
)

// ReviewRepository handles database operations for reviews
type ReviewRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const reviewColumns = `id, comment, course_id, student_id, created_at, updated_at`

func scanReview(row pgx.Row) (*models.Review, error) {
	var review models.Review
	err := row.Scan(
		&review.ID,
		&review.Comment,
		&review.CourseID,
		&review.StudentID,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Create inserts a new review
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (comment, course_id, student_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, review.Comment, review.CourseID, review.StudentID).
		Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		// Course or student vanished between the service pre-check and the insert
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDataIntegrity
		}
		return fmt.Errorf("error creating review: %w", err)
	}

	return nil
}

// GetByID retrieves a review by ID
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, fmt.Errorf("error retrieving review: %w", err)
	}

	return review, nil
}

// Update updates a review's comment and associations
func (r *ReviewRepository) Update(ctx context.Context, review *models.Review) error {
	query := `
		UPDATE reviews
		SET comment = $1, course_id = $2, student_id = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		review.Comment, review.CourseID, review.StudentID, review.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDataIntegrity
		}
		return fmt.Errorf("error updating review: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}

	return nil
}

// Delete removes a review. The owning course is never affected.
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting review: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}

	return nil
}

// ExistsByID checks if a review exists by ID
func (r *ReviewRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM reviews WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking review existence: %w", err)
	}
	return exists, nil
}

// GetByCourseID retrieves the reviews for a course, newest first
func (r *ReviewRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE course_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error querying reviews by course: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

// GetLatest retrieves the newest reviews across all courses
func (r *ReviewRepository) GetLatest(ctx context.Context, limit int) ([]*models.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying latest reviews: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

// CountByCourseID counts the reviews for a course
func (r *ReviewRepository) CountByCourseID(ctx context.Context, courseID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reviews WHERE course_id = $1`, courseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting reviews by course: %w", err)
	}
	return count, nil
}

// SearchByComment finds reviews whose comment contains the given text,
// case-insensitively.
func (r *ReviewRepository) SearchByComment(ctx context.Context, comment string) ([]*models.Review, error) {
	querySql, args, err := r.sb.
		Select(reviewColumns).
		From("reviews").
		Where(squirrel.ILike{"comment": "%" + strings.TrimSpace(comment) + "%"}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build review comment search query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching reviews by comment: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

// SearchByCourseTitle finds reviews whose course title contains the given text,
// case-insensitively.
func (r *ReviewRepository) SearchByCourseTitle(ctx context.Context, title string) ([]*models.Review, error) {
	querySql, args, err := r.sb.
		Select("rv.id", "rv.comment", "rv.course_id", "rv.student_id", "rv.created_at", "rv.updated_at").
		From("reviews rv").
		Join("courses c ON c.id = rv.course_id").
		Where(squirrel.ILike{"c.title": "%" + strings.TrimSpace(title) + "%"}).
		OrderBy("rv.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build review course title search query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching reviews by course title: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

// GetByInstructorID retrieves reviews of all courses taught by the given instructor,
// newest first.
func (r *ReviewRepository) GetByInstructorID(ctx context.Context, instructorID int64) ([]*models.Review, error) {
	query := `
		SELECT rv.id, rv.comment, rv.course_id, rv.student_id, rv.created_at, rv.updated_at
		FROM reviews rv
		JOIN courses c ON c.id = rv.course_id
		WHERE c.instructor_id = $1
		ORDER BY rv.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error querying reviews by instructor: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

func collectReviews(rows pgx.Rows) ([]*models.Review, error) {
	var reviews []*models.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
