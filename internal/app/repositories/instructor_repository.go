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
	"github.com/aomari/course-management/internal/db"
	"github.com/aomari/course-management/internal/pkg/apperrors"
	"github.com/aomari/course-management/internal/pkg/dberrors"
)

// Unique constraint names from migrations/001_init.sql
const (
	instructorEmailConstraint = "instructors_email_key"
)

// InstructorRepository handles database operations for instructors
type InstructorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const instructorColumns = `id, first_name, last_name, email, instructor_details_id, created_at, updated_at`

func scanInstructor(row pgx.Row) (*models.Instructor, error) {
	var instructor models.Instructor
	err := row.Scan(
		&instructor.ID,
		&instructor.FirstName,
		&instructor.LastName,
		&instructor.Email,
		&instructor.DetailsID,
		&instructor.CreatedAt,
		&instructor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &instructor, nil
}

// Create inserts a new instructor
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	query := `
		INSERT INTO instructors (first_name, last_name, email, instructor_details_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		instructor.FirstName, instructor.LastName, instructor.Email, instructor.DetailsID,
	).Scan(&instructor.ID, &instructor.CreatedAt, &instructor.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, instructorEmailConstraint) {
			return apperrors.ErrInstructorEmailTaken
		}
		return fmt.Errorf("error creating instructor: %w", err)
	}

	return nil
}

// CreateWithDetails inserts an instructor together with its owned details record in
// a single transaction.
func (r *InstructorRepository) CreateWithDetails(ctx context.Context, instructor *models.Instructor, details *models.InstructorDetails) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		detailsQuery := `
			INSERT INTO instructor_details (youtube_channel, hobby)
			VALUES ($1, $2)
			RETURNING id, created_at, updated_at
		`
		err := tx.QueryRow(ctx, detailsQuery, details.YoutubeChannel, details.Hobby).
			Scan(&details.ID, &details.CreatedAt, &details.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating instructor details: %w", err)
		}

		instructorQuery := `
			INSERT INTO instructors (first_name, last_name, email, instructor_details_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, updated_at
		`
		err = tx.QueryRow(ctx, instructorQuery,
			instructor.FirstName, instructor.LastName, instructor.Email, details.ID,
		).Scan(&instructor.ID, &instructor.CreatedAt, &instructor.UpdatedAt)
		if err != nil {
			return err
		}

		instructor.DetailsID = &details.ID
		instructor.Details = details
		return nil
	})

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, instructorEmailConstraint) {
			return apperrors.ErrInstructorEmailTaken
		}
		return err
	}
	return nil
}

// GetByID retrieves an instructor by ID
func (r *InstructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	query := `SELECT ` + instructorColumns + ` FROM instructors WHERE id = $1`

	instructor, err := scanInstructor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}

	return instructor, nil
}

// GetByEmail retrieves an instructor by email
func (r *InstructorRepository) GetByEmail(ctx context.Context, email string) (*models.Instructor, error) {
	query := `SELECT ` + instructorColumns + ` FROM instructors WHERE email = $1`

	instructor, err := scanInstructor(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, fmt.Errorf("error retrieving instructor by email: %w", err)
	}

	return instructor, nil
}

// GetAll retrieves a page of instructors ordered by id, plus the total count
func (r *InstructorRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Instructor, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM instructors`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting instructors: %w", err)
	}

	query := `SELECT ` + instructorColumns + ` FROM instructors ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying instructors: %w", err)
	}
	defer rows.Close()

	instructors, err := collectInstructors(rows)
	if err != nil {
		return nil, 0, err
	}
	return instructors, total, nil
}

// Update updates the mutable fields of an instructor
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	query := `
		UPDATE instructors
		SET first_name = $1, last_name = $2, email = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		instructor.FirstName, instructor.LastName, instructor.Email, instructor.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, instructorEmailConstraint) {
			return apperrors.ErrInstructorEmailTaken
		}
		return fmt.Errorf("error updating instructor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}

	return nil
}

// SetDetailsID links or unlinks an instructor's details record. Passing nil unlinks.
func (r *InstructorRepository) SetDetailsID(ctx context.Context, instructorID int64, detailsID *int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE instructors SET instructor_details_id = $1 WHERE id = $2`,
		detailsID, instructorID)
	if err != nil {
		return fmt.Errorf("error updating instructor details link: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}

	return nil
}

// Delete removes an instructor and its owned details record in one transaction.
// Courses referencing the instructor block the delete via the foreign key; callers
// must reassign or delete them first.
func (r *InstructorRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var detailsID *int64
		err := tx.QueryRow(ctx, `SELECT instructor_details_id FROM instructors WHERE id = $1`, id).Scan(&detailsID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrInstructorNotFound
			}
			return fmt.Errorf("error retrieving instructor: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM instructors WHERE id = $1`, id); err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrInstructorHasCourses
			}
			return fmt.Errorf("error deleting instructor: %w", err)
		}

		// Owned details are removed with the owner
		if detailsID != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM instructor_details WHERE id = $1`, *detailsID); err != nil {
				return fmt.Errorf("error deleting instructor details: %w", err)
			}
		}

		return nil
	})
}

// ExistsByID checks if an instructor exists by ID
func (r *InstructorRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM instructors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking instructor existence: %w", err)
	}
	return exists, nil
}

// ExistsByEmail checks if an instructor exists by email
func (r *InstructorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM instructors WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking instructor email existence: %w", err)
	}
	return exists, nil
}

// ExistsByEmailExcluding checks if another instructor already uses the email
func (r *InstructorRepository) ExistsByEmailExcluding(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM instructors WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking instructor email uniqueness: %w", err)
	}
	return exists, nil
}

// SearchByName finds instructors whose first, last, or full name contains the
// given text, case-insensitively.
func (r *InstructorRepository) SearchByName(ctx context.Context, name string) ([]*models.Instructor, error) {
	pattern := "%" + strings.TrimSpace(name) + "%"

	querySql, args, err := r.sb.
		Select(instructorColumns).
		From("instructors").
		Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.Expr("first_name || ' ' || last_name ILIKE ?", pattern),
		}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build instructor name search query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching instructors by name: %w", err)
	}
	defer rows.Close()

	return collectInstructors(rows)
}

// GetWithDetails retrieves instructors that have a linked details record, with the
// details populated.
func (r *InstructorRepository) GetWithDetails(ctx context.Context) ([]*models.Instructor, error) {
	query := `
		SELECT i.id, i.first_name, i.last_name, i.email, i.instructor_details_id, i.created_at, i.updated_at,
		       d.id, d.youtube_channel, d.hobby, d.created_at, d.updated_at
		FROM instructors i
		JOIN instructor_details d ON d.id = i.instructor_details_id
		ORDER BY i.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying instructors with details: %w", err)
	}
	defer rows.Close()

	var instructors []*models.Instructor
	for rows.Next() {
		var instructor models.Instructor
		var details models.InstructorDetails
		if err := rows.Scan(
			&instructor.ID, &instructor.FirstName, &instructor.LastName, &instructor.Email,
			&instructor.DetailsID, &instructor.CreatedAt, &instructor.UpdatedAt,
			&details.ID, &details.YoutubeChannel, &details.Hobby, &details.CreatedAt, &details.UpdatedAt,
		); err != nil {
			return nil, err
		}
		instructor.Details = &details
		instructors = append(instructors, &instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return instructors, nil
}

// GetWithoutDetails retrieves instructors that have no linked details record
func (r *InstructorRepository) GetWithoutDetails(ctx context.Context) ([]*models.Instructor, error) {
	query := `SELECT ` + instructorColumns + ` FROM instructors WHERE instructor_details_id IS NULL ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying instructors without details: %w", err)
	}
	defer rows.Close()

	return collectInstructors(rows)
}

func collectInstructors(rows pgx.Rows) ([]*models.Instructor, error) {
	var instructors []*models.Instructor
	for rows.Next() {
		instructor, err := scanInstructor(rows)
		if err != nil {
			return nil, err
		}
		instructors = append(instructors, instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return instructors, nil
}
