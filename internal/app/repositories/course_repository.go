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

// Unique constraint names from migrations/001_init.sql
const (
	courseTitleInstructorConstraint = "courses_title_instructor_id_key"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// courseWithInstructorColumns selects the course row plus the joined instructor row
const courseWithInstructorColumns = `
	c.id, c.title, c.instructor_id, c.created_at, c.updated_at,
	i.id, i.first_name, i.last_name, i.email, i.instructor_details_id, i.created_at, i.updated_at`

func scanCourseWithInstructor(row pgx.Row) (*models.Course, error) {
	var course models.Course
	var instructor models.Instructor
	err := row.Scan(
		&course.ID, &course.Title, &course.InstructorID, &course.CreatedAt, &course.UpdatedAt,
		&instructor.ID, &instructor.FirstName, &instructor.LastName, &instructor.Email,
		&instructor.DetailsID, &instructor.CreatedAt, &instructor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	course.Instructor = &instructor
	return &course, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (title, instructor_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, course.Title, course.InstructorID).
		Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, courseTitleInstructorConstraint) {
			return apperrors.ErrCourseAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDataIntegrity
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID with its instructor populated
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT ` + courseWithInstructorColumns + `
		FROM courses c
		JOIN instructors i ON i.id = c.instructor_id
		WHERE c.id = $1
	`

	course, err := scanCourseWithInstructor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetAll retrieves a page of courses ordered by id, plus the total count
func (r *CourseRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Course, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	query := `
		SELECT ` + courseWithInstructorColumns + `
		FROM courses c
		JOIN instructors i ON i.id = c.instructor_id
		ORDER BY c.id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses, err := collectCourses(rows)
	if err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// GetByInstructorID retrieves all courses taught by an instructor
func (r *CourseRepository) GetByInstructorID(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	query := `
		SELECT ` + courseWithInstructorColumns + `
		FROM courses c
		JOIN instructors i ON i.id = c.instructor_id
		WHERE c.instructor_id = $1
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error querying courses by instructor: %w", err)
	}
	defer rows.Close()

	return collectCourses(rows)
}

// Update updates a course's title and instructor
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET title = $1, instructor_id = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, course.Title, course.InstructorID, course.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, courseTitleInstructorConstraint) {
			return apperrors.ErrCourseAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDataIntegrity
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course row. Reviews and enrollment entries are cleared by the
// database cascade, not here.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// ExistsByID checks if a course exists by ID
func (r *CourseRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}
	return exists, nil
}

// ExistsByTitleAndInstructorID checks the uniqueness pair
func (r *CourseRepository) ExistsByTitleAndInstructorID(ctx context.Context, title string, instructorID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE title = $1 AND instructor_id = $2)`,
		title, instructorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course title uniqueness: %w", err)
	}
	return exists, nil
}

// CountByInstructorID counts courses taught by an instructor
func (r *CourseRepository) CountByInstructorID(ctx context.Context, instructorID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM courses WHERE instructor_id = $1`, instructorID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting courses by instructor: %w", err)
	}
	return count, nil
}

// SearchByTitle finds courses whose title contains the given text, case-insensitively
func (r *CourseRepository) SearchByTitle(ctx context.Context, title string) ([]*models.Course, error) {
	return r.search(ctx, squirrel.ILike{"c.title": "%" + strings.TrimSpace(title) + "%"})
}

// SearchByInstructorName finds courses whose instructor's first, last, or full name
// contains the given text, case-insensitively.
func (r *CourseRepository) SearchByInstructorName(ctx context.Context, name string) ([]*models.Course, error) {
	pattern := "%" + strings.TrimSpace(name) + "%"
	return r.search(ctx, squirrel.Or{
		squirrel.ILike{"i.first_name": pattern},
		squirrel.ILike{"i.last_name": pattern},
		squirrel.Expr("i.first_name || ' ' || i.last_name ILIKE ?", pattern),
	})
}

func (r *CourseRepository) search(ctx context.Context, where squirrel.Sqlizer) ([]*models.Course, error) {
	querySql, args, err := r.sb.
		Select(
			"c.id", "c.title", "c.instructor_id", "c.created_at", "c.updated_at",
			"i.id", "i.first_name", "i.last_name", "i.email", "i.instructor_details_id", "i.created_at", "i.updated_at",
		).
		From("courses c").
		Join("instructors i ON i.id = c.instructor_id").
		Where(where).
		OrderBy("c.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course search query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}
	defer rows.Close()

	return collectCourses(rows)
}

func collectCourses(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourseWithInstructor(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
