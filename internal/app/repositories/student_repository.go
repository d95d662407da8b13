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
	studentEmailConstraint = "students_email_key"
	enrollmentPKConstraint = "course_students_pkey"
)

// StudentRepository handles database operations for students and enrollments
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const studentColumns = `id, first_name, last_name, email, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, student.FirstName, student.LastName, student.Email).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentEmailConstraint) {
			return apperrors.ErrStudentEmailTaken
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves a page of students ordered by id, plus the total count
func (r *StudentRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	query := `SELECT ` + studentColumns + ` FROM students ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students, err := collectStudents(rows)
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

// Update updates the mutable fields of a student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, email = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FirstName, student.LastName, student.Email, student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentEmailConstraint) {
			return apperrors.ErrStudentEmailTaken
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete detaches the student's enrollment entries and then removes the row,
// both in one transaction so no dangling join rows survive a failure.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM course_students WHERE student_id = $1`, id); err != nil {
			return fmt.Errorf("error detaching student enrollments: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting student: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		return nil
	})
}

// ExistsByID checks if a student exists by ID
func (r *StudentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// ExistsByEmail checks if a student exists by email
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student email existence: %w", err)
	}
	return exists, nil
}

// ExistsByEmailExcluding checks if another student already uses the email
func (r *StudentRepository) ExistsByEmailExcluding(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student email uniqueness: %w", err)
	}
	return exists, nil
}

// SearchByName finds students whose first, last, or full name contains the given
// text, case-insensitively.
func (r *StudentRepository) SearchByName(ctx context.Context, name string) ([]*models.Student, error) {
	pattern := "%" + strings.TrimSpace(name) + "%"
	return r.search(ctx, squirrel.Or{
		squirrel.ILike{"first_name": pattern},
		squirrel.ILike{"last_name": pattern},
		squirrel.Expr("first_name || ' ' || last_name ILIKE ?", pattern),
	})
}

// SearchByEmail finds students whose email contains the given text, case-insensitively
func (r *StudentRepository) SearchByEmail(ctx context.Context, email string) ([]*models.Student, error) {
	return r.search(ctx, squirrel.ILike{"email": "%" + strings.TrimSpace(email) + "%"})
}

func (r *StudentRepository) search(ctx context.Context, where squirrel.Sqlizer) ([]*models.Student, error) {
	querySql, args, err := r.sb.
		Select(studentColumns).
		From("students").
		Where(where).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student search query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching students: %w", err)
	}
	defer rows.Close()

	return collectStudents(rows)
}

// Enroll adds an enrollment entry. The join table's primary key gives the
// enrollment its set semantics.
func (r *StudentRepository) Enroll(ctx context.Context, studentID, courseID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO course_students (course_id, student_id) VALUES ($1, $2)`,
		courseID, studentID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, enrollmentPKConstraint) {
			return apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDataIntegrity
		}
		return fmt.Errorf("error enrolling student: %w", err)
	}

	return nil
}

// Unenroll removes an enrollment entry
func (r *StudentRepository) Unenroll(ctx context.Context, studentID, courseID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM course_students WHERE course_id = $1 AND student_id = $2`,
		courseID, studentID)
	if err != nil {
		return fmt.Errorf("error unenrolling student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentMissing
	}

	return nil
}

// IsEnrolled checks the enrollment set for a (student, course) pair
func (r *StudentRepository) IsEnrolled(ctx context.Context, studentID, courseID int64) (bool, error) {
	var enrolled bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM course_students WHERE course_id = $1 AND student_id = $2)`,
		courseID, studentID).Scan(&enrolled)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}
	return enrolled, nil
}

// GetCoursesByStudentID retrieves the courses a student is enrolled in
func (r *StudentRepository) GetCoursesByStudentID(ctx context.Context, studentID int64) ([]*models.Course, error) {
	query := `
		SELECT ` + courseWithInstructorColumns + `
		FROM course_students cs
		JOIN courses c ON c.id = cs.course_id
		JOIN instructors i ON i.id = c.instructor_id
		WHERE cs.student_id = $1
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error querying student courses: %w", err)
	}
	defer rows.Close()

	return collectCourses(rows)
}

// GetStudentsByCourseID retrieves the students enrolled in a course
func (r *StudentRepository) GetStudentsByCourseID(ctx context.Context, courseID int64) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.first_name, s.last_name, s.email, s.created_at, s.updated_at
		FROM course_students cs
		JOIN students s ON s.id = cs.student_id
		WHERE cs.course_id = $1
		ORDER BY s.id
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error querying enrolled students: %w", err)
	}
	defer rows.Close()

	return collectStudents(rows)
}

// CountStudentsByCourseID counts the students enrolled in a course
func (r *StudentRepository) CountStudentsByCourseID(ctx context.Context, courseID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM course_students WHERE course_id = $1`, courseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting enrolled students: %w", err)
	}
	return count, nil
}

// GetWithNoCourses retrieves students with an empty enrollment set
func (r *StudentRepository) GetWithNoCourses(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.first_name, s.last_name, s.email, s.created_at, s.updated_at
		FROM students s
		LEFT JOIN course_students cs ON cs.student_id = s.id
		WHERE cs.course_id IS NULL
		ORDER BY s.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying students with no courses: %w", err)
	}
	defer rows.Close()

	return collectStudents(rows)
}

// GetByInstructorID retrieves the students enrolled in any course taught by the
// given instructor.
func (r *StudentRepository) GetByInstructorID(ctx context.Context, instructorID int64) ([]*models.Student, error) {
	query := `
		SELECT DISTINCT s.id, s.first_name, s.last_name, s.email, s.created_at, s.updated_at
		FROM students s
		JOIN course_students cs ON cs.student_id = s.id
		JOIN courses c ON c.id = cs.course_id
		WHERE c.instructor_id = $1
		ORDER BY s.id
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error querying students by instructor: %w", err)
	}
	defer rows.Close()

	return collectStudents(rows)
}

func collectStudents(rows pgx.Rows) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
