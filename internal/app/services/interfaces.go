package services

import (
	"context"

	"github.com/aomari/course-management/internal/app/models"
)

// Repository contracts consumed by the services. The pgx repositories in
// internal/app/repositories satisfy these; tests substitute in-memory fakes.
// No raw query strings cross this boundary.

// InstructorRepository is the query surface for instructors
type InstructorRepository interface {
	Create(ctx context.Context, instructor *models.Instructor) error
	CreateWithDetails(ctx context.Context, instructor *models.Instructor, details *models.InstructorDetails) error
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	GetByEmail(ctx context.Context, email string) (*models.Instructor, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Instructor, int64, error)
	Update(ctx context.Context, instructor *models.Instructor) error
	SetDetailsID(ctx context.Context, instructorID int64, detailsID *int64) error
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByEmailExcluding(ctx context.Context, email string, excludeID int64) (bool, error)
	SearchByName(ctx context.Context, name string) ([]*models.Instructor, error)
	GetWithDetails(ctx context.Context) ([]*models.Instructor, error)
	GetWithoutDetails(ctx context.Context) ([]*models.Instructor, error)
}

// InstructorDetailsRepository is the query surface for instructor details
type InstructorDetailsRepository interface {
	Create(ctx context.Context, details *models.InstructorDetails) error
	GetByID(ctx context.Context, id int64) (*models.InstructorDetails, error)
	Update(ctx context.Context, details *models.InstructorDetails) error
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	SearchByYoutubeChannel(ctx context.Context, channel string) ([]*models.InstructorDetails, error)
	SearchByHobby(ctx context.Context, hobby string) ([]*models.InstructorDetails, error)
	GetOrphaned(ctx context.Context) ([]*models.InstructorDetails, error)
}

// CourseRepository is the query surface for courses
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Course, int64, error)
	GetByInstructorID(ctx context.Context, instructorID int64) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByTitleAndInstructorID(ctx context.Context, title string, instructorID int64) (bool, error)
	CountByInstructorID(ctx context.Context, instructorID int64) (int64, error)
	SearchByTitle(ctx context.Context, title string) ([]*models.Course, error)
	SearchByInstructorName(ctx context.Context, name string) ([]*models.Course, error)
}

// StudentRepository is the query surface for students and enrollments
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByEmailExcluding(ctx context.Context, email string, excludeID int64) (bool, error)
	SearchByName(ctx context.Context, name string) ([]*models.Student, error)
	SearchByEmail(ctx context.Context, email string) ([]*models.Student, error)
	Enroll(ctx context.Context, studentID, courseID int64) error
	Unenroll(ctx context.Context, studentID, courseID int64) error
	IsEnrolled(ctx context.Context, studentID, courseID int64) (bool, error)
	GetCoursesByStudentID(ctx context.Context, studentID int64) ([]*models.Course, error)
	GetStudentsByCourseID(ctx context.Context, courseID int64) ([]*models.Student, error)
	CountStudentsByCourseID(ctx context.Context, courseID int64) (int64, error)
	GetWithNoCourses(ctx context.Context) ([]*models.Student, error)
	GetByInstructorID(ctx context.Context, instructorID int64) ([]*models.Student, error)
}

// ReviewRepository is the query surface for reviews
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Review, error)
	GetLatest(ctx context.Context, limit int) ([]*models.Review, error)
	CountByCourseID(ctx context.Context, courseID int64) (int64, error)
	SearchByComment(ctx context.Context, comment string) ([]*models.Review, error)
	SearchByCourseTitle(ctx context.Context, title string) ([]*models.Review, error)
	GetByInstructorID(ctx context.Context, instructorID int64) ([]*models.Review, error)
}
