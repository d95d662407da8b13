package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	InstructorRepository        *InstructorRepository
	InstructorDetailsRepository *InstructorDetailsRepository
	CourseRepository            *CourseRepository
	StudentRepository           *StudentRepository
	ReviewRepository            *ReviewRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		InstructorRepository:        NewInstructorRepository(db),
		InstructorDetailsRepository: NewInstructorDetailsRepository(db),
		CourseRepository:            NewCourseRepository(db),
		StudentRepository:           NewStudentRepository(db),
		ReviewRepository:            NewReviewRepository(db),
	}
}
