package services

import (
	"context"
	"fmt"

	"github.com/aomari/course-management/internal/app/models"
	"github.com/aomari/course-management/internal/app/models/dto"
	"github.com/aomari/course-management/internal/pkg/apperrors"
	"github.com/aomari/course-management/internal/pkg/helpers"
)

// StudentService defines the interface for student and enrollment operations
type StudentService interface {
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error)
	UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	DeleteStudent(ctx context.Context, id int64) error
	GetStudentByID(ctx context.Context, id int64, withCourses bool) (*dto.StudentResponse, error)
	GetAllStudents(ctx context.Context, page, size int) (*dto.StudentListResponse, error)
	SearchStudentsByName(ctx context.Context, name string) ([]dto.StudentResponse, error)
	SearchStudentsByEmail(ctx context.Context, email string) ([]dto.StudentResponse, error)
	EnrollStudent(ctx context.Context, studentID, courseID int64) (*dto.StudentResponse, error)
	UnenrollStudent(ctx context.Context, studentID, courseID int64) (*dto.StudentResponse, error)
	IsStudentEnrolled(ctx context.Context, studentID, courseID int64) (*dto.EnrollmentStatusResponse, error)
	GetCoursesByStudentID(ctx context.Context, studentID int64) ([]dto.CourseResponse, error)
	GetStudentsByCourseID(ctx context.Context, courseID int64) ([]dto.StudentResponse, error)
	CountStudentsByCourseID(ctx context.Context, courseID int64) (*dto.CountResponse, error)
	GetStudentsWithNoCourses(ctx context.Context) ([]dto.StudentResponse, error)
	GetStudentsByInstructorID(ctx context.Context, instructorID int64) ([]dto.StudentResponse, error)
	StudentExistsByID(ctx context.Context, id int64) (bool, error)
	StudentExistsByEmail(ctx context.Context, email string) (bool, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo    StudentRepository
	courseRepo     CourseRepository
	instructorRepo InstructorRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentRepository, courseRepo CourseRepository, instructorRepo InstructorRepository) StudentService {
	return &studentServiceImpl{
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		instructorRepo: instructorRepo,
	}
}

// CreateStudent creates a new student after checking the email is free
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if err := validateName("first name", req.FirstName); err != nil {
		return nil, err
	}
	if err := validateName("last name", req.LastName); err != nil {
		return nil, err
	}

	taken, err := s.studentRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking student email: %w", err)
	}
	if taken {
		return nil, apperrors.ErrStudentEmailTaken
	}

	student := &models.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

// UpdateStudent updates a student. The email uniqueness check runs only when the
// email actually changes.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	if err := validateName("first name", req.FirstName); err != nil {
		return nil, err
	}
	if err := validateName("last name", req.LastName); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != student.Email {
		taken, err := s.studentRepo.ExistsByEmailExcluding(ctx, req.Email, id)
		if err != nil {
			return nil, fmt.Errorf("error checking student email: %w", err)
		}
		if taken {
			return nil, apperrors.ErrStudentEmailTaken
		}
	}

	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Email = req.Email
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

// DeleteStudent deletes a student after detaching its enrollments. Courses and
// reviews are untouched.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}

// GetStudentByID retrieves a student, optionally with enrolled courses
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64, withCourses bool) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if withCourses {
		courses, err := s.studentRepo.GetCoursesByStudentID(ctx, id)
		if err != nil {
			return nil, err
		}
		student.Courses = courses
	}

	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

// GetAllStudents retrieves a page of students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context, page, size int) (*dto.StudentListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	students, total, err := s.studentRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	resp := dto.NewStudentListResponse(students, helpers.NewPaginationInfo(total, page, limit))
	return &resp, nil
}

// SearchStudentsByName finds students by case-insensitive name substring
func (s *studentServiceImpl) SearchStudentsByName(ctx context.Context, name string) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return dto.NewStudentResponses(students), nil
}

// SearchStudentsByEmail finds students by case-insensitive email substring
func (s *studentServiceImpl) SearchStudentsByEmail(ctx context.Context, email string) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.SearchByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return dto.NewStudentResponses(students), nil
}

// EnrollStudent enrolls a student in a course. Both sides must exist and the pair
// must not already be enrolled.
func (s *studentServiceImpl) EnrollStudent(ctx context.Context, studentID, courseID int64) (*dto.StudentResponse, error) {
	if err := s.checkStudentAndCourse(ctx, studentID, courseID); err != nil {
		return nil, err
	}

	enrolled, err := s.studentRepo.IsEnrolled(ctx, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment: %w", err)
	}
	if enrolled {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	if err := s.studentRepo.Enroll(ctx, studentID, courseID); err != nil {
		return nil, err
	}

	return s.GetStudentByID(ctx, studentID, true)
}

// UnenrollStudent removes an enrollment that must exist
func (s *studentServiceImpl) UnenrollStudent(ctx context.Context, studentID, courseID int64) (*dto.StudentResponse, error) {
	if err := s.checkStudentAndCourse(ctx, studentID, courseID); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Unenroll(ctx, studentID, courseID); err != nil {
		return nil, err
	}

	return s.GetStudentByID(ctx, studentID, true)
}

// IsStudentEnrolled reports whether a student is enrolled in a course
func (s *studentServiceImpl) IsStudentEnrolled(ctx context.Context, studentID, courseID int64) (*dto.EnrollmentStatusResponse, error) {
	if err := s.checkStudentAndCourse(ctx, studentID, courseID); err != nil {
		return nil, err
	}

	enrolled, err := s.studentRepo.IsEnrolled(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}

	return &dto.EnrollmentStatusResponse{
		StudentID: studentID,
		CourseID:  courseID,
		Enrolled:  enrolled,
	}, nil
}

// GetCoursesByStudentID retrieves the courses a student is enrolled in
func (s *studentServiceImpl) GetCoursesByStudentID(ctx context.Context, studentID int64) ([]dto.CourseResponse, error) {
	exists, err := s.studentRepo.ExistsByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	courses, err := s.studentRepo.GetCoursesByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return dto.NewCourseResponses(courses), nil
}

// GetStudentsByCourseID retrieves the students enrolled in a course
func (s *studentServiceImpl) GetStudentsByCourseID(ctx context.Context, courseID int64) ([]dto.StudentResponse, error) {
	exists, err := s.courseRepo.ExistsByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	students, err := s.studentRepo.GetStudentsByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return dto.NewStudentResponses(students), nil
}

// CountStudentsByCourseID counts enrollments of a course
func (s *studentServiceImpl) CountStudentsByCourseID(ctx context.Context, courseID int64) (*dto.CountResponse, error) {
	exists, err := s.courseRepo.ExistsByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	count, err := s.studentRepo.CountStudentsByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	return &dto.CountResponse{
		Count:        count,
		ResourceType: "students",
		Description:  fmt.Sprintf("students enrolled in course %d", courseID),
	}, nil
}

// GetStudentsWithNoCourses retrieves students with no enrollments
func (s *studentServiceImpl) GetStudentsWithNoCourses(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.GetWithNoCourses(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewStudentResponses(students), nil
}

// GetStudentsByInstructorID retrieves the distinct students enrolled in any of an
// instructor's courses.
func (s *studentServiceImpl) GetStudentsByInstructorID(ctx context.Context, instructorID int64) ([]dto.StudentResponse, error) {
	exists, err := s.instructorRepo.ExistsByID(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error checking instructor: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrInstructorNotFound
	}

	students, err := s.studentRepo.GetByInstructorID(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	return dto.NewStudentResponses(students), nil
}

// StudentExistsByID checks whether a student exists
func (s *studentServiceImpl) StudentExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.studentRepo.ExistsByID(ctx, id)
}

// StudentExistsByEmail checks whether a student email is in use
func (s *studentServiceImpl) StudentExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.studentRepo.ExistsByEmail(ctx, email)
}

func (s *studentServiceImpl) checkStudentAndCourse(ctx context.Context, studentID, courseID int64) error {
	exists, err := s.studentRepo.ExistsByID(ctx, studentID)
	if err != nil {
		return fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return apperrors.ErrStudentNotFound
	}

	exists, err = s.courseRepo.ExistsByID(ctx, courseID)
	if err != nil {
		return fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
