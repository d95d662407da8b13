package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aomari/course-management/internal/app/models"
	"github.com/aomari/course-management/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service suites. They mirror the
// constraint behavior of the Postgres repositories: unique email and
// (title, instructor) pairs, enrollment primary key, and the delete cascades
// the schema enforces.

type fakes struct {
	instructors *fakeInstructorRepo
	details     *fakeDetailsRepo
	courses     *fakeCourseRepo
	students    *fakeStudentRepo
	reviews     *fakeReviewRepo
}

func newFakes() *fakes {
	f := &fakes{
		instructors: &fakeInstructorRepo{items: map[int64]*models.Instructor{}},
		details:     &fakeDetailsRepo{items: map[int64]*models.InstructorDetails{}},
		courses:     &fakeCourseRepo{items: map[int64]*models.Course{}},
		students:    &fakeStudentRepo{items: map[int64]*models.Student{}, enrollments: map[enrollmentKey]bool{}},
		reviews:     &fakeReviewRepo{items: map[int64]*models.Review{}},
	}
	f.instructors.details = f.details
	f.instructors.courses = f.courses
	f.details.instructors = f.instructors
	f.courses.instructors = f.instructors
	f.courses.reviews = f.reviews
	f.courses.students = f.students
	f.students.courses = f.courses
	f.reviews.courses = f.courses
	f.reviews.students = f.students
	return f
}

type enrollmentKey struct {
	courseID  int64
	studentID int64
}

// --- instructors ---

type fakeInstructorRepo struct {
	mu      sync.RWMutex
	seq     int64
	items   map[int64]*models.Instructor
	details *fakeDetailsRepo
	courses *fakeCourseRepo
}

func (r *fakeInstructorRepo) emailInUse(email string, excludeID int64) bool {
	for _, i := range r.items {
		if i.Email == email && i.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *fakeInstructorRepo) Create(_ context.Context, instructor *models.Instructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailInUse(instructor.Email, 0) {
		return apperrors.ErrInstructorEmailTaken
	}
	r.seq++
	instructor.ID = r.seq
	instructor.CreatedAt = time.Now()
	instructor.UpdatedAt = instructor.CreatedAt
	copied := *instructor
	// The real repository never stores the Details back-pointer; GetByID scans
	// columns only, so the stored copy must not keep it either.
	copied.Details = nil
	r.items[instructor.ID] = &copied
	return nil
}

func (r *fakeInstructorRepo) CreateWithDetails(ctx context.Context, instructor *models.Instructor, details *models.InstructorDetails) error {
	r.mu.RLock()
	taken := r.emailInUse(instructor.Email, 0)
	r.mu.RUnlock()
	if taken {
		return apperrors.ErrInstructorEmailTaken
	}
	if err := r.details.Create(ctx, details); err != nil {
		return err
	}
	instructor.DetailsID = &details.ID
	instructor.Details = details
	return r.Create(ctx, instructor)
}

func (r *fakeInstructorRepo) GetByID(_ context.Context, id int64) (*models.Instructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	instructor, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrInstructorNotFound
	}
	copied := *instructor
	return &copied, nil
}

func (r *fakeInstructorRepo) GetByEmail(_ context.Context, email string) (*models.Instructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, instructor := range r.items {
		if instructor.Email == email {
			copied := *instructor
			return &copied, nil
		}
	}
	return nil, apperrors.ErrInstructorNotFound
}

func (r *fakeInstructorRepo) GetAll(_ context.Context, offset uint64, limit int) ([]*models.Instructor, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := r.sorted()
	total := int64(len(all))
	start := int(offset)
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakeInstructorRepo) sorted() []*models.Instructor {
	all := make([]*models.Instructor, 0, len(r.items))
	for _, instructor := range r.items {
		copied := *instructor
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

func (r *fakeInstructorRepo) Update(_ context.Context, instructor *models.Instructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[instructor.ID]
	if !ok {
		return apperrors.ErrInstructorNotFound
	}
	if r.emailInUse(instructor.Email, instructor.ID) {
		return apperrors.ErrInstructorEmailTaken
	}
	current.FirstName = instructor.FirstName
	current.LastName = instructor.LastName
	current.Email = instructor.Email
	current.UpdatedAt = time.Now()
	return nil
}

func (r *fakeInstructorRepo) SetDetailsID(_ context.Context, instructorID int64, detailsID *int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	instructor, ok := r.items[instructorID]
	if !ok {
		return apperrors.ErrInstructorNotFound
	}
	instructor.DetailsID = detailsID
	instructor.UpdatedAt = time.Now()
	return nil
}

func (r *fakeInstructorRepo) Delete(ctx context.Context, id int64) error {
	// Courses referencing the instructor block the delete, like the FK does
	r.courses.mu.RLock()
	for _, course := range r.courses.items {
		if course.InstructorID == id {
			r.courses.mu.RUnlock()
			return apperrors.ErrInstructorHasCourses
		}
	}
	r.courses.mu.RUnlock()

	r.mu.Lock()
	instructor, ok := r.items[id]
	if !ok {
		r.mu.Unlock()
		return apperrors.ErrInstructorNotFound
	}
	detailsID := instructor.DetailsID
	delete(r.items, id)
	r.mu.Unlock()

	if detailsID != nil {
		_ = r.details.Delete(ctx, *detailsID)
	}
	return nil
}

func (r *fakeInstructorRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakeInstructorRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.emailInUse(email, 0), nil
}

func (r *fakeInstructorRepo) ExistsByEmailExcluding(_ context.Context, email string, excludeID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.emailInUse(email, excludeID), nil
}

func (r *fakeInstructorRepo) SearchByName(_ context.Context, name string) ([]*models.Instructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(name)
	var found []*models.Instructor
	for _, instructor := range r.sorted() {
		if strings.Contains(strings.ToLower(instructor.FullName()), needle) {
			found = append(found, instructor)
		}
	}
	return found, nil
}

func (r *fakeInstructorRepo) GetWithDetails(ctx context.Context) ([]*models.Instructor, error) {
	r.mu.RLock()
	all := r.sorted()
	r.mu.RUnlock()
	var found []*models.Instructor
	for _, instructor := range all {
		if instructor.DetailsID == nil {
			continue
		}
		details, err := r.details.GetByID(ctx, *instructor.DetailsID)
		if err != nil {
			return nil, err
		}
		instructor.Details = details
		found = append(found, instructor)
	}
	return found, nil
}

func (r *fakeInstructorRepo) GetWithoutDetails(_ context.Context) ([]*models.Instructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var found []*models.Instructor
	for _, instructor := range r.sorted() {
		if instructor.DetailsID == nil {
			found = append(found, instructor)
		}
	}
	return found, nil
}

// --- instructor details ---

type fakeDetailsRepo struct {
	mu          sync.RWMutex
	seq         int64
	items       map[int64]*models.InstructorDetails
	instructors *fakeInstructorRepo
}

func (r *fakeDetailsRepo) Create(_ context.Context, details *models.InstructorDetails) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	details.ID = r.seq
	details.CreatedAt = time.Now()
	details.UpdatedAt = details.CreatedAt
	copied := *details
	r.items[details.ID] = &copied
	return nil
}

func (r *fakeDetailsRepo) GetByID(_ context.Context, id int64) (*models.InstructorDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	details, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrInstructorDetailsNotFound
	}
	copied := *details
	return &copied, nil
}

func (r *fakeDetailsRepo) Update(_ context.Context, details *models.InstructorDetails) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[details.ID]
	if !ok {
		return apperrors.ErrInstructorDetailsNotFound
	}
	current.YoutubeChannel = details.YoutubeChannel
	current.Hobby = details.Hobby
	current.UpdatedAt = time.Now()
	return nil
}

func (r *fakeDetailsRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrInstructorDetailsNotFound
	}
	delete(r.items, id)

	// FK ON DELETE SET NULL on instructors.instructor_details_id
	r.instructors.mu.Lock()
	for _, instructor := range r.instructors.items {
		if instructor.DetailsID != nil && *instructor.DetailsID == id {
			instructor.DetailsID = nil
		}
	}
	r.instructors.mu.Unlock()
	return nil
}

func (r *fakeDetailsRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakeDetailsRepo) sorted() []*models.InstructorDetails {
	all := make([]*models.InstructorDetails, 0, len(r.items))
	for _, details := range r.items {
		copied := *details
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

func (r *fakeDetailsRepo) SearchByYoutubeChannel(_ context.Context, channel string) ([]*models.InstructorDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(channel)
	var found []*models.InstructorDetails
	for _, details := range r.sorted() {
		if strings.Contains(strings.ToLower(details.YoutubeChannel), needle) {
			found = append(found, details)
		}
	}
	return found, nil
}

func (r *fakeDetailsRepo) SearchByHobby(_ context.Context, hobby string) ([]*models.InstructorDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(hobby)
	var found []*models.InstructorDetails
	for _, details := range r.sorted() {
		if details.Hobby != nil && strings.Contains(strings.ToLower(*details.Hobby), needle) {
			found = append(found, details)
		}
	}
	return found, nil
}

func (r *fakeDetailsRepo) GetOrphaned(_ context.Context) ([]*models.InstructorDetails, error) {
	linked := map[int64]bool{}
	r.instructors.mu.RLock()
	for _, instructor := range r.instructors.items {
		if instructor.DetailsID != nil {
			linked[*instructor.DetailsID] = true
		}
	}
	r.instructors.mu.RUnlock()

	r.mu.RLock()
	defer r.mu.RUnlock()
	var found []*models.InstructorDetails
	for _, details := range r.sorted() {
		if !linked[details.ID] {
			found = append(found, details)
		}
	}
	return found, nil
}

// --- courses ---

type fakeCourseRepo struct {
	mu          sync.RWMutex
	seq         int64
	items       map[int64]*models.Course
	instructors *fakeInstructorRepo
	reviews     *fakeReviewRepo
	students    *fakeStudentRepo
}

func (r *fakeCourseRepo) pairInUse(title string, instructorID, excludeID int64) bool {
	for _, c := range r.items {
		if c.Title == title && c.InstructorID == instructorID && c.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pairInUse(course.Title, course.InstructorID, 0) {
		return apperrors.ErrCourseAlreadyExists
	}
	r.seq++
	course.ID = r.seq
	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt
	copied := *course
	copied.Instructor = nil
	copied.Reviews = nil
	r.items[course.ID] = &copied
	return nil
}

func (r *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	r.mu.RLock()
	course, ok := r.items[id]
	if !ok {
		r.mu.RUnlock()
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	r.mu.RUnlock()

	instructor, err := r.instructors.GetByID(ctx, copied.InstructorID)
	if err == nil {
		copied.Instructor = instructor
	}
	return &copied, nil
}

func (r *fakeCourseRepo) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Course, int64, error) {
	r.mu.RLock()
	all := r.sorted()
	r.mu.RUnlock()
	total := int64(len(all))
	start := int(offset)
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	page := all[start:end]
	for _, course := range page {
		if instructor, err := r.instructors.GetByID(ctx, course.InstructorID); err == nil {
			course.Instructor = instructor
		}
	}
	return page, total, nil
}

func (r *fakeCourseRepo) sorted() []*models.Course {
	all := make([]*models.Course, 0, len(r.items))
	for _, course := range r.items {
		copied := *course
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

func (r *fakeCourseRepo) GetByInstructorID(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	r.mu.RLock()
	all := r.sorted()
	r.mu.RUnlock()
	var found []*models.Course
	for _, course := range all {
		if course.InstructorID != instructorID {
			continue
		}
		if instructor, err := r.instructors.GetByID(ctx, course.InstructorID); err == nil {
			course.Instructor = instructor
		}
		found = append(found, course)
	}
	return found, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[course.ID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	if r.pairInUse(course.Title, course.InstructorID, course.ID) {
		return apperrors.ErrCourseAlreadyExists
	}
	current.Title = course.Title
	current.InstructorID = course.InstructorID
	current.UpdatedAt = time.Now()
	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	if _, ok := r.items[id]; !ok {
		r.mu.Unlock()
		return apperrors.ErrCourseNotFound
	}
	delete(r.items, id)
	r.mu.Unlock()

	// FK ON DELETE CASCADE on reviews and course_students
	r.reviews.mu.Lock()
	for reviewID, review := range r.reviews.items {
		if review.CourseID == id {
			delete(r.reviews.items, reviewID)
		}
	}
	r.reviews.mu.Unlock()

	r.students.mu.Lock()
	for key := range r.students.enrollments {
		if key.courseID == id {
			delete(r.students.enrollments, key)
		}
	}
	r.students.mu.Unlock()
	return nil
}

func (r *fakeCourseRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakeCourseRepo) ExistsByTitleAndInstructorID(_ context.Context, title string, instructorID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pairInUse(title, instructorID, 0), nil
}

func (r *fakeCourseRepo) CountByInstructorID(_ context.Context, instructorID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, course := range r.items {
		if course.InstructorID == instructorID {
			count++
		}
	}
	return count, nil
}

func (r *fakeCourseRepo) SearchByTitle(ctx context.Context, title string) ([]*models.Course, error) {
	r.mu.RLock()
	all := r.sorted()
	r.mu.RUnlock()
	needle := strings.ToLower(title)
	var found []*models.Course
	for _, course := range all {
		if strings.Contains(strings.ToLower(course.Title), needle) {
			if instructor, err := r.instructors.GetByID(ctx, course.InstructorID); err == nil {
				course.Instructor = instructor
			}
			found = append(found, course)
		}
	}
	return found, nil
}

func (r *fakeCourseRepo) SearchByInstructorName(ctx context.Context, name string) ([]*models.Course, error) {
	r.mu.RLock()
	all := r.sorted()
	r.mu.RUnlock()
	needle := strings.ToLower(name)
	var found []*models.Course
	for _, course := range all {
		instructor, err := r.instructors.GetByID(ctx, course.InstructorID)
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(instructor.FullName()), needle) {
			course.Instructor = instructor
			found = append(found, course)
		}
	}
	return found, nil
}

// --- students ---

type fakeStudentRepo struct {
	mu          sync.RWMutex
	seq         int64
	items       map[int64]*models.Student
	enrollments map[enrollmentKey]bool
	courses     *fakeCourseRepo
}

func (r *fakeStudentRepo) emailInUse(email string, excludeID int64) bool {
	for _, s := range r.items {
		if s.Email == email && s.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailInUse(student.Email, 0) {
		return apperrors.ErrStudentEmailTaken
	}
	r.seq++
	student.ID = r.seq
	student.CreatedAt = time.Now()
	student.UpdatedAt = student.CreatedAt
	copied := *student
	copied.Courses = nil
	r.items[student.ID] = &copied
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	student, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (r *fakeStudentRepo) GetAll(_ context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := r.sorted()
	total := int64(len(all))
	start := int(offset)
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakeStudentRepo) sorted() []*models.Student {
	all := make([]*models.Student, 0, len(r.items))
	for _, student := range r.items {
		copied := *student
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

func (r *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[student.ID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	if r.emailInUse(student.Email, student.ID) {
		return apperrors.ErrStudentEmailTaken
	}
	current.FirstName = student.FirstName
	current.LastName = student.LastName
	current.Email = student.Email
	current.UpdatedAt = time.Now()
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	for key := range r.enrollments {
		if key.studentID == id {
			delete(r.enrollments, key)
		}
	}
	delete(r.items, id)
	return nil
}

func (r *fakeStudentRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakeStudentRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.emailInUse(email, 0), nil
}

func (r *fakeStudentRepo) ExistsByEmailExcluding(_ context.Context, email string, excludeID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.emailInUse(email, excludeID), nil
}

func (r *fakeStudentRepo) SearchByName(_ context.Context, name string) ([]*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(name)
	var found []*models.Student
	for _, student := range r.sorted() {
		if strings.Contains(strings.ToLower(student.FullName()), needle) {
			found = append(found, student)
		}
	}
	return found, nil
}

func (r *fakeStudentRepo) SearchByEmail(_ context.Context, email string) ([]*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(email)
	var found []*models.Student
	for _, student := range r.sorted() {
		if strings.Contains(strings.ToLower(student.Email), needle) {
			found = append(found, student)
		}
	}
	return found, nil
}

func (r *fakeStudentRepo) Enroll(_ context.Context, studentID, courseID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := enrollmentKey{courseID: courseID, studentID: studentID}
	if r.enrollments[key] {
		return apperrors.ErrAlreadyEnrolled
	}
	r.enrollments[key] = true
	return nil
}

func (r *fakeStudentRepo) Unenroll(_ context.Context, studentID, courseID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := enrollmentKey{courseID: courseID, studentID: studentID}
	if !r.enrollments[key] {
		return apperrors.ErrEnrollmentMissing
	}
	delete(r.enrollments, key)
	return nil
}

func (r *fakeStudentRepo) IsEnrolled(_ context.Context, studentID, courseID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enrollments[enrollmentKey{courseID: courseID, studentID: studentID}], nil
}

func (r *fakeStudentRepo) GetCoursesByStudentID(ctx context.Context, studentID int64) ([]*models.Course, error) {
	r.mu.RLock()
	var courseIDs []int64
	for key := range r.enrollments {
		if key.studentID == studentID {
			courseIDs = append(courseIDs, key.courseID)
		}
	}
	r.mu.RUnlock()
	sort.Slice(courseIDs, func(i, j int) bool { return courseIDs[i] < courseIDs[j] })

	var courses []*models.Course
	for _, id := range courseIDs {
		course, err := r.courses.GetByID(ctx, id)
		if err != nil {
			continue
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func (r *fakeStudentRepo) GetStudentsByCourseID(_ context.Context, courseID int64) ([]*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var found []*models.Student
	for _, student := range r.sorted() {
		if r.enrollments[enrollmentKey{courseID: courseID, studentID: student.ID}] {
			found = append(found, student)
		}
	}
	return found, nil
}

func (r *fakeStudentRepo) CountStudentsByCourseID(_ context.Context, courseID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for key := range r.enrollments {
		if key.courseID == courseID {
			count++
		}
	}
	return count, nil
}

func (r *fakeStudentRepo) GetWithNoCourses(_ context.Context) ([]*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var found []*models.Student
	for _, student := range r.sorted() {
		enrolled := false
		for key := range r.enrollments {
			if key.studentID == student.ID {
				enrolled = true
				break
			}
		}
		if !enrolled {
			found = append(found, student)
		}
	}
	return found, nil
}

func (r *fakeStudentRepo) GetByInstructorID(ctx context.Context, instructorID int64) ([]*models.Student, error) {
	courses, err := r.courses.GetByInstructorID(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	taught := map[int64]bool{}
	for _, course := range courses {
		taught[course.ID] = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var found []*models.Student
	for _, student := range r.sorted() {
		for key := range r.enrollments {
			if key.studentID == student.ID && taught[key.courseID] {
				found = append(found, student)
				break
			}
		}
	}
	return found, nil
}

// --- reviews ---

type fakeReviewRepo struct {
	mu       sync.RWMutex
	seq      int64
	items    map[int64]*models.Review
	courses  *fakeCourseRepo
	students *fakeStudentRepo
}

func (r *fakeReviewRepo) Create(_ context.Context, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	review.ID = r.seq
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	copied := *review
	copied.Course = nil
	copied.Student = nil
	r.items[review.ID] = &copied
	return nil
}

func (r *fakeReviewRepo) GetByID(_ context.Context, id int64) (*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	review, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrReviewNotFound
	}
	copied := *review
	return &copied, nil
}

func (r *fakeReviewRepo) Update(_ context.Context, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[review.ID]
	if !ok {
		return apperrors.ErrReviewNotFound
	}
	current.Comment = review.Comment
	current.CourseID = review.CourseID
	current.StudentID = review.StudentID
	current.UpdatedAt = time.Now()
	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrReviewNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeReviewRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[id]
	return ok, nil
}

// newestFirst returns reviews ordered by recency. IDs are monotonic here, so a
// descending ID sort matches the created_at DESC ordering of the SQL queries.
func (r *fakeReviewRepo) newestFirst() []*models.Review {
	all := make([]*models.Review, 0, len(r.items))
	for _, review := range r.items {
		copied := *review
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return all
}

func (r *fakeReviewRepo) GetByCourseID(_ context.Context, courseID int64) ([]*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var found []*models.Review
	for _, review := range r.newestFirst() {
		if review.CourseID == courseID {
			found = append(found, review)
		}
	}
	return found, nil
}

func (r *fakeReviewRepo) GetLatest(_ context.Context, limit int) ([]*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := r.newestFirst()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeReviewRepo) CountByCourseID(_ context.Context, courseID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, review := range r.items {
		if review.CourseID == courseID {
			count++
		}
	}
	return count, nil
}

func (r *fakeReviewRepo) SearchByComment(_ context.Context, comment string) ([]*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(comment)
	var found []*models.Review
	for _, review := range r.newestFirst() {
		if strings.Contains(strings.ToLower(review.Comment), needle) {
			found = append(found, review)
		}
	}
	return found, nil
}

func (r *fakeReviewRepo) SearchByCourseTitle(ctx context.Context, title string) ([]*models.Review, error) {
	courses, err := r.courses.SearchByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	matched := map[int64]bool{}
	for _, course := range courses {
		matched[course.ID] = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var found []*models.Review
	for _, review := range r.newestFirst() {
		if matched[review.CourseID] {
			found = append(found, review)
		}
	}
	return found, nil
}

func (r *fakeReviewRepo) GetByInstructorID(ctx context.Context, instructorID int64) ([]*models.Review, error) {
	courses, err := r.courses.GetByInstructorID(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	taught := map[int64]bool{}
	for _, course := range courses {
		taught[course.ID] = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var found []*models.Review
	for _, review := range r.newestFirst() {
		if taught[review.CourseID] {
			found = append(found, review)
		}
	}
	return found, nil
}
