package models

import "time"

// Review represents a student's comment on a course. Belongs to exactly one course;
// removal of a course is propagated to its reviews only by the database cascade,
// never by application code.
type Review struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Comment   string    `json:"comment" db:"comment" example:"Great course!"`
	CourseID  int64     `json:"courseId" db:"course_id" example:"1"`
	StudentID int64     `json:"studentId" db:"student_id" example:"1"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Course  *Course  `json:"course,omitempty"`
	Student *Student `json:"student,omitempty"`
}
