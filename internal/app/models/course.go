package models

import "time"

// Course represents a course taught by exactly one instructor.
// The (title, instructor_id) pair is unique: the same instructor cannot teach two
// courses with the same title, while different instructors may reuse a title.
type Course struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Title        string    `json:"title" db:"title" example:"Java Basics"`
	InstructorID int64     `json:"instructorId" db:"instructor_id" example:"1"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Instructor *Instructor `json:"instructor,omitempty"`
	Reviews    []*Review   `json:"reviews,omitempty"`
}
