package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	FirstName string    `json:"firstName" db:"first_name" example:"Jane"`
	LastName  string    `json:"lastName" db:"last_name" example:"Smith"`
	Email     string    `json:"email" db:"email" example:"jane.smith@example.com"` // Globally unique
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Courses []*Course `json:"courses,omitempty"` // Enrollment set
}

// FullName returns the display name derived from first and last name.
// Computed on access, never stored.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
