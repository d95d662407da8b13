package models

import "time"

// Instructor defines the instructor model based on the 'instructors' table
type Instructor struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	FirstName string    `json:"firstName" db:"first_name" example:"John"`
	LastName  string    `json:"lastName" db:"last_name" example:"Doe"`
	Email     string    `json:"email" db:"email" example:"john.doe@example.com"` // Globally unique
	DetailsID *int64    `json:"detailsId,omitempty" db:"instructor_details_id"`  // Optional 1:1 link
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Details *InstructorDetails `json:"details,omitempty"`
}

// FullName returns the display name derived from first and last name.
// Computed on access, never stored.
func (i *Instructor) FullName() string {
	return i.FirstName + " " + i.LastName
}
