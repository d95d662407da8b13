package models

import "time"

// InstructorDetails holds the optional profile record owned by at most one
// instructor at a time. A details record may exist without an owner (orphaned)
// and be linked later.
type InstructorDetails struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	YoutubeChannel string    `json:"youtubeChannel" db:"youtube_channel" example:"https://youtube.com/@johndoe"`
	Hobby          *string   `json:"hobby,omitempty" db:"hobby" example:"Guitar"` // Nullable
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
