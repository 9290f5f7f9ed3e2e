package task

import "time"

// Task is an owned resource. UserID is the string form of the owner's
// numeric id, set exactly once at creation from the authenticated token
// subject and never reassigned.
type Task struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
