package user

import (
	"strconv"
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose password hash in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// SubjectID returns the string form of the numeric id, as carried in token
// subjects and stored on tasks as the owner field.
func (u *User) SubjectID() string {
	return strconv.FormatInt(u.ID, 10)
}
